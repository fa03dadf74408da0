package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BookingsExport renders the current booking list as an XLSX workbook for
// the admin console reports page. The same status/search filters as the
// list endpoint apply.
func (h *Handler) BookingsExport(c *gin.Context) {
	f := store.Filter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	items, err := h.Bookings.List(c.Request.Context(), f)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to list bookings for export")
		writeError(c, http.StatusInternalServerError, "Failed to export bookings")
		return
	}

	file := excelize.NewFile()
	const sheet = "Bookings"
	index, err := file.NewSheet(sheet)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to build workbook")
		return
	}
	file.SetActiveSheet(index)
	_ = file.DeleteSheet("Sheet1")

	headers := []string{"ID", "Customer", "Phone", "Email", "Service", "Date", "Time", "Address", "Price", "Status", "Created At"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(sheet, cell, name)
	}
	if style, err := file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	}); err == nil {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		_ = file.SetCellStyle(sheet, first, last, style)
	}

	for row, b := range items {
		values := []any{b.ID, b.CustomerName, b.CustomerPhone, b.CustomerEmail, b.Service, b.Date, b.Time, b.Address, b.Price, b.Status, b.CreatedAt.Format(time.RFC3339)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = file.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to write export workbook")
		writeError(c, http.StatusInternalServerError, "Failed to export bookings")
		return
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
