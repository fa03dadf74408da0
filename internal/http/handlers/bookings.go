package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/models"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/store"
)

type CreateBookingRequest struct {
	UserID      string  `json:"userId"`
	Name        string  `json:"name" validate:"required"`
	Phone       string  `json:"phone" validate:"required"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Service     string  `json:"service" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Time        string  `json:"time" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type UpdateBookingRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

// @Summary List bookings
// @Tags bookings
// @Produce json
// @Param status query string false "Filter by status"
// @Param search query string false "Substring over name, service, phone"
// @Param userId query string false "Filter by owner"
// @Success 200 {object} map[string]any
// @Router /api/bookings [get]
func (h *Handler) BookingsList(c *gin.Context) {
	f := store.Filter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		UserID: c.Query("userId"),
	}
	items, err := h.Bookings.List(c.Request.Context(), f)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to list bookings")
		writeError(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"total":   len(items),
	})
}

func (h *Handler) BookingDetails(c *gin.Context) {
	b, err := h.Bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "Booking not found")
			return
		}
		h.Logger.Error().Err(err).Msg("failed to get booking")
		writeError(c, http.StatusInternalServerError, "Failed to get booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": b})
}

// @Summary Create booking
// @Tags bookings
// @Accept json
// @Produce json
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/bookings [post]
func (h *Handler) BookingCreate(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	b, err := h.Bookings.Create(c.Request.Context(), models.Booking{
		UserID:        req.UserID,
		CustomerName:  req.Name,
		CustomerPhone: req.Phone,
		CustomerEmail: req.Email,
		Service:       req.Service,
		Date:          req.Date,
		Time:          req.Time,
		Address:       req.Address,
		Price:         req.Price,
		Notes:         req.Description,
	})
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to create booking")
		writeError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	if h.Metrics != nil {
		h.Metrics.BookingsCreated.Inc()
	}
	h.Dispatcher.DispatchBooking(b)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    b,
		"message": "Booking created successfully",
	})
}

// @Summary Update booking status
// @Tags bookings
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/bookings [put]
func (h *Handler) BookingUpdateStatus(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	if !models.ValidBookingStatus(req.Status) {
		writeError(c, http.StatusBadRequest, "Unknown booking status: "+req.Status)
		return
	}

	b, err := h.Bookings.UpdateStatus(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "Booking not found")
			return
		}
		h.Logger.Error().Err(err).Msg("failed to update booking")
		writeError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    b,
		"message": "Booking status updated",
	})
}

func (h *Handler) BookingDelete(c *gin.Context) {
	b, err := h.Bookings.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "Booking not found")
			return
		}
		h.Logger.Error().Err(err).Msg("failed to delete booking")
		writeError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    b,
		"message": "Booking deleted successfully",
	})
}
