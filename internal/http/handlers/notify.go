package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/models"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/notify"
)

type NotifyRequest struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Notify is the internal fan-out entry point. It always reports success:
// delivery problems are logged server-side only, the record the event
// describes already exists.
//
// @Summary Send a notification
// @Tags notify
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/notify [post]
func (h *Handler) Notify(c *gin.Context) {
	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	switch req.Type {
	case notify.KindBooking:
		var p notify.BookingPayload
		if err := json.Unmarshal(req.Data, &p); err != nil {
			writeError(c, http.StatusBadRequest, "Invalid booking data")
			return
		}
		_ = h.Dispatcher.Deliver(notify.KindBooking, notify.BuildBookingMessage(p))
	case notify.KindEmergency:
		var e models.EmergencyRequest
		if err := json.Unmarshal(req.Data, &e); err != nil {
			writeError(c, http.StatusBadRequest, "Invalid emergency data")
			return
		}
		_ = h.Dispatcher.Deliver(notify.KindEmergency, notify.BuildEmergencyMessage(e))
	default:
		h.Logger.Warn().Str("type", req.Type).Msg("unknown notification type ignored")
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
