package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/metrics"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/notify"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/store"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/webhook"
)

// Pinger is implemented by store backends with a remote connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Bookings    store.BookingStore
	Emergencies store.EmergencyStore
	Dispatcher  *notify.Dispatcher
	Responder   *webhook.Responder
	Validator   *validator.Validate
	Logger      zerolog.Logger
	Metrics     *metrics.Metrics
	LineSecret  string
	StorePinger Pinger
}

func (h *Handler) Healthz(c *gin.Context) {
	if h.StorePinger != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := h.StorePinger.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
