package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/line"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/metrics"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/models"
)

const (
	KindBooking   = "booking"
	KindEmergency = "emergency"
)

// Dispatcher delivers event notifications to the operator LINE channel.
// Delivery is best effort: the creating request has already succeeded and
// is never rolled back or failed because of an outbound error.
type Dispatcher struct {
	Client    *line.Client
	Recipient string
	Timeout   time.Duration
	Logger    zerolog.Logger
	Metrics   *metrics.Metrics
}

// DispatchBooking sends the new-booking notification without blocking the
// caller.
func (d *Dispatcher) DispatchBooking(b models.Booking) {
	msg := BuildBookingMessage(BookingPayloadFrom(b))
	go func() {
		_ = d.Deliver(KindBooking, msg)
	}()
}

// DispatchEmergency sends the urgent notification without blocking the
// caller.
func (d *Dispatcher) DispatchEmergency(e models.EmergencyRequest) {
	msg := BuildEmergencyMessage(e)
	go func() {
		_ = d.Deliver(KindEmergency, msg)
	}()
}

// Deliver pushes one message synchronously under a bounded timeout.
// Failures are logged and counted only.
func (d *Dispatcher) Deliver(kind string, msg line.Message) error {
	if d.Client == nil || d.Client.Token == "" || d.Recipient == "" {
		d.Logger.Debug().Str("kind", kind).Msg("line channel not configured, notification skipped")
		return nil
	}

	timeout := d.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := d.Client.Push(ctx, d.Recipient, []line.Message{msg}); err != nil {
		if d.Metrics != nil {
			d.Metrics.NotificationsFailed.WithLabelValues(kind).Inc()
		}
		d.Logger.Error().Err(err).Str("kind", kind).Msg("notification delivery failed")
		return err
	}
	if d.Metrics != nil {
		d.Metrics.NotificationsSent.WithLabelValues(kind).Inc()
	}
	d.Logger.Info().Str("kind", kind).Msg("notification delivered")
	return nil
}
