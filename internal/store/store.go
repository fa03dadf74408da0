package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/models"
)

var ErrNotFound = errors.New("record not found")

func newID() string {
	return uuid.NewString()
}

// Filter narrows List results. Every provided predicate must match.
// Search is a case-insensitive substring match over the customer name,
// the service/category label and the phone number.
type Filter struct {
	Status string
	Search string
	UserID string
}

type BookingStore interface {
	List(ctx context.Context, f Filter) ([]models.Booking, error)
	Get(ctx context.Context, id string) (models.Booking, error)
	Create(ctx context.Context, b models.Booking) (models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (models.Booking, error)
	Delete(ctx context.Context, id string) (models.Booking, error)
}

type EmergencyStore interface {
	List(ctx context.Context, f Filter) ([]models.EmergencyRequest, error)
	Get(ctx context.Context, id string) (models.EmergencyRequest, error)
	Create(ctx context.Context, e models.EmergencyRequest) (models.EmergencyRequest, error)
	UpdateStatus(ctx context.Context, id, status, technician string) (models.EmergencyRequest, error)
	Delete(ctx context.Context, id string) (models.EmergencyRequest, error)
}

func matchBooking(b models.Booking, f Filter) bool {
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.UserID != "" && b.UserID != f.UserID {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(b.CustomerName), q) &&
			!strings.Contains(strings.ToLower(b.Service), q) &&
			!strings.Contains(b.CustomerPhone, f.Search) {
			return false
		}
	}
	return true
}

func matchEmergency(e models.EmergencyRequest, f Filter) bool {
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.UserID != "" && e.UserID != f.UserID {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(strings.ToLower(e.Type), q) &&
			!strings.Contains(e.Phone, f.Search) {
			return false
		}
	}
	return true
}
