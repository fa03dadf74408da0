package store

import (
	"context"
	"sync"
	"time"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/models"
)

// MemoryBookings keeps bookings for the process lifetime. Records live in
// a map keyed by id; order preserves insertion order for List.
type MemoryBookings struct {
	mu    sync.RWMutex
	byID  map[string]models.Booking
	order []string
}

func NewMemoryBookings() *MemoryBookings {
	return &MemoryBookings{byID: map[string]models.Booking{}}
}

func (s *MemoryBookings) List(_ context.Context, f Filter) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0, len(s.order))
	for _, id := range s.order {
		b := s.byID[id]
		if matchBooking(b, f) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemoryBookings) Get(_ context.Context, id string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return models.Booking{}, ErrNotFound
	}
	return b, nil
}

func (s *MemoryBookings) Create(_ context.Context, b models.Booking) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = newID()
	b.Status = models.BookingPending
	b.CreatedAt = time.Now().UTC()
	s.byID[b.ID] = b
	s.order = append(s.order, b.ID)
	return b, nil
}

func (s *MemoryBookings) UpdateStatus(_ context.Context, id, status string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return models.Booking{}, ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	s.byID[id] = b
	return b, nil
}

func (s *MemoryBookings) Delete(_ context.Context, id string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return models.Booking{}, ErrNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return b, nil
}

// MemoryEmergencies is the in-memory emergency request store.
type MemoryEmergencies struct {
	mu    sync.RWMutex
	byID  map[string]models.EmergencyRequest
	order []string
}

func NewMemoryEmergencies() *MemoryEmergencies {
	return &MemoryEmergencies{byID: map[string]models.EmergencyRequest{}}
}

func (s *MemoryEmergencies) List(_ context.Context, f Filter) ([]models.EmergencyRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.EmergencyRequest, 0, len(s.order))
	for _, id := range s.order {
		e := s.byID[id]
		if matchEmergency(e, f) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *MemoryEmergencies) Get(_ context.Context, id string) (models.EmergencyRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byID[id]
	if !ok {
		return models.EmergencyRequest{}, ErrNotFound
	}
	return e, nil
}

func (s *MemoryEmergencies) Create(_ context.Context, e models.EmergencyRequest) (models.EmergencyRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = newID()
	e.Status = models.EmergencyPending
	e.Priority = models.PriorityHigh
	e.AssignedTechnician = ""
	e.CreatedAt = time.Now().UTC()
	s.byID[e.ID] = e
	s.order = append(s.order, e.ID)
	return e, nil
}

func (s *MemoryEmergencies) UpdateStatus(_ context.Context, id, status, technician string) (models.EmergencyRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return models.EmergencyRequest{}, ErrNotFound
	}
	e.Status = status
	if technician != "" {
		e.AssignedTechnician = technician
	}
	s.byID[id] = e
	return e, nil
}

func (s *MemoryEmergencies) Delete(_ context.Context, id string) (models.EmergencyRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return models.EmergencyRequest{}, ErrNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return e, nil
}
