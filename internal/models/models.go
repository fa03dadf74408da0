package models

import (
	"strings"
	"time"
)

// Booking statuses. Any status may follow any other, the admin console
// drives the transitions.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Emergency statuses. "urgent" and "assigned" are legacy spellings still
// sent by older admin clients and are normalized on input.
const (
	EmergencyPending    = "pending"
	EmergencyDispatched = "dispatched"
	EmergencyCompleted  = "completed"
	EmergencyCancelled  = "cancelled"
)

const PriorityHigh = "high"

type Booking struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId,omitempty"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	Service       string    `json:"service"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Address       string    `json:"address"`
	Price         float64   `json:"price"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

type EmergencyRequest struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId,omitempty"`
	Name               string    `json:"name"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	Area               string    `json:"area,omitempty"`
	Type               string    `json:"type"`
	Description        string    `json:"description"`
	Status             string    `json:"status"`
	Priority           string    `json:"priority"`
	AssignedTechnician string    `json:"assignedTechnician,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// NormalizeEmergencyStatus maps the legacy status spellings onto the
// canonical vocabulary and lowercases the rest.
func NormalizeEmergencyStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "urgent", EmergencyPending:
		return EmergencyPending
	case "assigned", EmergencyDispatched:
		return EmergencyDispatched
	default:
		return strings.ToLower(strings.TrimSpace(s))
	}
}

func ValidEmergencyStatus(s string) bool {
	switch s {
	case EmergencyPending, EmergencyDispatched, EmergencyCompleted, EmergencyCancelled:
		return true
	}
	return false
}
