package notify

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/models"
)

func TestBuildBookingMessage(t *testing.T) {
	p := BookingPayload{
		UserName:  "Somchai",
		UserEmail: "somchai@email.com",
		Service:   "aircon",
		Price:     800,
		Date:      "2024-02-01",
		Time:      "10:00",
		Address:   "123 Main",
		Phone:     "0810000000",
	}
	msg := BuildBookingMessage(p)

	if msg.Type != "flex" || msg.Contents == nil {
		t.Fatalf("expected flex message, got %+v", msg)
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	for _, want := range []string{"Somchai", "somchai@email.com", "aircon", "฿800", "2024-02-01 10:00", "123 Main", "tel:0810000000", "mailto:somchai@email.com"} {
		if !strings.Contains(body, want) {
			t.Fatalf("message missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "หมายเหตุ") {
		t.Fatalf("notes section must be omitted when notes are empty")
	}
}

func TestBuildBookingMessageWithNotes(t *testing.T) {
	p := BookingPayload{UserName: "Somchai", Phone: "0810000000", Notes: "แอร์ไม่เย็น เสียงดัง"}
	raw, _ := json.Marshal(BuildBookingMessage(p))
	if !strings.Contains(string(raw), "แอร์ไม่เย็น เสียงดัง") {
		t.Fatalf("notes missing from message")
	}
}

func TestBuildEmergencyMessage(t *testing.T) {
	e := models.EmergencyRequest{
		Name:        "Wichai",
		Phone:       "0834567890",
		Address:     "789 Sukhumvit",
		Type:        "electrical",
		Description: "ไฟดับทั้งบ้าน มีกลิ่นไหม้",
	}
	msg := BuildEmergencyMessage(e)

	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	for _, want := range []string{"EMERGENCY", "electrical", "Wichai", "tel:0834567890", "ไฟดับทั้งบ้าน", "15 นาที", "#FF4444"} {
		if !strings.Contains(body, want) {
			t.Fatalf("message missing %q:\n%s", want, body)
		}
	}
}

func TestBookingPayloadFrom(t *testing.T) {
	b := models.Booking{
		CustomerName:  "Suda",
		CustomerPhone: "0820000000",
		CustomerEmail: "suda@email.com",
		Service:       "plumbing",
		Price:         700,
		Date:          "2024-02-02",
		Time:          "14:00",
		Address:       "456 Rama IV",
		Notes:         "leaky pipe",
	}
	p := BookingPayloadFrom(b)
	if p.UserName != "Suda" || p.Phone != "0820000000" || p.Service != "plumbing" || p.Notes != "leaky pipe" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}
