package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/notify"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/store"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/webhook"
)

func newTestHandler() *Handler {
	return &Handler{
		Bookings:    store.NewMemoryBookings(),
		Emergencies: store.NewMemoryEmergencies(),
		Dispatcher:  &notify.Dispatcher{Logger: zerolog.Nop()},
		Responder:   &webhook.Responder{Logger: zerolog.Nop()},
		Validator:   validator.New(),
		Logger:      zerolog.Nop(),
	}
}

func newBookingsRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/bookings", h.BookingsList)
	r.GET("/api/bookings/:id", h.BookingDetails)
	r.POST("/api/bookings", h.BookingCreate)
	r.PUT("/api/bookings", h.BookingUpdateStatus)
	r.DELETE("/api/bookings/:id", h.BookingDelete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestBookingCreateAndList(t *testing.T) {
	h := newTestHandler()
	r := newBookingsRouter(h)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"name":    "Somchai",
		"phone":   "0810000000",
		"service": "aircon",
		"date":    "2024-02-01",
		"time":    "10:00",
		"address": "123 Main",
		"price":   800,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeEnvelope(t, w)
	if resp["success"] != true {
		t.Fatalf("expected success, got %v", resp)
	}
	data := resp["data"].(map[string]any)
	if data["status"] != "pending" {
		t.Fatalf("new booking must be pending, got %v", data["status"])
	}
	id, _ := data["id"].(string)
	if id == "" {
		t.Fatalf("expected non-empty id")
	}

	w = doJSON(t, r, http.MethodGet, "/api/bookings?status=pending", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp = decodeEnvelope(t, w)
	if resp["total"] != float64(1) {
		t.Fatalf("expected total 1, got %v", resp["total"])
	}
	items := resp["data"].([]any)
	if items[0].(map[string]any)["id"] != id {
		t.Fatalf("created booking missing from pending list")
	}

	w = doJSON(t, r, http.MethodGet, "/api/bookings/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for details, got %d", w.Code)
	}
}

func TestBookingCreateValidation(t *testing.T) {
	h := newTestHandler()
	r := newBookingsRouter(h)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{"name": "Somchai"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on missing fields, got %d", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp["success"] != false {
		t.Fatalf("expected success false, got %v", resp)
	}
}

func TestBookingUpdateStatus(t *testing.T) {
	h := newTestHandler()
	r := newBookingsRouter(h)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"name": "Somchai", "phone": "0810000000", "service": "aircon",
		"date": "2024-02-01", "time": "10:00", "address": "123 Main",
	})
	id := decodeEnvelope(t, w)["data"].(map[string]any)["id"].(string)

	w = doJSON(t, r, http.MethodPut, "/api/bookings", gin.H{"id": id, "status": "confirmed"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := decodeEnvelope(t, w)["data"].(map[string]any)
	if data["status"] != "confirmed" {
		t.Fatalf("expected confirmed, got %v", data["status"])
	}

	w = doJSON(t, r, http.MethodPut, "/api/bookings", gin.H{"id": id, "status": "shipped"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown status must be rejected, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/bookings", gin.H{"id": "missing", "status": "confirmed"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing id, got %d", w.Code)
	}
	if resp := decodeEnvelope(t, w); resp["success"] != false {
		t.Fatalf("expected success false on 404, got %v", resp)
	}
}

func TestBookingDelete(t *testing.T) {
	h := newTestHandler()
	r := newBookingsRouter(h)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"name": "Somchai", "phone": "0810000000", "service": "aircon",
		"date": "2024-02-01", "time": "10:00", "address": "123 Main",
	})
	id := decodeEnvelope(t, w)["data"].(map[string]any)["id"].(string)

	w = doJSON(t, r, http.MethodDelete, "/api/bookings/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/bookings/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete must 404, got %d", w.Code)
	}
}
