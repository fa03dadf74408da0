package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func newNotifyRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/notify", h.Notify)
	return r
}

func TestNotifyAlwaysSucceeds(t *testing.T) {
	h := newTestHandler()
	r := newNotifyRouter(h)

	// Booking payload with the channel unconfigured: delivery is a no-op
	// but the endpoint still reports success.
	w := doJSON(t, r, http.MethodPost, "/api/notify", gin.H{
		"type": "booking",
		"data": gin.H{"userName": "Somchai", "phone": "0810000000"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if resp := decodeEnvelope(t, w); resp["success"] != true {
		t.Fatalf("expected success true, got %v", resp)
	}

	// Unknown types are logged and ignored, never an error.
	w = doJSON(t, r, http.MethodPost, "/api/notify", gin.H{"type": "fax", "data": gin.H{}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown type, got %d", w.Code)
	}
}

func TestNotifyRejectsMalformedData(t *testing.T) {
	h := newTestHandler()
	r := newNotifyRouter(h)

	w := doJSON(t, r, http.MethodPost, "/api/notify", gin.H{"type": "booking", "data": "not-an-object"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
