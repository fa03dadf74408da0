package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAdminRouter(key string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AdminKey(key))
	r.PUT("/bookings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func doAdminPut(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPut, "/bookings", nil)
	if key != "" {
		req.Header.Set("X-Admin-Key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminKeyRequired(t *testing.T) {
	r := newAdminRouter("topsecret")

	if w := doAdminPut(r, "topsecret"); w.Code != http.StatusOK {
		t.Fatalf("correct key must pass, got %d", w.Code)
	}
	if w := doAdminPut(r, "wrong"); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong key must be rejected, got %d", w.Code)
	}
	if w := doAdminPut(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing key must be rejected, got %d", w.Code)
	}
}

func TestAdminKeyPassThroughWhenUnset(t *testing.T) {
	r := newAdminRouter("")

	if w := doAdminPut(r, ""); w.Code != http.StatusOK {
		t.Fatalf("unset key must disable the check, got %d", w.Code)
	}
}
