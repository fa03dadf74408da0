package notify

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/line"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/metrics"
)

func TestDeliverSkipsWhenUnconfigured(t *testing.T) {
	d := &Dispatcher{Logger: zerolog.Nop()}
	if err := d.Deliver(KindBooking, line.NewTextMessage("hi")); err != nil {
		t.Fatalf("unconfigured channel must be a no-op, got %v", err)
	}
}

func TestDeliverCountsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := metrics.New(prometheus.NewRegistry())
	d := &Dispatcher{
		Client:    &line.Client{BaseURL: srv.URL, Token: "test-token"},
		Recipient: "U123",
		Logger:    zerolog.Nop(),
		Metrics:   m,
	}
	if err := d.Deliver(KindBooking, line.NewTextMessage("hi")); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if got := testutil.ToFloat64(m.NotificationsSent.WithLabelValues(KindBooking)); got != 1 {
		t.Fatalf("expected 1 sent, got %v", got)
	}
}

func TestDeliverCountsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := metrics.New(prometheus.NewRegistry())
	d := &Dispatcher{
		Client:    &line.Client{BaseURL: srv.URL, Token: "test-token"},
		Recipient: "U123",
		Logger:    zerolog.Nop(),
		Metrics:   m,
	}
	if err := d.Deliver(KindEmergency, line.NewTextMessage("hi")); err == nil {
		t.Fatalf("expected delivery error")
	}
	if got := testutil.ToFloat64(m.NotificationsFailed.WithLabelValues(KindEmergency)); got != 1 {
		t.Fatalf("expected 1 failed, got %v", got)
	}
}

func TestDeliverTimeout(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	d := &Dispatcher{
		Client:    &line.Client{BaseURL: srv.URL, Token: "test-token"},
		Recipient: "U123",
		Timeout:   20 * time.Millisecond,
		Logger:    zerolog.Nop(),
	}
	if err := d.Deliver(KindBooking, line.NewTextMessage("hi")); err == nil {
		t.Fatalf("expected timeout error")
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("expected exactly one attempt, no retry")
	}
}
