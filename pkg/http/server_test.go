package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewServerAppliesTimeouts(t *testing.T) {
	s := NewServer(nil, WithTimeouts(7*time.Second, 13*time.Second, time.Second))

	if got := s.Echo().Server.ReadTimeout; got != 7*time.Second {
		t.Errorf("read timeout = %v, want 7s", got)
	}
	if got := s.Echo().Server.WriteTimeout; got != 13*time.Second {
		t.Errorf("write timeout = %v, want 13s", got)
	}
}

func TestServerHealthRoute(t *testing.T) {
	s := NewServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
