package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/api-template/pkg/middleware"
	"github.com/google/uuid"
)

func TestRequestID_Generated(t *testing.T) {
	var captured string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = middleware.GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	wrapped := middleware.RequestID()(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if captured == "" {
		t.Fatal("no request ID in context")
	}

	if _, err := uuid.Parse(captured); err != nil {
		t.Errorf("request ID %q is not a UUID: %v", captured, err)
	}

	if rec.Header().Get(middleware.RequestIDHeader) != captured {
		t.Errorf("response header = %q, want %q", rec.Header().Get(middleware.RequestIDHeader), captured)
	}
}

func TestRequestID_PreservesClientID(t *testing.T) {
	var captured string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = middleware.GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	wrapped := middleware.RequestID()(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if captured != "client-supplied-id" {
		t.Errorf("request ID = %q, want %q", captured, "client-supplied-id")
	}
}

func TestGetRequestID_NotInstalled(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)

	if id := middleware.GetRequestID(req.Context()); id != "" {
		t.Errorf("GetRequestID = %q, want empty string", id)
	}
}
