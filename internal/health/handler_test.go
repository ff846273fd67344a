package health_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/JaimeStill/api-template/internal/health"
	"github.com/JaimeStill/api-template/internal/lifecycle"
	"github.com/JaimeStill/api-template/internal/routes"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func buildHandler(lc *lifecycle.Coordinator) http.Handler {
	r := routes.New(testLogger())
	r.RegisterGroup(health.NewHandler("1.2.3", lc).Routes())
	return r.Build()
}

func TestHealth_OK(t *testing.T) {
	handler := buildHandler(lifecycle.New())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body health.Response
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if body.Status != "ok" {
		t.Errorf("status = %q, want %q", body.Status, "ok")
	}
	if body.Version != "1.2.3" {
		t.Errorf("version = %q, want %q", body.Version, "1.2.3")
	}
	if body.Timestamp.IsZero() {
		t.Error("timestamp is zero")
	}
}

func TestReadiness_NotReady(t *testing.T) {
	handler := buildHandler(lifecycle.New())

	req := httptest.NewRequest("GET", "/readyz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestReadiness_Ready(t *testing.T) {
	lc := lifecycle.New()
	lc.WaitForStartup()

	handler := buildHandler(lc)

	req := httptest.NewRequest("GET", "/readyz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestSchemas_MatchOperations(t *testing.T) {
	schemas := health.Schemas()

	if _, ok := schemas["HealthResponse"]; !ok {
		t.Error("missing HealthResponse schema")
	}
}
