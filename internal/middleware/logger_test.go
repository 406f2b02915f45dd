package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Lixing-Zhang/meal-storefront/pkg/logger"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel string
	}{
		{name: "success", status: http.StatusOK, expectedLevel: "INFO"},
		{name: "no content", status: http.StatusNoContent, expectedLevel: "INFO"},
		{name: "client error", status: http.StatusBadRequest, expectedLevel: "WARN"},
		{name: "server error", status: http.StatusInternalServerError, expectedLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.NewWithWriter(&buf, "debug")

			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			handler := chimiddleware.RequestID(Logger(log)(testHandler))

			req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
			}

			if entry["level"] != tt.expectedLevel {
				t.Errorf("level = %v, want %s", entry["level"], tt.expectedLevel)
			}
			if entry["path"] != "/api/menu" {
				t.Errorf("path = %v, want /api/menu", entry["path"])
			}
			if int(entry["status"].(float64)) != tt.status {
				t.Errorf("logged status = %v, want %d", entry["status"], tt.status)
			}
			if entry["request_id"] == "" {
				t.Error("expected request_id to be logged")
			}
		})
	}
}

func TestLogger_DefaultStatusIsOK(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info")

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	Logger(log)(testHandler).ServeHTTP(w, req)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log line: %v", err)
	}
	if int(entry["status"].(float64)) != http.StatusOK {
		t.Errorf("logged status = %v, want 200", entry["status"])
	}
}
