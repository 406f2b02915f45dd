package handlers

import (
	"net/http"
	"testing"
)

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "any credentials accepted",
			body:           LoginRequest{Email: "guest@example.com", Password: "anything"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing password",
			body:           LoginRequest{Email: "guest@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing both",
			body:           LoginRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           "nope",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, _ := newTestServer(t)

			w := doRequest(t, router, http.MethodPost, "/api/login", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}
