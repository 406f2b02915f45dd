package service

import (
	"log/slog"
	"strings"
)

// LoginService is a placeholder gate in front of the storefront.
// Any non-empty email and password pass; there are no credentials or sessions.
type LoginService struct {
	log *slog.Logger
}

func NewLoginService(log *slog.Logger) *LoginService {
	return &LoginService{log: log}
}

// Login accepts any non-empty email and password
func (s *LoginService) Login(email, password string) error {
	var missing []string
	if strings.TrimSpace(email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(password) == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return newValidationError("missing required fields", missing...)
	}

	s.log.Info("login accepted", "email", email)
	return nil
}
