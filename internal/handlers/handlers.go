// Package handlers implements HTTP handlers for the credit-union API.
package handlers

import (
	"log/slog"

	"github.com/rolandaayo/Astral-cu/internal/service"
)

// Handler holds the service dependencies for all endpoints
type Handler struct {
	authService    service.Authenticator
	verifyService  service.Verifier
	topUpService   service.TopUpRunner
	messageService service.Messenger
	userService    service.UserAdmin
	healthChecker  service.HealthChecker
	logger         *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	authService service.Authenticator,
	verifyService service.Verifier,
	topUpService service.TopUpRunner,
	messageService service.Messenger,
	userService service.UserAdmin,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		authService:    authService,
		verifyService:  verifyService,
		topUpService:   topUpService,
		messageService: messageService,
		userService:    userService,
		healthChecker:  healthChecker,
		logger:         logger,
	}
}
