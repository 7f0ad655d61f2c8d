package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rolandaayo/Astral-cu/internal/middleware"
	"github.com/rolandaayo/Astral-cu/internal/repository"
	"github.com/rolandaayo/Astral-cu/internal/security"
)

// RouterDeps carries the cross-cutting pieces the router wires around
// the handlers.
type RouterDeps struct {
	Tokens              *security.TokenManager
	Users               repository.UserRepository
	Store               middleware.Pinger
	Limiter             middleware.Limiter
	RateLimit           int
	RateWindow          time.Duration
	VerificationEnabled bool
	Logger              *slog.Logger
}

// NewRouter assembles the full route table.
func NewRouter(h *Handler, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", h.Health)

	authenticate := middleware.Authenticate(deps.Tokens, deps.Logger)
	requireAdmin := middleware.RequireAdmin(deps.Users, deps.Logger)
	storeReady := middleware.StoreReady(deps.Store, deps.Logger)
	rateLimit := middleware.RateLimit(deps.Limiter, deps.RateLimit, deps.RateWindow, deps.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(storeReady)

		// Unauthenticated routes, rate limited per client IP.
		r.Group(func(r chi.Router) {
			r.Use(rateLimit)

			r.Post("/login", h.Login)
			r.Post("/signup", h.Signup(deps.VerificationEnabled))
			r.Post("/auth/send-verification", h.SendVerification)
			r.Post("/auth/verify-email", h.VerifyEmail)
			r.Post("/auth/resend-verification", h.ResendVerification)
		})

		// Authenticated member routes.
		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/users/me", h.Me)

			r.Post("/messages", h.SendMessage)
			r.Get("/messages/conversation", h.GetConversation)
			r.Get("/messages/unread-count", h.UnreadCount)

			// Admin-only routes.
			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)

				r.Get("/users", h.ListUsers)
				r.Get("/users/{userID}", h.GetUser)
				r.Put("/users/{userID}/balance", h.UpdateBalance)
				r.Delete("/users/{userID}", h.DeleteUser)

				r.Post("/admin/topup", h.TriggerTopUp)
				r.Get("/admin/topup-status", h.TopUpStatus)
				r.Get("/admin/topup-details", h.TopUpDetails)

				r.Get("/messages/conversation/{targetUserID}", h.GetConversation)
				r.Get("/messages/conversations", h.GetAllConversations)
			})
		})
	})

	return r
}
