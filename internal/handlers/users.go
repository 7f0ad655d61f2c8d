package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rolandaayo/Astral-cu/internal/middleware"
	"github.com/rolandaayo/Astral-cu/internal/service"
)

type balanceUpdateRequest struct {
	Balance       *float64 `json:"balance"`
	CryptoType    string   `json:"cryptoType"`
	CryptoBalance *float64 `json:"cryptoBalance"`
}

// Me handles GET /api/users/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		h.writeErrorCode(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	user, err := h.userService.Me(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, newUserView(user))
}

// ListUsers handles GET /api/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, newUserViews(users))
}

// GetUser handles GET /api/users/{userID}
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r)
	if !ok {
		return
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, newUserView(user))
}

// UpdateBalance handles PUT /api/users/{userID}/balance
func (h *Handler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r)
	if !ok {
		return
	}

	var req balanceUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, service.ErrCodeValidation, "invalid request body")
		return
	}

	user, err := h.userService.SetBalance(r.Context(), userID, service.BalanceUpdate{
		Balance:       req.Balance,
		CryptoType:    req.CryptoType,
		CryptoBalance: req.CryptoBalance,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Balance updated successfully",
		"user":    newUserView(user),
	})
}

// DeleteUser handles DELETE /api/users/{userID}
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r)
	if !ok {
		return
	}

	if err := h.userService.Delete(r.Context(), userID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "User deleted successfully",
	})
}

func (h *Handler) pathUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		h.writeErrorCode(w, http.StatusNotFound, service.ErrCodeNotFound, "user not found")
		return uuid.Nil, false
	}
	return userID, true
}
