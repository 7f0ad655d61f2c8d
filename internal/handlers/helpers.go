package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rolandaayo/Astral-cu/internal/models"
	"github.com/rolandaayo/Astral-cu/internal/service"
)

// userView is the wire representation of a user record, password excluded.
type userView struct {
	ID            uuid.UUID             `json:"id"`
	Email         string                `json:"email"`
	Name          string                `json:"name"`
	PhoneNumber   string                `json:"phoneNumber"`
	SSN           string                `json:"ssn"`
	AccountNumber string                `json:"accountNumber"`
	RoutingNumber string                `json:"routingNumber"`
	Role          models.Role           `json:"role"`
	Balance       float64               `json:"balance"`
	EmailVerified bool                  `json:"isEmailVerified"`
	Crypto        models.CryptoBalances `json:"cryptoBalances"`
	LastTopUp     *time.Time            `json:"lastTopUp"`
}

func newUserView(u *models.User) userView {
	return userView{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		PhoneNumber:   u.PhoneNumber,
		SSN:           u.SSN,
		AccountNumber: u.AccountNumber,
		RoutingNumber: u.RoutingNumber,
		Role:          u.Role,
		Balance:       u.BalanceDollars(),
		EmailVerified: u.EmailVerified,
		Crypto:        u.Crypto,
		LastTopUp:     u.LastTopUp,
	}
}

func newUserViews(users []*models.User) []userView {
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}
	return views
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeErrorCode(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeServiceError maps a service error to its HTTP status. Unknown errors
// are logged and surface as 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var svcErr *service.ServiceError
	if !errors.As(err, &svcErr) {
		h.logger.Error("unexpected error", "error", err)
		h.writeErrorCode(w, http.StatusInternalServerError, service.ErrCodeInternalError, "internal error")
		return
	}

	h.logger.Error("request failed", "code", svcErr.Code, "error", svcErr)
	h.writeErrorCode(w, statusForCode(svcErr.Code), svcErr.Code, svcErr.Message)
}

func statusForCode(code string) int {
	switch code {
	case service.ErrCodeNotFound:
		return http.StatusNotFound
	case service.ErrCodeConflict, service.ErrCodeAlreadyVerified:
		return http.StatusConflict
	case service.ErrCodeValidation, service.ErrCodeInvalidCode, service.ErrCodeCodeExpired:
		return http.StatusBadRequest
	case service.ErrCodeForbidden, service.ErrCodeEmailUnverified:
		return http.StatusForbidden
	case service.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case service.ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	case service.ErrCodeDeliveryFailed, service.ErrCodeConfig, service.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
