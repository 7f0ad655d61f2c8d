package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/rolandaayo/Astral-cu/internal/service"
	"github.com/rolandaayo/Astral-cu/internal/storage"
)

// maxSignupFormMemory bounds in-memory buffering of the multipart signup
// body; larger image parts spill to temp files.
const maxSignupFormMemory = 16 << 20

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type verifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// Login handles POST /api/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, service.ErrCodeValidation, "invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var svcErr *service.ServiceError
		if errors.As(err, &svcErr) && svcErr.Code == service.ErrCodeEmailUnverified {
			h.writeJSON(w, http.StatusForbidden, map[string]any{
				"error":             svcErr.Code,
				"message":           svcErr.Message,
				"needsVerification": true,
			})
			return
		}
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   result.Token,
		"user":    newUserView(result.User),
	})
}

// Signup handles POST /api/signup (multipart). With verification enabled it
// creates a pending record and emails a code; otherwise it creates the user
// directly and returns a session token.
func (h *Handler) Signup(verificationEnabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, cleanup, err := parseSignupForm(r)
		defer cleanup()
		if err != nil {
			h.writeErrorCode(w, http.StatusBadRequest, service.ErrCodeValidation, err.Error())
			return
		}

		if verificationEnabled {
			result, err := h.verifyService.InitiateSignup(r.Context(), *req)
			if err != nil {
				h.writeServiceError(w, err)
				return
			}
			h.writeJSON(w, http.StatusCreated, map[string]any{
				"message":           "Signup initiated, please verify your email",
				"needsVerification": result.NeedsVerification,
				"email":             result.Email,
				"codeExpiresAt":     result.CodeExpiresAt,
			})
			return
		}

		result, err := h.verifyService.DirectSignup(r.Context(), *req)
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		h.writeJSON(w, http.StatusCreated, map[string]any{
			"message": "Signup successful",
			"token":   result.Token,
			"user":    newUserView(result.User),
		})
	}
}

// SendVerification handles POST /api/auth/send-verification
func (h *Handler) SendVerification(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, service.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.verifyService.SendCode(r.Context(), req.Email); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Verification email sent successfully",
		"success": true,
	})
}

// VerifyEmail handles POST /api/auth/verify-email
func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req verifyEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, service.ErrCodeValidation, "invalid request body")
		return
	}

	result, err := h.verifyService.Confirm(r.Context(), req.Email, req.Code)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Email verified successfully! Account created.",
		"success": true,
		"token":   result.Token,
		"user":    newUserView(result.User),
	})
}

// ResendVerification handles POST /api/auth/resend-verification
func (h *Handler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeErrorCode(w, http.StatusBadRequest, service.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.verifyService.ResendCode(r.Context(), req.Email); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Verification code resent successfully",
		"success": true,
	})
}

// parseSignupForm decodes the multipart signup body. The returned cleanup
// closes both image handles and removes any parts spilled to temp files; it
// runs on every path, including parse errors.
func parseSignupForm(r *http.Request) (*service.SignupRequest, func(), error) {
	if err := r.ParseMultipartForm(maxSignupFormMemory); err != nil {
		return nil, func() {}, errors.New("invalid multipart form")
	}

	req := &service.SignupRequest{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		PhoneNumber: r.FormValue("phoneNumber"),
		SSN:         r.FormValue("ssn"),
		Password:    r.FormValue("password"),
	}

	cleanup := func() {
		closeUpload(req.FrontID)
		closeUpload(req.BackID)
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}

	front, err := formUpload(r, "frontIdImage")
	if err != nil {
		return nil, cleanup, err
	}
	req.FrontID = front

	back, err := formUpload(r, "backIdImage")
	if err != nil {
		return nil, cleanup, err
	}
	req.BackID = back

	return req, cleanup, nil
}

func closeUpload(up storage.Upload) {
	if closer, ok := up.Reader.(io.Closer); ok {
		_ = closer.Close()
	}
}

func formUpload(r *http.Request, field string) (storage.Upload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return storage.Upload{}, errors.New("both front and back ID images are required")
		}
		return storage.Upload{}, errors.New("invalid " + field + " upload")
	}

	return storage.Upload{
		Reader:      file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}
