package handlers

import "net/http"

// TriggerTopUp handles POST /api/admin/topup/run
func (h *Handler) TriggerTopUp(w http.ResponseWriter, r *http.Request) {
	summary, err := h.topUpService.Run(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Top-up completed",
		"result":  summary,
	})
}

// TopUpStatus handles GET /api/admin/topup/status
func (h *Handler) TopUpStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.topUpService.Status(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, status)
}

// TopUpDetails handles GET /api/admin/topup/details
func (h *Handler) TopUpDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.topUpService.Details(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, details)
}
