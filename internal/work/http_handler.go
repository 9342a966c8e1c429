package work

import (
	"errors"
	"net/http"

	"bookbrowse/internal/httpx"
	"bookbrowse/internal/platform/openlibrary"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// GetDetail handles GET /v1/works/{id}
// @Summary Get work detail
// @Description Retrieve a work with its resolved author records
// @Tags works
// @Produce json
// @Param id path string true "Work ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/works/{id} [get]
func (h *HTTPHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Work ID is required", nil)
		return
	}

	detail, err := h.svc.GetDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, openlibrary.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Work not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to fetch work", nil)
		return
	}

	httpx.JSONSuccess(w, r, detail, nil)
}
