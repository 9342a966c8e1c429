package search

import (
	"net/http"

	"bookbrowse/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Search handles GET /v1/search
// @Summary Search Open Library
// @Description Search works or authors by mode (general, title, author, authors)
// @Tags search
// @Produce json
// @Param mode query string false "Query mode" default(general)
// @Param q query string false "Search string"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /v1/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := Query{
		Mode: r.URL.Query().Get("mode"),
		Q:    r.URL.Query().Get("q"),
	}

	if details := httpx.ValidateStruct(params); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid search parameters", details)
		return
	}

	res, err := h.svc.Search(r.Context(), params)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to fetch search results", nil)
		return
	}

	httpx.JSONSuccess(w, r, res.Cards, map[string]any{
		"total": res.Total,
		"count": len(res.Cards),
	})
}
