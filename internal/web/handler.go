// Package web serves the HTML surface: the search page with its card
// grid and the work detail page.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"

	"bookbrowse/internal/platform/openlibrary"
	"bookbrowse/internal/search"
	"bookbrowse/internal/work"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type SearchService interface {
	Search(ctx context.Context, q search.Query) (search.Result, error)
}

type WorkService interface {
	GetDetail(ctx context.Context, workID string) (work.Detail, error)
}

type Handler struct {
	searchSvc SearchService
	workSvc   WorkService
}

func NewHandler(searchSvc SearchService, workSvc WorkService) *Handler {
	return &Handler{searchSvc: searchSvc, workSvc: workSvc}
}

type searchPage struct {
	Mode   string
	Q      string
	Cards  []search.Card
	Total  int
	Failed bool
}

type workPage struct {
	Detail work.Detail
}

type errorPage struct {
	Message string
}

// Index handles GET /{$}, the search page. An empty query renders an
// empty grid; a failed upstream fetch renders an inline error instead
// of replacing the page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if !openlibrary.SearchMode(mode).Valid() {
		mode = string(openlibrary.ModeGeneral)
	}

	page := searchPage{
		Mode: mode,
		Q:    r.URL.Query().Get("q"),
	}

	res, err := h.searchSvc.Search(r.Context(), search.Query{Mode: mode, Q: page.Q})
	if err != nil {
		page.Failed = true
	} else {
		page.Cards = res.Cards
		page.Total = res.Total
	}

	h.render(w, http.StatusOK, "search.tmpl", page)
}

// WorkDetail handles GET /works/{id}.
func (h *Handler) WorkDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	detail, err := h.workSvc.GetDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, openlibrary.ErrNotFound) {
			h.render(w, http.StatusNotFound, "error.tmpl", errorPage{Message: "Book not found."})
			return
		}
		h.render(w, http.StatusBadGateway, "error.tmpl", errorPage{Message: "Failed to fetch this book."})
		return
	}

	h.render(w, http.StatusOK, "work.tmpl", workPage{Detail: detail})
}

// render executes into a buffer first so a template failure does not
// leave a half-written page behind a 200.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
