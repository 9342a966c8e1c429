package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookbrowse/internal/platform/openlibrary"
	"bookbrowse/internal/search"
	"bookbrowse/internal/work"
)

type stubSearch struct {
	res   search.Result
	err   error
	calls int
	lastQ search.Query
}

func (s *stubSearch) Search(ctx context.Context, q search.Query) (search.Result, error) {
	s.calls++
	s.lastQ = q
	return s.res, s.err
}

type stubWork struct {
	detail work.Detail
	err    error
}

func (s *stubWork) GetDetail(ctx context.Context, workID string) (work.Detail, error) {
	return s.detail, s.err
}

func TestIndex(t *testing.T) {
	t.Run("renders cards", func(t *testing.T) {
		searchSvc := &stubSearch{res: search.Result{
			Total: 2,
			Cards: []search.Card{
				{Key: "OL1W", Title: "The Hobbit", Authors: []string{"J.R.R. Tolkien"}, FirstPublishYear: 1937},
				{Key: "OL2W", Title: "The Silmarillion"},
			},
		}}
		h := NewHandler(searchSvc, &stubWork{})

		w := httptest.NewRecorder()
		h.Index(w, httptest.NewRequest(http.MethodGet, "/?mode=title&q=tolkien", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "The Hobbit")
		assert.Contains(t, body, "The Silmarillion")
		assert.Contains(t, body, `href="/works/OL1W"`)
		assert.Contains(t, body, "J.R.R. Tolkien")
	})

	t.Run("empty query renders empty grid", func(t *testing.T) {
		searchSvc := &stubSearch{res: search.Result{Cards: []search.Card{}}}
		h := NewHandler(searchSvc, &stubWork{})

		w := httptest.NewRecorder()
		h.Index(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "class=\"card\"")
	})

	t.Run("invalid mode falls back to general", func(t *testing.T) {
		searchSvc := &stubSearch{}
		h := NewHandler(searchSvc, &stubWork{})

		w := httptest.NewRecorder()
		h.Index(w, httptest.NewRequest(http.MethodGet, "/?mode=bogus&q=x", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, string(openlibrary.ModeGeneral), searchSvc.lastQ.Mode)
	})

	t.Run("upstream failure renders inline error", func(t *testing.T) {
		searchSvc := &stubSearch{err: errors.New("boom")}
		h := NewHandler(searchSvc, &stubWork{})

		w := httptest.NewRecorder()
		h.Index(w, httptest.NewRequest(http.MethodGet, "/?q=x", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to fetch results")
	})
}

func TestWorkDetail(t *testing.T) {
	t.Run("renders detail with authors", func(t *testing.T) {
		workSvc := &stubWork{detail: work.Detail{
			Key:         "OL1W",
			Title:       "The Hobbit",
			Description: "A hole in the ground.",
			Subjects:    []string{"Fantasy"},
			Authors: []work.Author{
				{Name: "J.R.R. Tolkien", BirthDate: "3 January 1892", Bio: "Philologist."},
			},
		}}
		h := NewHandler(&stubSearch{}, workSvc)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/works/OL1W", nil)
		r.SetPathValue("id", "OL1W")
		h.WorkDetail(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "The Hobbit")
		assert.Contains(t, body, "A hole in the ground.")
		assert.Contains(t, body, "J.R.R. Tolkien")
		assert.Contains(t, body, "Fantasy")
	})

	t.Run("not found renders error page with back link", func(t *testing.T) {
		h := NewHandler(&stubSearch{}, &stubWork{err: openlibrary.ErrNotFound})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/works/OLnopeW", nil)
		r.SetPathValue("id", "OLnopeW")
		h.WorkDetail(w, r)

		require.Equal(t, http.StatusNotFound, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Book not found.")
		assert.Contains(t, body, `href="/"`)
	})

	t.Run("upstream failure renders fetch error page", func(t *testing.T) {
		h := NewHandler(&stubSearch{}, &stubWork{err: errors.New("boom")})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/works/OL1W", nil)
		r.SetPathValue("id", "OL1W")
		h.WorkDetail(w, r)

		require.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to fetch this book.")
	})
}
