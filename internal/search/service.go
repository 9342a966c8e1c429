package search

import (
	"context"
	"strings"

	"bookbrowse/internal/platform/openlibrary"
	"bookbrowse/internal/query"
)

type Searcher interface {
	SearchWorks(ctx context.Context, mode openlibrary.SearchMode, q string, limit int) (*openlibrary.WorkSearchResponse, error)
	SearchAuthors(ctx context.Context, q string, limit int) (*openlibrary.AuthorSearchResponse, error)
}

type Service struct {
	client Searcher
	cache  *query.Cache[Result]
}

func NewService(client Searcher, cache *query.Cache[Result]) *Service {
	return &Service{client: client, cache: cache}
}

// Search resolves a query into at most MaxCards cards. An empty or
// whitespace-only query returns an empty result without touching the
// upstream. Responses are cached by mode+query.
func (s *Service) Search(ctx context.Context, q Query) (Result, error) {
	term := strings.TrimSpace(q.Q)
	if term == "" {
		return Result{Cards: []Card{}}, nil
	}

	mode := openlibrary.SearchMode(q.Mode)
	if q.Mode == "" {
		mode = openlibrary.ModeGeneral
	}

	key := string(mode) + "\x00" + term
	return s.cache.Get(ctx, key, func(ctx context.Context) (Result, error) {
		if mode == openlibrary.ModeAuthors {
			return s.searchAuthors(ctx, term)
		}
		return s.searchWorks(ctx, mode, term)
	})
}

func (s *Service) searchWorks(ctx context.Context, mode openlibrary.SearchMode, term string) (Result, error) {
	res, err := s.client.SearchWorks(ctx, mode, term, MaxCards)
	if err != nil {
		return Result{}, err
	}

	docs := res.Docs
	if len(docs) > MaxCards {
		docs = docs[:MaxCards]
	}

	cards := make([]Card, 0, len(docs))
	for _, doc := range docs {
		cards = append(cards, Card{
			Key:              strings.TrimPrefix(doc.Key, "/works/"),
			Title:            doc.Title,
			Authors:          doc.AuthorNames,
			FirstPublishYear: doc.FirstPublishYear,
			CoverURL:         openlibrary.CoverURL(doc.CoverID, openlibrary.CoverMedium),
			Languages:        doc.Language,
			Publishers:       doc.Publisher,
		})
	}
	return Result{Cards: cards, Total: res.NumFound}, nil
}

func (s *Service) searchAuthors(ctx context.Context, term string) (Result, error) {
	res, err := s.client.SearchAuthors(ctx, term, MaxCards)
	if err != nil {
		return Result{}, err
	}

	docs := res.Docs
	if len(docs) > MaxCards {
		docs = docs[:MaxCards]
	}

	cards := make([]Card, 0, len(docs))
	for _, doc := range docs {
		cards = append(cards, Card{
			Key:       doc.Key,
			Title:     doc.Name,
			TopWork:   doc.TopWork,
			WorkCount: doc.WorkCount,
		})
	}
	return Result{Cards: cards, Total: res.NumFound}, nil
}
