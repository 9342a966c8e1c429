package work

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"bookbrowse/internal/platform/openlibrary"
	"bookbrowse/internal/query"
)

type Client interface {
	GetWork(ctx context.Context, workID string) (*openlibrary.Work, error)
	GetAuthor(ctx context.Context, authorKey string) (*openlibrary.Author, error)
}

type Service struct {
	client  Client
	works   *query.Cache[Detail]
	authors *query.Cache[Author]
}

func NewService(client Client, works *query.Cache[Detail], authors *query.Cache[Author]) *Service {
	return &Service{client: client, works: works, authors: authors}
}

// GetDetail resolves a work and every author it references. Author
// lookups run in parallel once the work record resolves; if any one
// fails the whole detail fails.
func (s *Service) GetDetail(ctx context.Context, workID string) (Detail, error) {
	id := strings.TrimPrefix(workID, "/works/")
	return s.works.Get(ctx, "work:"+id, func(ctx context.Context) (Detail, error) {
		return s.fetchDetail(ctx, id)
	})
}

func (s *Service) fetchDetail(ctx context.Context, workID string) (Detail, error) {
	w, err := s.client.GetWork(ctx, workID)
	if err != nil {
		return Detail{}, err
	}

	detail := Detail{
		Key:            workID,
		Title:          w.Title,
		Description:    textOr(w.Description, DescriptionFallback),
		Subjects:       w.Subjects,
		Pages:          w.NumberOfPages,
		Publishers:     w.Publishers,
		PhysicalFormat: w.PhysicalFormat,
		ISBN13:         w.ISBN13,
	}
	if len(w.Covers) > 0 {
		detail.CoverURL = openlibrary.CoverURL(w.Covers[0], openlibrary.CoverLarge)
	}

	keys := w.AuthorKeys()
	if len(keys) == 0 {
		return detail, nil
	}

	authors := make([]Author, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			a, err := s.getAuthor(gctx, key)
			if err != nil {
				return err
			}
			authors[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Detail{}, err
	}

	detail.Authors = authors
	return detail, nil
}

func (s *Service) getAuthor(ctx context.Context, key string) (Author, error) {
	return s.authors.Get(ctx, "author:"+key, func(ctx context.Context) (Author, error) {
		a, err := s.client.GetAuthor(ctx, key)
		if err != nil {
			return Author{}, err
		}
		return Author{
			Key:       key,
			Name:      a.Name,
			BirthDate: a.BirthDate,
			DeathDate: a.DeathDate,
			Bio:       textOr(a.Bio, BiographyFallback),
		}, nil
	})
}

func textOr(v interface{}, fallback string) string {
	if s := openlibrary.TextValue(v); s != "" {
		return s
	}
	return fallback
}
