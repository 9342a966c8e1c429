package openlibrary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ErrNotFound is returned when the upstream answers 404 for a lookup.
var ErrNotFound = errors.New("openlibrary: not found")

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(baseURL, userAgent string, rps int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: userAgent,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		limiter:   rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// searchFields keeps work-search payloads small; the card grid only
// needs these.
const searchFields = "key,title,author_name,author_key,cover_i,first_publish_year,language,publisher"

// SearchURL builds the one GET URL a mode/query pair maps to. The
// query string is percent-encoded. ModeAuthors targets the author
// search endpoint; every other mode targets work search with the
// query bound to the mode's field.
func (c *Client) SearchURL(mode SearchMode, q string, limit int) string {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	if mode == ModeAuthors {
		params.Set("q", q)
		return c.baseURL + "/search/authors.json?" + params.Encode()
	}

	params.Set("fields", searchFields)
	switch mode {
	case ModeTitle:
		params.Set("title", q)
	case ModeAuthor:
		params.Set("author", q)
	default:
		params.Set("q", q)
	}
	return c.baseURL + "/search.json?" + params.Encode()
}

func (c *Client) SearchWorks(ctx context.Context, mode SearchMode, q string, limit int) (*WorkSearchResponse, error) {
	var res WorkSearchResponse
	if err := c.get(ctx, c.SearchURL(mode, q, limit), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) SearchAuthors(ctx context.Context, q string, limit int) (*AuthorSearchResponse, error) {
	var res AuthorSearchResponse
	if err := c.get(ctx, c.SearchURL(ModeAuthors, q, limit), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetWork(ctx context.Context, workID string) (*Work, error) {
	// workID is usually "/works/OL...W" or just "OL...W"
	id := strings.TrimPrefix(workID, "/works/")
	u := fmt.Sprintf("%s/works/%s.json", c.baseURL, url.PathEscape(id))

	var res Work
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetAuthor(ctx context.Context, authorKey string) (*Author, error) {
	key := trimAuthorPrefix(authorKey)
	u := fmt.Sprintf("%s/authors/%s.json", c.baseURL, url.PathEscape(key))

	var res Author
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Ping reports whether the upstream is reachable. Used by readiness
// probes.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/search.json?q=ping&limit=0", nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}

func trimAuthorPrefix(key string) string {
	return strings.TrimPrefix(key, "/authors/")
}
