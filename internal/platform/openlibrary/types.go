package openlibrary

// SearchMode selects which upstream search field a query string is
// matched against.
type SearchMode string

const (
	ModeGeneral SearchMode = "general"
	ModeTitle   SearchMode = "title"
	ModeAuthor  SearchMode = "author"
	ModeAuthors SearchMode = "authors" // author records, not works
)

func (m SearchMode) Valid() bool {
	switch m {
	case ModeGeneral, ModeTitle, ModeAuthor, ModeAuthors:
		return true
	}
	return false
}

// WorkSearchResponse matches search.json
type WorkSearchResponse struct {
	NumFound int       `json:"numFound"`
	Docs     []WorkDoc `json:"docs"`
}

type WorkDoc struct {
	Key              string   `json:"key"` // "/works/OL...W"
	Title            string   `json:"title"`
	AuthorNames      []string `json:"author_name"`
	AuthorKeys       []string `json:"author_key"`
	CoverID          int      `json:"cover_i"`
	FirstPublishYear int      `json:"first_publish_year"`
	Language         []string `json:"language"`
	Publisher        []string `json:"publisher"`
}

// AuthorSearchResponse matches search/authors.json
type AuthorSearchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []AuthorDoc `json:"docs"`
}

type AuthorDoc struct {
	Key       string `json:"key"` // "OL...A", no path prefix
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	TopWork   string `json:"top_work"`
	WorkCount int    `json:"work_count"`
}

// Work matches works/{id}.json
type Work struct {
	Key         string      `json:"key"`
	Title       string      `json:"title"`
	Description interface{} `json:"description"` // Can be string or {type: ..., value: ...}
	Covers      []int       `json:"covers"`
	Subjects    []string    `json:"subjects"`
	Authors     []struct {
		Author struct {
			Key string `json:"key"` // "/authors/OL...A"
		} `json:"author"`
	} `json:"authors"`
	NumberOfPages  int      `json:"number_of_pages"`
	Publishers     []string `json:"publishers"`
	PhysicalFormat string   `json:"physical_format"`
	ISBN13         []string `json:"isbn_13"`
}

// AuthorKeys returns the bare author keys referenced by the work,
// stripped of the "/authors/" path prefix.
func (w *Work) AuthorKeys() []string {
	if len(w.Authors) == 0 {
		return nil
	}
	keys := make([]string, 0, len(w.Authors))
	for _, ref := range w.Authors {
		if ref.Author.Key == "" {
			continue
		}
		keys = append(keys, trimAuthorPrefix(ref.Author.Key))
	}
	return keys
}

// Author matches authors/{key}.json
type Author struct {
	Key       string      `json:"key"`
	Name      string      `json:"name"`
	BirthDate string      `json:"birth_date"`
	DeathDate string      `json:"death_date"`
	Bio       interface{} `json:"bio"` // Can be string or {type: ..., value: ...}
	Photos    []int       `json:"photos"`
}

// TextValue flattens the inconsistent description/bio shape: the
// upstream returns either a plain string or a wrapper object whose
// "value" field holds the text. Anything else yields "".
func TextValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	if m, ok := v.(map[string]interface{}); ok {
		if s, ok := m["value"].(string); ok {
			return s
		}
	}
	return ""
}
