package search

// MaxCards caps the card grid regardless of how many results the
// upstream reports.
const MaxCards = 15

// Card is the view model for one tile in the result grid. In
// author-only mode the author's name fills the title slot and
// TopWork/WorkCount carry the secondary lines.
type Card struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	Authors          []string `json:"authors,omitempty"`
	FirstPublishYear int      `json:"first_publish_year,omitempty"`
	CoverURL         string   `json:"cover_url,omitempty"`
	Languages        []string `json:"languages,omitempty"`
	Publishers       []string `json:"publishers,omitempty"`
	TopWork          string   `json:"top_work,omitempty"`
	WorkCount        int      `json:"work_count,omitempty"`
}

type Result struct {
	Cards []Card `json:"cards"`
	Total int    `json:"total"`
}

// Query carries the user's search input. Mode defaults to general
// when empty.
type Query struct {
	Mode string `validate:"omitempty,searchmode"`
	Q    string `validate:"max=200"`
}
