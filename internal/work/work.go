package work

// Fallback text rendered when the upstream omits a description or
// biography.
const (
	DescriptionFallback = "No description available."
	BiographyFallback   = "No biography available."
)

type Author struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date,omitempty"`
	DeathDate string `json:"death_date,omitempty"`
	Bio       string `json:"bio"`
}

// Detail is the view model for the work detail page.
type Detail struct {
	Key            string   `json:"key"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	CoverURL       string   `json:"cover_url,omitempty"`
	Subjects       []string `json:"subjects,omitempty"`
	Pages          int      `json:"pages,omitempty"`
	Publishers     []string `json:"publishers,omitempty"`
	PhysicalFormat string   `json:"physical_format,omitempty"`
	ISBN13         []string `json:"isbn_13,omitempty"`
	Authors        []Author `json:"authors,omitempty"`
}
