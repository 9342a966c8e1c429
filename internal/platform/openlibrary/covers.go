package openlibrary

import "fmt"

// CoverSize is the size code accepted by the cover image host.
type CoverSize string

const (
	CoverSmall  CoverSize = "S"
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

const coversBaseURL = "https://covers.openlibrary.org"

// CoverURL builds the predictable image URL for a numeric cover id.
// A missing cover id yields "", which the view layer renders as no
// image.
func CoverURL(coverID int, size CoverSize) string {
	if coverID <= 0 {
		return ""
	}
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", coversBaseURL, coverID, size)
}
