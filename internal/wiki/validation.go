package wiki

import "github.com/isaachansen/osrs-companion/internal/oserr"

// MaxQueryLength is the maximum allowed search query length
const MaxQueryLength = 300

// MaxTitleLength is the maximum allowed page title length
const MaxTitleLength = 255

// ValidateQuery validates a search query.
func ValidateQuery(query string) error {
	if query == "" {
		return oserr.NewValidationError("query", "", "search query is required")
	}
	if len(query) > MaxQueryLength {
		return oserr.NewValidationError("query", query[:50]+"...", "search query is too long")
	}
	return nil
}

// ValidateTitle validates a page title.
func ValidateTitle(title string) error {
	if title == "" {
		return oserr.NewValidationError("title", "", "page title is required")
	}
	if len(title) > MaxTitleLength {
		return oserr.NewValidationError("title", title[:50]+"...", "page title is too long")
	}
	return nil
}
