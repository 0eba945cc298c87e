package output

import (
	"golang.org/x/text/language"

	"localstrings/internal/domain/entities"
)

// CatalogEncoder exposes the message catalog format used by `export`.
// Implementations turn entries into a message file for a given locale.
type CatalogEncoder interface {
	// Filename returns the conventional file name for the locale's catalog.
	Filename(tag language.Tag) string
	// Encode renders entries as a catalog; entries carry distinct keys.
	Encode(tag language.Tag, entries []entities.Entry) ([]byte, error)
}
