package output

import (
	"iter"

	"localstrings/internal/domain/entities"
)

// EntryReader yields the entries of a localization file. The sequence is
// single-pass: ranging over it a second time yields nothing.
type EntryReader interface {
	Entries() iter.Seq2[entities.Entry, error]
}
