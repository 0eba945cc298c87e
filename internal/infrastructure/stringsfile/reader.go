package stringsfile

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"regexp"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"localstrings/internal/domain"
	"localstrings/internal/domain/entities"
	"localstrings/internal/ports/output"
)

// Ensure Reader implements the output.EntryReader port.
var _ output.EntryReader = (*Reader)(nil)

// entryPattern is anchored at the start only; both groups are greedy, so a
// line with several quote pairs splits at the last `" = "`.
var entryPattern = regexp.MustCompile(`^"(.+)" = "(.+)"`)

const maxLineSize = 1 << 20

// Reader parses a Localizable.strings file line by line.
type Reader struct {
	src    io.Reader
	closer io.Closer
}

// Open opens path for reading. A missing or unreadable file fails here, before
// any entry is produced.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInputUnreadable, err)
	}
	r := NewReader(f)
	r.closer = f
	return r, nil
}

// NewReader reads entries from src. UTF-8 and BOM-marked UTF-16 are accepted;
// a leading byte order mark is dropped. Unmarked input that is not valid UTF-8
// makes Entries fail with encoding.ErrInvalidUTF8.
func NewReader(src io.Reader) *Reader {
	dec := unicode.BOMOverride(encoding.UTF8Validator)
	return &Reader{src: transform.NewReader(src, dec)}
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Entries yields one entry per matching line. Lines that do not have the
// `"key" = "value"` shape are skipped.
func (r *Reader) Entries() iter.Seq2[entities.Entry, error] {
	return func(yield func(entities.Entry, error) bool) {
		scanner := bufio.NewScanner(r.src)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			entry, ok := ParseLine(scanner.Text())
			if !ok {
				continue
			}
			if !yield(entry, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(entities.Entry{}, fmt.Errorf("%w: %w", domain.ErrInputUnreadable, err))
		}
	}
}

// ParseLine extracts the entry of a single line.
func ParseLine(line string) (entities.Entry, bool) {
	m := entryPattern.FindStringSubmatch(line)
	if m == nil {
		return entities.Entry{}, false
	}
	return entities.NewEntry(m[1], m[2]), true
}
