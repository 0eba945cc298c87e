package entities

import (
	"slices"
	"strconv"
	"strings"
)

// UsageReport maps a localization key to the files that still reference it.
// A key present with an empty list was found in exactly one file (see
// validation's first-occurrence rule).
type UsageReport map[string][]string

// Empty reports whether no key was found anywhere.
func (r UsageReport) Empty() bool { return len(r) == 0 }

// Keys returns the reported keys in lexical order.
func (r UsageReport) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// String renders the report as a sorted dict literal, e.g.
// {"app_title": [], "welcome": ["Views/A.swift"]}.
func (r UsageReport) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, key := range r.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(key))
		b.WriteString(": [")
		for j, file := range r[key] {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(file))
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')
	return b.String()
}
