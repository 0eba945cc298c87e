package entities

import "strings"

// ArgumentMarker is the placeholder that turns an accessor into a formatting function.
const ArgumentMarker = "%@"

// Entry is one `"key" = "value"` record of a Localizable.strings file.
type Entry struct {
	Key          string
	Value        string
	HasArguments bool
}

// NewEntry builds an Entry, deriving HasArguments from value.
func NewEntry(key, value string) Entry {
	return Entry{
		Key:          key,
		Value:        value,
		HasArguments: strings.Contains(value, ArgumentMarker),
	}
}

// Declaration is one accessor of the generated enum.
type Declaration struct {
	Name         string // derived identifier
	Key          string // original key, embedded verbatim
	HasArguments bool
}

// CompareDeclarations orders declarations by (Key, HasArguments), false before true.
func CompareDeclarations(a, b Declaration) int {
	if c := strings.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	switch {
	case a.HasArguments == b.HasArguments:
		return 0
	case !a.HasArguments:
		return -1
	default:
		return 1
	}
}
