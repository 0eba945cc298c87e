package swiftgen

import (
	"fmt"
	"strings"

	"localstrings/internal/domain/entities"
	"localstrings/internal/ports/output"
)

var _ output.SourceRenderer = Renderer{}

// enumTemplate keeps the historical layout of LocalString.swift: a leading
// blank line, the first declaration indented with four spaces and the rest
// joined with declSeparator.
const (
	enumTemplate  = "\nenum %s {\n    %s\n}\n"
	declSeparator = "\n\t"
)

// Renderer emits a Swift enum with one static accessor per declaration.
type Renderer struct{}

func (Renderer) Render(enumName string, decls []entities.Declaration) []byte {
	lines := make([]string, 0, len(decls))
	for _, d := range decls {
		lines = append(lines, Declaration(d))
	}
	return []byte(fmt.Sprintf(enumTemplate, enumName, strings.Join(lines, declSeparator)))
}

// Declaration renders one accessor. Keys with arguments become variadic
// functions resolved through localizedWithFormat.
func Declaration(d entities.Declaration) string {
	if d.HasArguments {
		return fmt.Sprintf(`static func %s(withArgs: CVarArg...) -> String { "%s".localizedWithFormat(withArgs) }`, d.Name, d.Key)
	}
	return fmt.Sprintf(`static let %s = "%s".localized`, d.Name, d.Key)
}
