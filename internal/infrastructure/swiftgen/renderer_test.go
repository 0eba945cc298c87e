package swiftgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"localstrings/internal/domain/entities"
	"localstrings/internal/infrastructure/swiftgen"
)

func TestRender(t *testing.T) {
	decls := []entities.Declaration{
		{Name: "app_title", Key: "app_title"},
		{Name: "welcome_message", Key: "welcome_message", HasArguments: true},
		{Name: "library_title", Key: "Library.Title"},
	}

	want := "\n" +
		"enum LocalString {\n" +
		"    static let app_title = \"app_title\".localized\n" +
		"\tstatic func welcome_message(withArgs: CVarArg...) -> String { \"welcome_message\".localizedWithFormat(withArgs) }\n" +
		"\tstatic let library_title = \"Library.Title\".localized\n" +
		"}\n"
	assert.Equal(t, want, string(swiftgen.Renderer{}.Render("LocalString", decls)))
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "\nenum Strings {\n    \n}\n", string(swiftgen.Renderer{}.Render("Strings", nil)))
}

func TestDeclarationKeepsKeyVerbatim(t *testing.T) {
	d := entities.Declaration{Name: "search_placeholder_", Key: "Search…placeholder!"}
	assert.Equal(t, `static let search_placeholder_ = "Search…placeholder!".localized`, swiftgen.Declaration(d))
}
