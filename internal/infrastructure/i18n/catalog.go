package i18n

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"localstrings/internal/domain/entities"
	"localstrings/internal/ports/output"
)

// Ensure Catalog implements the output.CatalogEncoder port.
var _ output.CatalogEncoder = Catalog{}

// placeholder matches %@ and the positional form %2$@.
var placeholder = regexp.MustCompile(`%(?:([1-9][0-9]*)\$)?@`)

// Catalog writes go-i18n message files in TOML, the format loaded by
// bundle.LoadMessageFile with toml.Unmarshal registered.
type Catalog struct{}

// Filename follows the active.<lang>.toml convention so go-i18n can read the
// language back from the name.
func (Catalog) Filename(tag language.Tag) string {
	return "active." + tag.String() + ".toml"
}

// Encode renders one table per key, holding the original value as the
// description and the converted template as the "other" form. Tables rather
// than bare strings keep keys such as "other" or "id" from being read as
// message fields. The result is loaded back through a Bundle before it is
// returned.
func (c Catalog) Encode(tag language.Tag, entries []entities.Entry) ([]byte, error) {
	messages := make(map[string]map[string]string, len(entries))
	for _, e := range entries {
		messages[e.Key] = map[string]string{
			"description": e.Value,
			"other":       Template(e.Value),
		}
	}

	data, err := toml.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("i18n: encode catalog: %w", err)
	}
	if err := c.check(tag, data, entries); err != nil {
		return nil, err
	}
	return data, nil
}

// check loads data into a fresh bundle and renders every message once. The
// template data is an empty map so unset arguments render as "<no value>"
// instead of failing.
func (c Catalog) check(tag language.Tag, data []byte, entries []entities.Entry) error {
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	if _, err := bundle.ParseMessageFileBytes(data, c.Filename(tag)); err != nil {
		return fmt.Errorf("i18n: catalog does not load: %w", err)
	}

	localizer := i18n.NewLocalizer(bundle, tag.String())
	for _, e := range entries {
		if _, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    e.Key,
			TemplateData: map[string]any{},
		}); err != nil {
			return fmt.Errorf("i18n: message %q: %w", e.Key, err)
		}
	}
	return nil
}

// Template turns a .strings value into a go-i18n template: literal "{{" is
// escaped and each %@ becomes {{.ArgN}}, counting from zero. A positional
// %N$@ maps to {{.Arg<N-1>}}.
func Template(value string) string {
	value = strings.ReplaceAll(value, "{{", `{{"{{"}}`)

	next := 0
	return placeholder.ReplaceAllStringFunc(value, func(m string) string {
		idx := next
		if sub := placeholder.FindStringSubmatch(m); sub[1] != "" {
			n, _ := strconv.Atoi(sub[1])
			idx = n - 1
		} else {
			next++
		}
		return "{{.Arg" + strconv.Itoa(idx) + "}}"
	})
}
