package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"localstrings/internal/domain"
)

func TestIdentifier(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"welcome_message", "welcome_message"},
		{"app_title", "app_title"},
		{"App Title", "app_title"},
		{"ABC123", "abc123"},
		{"Hello, World!", "hello_world_"},
		{"a--b", "a_b"},
		{"library.refresh.error", "library_refresh_error"},
		{"!!!", "_"},
		{"Ünïcode", "_n_code"},
		{"%@ items", "_items"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Identifier(tt.key))
		})
	}
}

func TestIdentifierIsIdempotentAndTotal(t *testing.T) {
	keys := []string{
		"x", " ", "Zebra", "search.bar.placeholder", "__init__", "2FA code",
		"ÉCOLE", "emoji 🎉 key", "tab\tkey", `quote"key`, "日本語",
	}
	for _, key := range keys {
		id := domain.Identifier(key)
		assert.NotEmpty(t, id, key)
		assert.Equal(t, id, domain.Identifier(id), key)
		for _, r := range id {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == domain.Separator
			assert.Truef(t, ok, "%q: unexpected rune %q in %q", key, r, id)
		}
	}
}
