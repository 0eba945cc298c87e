package entities_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"localstrings/internal/domain/entities"
)

func TestNewEntry(t *testing.T) {
	assert.True(t, entities.NewEntry("welcome", "Hello %@").HasArguments)
	assert.True(t, entities.NewEntry("count", "%@ of %@").HasArguments)
	assert.False(t, entities.NewEntry("title", "MyApp").HasArguments)
	assert.False(t, entities.NewEntry("percent", "100% sure @home").HasArguments)
}

func TestCompareDeclarations(t *testing.T) {
	decls := []entities.Declaration{
		{Key: "zebra"},
		{Key: "apple", HasArguments: true},
		{Key: "apple"},
		{Key: "Zulu"},
	}
	slices.SortFunc(decls, entities.CompareDeclarations)

	assert.Equal(t, []entities.Declaration{
		{Key: "Zulu"},
		{Key: "apple"},
		{Key: "apple", HasArguments: true},
		{Key: "zebra"},
	}, decls)
}

func TestUsageReport(t *testing.T) {
	empty := entities.UsageReport{}
	assert.True(t, empty.Empty())
	assert.Equal(t, "{}", empty.String())

	report := entities.UsageReport{
		"welcome":   {"Views/A.swift", "Views/B.swift"},
		"app_title": {},
	}
	assert.False(t, report.Empty())
	assert.Equal(t, []string{"app_title", "welcome"}, report.Keys())
	assert.Equal(t, `{"app_title": [], "welcome": ["Views/A.swift", "Views/B.swift"]}`, report.String())
}
