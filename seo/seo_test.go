// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeniaquome/pioneer-mockup-sub002/models"
	"github.com/jeniaquome/pioneer-mockup-sub002/survey"
)

func TestHreflangLinks(t *testing.T) {
	locales := []survey.Locale{
		{Code: "en", Hreflang: "en-US"},
		{Code: "es", Hreflang: "es-419"},
		{Code: "sw"},
	}

	got := HreflangLinks("https://www.pittsburghpioneer.com/", "/resources", locales)
	want := []models.HreflangLink{
		{Hreflang: "en-US", Href: "https://www.pittsburghpioneer.com/resources?lang=en"},
		{Hreflang: "es-419", Href: "https://www.pittsburghpioneer.com/resources?lang=es"},
		{Hreflang: "sw", Href: "https://www.pittsburghpioneer.com/resources?lang=sw"},
		{Hreflang: "x-default", Href: "https://www.pittsburghpioneer.com/resources?lang=en"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HreflangLinks mismatch (-want +got):\n%s", diff)
	}
}

func TestHreflangLinks_ExistingQuery(t *testing.T) {
	got := HreflangLinks("https://example.org", "/resources?category=housing", []survey.Locale{{Code: "fr", Hreflang: "fr-FR"}})

	require.Len(t, got, 2)
	assert.Equal(t, "https://example.org/resources?category=housing&lang=fr", got[0].Href)
	assert.Equal(t, "https://example.org/resources?category=housing&lang=en", got[1].Href)
}

func TestHreflangLinks_AllLocales(t *testing.T) {
	got := HreflangLinks("https://example.org", "/", survey.Default().Locales())

	require.Len(t, got, len(survey.Default().Locales())+1)
	assert.Equal(t, XDefault, got[len(got)-1].Hreflang)
	assert.Equal(t, "zh-CN", got[3].Hreflang)
}

func TestShouldIncludeHreflang(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"/resources", true},
		{"/resources/housing", true},
		{"/dashboard", false},
		{"/dashboard/bookmarks", false},
		{"/admin-dashboard", false},
		{"/screening", false},
		{"/checklist", false},
		{"/edit", false},
		{"/editorial", false},
		{"/login", false},
		{"/signup", false},
		{"/callback", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldIncludeHreflang(tt.path))
		})
	}
}

func TestSectionID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Best School Districts in Pittsburgh", "best-school-districts-in-pittsburgh"},
		{"  Housing & Rentals!  ", "housing-rentals"},
		{"ESL (English) Classes", "esl-english-classes"},
		{"Café Culture", "caf-culture"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SectionID(tt.in))
		})
	}
}
