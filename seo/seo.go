// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seo

import (
	"regexp"
	"strings"

	"github.com/jeniaquome/pioneer-mockup-sub002/models"
	"github.com/jeniaquome/pioneer-mockup-sub002/survey"
)

// XDefault is the hreflang value of the fallback link.
const XDefault = "x-default"

// Paths behind sign-in or personal to one user; they get no alternate links.
var privatePrefixes = []string{
	"/dashboard",
	"/admin-dashboard",
	"/screening",
	"/checklist",
	"/edit",
	"/login",
	"/signup",
	"/callback",
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// HreflangLinks builds one alternate link per locale, in the given order,
// followed by an x-default link to survey.DefaultLocale. Each link is
// baseURL+path with a lang query parameter appended.
func HreflangLinks(baseURL, path string, locales []survey.Locale) []models.HreflangLink {
	baseURL = strings.TrimRight(baseURL, "/")
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	links := make([]models.HreflangLink, 0, len(locales)+1)
	for _, loc := range locales {
		tag := loc.Hreflang
		if tag == "" {
			tag = loc.Code
		}
		links = append(links, models.HreflangLink{
			Hreflang: tag,
			Href:     baseURL + path + sep + "lang=" + loc.Code,
		})
	}
	links = append(links, models.HreflangLink{
		Hreflang: XDefault,
		Href:     baseURL + path + sep + "lang=" + survey.DefaultLocale,
	})
	return links
}

// ShouldIncludeHreflang reports whether a page path gets alternate links.
func ShouldIncludeHreflang(path string) bool {
	for _, prefix := range privatePrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// SectionID turns heading text into a deep-link anchor:
// "Best School Districts in Pittsburgh" -> "best-school-districts-in-pittsburgh".
func SectionID(text string) string {
	s := nonSlug.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(s, "-")
}
