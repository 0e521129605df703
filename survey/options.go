// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/jeniaquome/pioneer-mockup-sub002/models"
)

// BuildOptions pairs each stable code of a question with its label in locale.
// Missing labels fall back to the code; an unknown locale falls back to
// DefaultLocale.
func (c *Catalog) BuildOptions(id QuestionID, locale string) []models.QuestionOption {
	codes := questionCodes[id]
	loc := c.resolve(locale)
	labels := loc.Questions[id].Options

	out := make([]models.QuestionOption, len(codes))
	for i, code := range codes {
		label := code
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		out[i] = models.QuestionOption{Value: code, Label: label}
	}
	return out
}

// Questions renders the whole questionnaire in one locale.
func (c *Catalog) Questions(locale string) models.QuestionsResponse {
	loc := c.resolve(locale)
	resp := models.QuestionsResponse{
		Locale:    loc.Code,
		RTL:       loc.RTL,
		Questions: make([]models.Question, 0, len(QuestionIDs)),
	}
	for _, id := range QuestionIDs {
		resp.Questions = append(resp.Questions, models.Question{
			ID:          string(id),
			Prompt:      loc.Questions[id].Prompt,
			MultiSelect: IsMultiSelect(id),
			Options:     c.BuildOptions(id, loc.Code),
		})
	}
	return resp
}

// MatchLocale picks the locale for a request. An explicitly requested lang
// wins when it is supported outright or matches a supported language; then
// the Accept-Language header is negotiated; otherwise DefaultLocale.
func (c *Catalog) MatchLocale(lang, acceptLanguage string) string {
	lang = strings.TrimSpace(lang)
	if _, ok := c.byCode[strings.ToLower(lang)]; ok {
		return strings.ToLower(lang)
	}
	if lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			if code, ok := c.match(tag); ok {
				return code
			}
		}
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			if code, ok := c.match(tags...); ok {
				return code
			}
		}
	}
	return c.resolve("").Code
}

func (c *Catalog) match(tags ...language.Tag) (string, bool) {
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(c.matchOrder) {
		return "", false
	}
	return c.locales[c.matchOrder[idx]].Code, true
}

func (c *Catalog) resolve(locale string) Locale {
	if i, ok := c.byCode[locale]; ok {
		return c.locales[i]
	}
	if i, ok := c.byCode[DefaultLocale]; ok {
		return c.locales[i]
	}
	return c.locales[0]
}
