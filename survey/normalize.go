// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jeniaquome/pioneer-mockup-sub002/models"
)

var (
	looseSeparators = regexp.MustCompile(`[\s\p{Z}\x{FEFF}\v-]+`)
	looseStrip      = regexp.MustCompile(`[^a-z0-9_]`)
	looseAlnum      = regexp.MustCompile(`[a-z0-9]`)

	// Spellings of "none" across locales. \b is ASCII-only, so the Arabic
	// entry only matches when it is the whole answer.
	noneVariants = regexp.MustCompile(`(?i)(^|\b)(none|ninguna|aucune|aucun|لا|hakuna)(\b|$)`)
)

// legacyRule maps a historical answer value to its current code.
type legacyRule struct {
	question QuestionID
	matches  func(input string) bool
	code     string
}

var legacyRules = []legacyRule{
	{
		question: Audience,
		matches:  func(s string) bool { return s == "New American/Immigrant seeking settlement support" },
		code:     "refugee_tps",
	},
	{
		// "secured" and "Employment secured" predate no_support_needed.
		question: Employment,
		matches:  func(s string) bool { return strings.Contains(strings.ToLower(s), "secured") },
		code:     "no_support_needed",
	},
}

// Loose spellings that do not fold onto a code by themselves.
var looseAliases = map[QuestionID]map[string]string{
	LanguageSupport: {"professionalenglish": "professional_english"},
}

// normalizeLoose lower-cases s, turns runs of whitespace and hyphens into one
// underscore and drops everything outside [a-z0-9_].
func normalizeLoose(s string) string {
	s = strings.ToLower(s)
	s = looseSeparators.ReplaceAllString(s, "_")
	return looseStrip.ReplaceAllString(s, "")
}

// LabelOrCodeToCode maps a stable code, a legacy value or a localized option
// label to the question's stable code. Input that matches nothing is returned
// unchanged.
//
// Loose label matching is skipped when the loose form of input has no letters
// or digits left (labels written entirely in non-Latin scripts), since those
// forms would all compare equal.
func (c *Catalog) LabelOrCodeToCode(id QuestionID, input string) string {
	codes := questionCodes[id]
	if len(codes) == 0 || input == "" {
		return input
	}

	if hasCode(id, input) {
		return input
	}

	for _, rule := range legacyRules {
		if rule.question == id && rule.matches(input) {
			return rule.code
		}
	}

	loose := normalizeLoose(input)
	for _, code := range codes {
		if normalizeLoose(code) == loose {
			return code
		}
	}
	if code, ok := looseAliases[id][loose]; ok {
		return code
	}

	if hasCode(id, CodeNone) && noneVariants.MatchString(input) {
		return CodeNone
	}

	exact := norm.NFC.String(input)
	comparable := looseAlnum.MatchString(loose)
	for li := range c.locales {
		if i := indexOf(c.labels[id][li], exact); i >= 0 && i < len(codes) {
			return codes[i]
		}
		if !comparable {
			continue
		}
		if i := indexOf(c.looseLabels[id][li], loose); i >= 0 && i < len(codes) {
			return codes[i]
		}
	}

	return input
}

// MapSurveyResponsesToCodes returns a copy of answers with every value of a
// known question mapped to its stable code. Deprecated questions are dropped
// and unknown keys pass through untouched.
func (c *Catalog) MapSurveyResponsesToCodes(answers *models.AnswerSet) *models.AnswerSet {
	out := models.NewAnswerSet()
	answers.Range(func(key string, a models.Answer) bool {
		if DeprecatedQuestions[key] {
			return true
		}
		if !IsQuestion(key) {
			out.Set(key, a)
			return true
		}
		id := QuestionID(key)
		out.Set(key, a.Map(func(v string) string {
			return c.LabelOrCodeToCode(id, v)
		}))
		return true
	})
	return out
}

// LabelOrCodeToCode maps input using the embedded catalog.
func LabelOrCodeToCode(id QuestionID, input string) string {
	return Default().LabelOrCodeToCode(id, input)
}

// MapSurveyResponsesToCodes normalizes answers using the embedded catalog.
func MapSurveyResponsesToCodes(answers *models.AnswerSet) *models.AnswerSet {
	return Default().MapSurveyResponsesToCodes(answers)
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
