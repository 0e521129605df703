// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package keycase

import (
	"regexp"
	"strings"

	"github.com/jeniaquome/pioneer-mockup-sub002/models"
)

var (
	lowerUpperBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	separatorRun       = regexp.MustCompile(`[-\s]+`)
	underscoreLower    = regexp.MustCompile(`_([a-z])`)
)

// ToSnakeCaseKey converts a camelCase or PascalCase key to snake_case.
func ToSnakeCaseKey(key string) string {
	key = lowerUpperBoundary.ReplaceAllString(key, "${1}_${2}")
	key = separatorRun.ReplaceAllString(key, "_")
	return strings.ToLower(key)
}

// ToCamelCaseKey converts a snake_case key to camelCase. Only an underscore
// followed by a lower-case ASCII letter is folded.
func ToCamelCaseKey(key string) string {
	return underscoreLower.ReplaceAllStringFunc(key, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// NormalizeAnswersToSnakeCase returns a new set with every key converted by
// ToSnakeCaseKey. When two keys collapse to the same form the later value wins
// and the key keeps its first position.
func NormalizeAnswersToSnakeCase(answers *models.AnswerSet) *models.AnswerSet {
	return rekey(answers, ToSnakeCaseKey)
}

// NormalizeAnswersToCamelCase is the inverse of NormalizeAnswersToSnakeCase.
func NormalizeAnswersToCamelCase(answers *models.AnswerSet) *models.AnswerSet {
	return rekey(answers, ToCamelCaseKey)
}

func rekey(answers *models.AnswerSet, fn func(string) string) *models.AnswerSet {
	out := models.NewAnswerSet()
	answers.Range(func(key string, a models.Answer) bool {
		out.Set(fn(key), a)
		return true
	})
	return out
}
