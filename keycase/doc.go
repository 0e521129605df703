// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package keycase converts answer keys between camelCase (used by clients) and
snake_case (used in storage).

# Conversions

	keycase.ToSnakeCaseKey("primaryLanguage") // "primary_language"
	keycase.ToCamelCaseKey("primary_language") // "primaryLanguage"

ToSnakeCaseKey inserts an underscore between a lower-case letter or digit and a
following upper-case letter, turns runs of hyphens and whitespace into a single
underscore, then lower-cases the result. ToCamelCaseKey folds each underscore
followed by a lower-case letter into the upper-cased letter.

# Round Trips

For conventional keys (ASCII letters and digits separated by single underscores
or by case changes) the two functions invert each other:

	ToCamelCaseKey(ToSnakeCaseKey("immediateNeeds")) == "immediateNeeds"
	ToSnakeCaseKey(ToCamelCaseKey("housing_need"))   == "housing_need"

Keys with consecutive separators ("a__b"), leading or trailing separators
("_a", "a_"), acronyms ("URLPath") or an underscore before a digit ("step_2")
do not round-trip. That is accepted behavior, not a bug.

# Answer Sets

NormalizeAnswersToSnakeCase and NormalizeAnswersToCamelCase rewrite every key of
a models.AnswerSet, keep values untouched, and keep the order in which the
converted keys were first produced.
*/
package keycase
