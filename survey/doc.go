// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey holds the screening questionnaire and maps answers to stable
option codes.

# Questions and Codes

QuestionIDs lists the questions in display order. Each question has a fixed
list of stable codes (Codes) that is index-aligned with its option labels in
every locale. communityPriorities and immediateNeeds are multi-select.

# Label Tables

The per-locale prompts and option labels live in labels.yaml, embedded in the
binary and decoded once by Default. Locales keep their declaration order: en,
es, fr, zh, ar, sw, ne, ps, uz, fa, ja, de, pt, ur.

# Normalization

LabelOrCodeToCode resolves one answer value, first match wins:

 1. the value is already a stable code
 2. a legacy rule (historical audience sentence, "secured" employment answers)
 3. loose match against codes (lower-case, whitespace/hyphen runs to "_",
    everything outside [a-z0-9_] dropped)
 4. a spelling of "none" in a supported language, for questions with a none option
 5. a label in any locale, exact first then loose, locale by locale
 6. otherwise the value is returned unchanged

It never fails. MapSurveyResponsesToCodes applies it to a whole models.AnswerSet,
drops DeprecatedQuestions and passes unknown keys through.

Two labels of one locale could in principle share a loose form; the first in
option order wins. Loose forms with no letters or digits are never compared.

# Profiles

DeriveProfile turns normalized answers into a models.Profile (audience type,
language needs, urgency, support level) and Summary renders it as one line.
*/
package survey
