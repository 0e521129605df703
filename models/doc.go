// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Answers

AnswerSet is an ordered map from question identifier to Answer. Keys keep the
order in which they were first assigned, which is also the order of the JSON
object they were decoded from:

	var set models.AnswerSet
	json.Unmarshal([]byte(`{"audience":"boomerang","immediateNeeds":["none"]}`), &set)
	set.Keys() // [audience immediateNeeds]

An Answer is either a single string or a list of strings. Any other JSON value
fails to decode with ErrInvalidAnswer.

# Request Types

  - NormalizeAnswersRequest: answers
  - SubmitScreeningRequest: answers, locale

# Response Types

  - NormalizeAnswersResponse: answers, snake_case
  - SubmitScreeningResponse: checklist_id, summary, profile
  - ScreeningProfileResponse: checklist_id, answers, profile, locale, submitted_at
  - QuestionsResponse: locale, rtl, questions
  - HreflangResponse: path, include, links
  - ErrorResponse: error, message

# Domain Types

  - Profile: audience type and need levels derived from answers
  - ScreeningSubmission: a stored screening response
*/
package models
