// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Pioneer API.

# Handler Types

Each handler is a struct holding only the dependencies it needs:

  - SurveyHandler: Localized questions and answer normalization
  - ScreeningHandler: Screening submission and checklist profiles
  - StructuredDataHandler: JSON-LD validation
  - SEOHandler: Alternate-language links for public pages

Handlers are created via constructor functions:

	screening := handlers.NewScreeningHandler(db, cfg, log, survey.Default())

# Survey

	GET  /survey/questions?lang=es → GetQuestions
	POST /survey/normalize         → Normalize

The locale comes from the lang parameter, then Accept-Language, then English.
Normalize accepts answer keys in camelCase or snake_case and maps option
labels in any supported locale to stable codes. The response carries the
codes under both key styles.

# Screening

	POST /screening/submit                 → Submit (returns checklist_id)
	GET  /screening/profile/{checklistId}  → GetProfile

The checklist id is an HMAC of the normalized answers, so respondents who give
the same answers share a checklist. Every submission is stored; GetProfile
returns the most recent one. Client IPs are stored only as salted hashes.

# Structured Data

	POST /structured-data/validate[?strict=true] → Validate

The body is one JSON-LD document or an array of them. Findings are returned
with a 200 status together with a text report; strict mode adds checks
against the embedded JSON Schema contract.

# SEO

	GET /seo/hreflang?path=/resources → Hreflang
*/
package handlers
