// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Pioneer API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, log)

# Endpoints

Health:

	GET /health

Survey:

	GET  /survey/questions?lang= - Localized questions and options
	POST /survey/normalize       - Map labels to stable codes

Screening:

	POST /screening/submit                - Store a screening, return checklist id
	GET  /screening/profile/{checklistId} - Latest profile for a checklist

Structured data and SEO:

	POST /structured-data/validate[?strict=true] - Validate JSON-LD
	GET  /seo/hreflang?path=                     - Alternate-language links

# Handler Initialization

All handlers share the embedded survey catalog:

	catalog := survey.Default()
	surveyHandler := handlers.NewSurveyHandler(catalog, log)
	screeningHandler := handlers.NewScreeningHandler(db, cfg, log, catalog)
	structDataHandler := handlers.NewStructuredDataHandler(log)
	seoHandler := handlers.NewSEOHandler(cfg, catalog)

Every route except /health and / is wrapped with request logging. CORS is
applied around the whole mux by the caller.
*/
package router
