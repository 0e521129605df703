// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/jeniaquome/pioneer-mockup-sub002/cliparse"
	"github.com/jeniaquome/pioneer-mockup-sub002/handlers"
	"github.com/jeniaquome/pioneer-mockup-sub002/logger"
	"github.com/jeniaquome/pioneer-mockup-sub002/middleware"
	"github.com/jeniaquome/pioneer-mockup-sub002/survey"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, log *logger.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	catalog := survey.Default()
	surveyHandler := handlers.NewSurveyHandler(catalog, log)
	screeningHandler := handlers.NewScreeningHandler(db, cfg, log, catalog)
	structDataHandler := handlers.NewStructuredDataHandler(log)
	seoHandler := handlers.NewSEOHandler(cfg, catalog)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Survey questions and answer normalization
	mux.HandleFunc("GET /survey/questions", middleware.WithLogging(log, surveyHandler.GetQuestions))
	mux.HandleFunc("POST /survey/normalize", middleware.WithLogging(log, surveyHandler.Normalize))

	// Screening submissions
	mux.HandleFunc("POST /screening/submit", middleware.WithLogging(log, screeningHandler.Submit))
	mux.HandleFunc("GET /screening/profile/{checklistId}", middleware.WithLogging(log, screeningHandler.GetProfile))

	// Structured data and SEO helpers
	mux.HandleFunc("POST /structured-data/validate", middleware.WithLogging(log, structDataHandler.Validate))
	mux.HandleFunc("GET /seo/hreflang", middleware.WithLogging(log, seoHandler.Hreflang))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pioneer API v1"))
	})

	return mux
}
