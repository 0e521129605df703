// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/jeniaquome/pioneer-mockup-sub002/keycase"
	"github.com/jeniaquome/pioneer-mockup-sub002/logger"
	"github.com/jeniaquome/pioneer-mockup-sub002/middleware"
	"github.com/jeniaquome/pioneer-mockup-sub002/models"
	"github.com/jeniaquome/pioneer-mockup-sub002/survey"
)

type SurveyHandler struct {
	catalog *survey.Catalog
	log     *logger.Logger
}

func NewSurveyHandler(catalog *survey.Catalog, log *logger.Logger) *SurveyHandler {
	return &SurveyHandler{catalog: catalog, log: log}
}

// GetQuestions handles GET /survey/questions
func (h *SurveyHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	locale := h.catalog.MatchLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
	middleware.JSONResponse(w, http.StatusOK, h.catalog.Questions(locale))
}

// Normalize handles POST /survey/normalize
func (h *SurveyHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	var req models.NormalizeAnswersRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Answers == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answers is required")
		return
	}

	// Stored answers use snake_case keys; question ids are camelCase.
	codes := h.catalog.MapSurveyResponsesToCodes(keycase.NormalizeAnswersToCamelCase(req.Answers))

	middleware.JSONResponse(w, http.StatusOK, models.NormalizeAnswersResponse{
		Answers:   codes,
		SnakeCase: keycase.NormalizeAnswersToSnakeCase(codes),
	})
}
