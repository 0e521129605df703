// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jeniaquome/pioneer-mockup-sub002/cliparse"
	"github.com/jeniaquome/pioneer-mockup-sub002/ids"
	"github.com/jeniaquome/pioneer-mockup-sub002/keycase"
	"github.com/jeniaquome/pioneer-mockup-sub002/logger"
	"github.com/jeniaquome/pioneer-mockup-sub002/middleware"
	"github.com/jeniaquome/pioneer-mockup-sub002/models"
	"github.com/jeniaquome/pioneer-mockup-sub002/survey"
)

type ScreeningHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	log     *logger.Logger
	catalog *survey.Catalog
}

func NewScreeningHandler(db *sql.DB, cfg cliparse.Config, log *logger.Logger, catalog *survey.Catalog) *ScreeningHandler {
	return &ScreeningHandler{db: db, cfg: cfg, log: log, catalog: catalog}
}

// Submit handles POST /screening/submit
func (h *ScreeningHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitScreeningRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Answers.Len() == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answers are required")
		return
	}

	codes := h.catalog.MapSurveyResponsesToCodes(keycase.NormalizeAnswersToCamelCase(req.Answers))
	profile := survey.DeriveProfile(codes)

	checklistID, err := ids.ChecklistID(codes, h.cfg.ChecklistSalt)
	if err != nil {
		h.log.Error("failed to derive checklist id", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save screening")
		return
	}

	answersJSON, err := json.Marshal(keycase.NormalizeAnswersToSnakeCase(codes))
	if err != nil {
		h.log.Error("failed to encode answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save screening")
		return
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		h.log.Error("failed to encode profile", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save screening")
		return
	}

	locale := h.catalog.MatchLocale(req.Locale, r.Header.Get("Accept-Language"))
	ipHash := ids.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)
	var userAgent *string
	if ua := r.UserAgent(); ua != "" {
		userAgent = &ua
	}

	submissionID := ids.NewSubmissionID()
	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO screening_response (id, checklist_id, answers, profile, locale, ip_hash, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, submissionID, checklistID, string(answersJSON), string(profileJSON), locale, ipHash, userAgent, time.Now().UTC())
	if err != nil {
		h.log.Error("failed to insert screening response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save screening")
		return
	}

	h.log.Info("screening submitted",
		"submission_id", submissionID,
		"checklist_id", checklistID,
		"locale", locale,
		"audience_type", profile.AudienceType,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitScreeningResponse{
		ChecklistID: checklistID,
		Summary:     survey.Summary(profile),
		Profile:     profile,
	})
}

// GetProfile handles GET /screening/profile/{checklistId}
func (h *ScreeningHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	checklistID := r.PathValue("checklistId")
	if !ids.ValidChecklistID(checklistID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid checklist id")
		return
	}

	var sub models.ScreeningSubmission
	var answersJSON, profileJSON string
	err := h.db.QueryRowContext(r.Context(), `
		SELECT id, answers, profile, locale, created_at
		FROM screening_response
		WHERE checklist_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, checklistID).Scan(&sub.ID, &answersJSON, &profileJSON, &sub.Locale, &sub.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Checklist not found")
		return
	}
	if err != nil {
		h.log.Error("failed to query screening response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	answers := models.NewAnswerSet()
	if err := json.Unmarshal([]byte(answersJSON), answers); err != nil {
		h.log.Error("stored answers are not valid", "error", err, "submission_id", sub.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if err := json.Unmarshal([]byte(profileJSON), &sub.Profile); err != nil {
		h.log.Error("stored profile is not valid", "error", err, "submission_id", sub.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ScreeningProfileResponse{
		ChecklistID: checklistID,
		Answers:     keycase.NormalizeAnswersToCamelCase(answers),
		Profile:     sub.Profile,
		Locale:      sub.Locale,
		SubmittedAt: sub.CreatedAt,
	})
}
