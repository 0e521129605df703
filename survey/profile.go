// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"strings"

	"github.com/jeniaquome/pioneer-mockup-sub002/models"
)

var techAudiences = map[string]bool{
	"student_professional": true,
	"remote_employee":      true,
	"entrepreneur":         true,
}

// DeriveProfile classifies a respondent from answers that have already been
// mapped to stable codes.
func DeriveProfile(codes *models.AnswerSet) models.Profile {
	p := models.Profile{
		AudienceType:  models.AudienceMixed,
		LanguageNeeds: models.LevelNone,
		UrgencyLevel:  models.LevelLow,
		SupportLevel:  models.LevelStandard,
	}

	audience := first(codes, Audience)
	switch {
	case techAudiences[audience]:
		p.TechOriented = true
		p.AudienceType = models.AudienceTechProfessional
	case audience == "refugee_tps":
		p.TraditionalImmigrant = true
		p.AudienceType = models.AudienceTraditionalImmigrant
	}

	if lang := first(codes, PrimaryLanguage); lang != "" && lang != "en" {
		p.LanguageNeeds = models.LevelHigh
	} else if first(codes, LanguageSupport) == "professional_english" {
		p.LanguageNeeds = models.LevelProfessional
	}

	switch first(codes, Timeline) {
	case "just_arrived":
		p.UrgencyLevel = models.LevelHigh
	case "recent_1_6", "planning_3":
		p.UrgencyLevel = models.LevelMedium
	}

	needs := 0
	if a, ok := codes.Get(string(ImmediateNeeds)); ok {
		for _, v := range a.Values() {
			if v != CodeNone {
				needs++
			}
		}
	}
	if needs > 4 || p.UrgencyLevel == models.LevelHigh {
		p.SupportLevel = models.LevelHigh
	}

	return p
}

// Summary renders a one-line description of a profile.
func Summary(p models.Profile) string {
	var parts []string
	if p.TechOriented {
		parts = append(parts, "tech-oriented professional")
	}
	if p.TraditionalImmigrant {
		parts = append(parts, "newcomer seeking settlement support")
	}
	switch p.LanguageNeeds {
	case models.LevelHigh:
		parts = append(parts, "with significant language support needs")
	case models.LevelProfessional:
		parts = append(parts, "seeking professional communication skills")
	}
	if p.UrgencyLevel == models.LevelHigh {
		parts = append(parts, "with immediate settlement needs")
	}
	if len(parts) == 0 {
		return "Personalized checklist for newcomer"
	}
	return "Personalized checklist for " + strings.Join(parts, " and ")
}

func first(codes *models.AnswerSet, id QuestionID) string {
	a, ok := codes.Get(string(id))
	if !ok {
		return ""
	}
	return a.Value()
}
