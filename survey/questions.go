// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

// QuestionID identifies a screening question.
type QuestionID string

const (
	Audience            QuestionID = "audience"
	PrimaryLanguage     QuestionID = "primaryLanguage"
	CulturalBackground  QuestionID = "culturalBackground"
	HousingNeed         QuestionID = "housingNeed"
	ProfessionalStatus  QuestionID = "professionalStatus"
	LanguageSupport     QuestionID = "languageSupport"
	Employment          QuestionID = "employment"
	CommunityPriorities QuestionID = "communityPriorities"
	ImmediateNeeds      QuestionID = "immediateNeeds"
	Timeline            QuestionID = "timeline"
)

// CodeNone is the shared "none of these" option code.
const CodeNone = "none"

// QuestionIDs lists every live question in display order.
var QuestionIDs = []QuestionID{
	Audience,
	PrimaryLanguage,
	CulturalBackground,
	HousingNeed,
	ProfessionalStatus,
	LanguageSupport,
	Employment,
	CommunityPriorities,
	ImmediateNeeds,
	Timeline,
}

// DeprecatedQuestions are retired question ids. Answers stored under them are
// dropped on normalization.
var DeprecatedQuestions = map[string]bool{
	"techComfort": true,
}

// Stable option codes, index-aligned with the option labels of every locale
// in labels.yaml.
var questionCodes = map[QuestionID][]string{
	Audience: {
		"student_professional",
		"boomerang",
		"refugee_tps",
		"transplant",
		"entrepreneur",
		"remote_employee",
		"other",
	},
	PrimaryLanguage: {
		"en", "es", "ar", "sw", "uz", "ne_dz", "fa_ps", "zh", "other",
	},
	CulturalBackground: {
		"white",
		"black_aa",
		"latinx",
		"asian",
		"mena",
		"pacific",
		"native",
		"african",
		"caribbean",
		"other",
		"prefer_no_answer",
	},
	HousingNeed: {
		"market_rate",
		"affordable",
		"temporary",
		"shared",
		"buying",
		"secured",
	},
	ProfessionalStatus: {
		"student",
		"tech",
		"healthcare",
		"academic",
		"seeking",
		"recent_grad",
		"other_professional",
	},
	LanguageSupport: {
		"esl",
		"professional_english",
		"translation",
		"conversation",
		CodeNone,
	},
	Employment: {
		"networking_advancement",
		"job_search",
		"skills_training",
		"industry_networks",
		"no_support_needed",
	},
	CommunityPriorities: {
		"pro_networks",
		"cultural_faith",
		"social_entertainment",
		"family_children",
		"sports_recreation",
		"arts_culture",
		CodeNone,
	},
	ImmediateNeeds: {
		"meet_people",
		"basic_services",
		"school_enrollment",
		"legal_immigration",
		"mental_health",
		"emergency_assistance",
		CodeNone,
	},
	Timeline: {
		"just_arrived",
		"recent_1_6",
		"planning_3",
		"long_term_6_plus",
		"already_settled",
	},
}

// IsQuestion reports whether id names a live question.
func IsQuestion(id string) bool {
	_, ok := questionCodes[QuestionID(id)]
	return ok
}

// Codes returns a copy of the stable codes for a question, or nil for an
// unknown id.
func Codes(id QuestionID) []string {
	codes, ok := questionCodes[id]
	if !ok {
		return nil
	}
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

func hasCode(id QuestionID, code string) bool {
	for _, c := range questionCodes[id] {
		if c == code {
			return true
		}
	}
	return false
}

// IsMultiSelect reports whether a question accepts several answers.
func IsMultiSelect(id QuestionID) bool {
	return id == CommunityPriorities || id == ImmediateNeeds
}
