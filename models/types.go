package models

import "time"

// Audience types
const (
	AudienceTechProfessional     = "tech_professional"
	AudienceTraditionalImmigrant = "traditional_immigrant"
	AudienceMixed                = "mixed"
)

// Need levels shared by language, urgency and support fields
const (
	LevelNone         = "none"
	LevelLow          = "low"
	LevelMedium       = "medium"
	LevelHigh         = "high"
	LevelStandard     = "standard"
	LevelProfessional = "professional"
)

// Request types

type NormalizeAnswersRequest struct {
	Answers *AnswerSet `json:"answers"`
}

type SubmitScreeningRequest struct {
	Answers *AnswerSet `json:"answers"`
	Locale  string     `json:"locale,omitempty"`
}

// Response types

type NormalizeAnswersResponse struct {
	Answers   *AnswerSet `json:"answers"`
	SnakeCase *AnswerSet `json:"snake_case"`
}

type SubmitScreeningResponse struct {
	ChecklistID string  `json:"checklist_id"`
	Summary     string  `json:"summary"`
	Profile     Profile `json:"profile"`
}

type ScreeningProfileResponse struct {
	ChecklistID string     `json:"checklist_id"`
	Answers     *AnswerSet `json:"answers"`
	Profile     Profile    `json:"profile"`
	Locale      string     `json:"locale,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
}

type QuestionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Question struct {
	ID          string           `json:"id"`
	Prompt      string           `json:"prompt"`
	MultiSelect bool             `json:"multi_select"`
	Options     []QuestionOption `json:"options"`
}

type QuestionsResponse struct {
	Locale    string     `json:"locale"`
	RTL       bool       `json:"rtl"`
	Questions []Question `json:"questions"`
}

type HreflangLink struct {
	Hreflang string `json:"hreflang"`
	Href     string `json:"href"`
}

type HreflangResponse struct {
	Path    string         `json:"path"`
	Include bool           `json:"include"`
	Links   []HreflangLink `json:"links"`
}

// Domain types

// Profile summarises who a respondent is and how much support they need.
type Profile struct {
	AudienceType         string `json:"audience_type"`
	TechOriented         bool   `json:"tech_oriented"`
	TraditionalImmigrant bool   `json:"traditional_immigrant"`
	LanguageNeeds        string `json:"language_needs"`
	UrgencyLevel         string `json:"urgency_level"`
	SupportLevel         string `json:"support_level"`
}

type ScreeningSubmission struct {
	ID          string     `json:"id"`
	ChecklistID string     `json:"checklist_id"`
	Answers     *AnswerSet `json:"answers"`
	Profile     Profile    `json:"profile"`
	Locale      string     `json:"locale,omitempty"`
	IPHash      *string    `json:"-"` // Never expose in JSON
	UserAgent   *string    `json:"-"` // Never expose in JSON
	CreatedAt   time.Time  `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
