// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/jeniaquome/pioneer-mockup-sub002/models"
)

func TestLabelOrCodeToCode_CodesAreIdentity(t *testing.T) {
	for _, id := range QuestionIDs {
		for _, code := range Codes(id) {
			assert.Equal(t, code, LabelOrCodeToCode(id, code), "%s/%s", id, code)
		}
	}
}

func TestLabelOrCodeToCode_EveryLocaleLabel(t *testing.T) {
	c := Default()
	for _, id := range QuestionIDs {
		codes := Codes(id)
		for _, loc := range c.Locales() {
			labels := c.Labels(id, loc.Code)
			require.Len(t, labels, len(codes), "%s/%s", id, loc.Code)
			for i, label := range labels {
				assert.Equal(t, codes[i], c.LabelOrCodeToCode(id, label), "%s/%s[%d] %q", id, loc.Code, i, label)
			}
		}
	}
}

func TestLabelOrCodeToCode_PassThrough(t *testing.T) {
	tests := []struct {
		name  string
		id    QuestionID
		input string
	}{
		{"garbage", Audience, "definitely not an option"},
		{"empty", Timeline, ""},
		{"none on question without none", Timeline, "None"},
		{"symbols only", Employment, "???"},
		{"unknown question", QuestionID("favouriteColour"), "blue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.input, LabelOrCodeToCode(tt.id, tt.input))
		})
	}
}

func TestLabelOrCodeToCode_Rules(t *testing.T) {
	tests := []struct {
		name  string
		id    QuestionID
		input string
		want  string
	}{
		{"legacy audience sentence", Audience, "New American/Immigrant seeking settlement support", "refugee_tps"},
		{"legacy employment code", Employment, "secured", "no_support_needed"},
		{"legacy employment label", Employment, "Employment secured", "no_support_needed"},
		{"legacy employment shouting", Employment, "EMPLOYMENT SECURED already", "no_support_needed"},
		{"loose code with hyphen", Employment, "Job-Search", "job_search"},
		{"loose code with spaces", ImmediateNeeds, "Meet People", "meet_people"},
		{"loose code digits", Timeline, "recent 1 6", "recent_1_6"},
		{"language support alias", LanguageSupport, "ProfessionalEnglish", "professional_english"},
		{"none english", CommunityPriorities, "None", "none"},
		{"none spanish", ImmediateNeeds, "Ninguna de estas", "none"},
		{"none french", ImmediateNeeds, "aucun", "none"},
		{"none swahili", LanguageSupport, "Hakuna", "none"},
		{"none arabic whole answer", ImmediateNeeds, "لا", "none"},
		{"english label", HousingNeed, "Affordable housing assistance and programs", "affordable"},
		{"loose label", Timeline, "just arrived within last month", "just_arrived"},
		{"spanish label", Audience, "Emprendedor/a (construyendo mi propio negocio)", "entrepreneur"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LabelOrCodeToCode(tt.id, tt.input))
		})
	}
}

func TestLabelOrCodeToCode_DecomposedInput(t *testing.T) {
	c := Default()
	labels := c.Labels(Employment, "fr")
	require.NotEmpty(t, labels)

	decomposed := norm.NFD.String(labels[0])
	require.NotEqual(t, labels[0], decomposed)
	assert.Equal(t, "networking_advancement", c.LabelOrCodeToCode(Employment, decomposed))
}

func TestLabelOrCodeToCode_NonLatinLabelsDoNotCollide(t *testing.T) {
	c := Default()
	// Japanese labels have no ASCII letters or digits.
	labels := c.Labels(ImmediateNeeds, "ja")
	codes := Codes(ImmediateNeeds)
	for i, label := range labels {
		assert.Equal(t, codes[i], c.LabelOrCodeToCode(ImmediateNeeds, label))
	}
}

func TestMapSurveyResponsesToCodes(t *testing.T) {
	in := models.NewAnswerSet()
	in.Set("audience", models.Single("Remote employee"))
	in.Set("techComfort", models.Single("Very comfortable"))
	in.Set("immediateNeeds", models.Multi("Legal/immigration assistance", "school_enrollment", "???"))
	in.Set("referrer", models.Single("Remote employee"))
	in.Set("employment", models.Single("secured"))

	out := MapSurveyResponsesToCodes(in)

	assert.Equal(t, []string{"audience", "immediateNeeds", "referrer", "employment"}, out.Keys())

	audience, _ := out.Get("audience")
	assert.Equal(t, "remote_employee", audience.Value())
	assert.False(t, audience.IsMulti())

	needs, _ := out.Get("immediateNeeds")
	assert.True(t, needs.IsMulti())
	assert.Equal(t, []string{"legal_immigration", "school_enrollment", "???"}, needs.Values())

	referrer, _ := out.Get("referrer")
	assert.Equal(t, "Remote employee", referrer.Value())

	employment, _ := out.Get("employment")
	assert.Equal(t, "no_support_needed", employment.Value())

	// input is not mutated
	assert.Len(t, in.Keys(), 5)
	original, _ := in.Get("audience")
	assert.Equal(t, "Remote employee", original.Value())
}

func TestMapSurveyResponsesToCodes_DropsDeprecatedWhateverTheValue(t *testing.T) {
	for _, a := range []models.Answer{models.Single(""), models.Multi(), models.Multi("a", "b"), models.Single("none")} {
		in := models.NewAnswerSet()
		in.Set("techComfort", a)
		out := MapSurveyResponsesToCodes(in)
		_, ok := out.Get("techComfort")
		assert.False(t, ok)
		assert.Equal(t, 0, out.Len())
	}
}

func TestMapSurveyResponsesToCodes_Nil(t *testing.T) {
	out := MapSurveyResponsesToCodes(nil)
	require.NotNil(t, out)
	assert.Equal(t, 0, out.Len())
}
