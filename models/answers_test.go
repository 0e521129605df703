// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerSet_UnmarshalKeepsOrder(t *testing.T) {
	var set AnswerSet
	err := json.Unmarshal([]byte(`{"timeline":"just_arrived","audience":"boomerang","immediateNeeds":["none","meet_people"]}`), &set)
	require.NoError(t, err)

	assert.Equal(t, []string{"timeline", "audience", "immediateNeeds"}, set.Keys())

	needs, ok := set.Get("immediateNeeds")
	require.True(t, ok)
	assert.True(t, needs.IsMulti())
	assert.Equal(t, []string{"none", "meet_people"}, needs.Values())

	audience, _ := set.Get("audience")
	assert.False(t, audience.IsMulti())
	assert.Equal(t, "boomerang", audience.Value())
}

func TestAnswerSet_MarshalKeepsOrder(t *testing.T) {
	set := NewAnswerSet()
	set.Set("zeta", Single("z"))
	set.Set("alpha", Multi("a", "b"))
	set.Set("empty", Multi())

	data, err := json.Marshal(set)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"z","alpha":["a","b"],"empty":[]}`, string(data))
}

func TestAnswerSet_ReassignKeepsPosition(t *testing.T) {
	set := NewAnswerSet()
	set.Set("a", Single("1"))
	set.Set("b", Single("2"))
	set.Set("a", Single("3"))

	assert.Equal(t, []string{"a", "b"}, set.Keys())
	a, _ := set.Get("a")
	assert.Equal(t, "3", a.Value())
}

func TestAnswerSet_RejectsNonStringValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"number", `{"audience": 3}`},
		{"object", `{"audience": {"x": "y"}}`},
		{"mixed list", `{"immediateNeeds": ["none", 2]}`},
		{"bool", `{"audience": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var set AnswerSet
			err := json.Unmarshal([]byte(tt.body), &set)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidAnswer), "got %v", err)
		})
	}
}

func TestAnswerSet_NullAndNil(t *testing.T) {
	var set AnswerSet
	require.NoError(t, json.Unmarshal([]byte(`null`), &set))
	assert.Equal(t, 0, set.Len())

	var nilSet *AnswerSet
	assert.Equal(t, 0, nilSet.Len())
	assert.Nil(t, nilSet.Keys())
	_, ok := nilSet.Get("audience")
	assert.False(t, ok)
	nilSet.Range(func(string, Answer) bool {
		t.Fatal("range over nil set should not call fn")
		return true
	})
}

func TestAnswer_MapKeepsShape(t *testing.T) {
	upper := func(s string) string { return s + "!" }

	single := Single("a").Map(upper)
	assert.False(t, single.IsMulti())
	assert.Equal(t, "a!", single.Value())

	multi := Multi("a", "b").Map(upper)
	assert.True(t, multi.IsMulti())
	assert.Equal(t, []string{"a!", "b!"}, multi.Values())
}
