// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidAnswer is returned when an answer value is neither a string nor a
// list of strings.
var ErrInvalidAnswer = errors.New("answer must be a string or a list of strings")

// Answer is a single survey answer: one value, or an ordered list of values for
// multi-select questions.
type Answer struct {
	values []string
	multi  bool
}

// Single builds a one-value answer.
func Single(v string) Answer {
	return Answer{values: []string{v}}
}

// Multi builds a list answer. An empty call yields an empty list, not a single value.
func Multi(vs ...string) Answer {
	out := make([]string, len(vs))
	copy(out, vs)
	return Answer{values: out, multi: true}
}

func (a Answer) IsMulti() bool { return a.multi }

// Value returns the single value, or the first element of a list answer.
func (a Answer) Value() string {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[0]
}

// Values returns a copy of every value in order.
func (a Answer) Values() []string {
	out := make([]string, len(a.values))
	copy(out, a.values)
	return out
}

// Map applies fn to every value and keeps the answer's shape.
func (a Answer) Map(fn func(string) string) Answer {
	out := Answer{values: make([]string, len(a.values)), multi: a.multi}
	for i, v := range a.values {
		out.values[i] = fn(v)
	}
	return out
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi {
		if a.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.values)
	}
	return json.Marshal(a.Value())
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var vs []string
		if err := json.Unmarshal(data, &vs); err != nil {
			return ErrInvalidAnswer
		}
		if vs == nil {
			vs = []string{}
		}
		*a = Answer{values: vs, multi: true}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return ErrInvalidAnswer
		}
		*a = Single(v)
		return nil
	}
	return ErrInvalidAnswer
}

// AnswerSet maps question identifiers to answers and remembers the order in
// which keys were first assigned. Re-assigning an existing key replaces the
// value in place. The zero value and a nil *AnswerSet are both empty sets.
type AnswerSet struct {
	keys   []string
	values map[string]Answer
}

func NewAnswerSet() *AnswerSet {
	return &AnswerSet{values: make(map[string]Answer)}
}

func (s *AnswerSet) Set(key string, a Answer) {
	if s.values == nil {
		s.values = make(map[string]Answer)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = a
}

func (s *AnswerSet) Get(key string) (Answer, bool) {
	if s == nil {
		return Answer{}, false
	}
	a, ok := s.values[key]
	return a, ok
}

func (s *AnswerSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns the keys in insertion order.
func (s *AnswerSet) Keys() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Range calls fn for each entry in insertion order until fn returns false.
func (s *AnswerSet) Range(fn func(key string, a Answer) bool) {
	if s == nil {
		return
	}
	for _, k := range s.keys {
		if !fn(k, s.values[k]) {
			return
		}
	}
}

func (s *AnswerSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := s.values[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the document's key order.
// JSON null decodes to an empty set.
func (s *AnswerSet) UnmarshalJSON(data []byte) error {
	*s = AnswerSet{values: make(map[string]Answer)}
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("answers must be a JSON object")
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var a Answer
		if err := a.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("answer %q: %w", key, err)
		}
		s.Set(key, a)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
