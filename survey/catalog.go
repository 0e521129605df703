// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// DefaultLocale is used when no requested locale is supported.
const DefaultLocale = "en"

//go:embed labels.yaml
var labelsYAML []byte

// Locale is one supported interface language with its screening texts.
type Locale struct {
	Code      string                        `yaml:"code"`
	Hreflang  string                        `yaml:"hreflang"`
	Name      string                        `yaml:"name"`
	RTL       bool                          `yaml:"rtl"`
	Questions map[QuestionID]LocaleQuestion `yaml:"questions"`
}

// LocaleQuestion holds a question prompt and its option labels in one locale.
type LocaleQuestion struct {
	Prompt  string   `yaml:"prompt"`
	Options []string `yaml:"options"`
}

// Catalog is the read-only set of locale label tables. It is safe for
// concurrent use.
type Catalog struct {
	locales []Locale
	byCode  map[string]int

	// question -> locale index -> labels, in locale declaration order
	labels      map[QuestionID][][]string
	looseLabels map[QuestionID][][]string

	matcher    language.Matcher
	matchOrder []int // matcher tag index -> locale index
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := LoadCatalog(bytes.NewReader(labelsYAML))
	if err != nil {
		panic(fmt.Sprintf("survey: embedded labels.yaml: %v", err))
	}
	return c
})

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	return defaultCatalog()
}

// LoadCatalog decodes a label table document. Labels are stored in NFC form.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var doc struct {
		Locales []Locale `yaml:"locales"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode label table: %w", err)
	}
	if len(doc.Locales) == 0 {
		return nil, errors.New("label table has no locales")
	}

	c := &Catalog{
		locales:     make([]Locale, 0, len(doc.Locales)),
		byCode:      make(map[string]int, len(doc.Locales)),
		labels:      make(map[QuestionID][][]string, len(questionCodes)),
		looseLabels: make(map[QuestionID][][]string, len(questionCodes)),
	}
	tags := make([]language.Tag, 0, len(doc.Locales))

	for _, loc := range doc.Locales {
		loc.Code = strings.TrimSpace(loc.Code)
		if loc.Code == "" {
			return nil, errors.New("locale with empty code")
		}
		if _, dup := c.byCode[loc.Code]; dup {
			return nil, fmt.Errorf("duplicate locale %q", loc.Code)
		}
		tagText := loc.Hreflang
		if tagText == "" {
			tagText = loc.Code
		}
		tag, err := language.Parse(tagText)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", loc.Code, err)
		}

		for id, q := range loc.Questions {
			if _, ok := questionCodes[id]; !ok {
				return nil, fmt.Errorf("locale %q: unknown question %q", loc.Code, id)
			}
			for i, opt := range q.Options {
				q.Options[i] = norm.NFC.String(opt)
			}
			loc.Questions[id] = q
		}

		c.byCode[loc.Code] = len(c.locales)
		c.locales = append(c.locales, loc)
		tags = append(tags, tag)
	}

	// The matcher falls back to its first tag, so the default locale goes first.
	c.matchOrder = make([]int, len(tags))
	for i := range c.matchOrder {
		c.matchOrder[i] = i
	}
	if i, ok := c.byCode[DefaultLocale]; ok && i != 0 {
		tags[0], tags[i] = tags[i], tags[0]
		c.matchOrder[0], c.matchOrder[i] = i, 0
	}
	c.matcher = language.NewMatcher(tags)

	for id := range questionCodes {
		perLocale := make([][]string, len(c.locales))
		perLocaleLoose := make([][]string, len(c.locales))
		for li, loc := range c.locales {
			opts := loc.Questions[id].Options
			perLocale[li] = opts
			loose := make([]string, len(opts))
			for i, opt := range opts {
				loose[i] = normalizeLoose(opt)
			}
			perLocaleLoose[li] = loose
		}
		c.labels[id] = perLocale
		c.looseLabels[id] = perLocaleLoose
	}

	return c, nil
}

// Locales returns the supported locales in declaration order.
func (c *Catalog) Locales() []Locale {
	out := make([]Locale, len(c.locales))
	copy(out, c.locales)
	return out
}

// Locale looks up a locale by code.
func (c *Catalog) Locale(code string) (Locale, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return Locale{}, false
	}
	return c.locales[i], true
}

// Labels returns the option labels of a question in one locale.
func (c *Catalog) Labels(id QuestionID, locale string) []string {
	i, ok := c.byCode[locale]
	if !ok {
		return nil
	}
	labels := c.labels[id][i]
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}
