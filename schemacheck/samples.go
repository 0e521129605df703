// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schemacheck

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jeniaquome/pioneer-mockup-sub002/structdata"
)

//go:embed samples.yaml
var defaultSamples string

// DefaultSamples returns the embedded reference documents.
func DefaultSamples() []any {
	docs, err := LoadSamples(strings.NewReader(defaultSamples))
	if err != nil {
		panic(fmt.Sprintf("embedded samples: %v", err))
	}
	return docs
}

// LoadSamples decodes one document or a list of documents from JSON or YAML.
func LoadSamples(r io.Reader) ([]any, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no sample documents")
		}
		return nil, fmt.Errorf("decode samples: %w", err)
	}
	if list, ok := v.([]any); ok {
		return list, nil
	}
	return []any{v}, nil
}

// LoadSampleFile reads samples from path.
func LoadSampleFile(path string) ([]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadSamples(f)
}

// ValidateSamples validates each document under the path sample[i].
func ValidateSamples(docs []any, strict bool) structdata.Result {
	res := structdata.Result{Valid: true, Errors: []structdata.ValidationError{}, Warnings: []structdata.ValidationError{}}
	for i, doc := range docs {
		path := fmt.Sprintf("sample[%d]", i)
		var r structdata.Result
		if strict {
			r = structdata.ValidateSchemaStrict(doc, path)
		} else {
			r = structdata.ValidateSchema(doc, path, "")
		}
		res.Errors = append(res.Errors, r.Errors...)
		res.Warnings = append(res.Warnings, r.Warnings...)
	}
	res.Valid = len(res.Errors) == 0
	return res
}
