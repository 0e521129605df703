// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package structdata

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed jsonld.schema.json
var contractSchema []byte

const contractURL = "https://schemas.pittsburghpioneer.com/structdata/jsonld.schema.json"

// Contract checks documents against a JSON Schema describing the shape of
// linked-data nodes. It is safe for concurrent use.
type Contract struct {
	schema *jsonschema.Schema
}

// NewContract compiles a JSON Schema document read from r.
func NewContract(r io.Reader) (*Contract, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(contractURL, r); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(contractURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Contract{schema: schema}, nil
}

var defaultContract = sync.OnceValue(func() *Contract {
	c, err := NewContract(bytes.NewReader(contractSchema))
	if err != nil {
		panic(fmt.Sprintf("structdata: embedded contract: %v", err))
	}
	return c
})

// DefaultContract returns the contract compiled into the binary.
func DefaultContract() *Contract {
	return defaultContract()
}

// Check returns one finding per schema violation, located under path ("root"
// when empty).
func (c *Contract) Check(doc any, path string) []ValidationError {
	if path == "" {
		path = "root"
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return []ValidationError{{Path: "root", Message: "Invalid JSON structure: " + err.Error(), Code: CodeInvalidJSON}}
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return []ValidationError{{Path: "root", Message: "Invalid JSON structure: " + err.Error(), Code: CodeInvalidJSON}}
	}

	err = c.schema.Validate(decoded)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []ValidationError{{Path: path, Message: err.Error(), Code: CodeContract}}
	}

	var out []ValidationError
	seen := make(map[string]bool)
	for _, leaf := range leaves(ve) {
		finding := ValidationError{
			Path:    joinPointer(path, leaf.InstanceLocation),
			Message: leaf.Message,
			Code:    CodeContract,
		}
		key := finding.Path + "\x00" + finding.Message
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, finding)
	}
	return out
}

func leaves(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var out []*jsonschema.ValidationError
	for _, cause := range ve.Causes {
		out = append(out, leaves(cause)...)
	}
	return out
}

// joinPointer appends a JSON Pointer to a finding path: /@graph/0/name
// becomes .@graph[0].name.
func joinPointer(path, pointer string) string {
	if pointer == "" || pointer == "/" {
		return path
	}
	var b strings.Builder
	b.WriteString(path)
	for _, tok := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		tok = strings.ReplaceAll(tok, "~1", "/")
		tok = strings.ReplaceAll(tok, "~0", "~")
		if _, err := strconv.Atoi(tok); err == nil {
			b.WriteString("[" + tok + "]")
			continue
		}
		b.WriteString("." + tok)
	}
	return b.String()
}

// ValidateSchemaStrict runs ValidateSchema and appends contract findings to
// the errors.
func ValidateSchemaStrict(doc any, path string) Result {
	res := ValidateSchema(doc, path, "")
	if len(res.Errors) == 1 && res.Errors[0].Code == CodeInvalidJSON {
		return res
	}
	res.Errors = append(res.Errors, DefaultContract().Check(doc, path)...)
	res.Valid = len(res.Errors) == 0
	return res
}

// ValidateSchemasStrict is ValidateSchemas with contract findings.
func ValidateSchemasStrict(docs []any) Result {
	res := newResult()
	for i, doc := range docs {
		res.merge(ValidateSchemaStrict(doc, fmt.Sprintf("schema[%d]", i)))
	}
	res.Valid = len(res.Errors) == 0
	return res
}
