// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package structdata

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SchemaOrgContext is the only accepted @context value.
const SchemaOrgContext = "https://schema.org"

// Code classifies a finding.
type Code string

const (
	CodeInvalidJSON           Code = "invalid_json"
	CodeMissingContext        Code = "missing_context"
	CodeInvalidContext        Code = "invalid_context"
	CodeMissingType           Code = "missing_type"
	CodeInvalidType           Code = "invalid_type"
	CodeInvalidGraph          Code = "invalid_graph"
	CodeEmptyGraph            Code = "empty_graph"
	CodeGraphItemUnidentified Code = "graph_item_unidentified"
	CodeMissingRequiredField  Code = "missing_required_field"
	CodeInvalidRequiredField  Code = "invalid_required_field"
	CodeMissingRecommended    Code = "missing_recommended_field"
	CodeRelativeURL           Code = "relative_url"
	CodeContract              Code = "contract"
)

// ValidationError is one finding. Value holds the offending value when there
// is one.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
	Code    Code   `json:"code"`
}

// Result is the outcome of validating one or more documents. Valid is true
// when Errors is empty; warnings never affect it.
type Result struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
}

func newResult() Result {
	return Result{Errors: []ValidationError{}, Warnings: []ValidationError{}}
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Valid = len(r.Errors) == 0
}

// ValidateSchema checks a JSON-LD document. path names the document in
// findings ("root" when empty). A non-empty inheritedContext means the document
// sits inside a parent @graph, so its own @context is not checked.
//
// doc may be any value encoding/json can marshal. Values that are not JSON
// objects are checked as if they were empty objects.
func ValidateSchema(doc any, path, inheritedContext string) Result {
	if path == "" {
		path = "root"
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		res := newResult()
		res.Errors = append(res.Errors, ValidationError{
			Path:    "root",
			Message: "Invalid JSON structure: " + err.Error(),
			Code:    CodeInvalidJSON,
		})
		return res
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		res := newResult()
		res.Errors = append(res.Errors, ValidationError{
			Path:    "root",
			Message: "Invalid JSON structure: " + err.Error(),
			Code:    CodeInvalidJSON,
		})
		return res
	}

	return validateNode(decoded, path, inheritedContext != "")
}

// ValidateSchemas validates each document independently under the path
// schema[i] and concatenates the findings.
func ValidateSchemas(docs []any) Result {
	res := newResult()
	for i, doc := range docs {
		res.merge(ValidateSchema(doc, fmt.Sprintf("schema[%d]", i), ""))
	}
	res.Valid = len(res.Errors) == 0
	return res
}

func validateNode(v any, path string, inherited bool) Result {
	node, _ := v.(map[string]any)
	res := newResult()

	if !inherited {
		res.Errors = append(res.Errors, checkContext(node, path)...)
	}
	res.Errors = append(res.Errors, checkType(node, path)...)
	checkGraph(node, path, &res)
	checkTypeRule(node, path, &res)
	res.Errors = append(res.Errors, checkURLs(node, path)...)

	res.Valid = len(res.Errors) == 0
	return res
}

func checkContext(node map[string]any, path string) []ValidationError {
	ctx := node["@context"]
	if !truthy(ctx) {
		return []ValidationError{{
			Path:    path,
			Message: `Missing required @context field. Must be "` + SchemaOrgContext + `"`,
			Code:    CodeMissingContext,
		}}
	}
	if s, ok := ctx.(string); ok && s == SchemaOrgContext {
		return nil
	}
	return []ValidationError{{
		Path:    path,
		Message: fmt.Sprintf(`Invalid @context: "%s". Must be "%s"`, jsString(ctx), SchemaOrgContext),
		Value:   ctx,
		Code:    CodeInvalidContext,
	}}
}

func checkType(node map[string]any, path string) []ValidationError {
	if truthy(node["@graph"]) {
		return nil
	}
	typ := node["@type"]
	if !truthy(typ) {
		return []ValidationError{{
			Path:    path,
			Message: "Missing required @type field",
			Code:    CodeMissingType,
		}}
	}
	if _, ok := typ.(string); !ok {
		return []ValidationError{{
			Path:    path,
			Message: "@type must be a string, got " + jsTypeof(typ),
			Value:   typ,
			Code:    CodeInvalidType,
		}}
	}
	return nil
}

func checkGraph(node map[string]any, path string, res *Result) {
	graph := node["@graph"]
	if !truthy(graph) {
		return
	}
	items, ok := graph.([]any)
	if !ok {
		res.Errors = append(res.Errors, ValidationError{
			Path:    path,
			Message: "@graph must be an array",
			Value:   graph,
			Code:    CodeInvalidGraph,
		})
		return
	}
	if len(items) == 0 {
		res.Errors = append(res.Errors, ValidationError{
			Path:    path,
			Message: "@graph array cannot be empty",
			Code:    CodeEmptyGraph,
		})
	}

	for i, item := range items {
		itemPath := fmt.Sprintf("%s.@graph[%d]", path, i)
		fields, _ := item.(map[string]any)
		if !truthy(fields["@type"]) && !truthy(fields["@id"]) {
			res.Errors = append(res.Errors, ValidationError{
				Path:    itemPath,
				Message: "Each @graph item must have either @type or @id",
				Code:    CodeGraphItemUnidentified,
			})
		}
		nested := validateNode(item, itemPath, true)
		res.Errors = append(res.Errors, nested.Errors...)
		res.Warnings = append(res.Warnings, nested.Warnings...)
	}
}

func checkTypeRule(node map[string]any, path string, res *Result) {
	typ, ok := node["@type"].(string)
	if !ok {
		return
	}
	rule, ok := typeRules[typ]
	if !ok {
		return
	}

	for _, field := range rule.Required {
		if !truthy(node[field]) {
			res.Errors = append(res.Errors, ValidationError{
				Path:    path,
				Message: fmt.Sprintf(`%s schema missing required "%s" field`, typ, field),
				Code:    CodeMissingRequiredField,
			})
		}
	}
	for _, field := range rule.Lists {
		v := node[field]
		if _, isList := v.([]any); isList {
			continue
		}
		code := CodeMissingRequiredField
		if truthy(v) {
			code = CodeInvalidRequiredField
		}
		res.Errors = append(res.Errors, ValidationError{
			Path:    path,
			Message: fmt.Sprintf(`%s schema missing required "%s" array`, typ, field),
			Code:    code,
		})
	}
	for _, field := range rule.Recommended {
		if !truthy(node[field]) {
			res.Warnings = append(res.Warnings, ValidationError{
				Path:    path,
				Message: fmt.Sprintf(`%s schema should have "%s" field`, typ, field),
				Code:    CodeMissingRecommended,
			})
		}
	}
}

func checkURLs(node map[string]any, path string) []ValidationError {
	var errs []ValidationError
	for _, field := range urlFields {
		v := node[field]
		if !truthy(v) {
			continue
		}
		switch v := v.(type) {
		case []any:
			for i, el := range v {
				if s, ok := el.(string); ok && !isAbsoluteURL(s) {
					errs = append(errs, relativeURL(fmt.Sprintf("%s.%s[%d]", path, field, i), s))
				}
			}
		case string:
			if !isAbsoluteURL(v) {
				errs = append(errs, relativeURL(path+"."+field, v))
			}
		}
	}
	return errs
}

func relativeURL(path, url string) ValidationError {
	return ValidationError{
		Path:    path,
		Message: fmt.Sprintf(`URL must be absolute (start with http:// or https://), got: "%s"`, url),
		Value:   url,
		Code:    CodeRelativeURL,
	}
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// truthy follows JavaScript truthiness for decoded JSON values.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0 && !math.IsNaN(v)
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

// jsTypeof names a decoded JSON value the way JavaScript's typeof does.
func jsTypeof(v any) string {
	switch v.(type) {
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case string:
		return "string"
	default:
		return "object"
	}
}

// jsString renders a decoded JSON value the way JavaScript string
// interpolation does.
func jsString(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case []any:
		parts := make([]string, len(v))
		for i, el := range v {
			if el != nil {
				parts[i] = jsString(el)
			}
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}
