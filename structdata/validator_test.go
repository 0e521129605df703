// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package structdata

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc = map[string]any

func codes(errs []ValidationError) []Code {
	out := make([]Code, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestValidateSchema_EmptyObject(t *testing.T) {
	res := ValidateSchema(doc{}, "", "")

	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, []Code{CodeMissingContext, CodeMissingType}, codes(res.Errors))
	assert.Equal(t, `Missing required @context field. Must be "https://schema.org"`, res.Errors[0].Message)
	assert.Equal(t, "Missing required @type field", res.Errors[1].Message)
	assert.Equal(t, "root", res.Errors[0].Path)
	assert.Empty(t, res.Warnings)
}

func TestValidateSchema_OrganizationWithoutName(t *testing.T) {
	res := ValidateSchema(doc{"@context": "https://schema.org", "@type": "Organization"}, "root", "")

	require.Len(t, res.Errors, 1)
	assert.Equal(t, ValidationError{
		Path:    "root",
		Message: `Organization schema missing required "name" field`,
		Code:    CodeMissingRequiredField,
	}, res.Errors[0])
}

func TestValidateSchema_Valid(t *testing.T) {
	res := ValidateSchema(doc{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     "Pittsburgh Tomorrow",
		"url":      "https://www.pittsburghpioneer.com",
		"sameAs":   []any{"https://example.org/a", "http://example.org/b"},
	}, "", "")

	assert.True(t, res.Valid)
	assert.NotNil(t, res.Errors)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestValidateSchema_Context(t *testing.T) {
	tests := []struct {
		name    string
		context any
		code    Code
		message string
	}{
		{"missing", nil, CodeMissingContext, `Missing required @context field. Must be "https://schema.org"`},
		{"empty string", "", CodeMissingContext, `Missing required @context field. Must be "https://schema.org"`},
		{"http", "http://schema.org", CodeInvalidContext, `Invalid @context: "http://schema.org". Must be "https://schema.org"`},
		{"trailing slash", "https://schema.org/", CodeInvalidContext, `Invalid @context: "https://schema.org/". Must be "https://schema.org"`},
		{"object", doc{"@vocab": "https://schema.org"}, CodeInvalidContext, `Invalid @context: "[object Object]". Must be "https://schema.org"`},
		{"array", []any{"https://schema.org", "x"}, CodeInvalidContext, `Invalid @context: "https://schema.org,x". Must be "https://schema.org"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := doc{"@type": "Thing"}
			if tt.context != nil {
				d["@context"] = tt.context
			}
			res := ValidateSchema(d, "", "")
			require.Len(t, res.Errors, 1)
			assert.Equal(t, tt.code, res.Errors[0].Code)
			assert.Equal(t, tt.message, res.Errors[0].Message)
			if tt.code == CodeInvalidContext {
				assert.Equal(t, tt.context, res.Errors[0].Value)
			}
		})
	}
}

func TestValidateSchema_InheritedContextSkipsContextCheck(t *testing.T) {
	res := ValidateSchema(doc{"@type": "Thing"}, "parent.@graph[0]", "https://schema.org")
	assert.True(t, res.Valid)
}

func TestValidateSchema_Type(t *testing.T) {
	tests := []struct {
		name    string
		typ     any
		code    Code
		message string
	}{
		{"zero", float64(0), CodeMissingType, "Missing required @type field"},
		{"false", false, CodeMissingType, "Missing required @type field"},
		{"array", []any{"Organization", "Thing"}, CodeInvalidType, "@type must be a string, got object"},
		{"number", float64(7), CodeInvalidType, "@type must be a string, got number"},
		{"boolean", true, CodeInvalidType, "@type must be a string, got boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateSchema(doc{"@context": SchemaOrgContext, "@type": tt.typ}, "", "")
			require.Len(t, res.Errors, 1)
			assert.Equal(t, tt.code, res.Errors[0].Code)
			assert.Equal(t, tt.message, res.Errors[0].Message)
		})
	}
}

func TestValidateSchema_UnknownTypeHasNoRules(t *testing.T) {
	res := ValidateSchema(doc{"@context": SchemaOrgContext, "@type": "Event"}, "", "")
	assert.True(t, res.Valid)
	assert.Empty(t, res.Warnings)
}

func TestValidateSchema_Graph(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		res := ValidateSchema(doc{"@context": SchemaOrgContext, "@graph": []any{}}, "", "")
		require.Len(t, res.Errors, 1)
		assert.Equal(t, CodeEmptyGraph, res.Errors[0].Code)
		assert.Equal(t, "@graph array cannot be empty", res.Errors[0].Message)
	})

	t.Run("not an array", func(t *testing.T) {
		res := ValidateSchema(doc{"@context": SchemaOrgContext, "@graph": doc{"@type": "Thing"}}, "", "")
		require.Len(t, res.Errors, 1)
		assert.Equal(t, CodeInvalidGraph, res.Errors[0].Code)
		assert.Equal(t, "@graph must be an array", res.Errors[0].Message)
		assert.Equal(t, doc{"@type": "Thing"}, res.Errors[0].Value)
	})

	t.Run("null graph means no graph", func(t *testing.T) {
		res := ValidateSchema(doc{"@context": SchemaOrgContext, "@graph": nil}, "", "")
		assert.Equal(t, []Code{CodeMissingType}, codes(res.Errors))
	})

	t.Run("items inherit context", func(t *testing.T) {
		res := ValidateSchema(doc{
			"@context": SchemaOrgContext,
			"@graph": []any{
				doc{"@id": "https://www.pittsburghpioneer.com/#organization", "@type": "Organization", "name": "Pittsburgh Tomorrow"},
				doc{"@type": "WebSite", "name": "Pioneer", "url": "https://www.pittsburghpioneer.com/"},
			},
		}, "", "")
		assert.True(t, res.Valid, "%v", res.Errors)
		assert.Empty(t, res.Warnings)
	})

	t.Run("items without context inherit from a root without context", func(t *testing.T) {
		res := ValidateSchema(doc{"@graph": []any{doc{"@type": "Thing"}}}, "", "")
		assert.Equal(t, []Code{CodeMissingContext}, codes(res.Errors))
		assert.Equal(t, "root", res.Errors[0].Path)
	})

	t.Run("unidentified item", func(t *testing.T) {
		res := ValidateSchema(doc{"@context": SchemaOrgContext, "@graph": []any{doc{"name": "x"}}}, "", "")
		assert.Equal(t, []Code{CodeGraphItemUnidentified, CodeMissingType}, codes(res.Errors))
		assert.Equal(t, "root.@graph[0]", res.Errors[0].Path)
		assert.Equal(t, "Each @graph item must have either @type or @id", res.Errors[0].Message)
		assert.Equal(t, "root.@graph[0]", res.Errors[1].Path)
	})

	t.Run("item with only an id still needs a type", func(t *testing.T) {
		res := ValidateSchema(doc{"@context": SchemaOrgContext, "@graph": []any{doc{"@id": "#a"}}}, "", "")
		assert.Equal(t, []Code{CodeMissingType}, codes(res.Errors))
	})

	t.Run("nested findings carry the item path", func(t *testing.T) {
		res := ValidateSchema(doc{
			"@context": SchemaOrgContext,
			"@graph": []any{
				doc{"@type": "Thing"},
				doc{"@type": "WebSite", "logo": "/logo.png"},
				doc{"@type": "CollectionPage", "@graph": []any{doc{"@type": "Organization"}}},
			},
		}, "page", "")

		assert.Equal(t, []Code{CodeRelativeURL, CodeMissingRequiredField}, codes(res.Errors))
		assert.Equal(t, "page.@graph[1].logo", res.Errors[0].Path)
		assert.Equal(t, "page.@graph[2].@graph[0]", res.Errors[1].Path)

		var warned []string
		for _, w := range res.Warnings {
			warned = append(warned, w.Path+" "+w.Message)
		}
		want := []string{
			`page.@graph[1] WebSite schema should have "name" field`,
			`page.@graph[1] WebSite schema should have "url" field`,
			`page.@graph[2] CollectionPage schema should have "name" field`,
		}
		if diff := cmp.Diff(want, warned); diff != "" {
			t.Errorf("warnings mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestValidateSchema_TypeRules(t *testing.T) {
	tests := []struct {
		name     string
		doc      doc
		errors   []string
		warnings []string
	}{
		{
			name:   "software application",
			doc:    doc{"@type": "SoftwareApplication"},
			errors: []string{`SoftwareApplication schema missing required "name" field`},
		},
		{
			name:   "local business with empty name",
			doc:    doc{"@type": "LocalBusiness", "name": ""},
			errors: []string{`LocalBusiness schema missing required "name" field`},
		},
		{
			name:     "website",
			doc:      doc{"@type": "WebSite"},
			warnings: []string{`WebSite schema should have "name" field`, `WebSite schema should have "url" field`},
		},
		{
			name:     "service",
			doc:      doc{"@type": "Service", "name": "Housing help"},
			warnings: []string{`Service schema should have "serviceType" field`},
		},
		{
			name: "service with type",
			doc:  doc{"@type": "Service", "serviceType": "Housing"},
		},
		{
			name:     "collection page",
			doc:      doc{"@type": "CollectionPage"},
			warnings: []string{`CollectionPage schema should have "name" field`},
		},
		{
			name:   "breadcrumb missing list",
			doc:    doc{"@type": "BreadcrumbList"},
			errors: []string{`BreadcrumbList schema missing required "itemListElement" array`},
		},
		{
			name:   "breadcrumb list is not an array",
			doc:    doc{"@type": "BreadcrumbList", "itemListElement": "a"},
			errors: []string{`BreadcrumbList schema missing required "itemListElement" array`},
		},
		{
			name: "breadcrumb with array",
			doc:  doc{"@type": "BreadcrumbList", "itemListElement": []any{"a"}},
		},
		{
			name: "breadcrumb with empty array",
			doc:  doc{"@type": "BreadcrumbList", "itemListElement": []any{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.doc["@context"] = SchemaOrgContext
			res := ValidateSchema(tt.doc, "", "")

			var gotErrors, gotWarnings []string
			for _, e := range res.Errors {
				gotErrors = append(gotErrors, e.Message)
			}
			for _, w := range res.Warnings {
				gotWarnings = append(gotWarnings, w.Message)
			}
			assert.Equal(t, tt.errors, gotErrors)
			assert.Equal(t, tt.warnings, gotWarnings)
			assert.Equal(t, len(tt.errors) == 0, res.Valid)
		})
	}
}

func TestValidateSchema_BreadcrumbCodes(t *testing.T) {
	res := ValidateSchema(doc{"@context": SchemaOrgContext, "@type": "BreadcrumbList"}, "", "")
	assert.Equal(t, []Code{CodeMissingRequiredField}, codes(res.Errors))

	res = ValidateSchema(doc{"@context": SchemaOrgContext, "@type": "BreadcrumbList", "itemListElement": doc{}}, "", "")
	assert.Equal(t, []Code{CodeInvalidRequiredField}, codes(res.Errors))
}

func TestValidateSchema_URLs(t *testing.T) {
	base := func(field string, v any) doc {
		return doc{"@context": SchemaOrgContext, "@type": "Thing", field: v}
	}

	t.Run("relative logo", func(t *testing.T) {
		res := ValidateSchema(base("logo", "www.example.com/x.png"), "", "")
		require.Len(t, res.Errors, 1)
		assert.Equal(t, ValidationError{
			Path:    "root.logo",
			Message: `URL must be absolute (start with http:// or https://), got: "www.example.com/x.png"`,
			Value:   "www.example.com/x.png",
			Code:    CodeRelativeURL,
		}, res.Errors[0])
	})

	t.Run("absolute logo", func(t *testing.T) {
		res := ValidateSchema(base("logo", "https://example.com/x.png"), "", "")
		assert.True(t, res.Valid)
	})

	t.Run("sameAs elements", func(t *testing.T) {
		res := ValidateSchema(base("sameAs", []any{"https://a.example", "b.example", float64(3), "ftp://c.example"}), "", "")
		require.Len(t, res.Errors, 2)
		assert.Equal(t, "root.sameAs[1]", res.Errors[0].Path)
		assert.Equal(t, "root.sameAs[3]", res.Errors[1].Path)
	})

	t.Run("image object is not checked", func(t *testing.T) {
		res := ValidateSchema(base("image", doc{"url": "relative.png"}), "", "")
		assert.True(t, res.Valid)
	})

	t.Run("empty string is absent", func(t *testing.T) {
		res := ValidateSchema(base("url", ""), "", "")
		assert.True(t, res.Valid)
	})

	t.Run("scheme is case sensitive", func(t *testing.T) {
		res := ValidateSchema(base("url", "HTTPS://example.com"), "", "")
		assert.Equal(t, []Code{CodeRelativeURL}, codes(res.Errors))
	})
}

func TestValidateSchema_InvalidJSON(t *testing.T) {
	res := ValidateSchema(doc{"@context": SchemaOrgContext, "value": math.Inf(1)}, "page", "")

	require.Len(t, res.Errors, 1)
	assert.False(t, res.Valid)
	assert.Equal(t, CodeInvalidJSON, res.Errors[0].Code)
	assert.Equal(t, "root", res.Errors[0].Path)
	assert.True(t, strings.HasPrefix(res.Errors[0].Message, "Invalid JSON structure: "))
}

func TestValidateSchema_NonObjectDocuments(t *testing.T) {
	for _, d := range []any{nil, "Organization", float64(1), []any{doc{"@type": "Thing"}}} {
		res := ValidateSchema(d, "", "")
		assert.Equal(t, []Code{CodeMissingContext, CodeMissingType}, codes(res.Errors), "%v", d)
	}
}

func TestValidateSchema_Structs(t *testing.T) {
	type org struct {
		Context string `json:"@context"`
		Type    string `json:"@type"`
		Name    string `json:"name,omitempty"`
	}

	res := ValidateSchema(org{Context: SchemaOrgContext, Type: "Organization"}, "", "")
	assert.Equal(t, []Code{CodeMissingRequiredField}, codes(res.Errors))
}

func TestValidateSchemas(t *testing.T) {
	valid := doc{"@context": SchemaOrgContext, "@type": "Organization", "name": "Pittsburgh Tomorrow"}
	invalid := doc{"@type": "Organization"}

	res := ValidateSchemas([]any{valid, invalid})

	assert.False(t, res.Valid)
	require.NotEmpty(t, res.Errors)
	for _, e := range res.Errors {
		assert.True(t, strings.HasPrefix(e.Path, "schema[1]"), e.Path)
	}
	assert.Len(t, res.Errors, 2)
}

func TestValidateSchemas_NoSharedContext(t *testing.T) {
	res := ValidateSchemas([]any{
		doc{"@context": SchemaOrgContext, "@type": "Thing"},
		doc{"@type": "Thing"},
	})
	assert.Equal(t, []Code{CodeMissingContext}, codes(res.Errors))
	assert.Equal(t, "schema[1]", res.Errors[0].Path)
}

func TestValidateSchemas_Empty(t *testing.T) {
	res := ValidateSchemas(nil)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestRule(t *testing.T) {
	r, ok := Rule("BreadcrumbList")
	require.True(t, ok)
	assert.Equal(t, []string{"itemListElement"}, r.Lists)

	_, ok = Rule("Event")
	assert.False(t, ok)
}
