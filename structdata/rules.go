// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package structdata

// TypeRule lists the fields a linked-data type must or should carry.
type TypeRule struct {
	// Required fields produce an error when absent.
	Required []string
	// Recommended fields produce a warning when absent.
	Recommended []string
	// Lists are required and must hold a JSON array.
	Lists []string
}

// typeRules is keyed by @type. Types not listed get no type-specific checks.
var typeRules = map[string]TypeRule{
	"Organization":        {Required: []string{"name"}},
	"WebSite":             {Recommended: []string{"name", "url"}},
	"SoftwareApplication": {Required: []string{"name"}},
	"Service":             {Recommended: []string{"serviceType"}},
	"CollectionPage":      {Recommended: []string{"name"}},
	"BreadcrumbList":      {Lists: []string{"itemListElement"}},
	"LocalBusiness":       {Required: []string{"name"}},
}

// Rule returns the rule for a type name.
func Rule(typeName string) (TypeRule, bool) {
	r, ok := typeRules[typeName]
	return r, ok
}

// Fields conventionally holding URLs; string values must be absolute.
var urlFields = []string{"url", "logo", "image", "sameAs"}
