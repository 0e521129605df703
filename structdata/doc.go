// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package structdata validates JSON-LD structured data before it is emitted into
page markup.

# Checks

ValidateSchema runs these checks in order and collects every finding:

 1. the document must marshal as JSON; if not, a single invalid_json error is
    returned and nothing else is checked
 2. @context must be "https://schema.org", unless inherited from a parent @graph
 3. @type is required and must be a string, unless @graph is present
 4. @graph must be a non-empty array; each item needs @type or @id and is
    validated recursively with the context inherited
 5. per-type field rules (see Rule): missing required fields are errors,
    missing recommended fields are warnings
 6. url, logo, image and sameAs strings must start with http:// or https://

Presence follows JavaScript truthiness: null, false, "" and 0 count as absent.
Documents that are not JSON objects are checked as empty objects.

A Result is valid when it has no errors. Warnings never affect validity.

# Contract

Contract adds a JSON Schema check of the node shape (types of @id, @graph,
name, URL fields, breadcrumb list items). ValidateSchemaStrict and
ValidateSchemasStrict append its findings to the errors.

# Output

FormatValidationErrors renders a Result as the numbered console report used by
the validate-schemas command.
*/
package structdata
