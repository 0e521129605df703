// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package structdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FormatValidationErrors renders a result as a numbered console report.
func FormatValidationErrors(r Result) string {
	if r.Valid && len(r.Warnings) == 0 {
		return "✅ All schemas are valid!"
	}

	var lines []string
	if len(r.Errors) > 0 {
		lines = append(lines, fmt.Sprintf("❌ Found %d error(s):", len(r.Errors)))
		for i, e := range r.Errors {
			lines = append(lines, fmt.Sprintf("  %d. [%s] %s", i+1, e.Path, e.Message))
			if e.Value != nil {
				lines = append(lines, "     Value: "+compactJSON(e.Value))
			}
		}
	}
	if len(r.Warnings) > 0 {
		lines = append(lines, fmt.Sprintf("\n⚠️  Found %d warning(s):", len(r.Warnings)))
		for i, w := range r.Warnings {
			lines = append(lines, fmt.Sprintf("  %d. [%s] %s", i+1, w.Path, w.Message))
		}
	}
	return strings.Join(lines, "\n")
}

func compactJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimRight(buf.String(), "\n")
}
