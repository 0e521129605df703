// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schemacheck

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jeniaquome/pioneer-mockup-sub002/structdata"
)

// DefaultExts are the source extensions scanned when none are given.
var DefaultExts = []string{".ts", ".tsx"}

// Directory names never descended into, besides hidden ones.
var skipDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"lib":          true,
}

var (
	// A url-like property assigned a quoted literal. Absolute values are
	// filtered out after matching.
	urlProperty = regexp.MustCompile("(?:url|logo|image|sameAs)\\s*:\\s*['\"`]([^'\"`]+)['\"`]")
	nameKey     = regexp.MustCompile(`\bname\s*:`)
)

// FileCheck is the outcome of the textual checks on one source file.
type FileCheck struct {
	File       string   `json:"file"`
	Size       int64    `json:"size"`
	HasSchema  bool     `json:"has_schema"`
	HasContext bool     `json:"has_context"`
	HasType    bool     `json:"has_type"`
	HasGraph   bool     `json:"has_graph"`
	Errors     []string `json:"errors"`
}

// FindSourceFiles walks dir and returns every file whose extension is in
// exts, in lexical order. Hidden directories, node_modules, dist and lib are
// skipped.
func FindSourceFiles(dir string, exts []string) ([]string, error) {
	want := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		want[ext] = true
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && (strings.HasPrefix(d.Name(), ".") || skipDirs[d.Name()]) {
				return filepath.SkipDir
			}
			return nil
		}
		if want[filepath.Ext(path)] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return files, nil
}

// CheckContent runs the textual structured-data checks on source text.
// Files that mention neither StructuredData nor @context have no schema and
// no errors.
func CheckContent(file, content string) FileCheck {
	check := FileCheck{File: file, Size: int64(len(content)), Errors: []string{}}

	if !strings.Contains(content, "StructuredData") && !strings.Contains(content, "@context") {
		return check
	}
	check.HasSchema = true

	if strings.Contains(content, "@context") {
		check.HasContext = true
		if !strings.Contains(content, `"`+structdata.SchemaOrgContext+`"`) &&
			!strings.Contains(content, `'`+structdata.SchemaOrgContext+`'`) {
			check.Errors = append(check.Errors, `@context must be "`+structdata.SchemaOrgContext+`"`)
		}
	} else {
		check.Errors = append(check.Errors, "Schema missing @context field")
	}

	switch {
	case strings.Contains(content, "@graph"):
		check.HasGraph = true
	case strings.Contains(content, "@type"):
		check.HasType = true
	case check.HasContext:
		check.Errors = append(check.Errors, "Schema must have either @type or @graph")
	}

	hasType := strings.Contains(content, "@type")
	for _, typeName := range []string{"Organization", "SoftwareApplication"} {
		if hasType && strings.Contains(content, typeName) && !hasName(content) {
			check.Errors = append(check.Errors, typeName+` schema should have "name" field`)
		}
	}
	if hasType && strings.Contains(content, "BreadcrumbList") && !strings.Contains(content, "itemListElement") {
		check.Errors = append(check.Errors, `BreadcrumbList schema should have "itemListElement" field`)
	}

	for _, m := range urlProperty.FindAllStringSubmatch(content, -1) {
		url := m[1]
		if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
			continue
		}
		// Template expressions are resolved at runtime.
		if strings.Contains(url, "${") || strings.Contains(url, "`") {
			continue
		}
		check.Errors = append(check.Errors, "URL should be absolute (start with http:// or https://): "+url)
	}

	return check
}

func hasName(content string) bool {
	return strings.Contains(content, `"name"`) ||
		strings.Contains(content, `'name'`) ||
		nameKey.MatchString(content)
}

// CheckFile reads path and checks it, reporting it under the name file.
func CheckFile(path, file string) (FileCheck, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileCheck{}, fmt.Errorf("read %s: %w", path, err)
	}
	return CheckContent(file, string(content)), nil
}
