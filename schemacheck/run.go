// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schemacheck

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jeniaquome/pioneer-mockup-sub002/structdata"
)

// ErrValidationFailed is returned when a run found at least one error.
var ErrValidationFailed = errors.New("schema validation failed")

type Options struct {
	Dir     string
	Exts    []string
	Samples []any
	Strict  bool
	// Concurrency caps parallel file checks; zero means one per CPU.
	Concurrency int
}

// Report collects the findings of one run.
type Report struct {
	// Files holds only the files that use structured data, in walk order.
	Files        []FileCheck
	Scanned      int
	BytesScanned int64
	Samples      structdata.Result
}

// FilesWithErrors counts the files that have at least one error.
func (r *Report) FilesWithErrors() int {
	n := 0
	for _, f := range r.Files {
		if len(f.Errors) > 0 {
			n++
		}
	}
	return n
}

func (r *Report) HasErrors() bool {
	return r.FilesWithErrors() > 0 || !r.Samples.Valid
}

// Run checks every source file under opts.Dir and validates the sample
// documents. File names in the report are relative to opts.Dir.
func Run(ctx context.Context, opts Options) (*Report, error) {
	exts := opts.Exts
	if len(exts) == 0 {
		exts = DefaultExts
	}
	files, err := FindSourceFiles(opts.Dir, exts)
	if err != nil {
		return nil, err
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	checks := make([]FileCheck, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rel, err := filepath.Rel(opts.Dir, path)
			if err != nil {
				rel = path
			}
			check, err := CheckFile(path, filepath.ToSlash(rel))
			if err != nil {
				return err
			}
			checks[i] = check
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Scanned: len(files), Files: []FileCheck{}}
	for _, c := range checks {
		report.BytesScanned += c.Size
		if c.HasSchema {
			report.Files = append(report.Files, c)
		}
	}

	samples := opts.Samples
	if samples == nil {
		samples = DefaultSamples()
	}
	report.Samples = ValidateSamples(samples, opts.Strict)

	return report, nil
}
