// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schemacheck

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/jeniaquome/pioneer-mockup-sub002/structdata"
)

// Printer renders a report. Findings go to Err; progress and summary lines
// go to Out unless Quiet is set.
type Printer struct {
	Out   io.Writer
	Err   io.Writer
	Quiet bool
}

func (p Printer) info(format string, args ...any) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(p.Out, format, args...)
}

// Header prints the banner shown before a run starts.
func (p Printer) Header() {
	p.info("🔍 Validating JSON-LD schemas for GEO compliance...\n\n")
}

// Print writes the per-file findings, the sample report and the summary.
func (p Printer) Print(r *Report) {
	p.info("📋 Checking %d component files...\n\n", r.Scanned)

	for _, f := range r.Files {
		if len(f.Errors) == 0 {
			continue
		}
		fmt.Fprintf(p.Err, "❌ %s:\n", f.File)
		for _, e := range f.Errors {
			fmt.Fprintf(p.Err, "   - %s\n", e)
		}
	}

	p.info("\n📊 Validating schema structure patterns...\n\n")
	if !r.Samples.Valid || len(r.Samples.Warnings) > 0 {
		fmt.Fprintln(p.Err, structdata.FormatValidationErrors(r.Samples))
	} else {
		p.info("✅ Sample schema structures are valid\n")
	}

	p.info("\n📈 Summary:\n")
	p.info("   Files with schemas: %d\n", len(r.Files))
	p.info("   Files with errors: %d\n", r.FilesWithErrors())
	p.info("   Bytes scanned: %s\n", humanize.Bytes(uint64(r.BytesScanned)))

	if r.HasErrors() {
		fmt.Fprintln(p.Err, "\n❌ Schema validation failed! Please fix the errors above.")
		return
	}
	p.info("\n✅ All schemas validated successfully!\n")
}
