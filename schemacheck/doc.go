// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schemacheck is the build-time gate for structured data in page sources.

Run walks a source tree, applies cheap textual checks to every file that
embeds JSON-LD, and validates a set of sample documents with structdata:

	report, err := schemacheck.Run(ctx, schemacheck.Options{Dir: "src/pages"})
	if err != nil {
		return err
	}
	schemacheck.Printer{Out: os.Stdout, Err: os.Stderr}.Print(report)
	if report.HasErrors() {
		return schemacheck.ErrValidationFailed
	}

The textual checks only look for tokens in the source; they do not parse it.
*/
package schemacheck
