// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command validate-schemas checks structured data in page sources and exits
// non-zero when it finds an error.
//
//	validate-schemas [dir] [--ext .ts,.tsx] [--samples FILE] [--strict] [--quiet]
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeniaquome/pioneer-mockup-sub002/schemacheck"
)

const defaultDir = "src/pages"

type options struct {
	exts        []string
	samples     string
	strict      bool
	quiet       bool
	concurrency int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "validate-schemas [dir]",
		Short: "Validate JSON-LD structured data in page sources",
		Long: `Walks a source tree and checks every file that embeds JSON-LD for a
schema.org @context, a @type or @graph, required fields and absolute URLs,
then validates the sample documents. Exits 1 when anything fails.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := defaultDir
			if len(args) == 1 {
				dir = args[0]
			}
			return run(cmd, dir, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.exts, "ext", schemacheck.DefaultExts, "Source file extensions to scan")
	cmd.Flags().StringVar(&opts.samples, "samples", "", "JSON or YAML file of sample documents (default: built-in samples)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Also check samples against the JSON Schema contract")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only print findings")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "Files checked in parallel (default: one per CPU)")

	return cmd
}

func run(cmd *cobra.Command, dir string, opts *options) error {
	var samples []any
	if opts.samples != "" {
		docs, err := schemacheck.LoadSampleFile(opts.samples)
		if err != nil {
			return fmt.Errorf("load samples: %w", err)
		}
		samples = docs
	}

	printer := schemacheck.Printer{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr(), Quiet: opts.quiet}
	printer.Header()

	report, err := schemacheck.Run(cmd.Context(), schemacheck.Options{
		Dir:         dir,
		Exts:        opts.exts,
		Samples:     samples,
		Strict:      opts.strict,
		Concurrency: opts.concurrency,
	})
	if err != nil {
		return err
	}

	printer.Print(report)
	if report.HasErrors() {
		return schemacheck.ErrValidationFailed
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, schemacheck.ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
