package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/oasmerge"
	"github.com/erraggy/oasmerge/merger"
	"github.com/erraggy/oasmerge/parser"
)

// MergeFlags contains flags for the merge command
type MergeFlags struct {
	Output         string
	Format         string
	SanitizeTitles bool
	AlwaysRename   bool
	Quiet          bool
}

// SetupMergeFlags creates and configures a FlagSet for the merge command.
// Returns the FlagSet and a MergeFlags struct with bound flag variables.
func SetupMergeFlags() (*flag.FlagSet, *MergeFlags) {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	flags := &MergeFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: format of the first input)")
	fs.BoolVar(&flags.SanitizeTitles, "sanitize-titles", false, "sanitize document titles before using them as rename prefixes")
	fs.BoolVar(&flags.AlwaysRename, "always-rename", false, "namespace every later-document schema, not just colliding ones")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages (for pipelining)")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages (for pipelining)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasmerge merge [flags] <file1> <file2> [file3...]\n\n")
		Writef(fs.Output(), "Merge multiple OpenAPI specification files into a single document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nMerge Semantics:\n")
		Writef(fs.Output(), "  Documents are folded left to right. Colliding schema definitions from\n")
		Writef(fs.Output(), "  later documents are renamed to <title>_<name> and every $ref to them is\n")
		Writef(fs.Output(), "  rewritten. Paths are prefixed with each document's basePath, and a\n")
		Writef(fs.Output(), "  document's global security is injected into its own operations.\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasmerge merge -o merged.yaml users.yaml billing.yaml\n")
		Writef(fs.Output(), "  oasmerge merge --sanitize-titles -o api.json spec1.json spec2.json\n")
		Writef(fs.Output(), "  oasmerge merge -q base.yaml ext.yaml > merged.yaml\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - All input files must declare the same version\n")
		Writef(fs.Output(), "  - Conflicting security definitions or duplicate paths abort the merge\n")
		Writef(fs.Output(), "  - When -o is specified, the file is written with restrictive permissions (0600)\n")
	}

	return fs, flags
}

// HandleMerge executes the merge command
func HandleMerge(args []string) error {
	fs, flags := SetupMergeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("merge command requires at least 2 input files")
	}

	filePaths := fs.Args()

	if flags.Format != "" && flags.Format != FormatJSON && flags.Format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", flags.Format, FormatJSON, FormatYAML)
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, filePaths); err != nil {
			return err
		}
	}

	ctx := context.Background()
	startTime := time.Now()

	docs := make([]*parser.Document, 0, len(filePaths))
	var firstFormat parser.SourceFormat
	for i, path := range filePaths {
		result, err := parser.Parse(ctx, path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		if i == 0 {
			firstFormat = result.SourceFormat
		}
		docs = append(docs, result.Document)
	}

	m := merger.New(
		merger.WithSanitizeTitles(flags.SanitizeTitles),
		merger.WithAlwaysRename(flags.AlwaysRename),
	)
	merged, err := m.Merge(docs)
	if err != nil {
		return fmt.Errorf("merging specifications: %w", err)
	}
	totalTime := time.Since(startTime)

	format := documentFormat(flags.Format, firstFormat)

	if flags.Output != "" {
		if err := merger.WriteDocument(merged, format, flags.Output); err != nil {
			return err
		}
	} else {
		data, err := merger.MarshalDocument(merged, format)
		if err != nil {
			return fmt.Errorf("marshaling merged document: %w", err)
		}
		fmt.Println(string(data))
	}

	// Diagnostics go to stderr to keep stdout clean for pipelining.
	if !flags.Quiet {
		Writef(os.Stderr, "OpenAPI Specification Merger\n")
		Writef(os.Stderr, "============================\n\n")
		Writef(os.Stderr, "oasmerge version: %s\n", oasmerge.Version())
		Writef(os.Stderr, "Successfully merged %d specification files\n", len(filePaths))
		if flags.Output != "" {
			Writef(os.Stderr, "Output: %s\n", flags.Output)
		} else {
			Writef(os.Stderr, "Output: <stdout>\n")
		}
		if v := merged.VersionTag(); v != "" {
			Writef(os.Stderr, "Version: %s\n", v)
		}
		Writef(os.Stderr, "Paths: %d\n", len(merged.Paths))
		Writef(os.Stderr, "Definitions: %d\n", len(merged.SchemaDefinitions()))
		Writef(os.Stderr, "Tags: %d\n", len(merged.Tags))
		Writef(os.Stderr, "Total Time: %v\n", totalTime)
	}

	return nil
}
