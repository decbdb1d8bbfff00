package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oasmerge/parser"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Format string
	Full   bool
}

// parseSummary is the structured output of the parse command.
type parseSummary struct {
	Source          string   `json:"source"           yaml:"source"`
	Version         string   `json:"version,omitempty" yaml:"version,omitempty"`
	VersionFamily   string   `json:"version_family"   yaml:"version_family"`
	Title           string   `json:"title"            yaml:"title"`
	BasePath        string   `json:"base_path,omitempty" yaml:"base_path,omitempty"`
	PathCount       int      `json:"path_count"       yaml:"path_count"`
	DefinitionCount int      `json:"definition_count" yaml:"definition_count"`
	Tags            []string `json:"tags,omitempty"   yaml:"tags,omitempty"`
	Format          string   `json:"format"           yaml:"format"`
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Full, "full", false, "output the full parsed document instead of a summary")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasmerge parse [flags] <file|url>\n\n")
		Writef(fs.Output(), "Parse and display an OpenAPI specification document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasmerge parse swagger.yaml\n")
		Writef(fs.Output(), "  oasmerge parse --format json openapi.yaml\n")
		Writef(fs.Output(), "  oasmerge parse https://example.com/api/swagger.yaml\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or URL")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)
	result, err := parser.Parse(context.Background(), specPath)
	if err != nil {
		return fmt.Errorf("parsing file: %w", err)
	}

	if flags.Full {
		return outputFullDocument(result, flags.Format)
	}

	doc := result.Document
	summary := parseSummary{
		Source:          result.SourcePath,
		Version:         result.Version,
		VersionFamily:   doc.VersionFamily().String(),
		Title:           doc.Info.Title,
		BasePath:        doc.BasePath,
		PathCount:       len(doc.Paths),
		DefinitionCount: len(doc.SchemaDefinitions()),
		Tags:            doc.Tags,
		Format:          string(result.SourceFormat),
	}

	if flags.Format != FormatText {
		return OutputStructured(summary, flags.Format)
	}

	Writef(os.Stdout, "Source: %s\n", summary.Source)
	Writef(os.Stdout, "Title: %s\n", summary.Title)
	if summary.Version != "" {
		Writef(os.Stdout, "Version: %s (%s)\n", summary.Version, summary.VersionFamily)
	}
	if summary.BasePath != "" {
		Writef(os.Stdout, "Base Path: %s\n", summary.BasePath)
	}
	Writef(os.Stdout, "Paths: %d\n", summary.PathCount)
	Writef(os.Stdout, "Definitions: %d\n", summary.DefinitionCount)
	if len(summary.Tags) > 0 {
		Writef(os.Stdout, "Tags: %v\n", summary.Tags)
	}
	return nil
}

func outputFullDocument(result *parser.ParseResult, format string) error {
	out := format
	if out == FormatText {
		out = string(result.SourceFormat)
		if out == "" {
			out = FormatYAML
		}
	}
	return OutputStructured(result.Document, out)
}
