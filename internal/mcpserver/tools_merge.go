package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/erraggy/oasmerge/internal/pathutil"
	"github.com/erraggy/oasmerge/merger"
	"github.com/erraggy/oasmerge/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mergeInput struct {
	Specs          []specInput `json:"specs"                     jsonschema:"Array of OAS documents to merge in order (minimum 2)"`
	SanitizeTitles *bool       `json:"sanitize_titles,omitempty" jsonschema:"Sanitize document titles before using them as rename prefixes"`
	AlwaysRename   *bool       `json:"always_rename,omitempty"   jsonschema:"Namespace every later-document schema instead of only colliding ones"`
	Format         string      `json:"format,omitempty"          jsonschema:"Output format: json or yaml. Defaults to the first spec's format."`
	Output         string      `json:"output,omitempty"          jsonschema:"File path to write the merged document. If omitted the result is returned inline."`
}

type mergeOutput struct {
	SpecCount       int    `json:"spec_count"`
	Version         string `json:"version,omitempty"`
	PathCount       int    `json:"path_count"`
	DefinitionCount int    `json:"definition_count"`
	TagCount        int    `json:"tag_count"`
	WrittenTo       string `json:"written_to,omitempty"`
	Document        string `json:"document,omitempty"`
	Summary         string `json:"summary"`
}

func handleMerge(ctx context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	if len(input.Specs) < 2 {
		return errResult(fmt.Errorf("at least 2 specs are required for merging, got %d", len(input.Specs))), mergeOutput{}, nil
	}
	if len(input.Specs) > cfg.MaxMergeSpecs {
		return errResult(fmt.Errorf("too many specs: got %d, maximum is %d; set OASMERGE_MAX_MERGE_SPECS to increase",
			len(input.Specs), cfg.MaxMergeSpecs)), mergeOutput{}, nil
	}
	format := parser.SourceFormat(input.Format)
	switch format {
	case parser.SourceFormatUnknown, parser.SourceFormatJSON, parser.SourceFormatYAML:
	default:
		return errResult(fmt.Errorf("invalid format: %q; valid values: json, yaml", input.Format)), mergeOutput{}, nil
	}

	// Resolve all specs.
	docs := make([]*parser.Document, 0, len(input.Specs))
	for i, spec := range input.Specs {
		result, err := spec.resolve(ctx)
		if err != nil {
			return errResult(fmt.Errorf("spec[%d]: %w", i, err)), mergeOutput{}, nil
		}
		if format == parser.SourceFormatUnknown && i == 0 {
			format = result.SourceFormat
		}
		docs = append(docs, result.Document)
	}

	// Tool input overrides env defaults only when explicitly provided.
	sanitize := cfg.SanitizeTitles
	if input.SanitizeTitles != nil {
		sanitize = *input.SanitizeTitles
	}
	alwaysRename := cfg.AlwaysRename
	if input.AlwaysRename != nil {
		alwaysRename = *input.AlwaysRename
	}

	m := merger.New(
		merger.WithSanitizeTitles(sanitize),
		merger.WithAlwaysRename(alwaysRename),
	)
	merged, err := m.Merge(docs)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	output := mergeOutput{
		SpecCount:       len(input.Specs),
		Version:         merged.VersionTag(),
		PathCount:       len(merged.Paths),
		DefinitionCount: len(merged.SchemaDefinitions()),
		TagCount:        len(merged.Tags),
	}
	output.Summary = buildMergeSummary(output)

	data, err := merger.MarshalDocument(merged, format)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	if input.Output != "" {
		cleanPath, pathErr := pathutil.SanitizeOutputPath(input.Output)
		if pathErr != nil {
			return errResult(fmt.Errorf("invalid output path: %w", pathErr)), mergeOutput{}, nil
		}
		if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), mergeOutput{}, nil
		}
		output.WrittenTo = cleanPath
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}

func buildMergeSummary(output mergeOutput) string {
	summary := "Merged " + strconv.Itoa(output.SpecCount) + " specs"
	if output.Version != "" {
		summary += " into " + output.Version + " document"
	}
	summary += " with " + formatCount(output.PathCount, "path")
	summary += " and " + formatCount(output.DefinitionCount, "definition") + "."
	if output.TagCount > 0 {
		summary += " " + formatCount(output.TagCount, "tag") + "."
	}
	return summary
}

// formatCount renders "N noun" with naive pluralization.
func formatCount(n int, noun string) string {
	s := strconv.Itoa(n) + " " + noun
	if n != 1 {
		s += "s"
	}
	return s
}
