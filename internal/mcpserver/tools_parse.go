package mcpserver

import (
	"context"

	"github.com/erraggy/oasmerge/merger"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseInput struct {
	Spec specInput `json:"spec"           jsonschema:"The OAS document to parse"`
	Full bool      `json:"full,omitempty" jsonschema:"Return the full parsed document instead of a summary"`
}

type parseOutput struct {
	Version         string   `json:"version,omitempty"`
	VersionFamily   string   `json:"version_family"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	BasePath        string   `json:"base_path,omitempty"`
	PathCount       int      `json:"path_count"`
	DefinitionCount int      `json:"definition_count"`
	Tags            []string `json:"tags,omitempty"`
	Format          string   `json:"format"`
	FullDocument    string   `json:"full_document,omitempty"`
}

func handleParse(ctx context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	doc := result.Document
	output := parseOutput{
		Version:         result.Version,
		VersionFamily:   doc.VersionFamily().String(),
		Title:           doc.Info.Title,
		Description:     doc.Info.Description,
		BasePath:        doc.BasePath,
		PathCount:       len(doc.Paths),
		DefinitionCount: len(doc.SchemaDefinitions()),
		Tags:            doc.Tags,
		Format:          string(result.SourceFormat),
	}

	if input.Full {
		data, err := merger.MarshalDocument(doc, result.SourceFormat)
		if err != nil {
			return errResult(err), parseOutput{}, nil
		}
		output.FullDocument = string(data)
	}

	return nil, output, nil
}
