package parser

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"go.yaml.in/yaml/v4"
)

// ParseResult contains a loaded document and its source metadata.
type ParseResult struct {
	// SourcePath is the file path or URL the document was loaded from
	SourcePath string
	// SourceFormat is the detected input format (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the declared version tag ("" if the document declares none)
	Version string
	// Document is the decoded document
	Document *Document
}

// Parse loads and decodes a document from a file path or URL.
//
// Loading goes through viant/afs, so any location the abstract storage
// service can address is accepted. The format is detected from the path
// extension with a content-sniffing fallback; JSON input is decoded through
// the YAML pipeline (JSON is a YAML subset).
func Parse(ctx context.Context, location string) (*ParseResult, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read %s: %w", location, err)
	}
	return ParseBytes(location, data)
}

// ParseBytes decodes a document from raw bytes. sourcePath is used for
// format detection and error reporting only.
func ParseBytes(sourcePath string, data []byte) (*ParseResult, error) {
	format := detectFormatFromPath(sourcePath)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parser: failed to decode %s: %w", sourcePath, err)
	}

	return &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: format,
		Version:      doc.VersionTag(),
		Document:     &doc,
	}, nil
}
