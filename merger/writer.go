package merger

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/erraggy/oasmerge/parser"
	"go.yaml.in/yaml/v4"
)

// outputFileMode is the file permission mode for output files (owner read/write only)
const outputFileMode = 0600

// MarshalDocument serializes a document in the given format. JSON output is
// indented; anything other than JSON is written as YAML.
func MarshalDocument(doc *parser.Document, format parser.SourceFormat) ([]byte, error) {
	if format == parser.SourceFormatJSON {
		return json.MarshalIndent(doc, "", "  ")
	}
	return yaml.Marshal(doc)
}

// WriteDocument writes a merged document to a file in YAML or JSON format.
//
// The output file is written with restrictive permissions (0600 - owner
// read/write only) to protect potentially sensitive API specifications. If
// the file already exists, its permissions are explicitly set to 0600 after
// writing.
func WriteDocument(doc *parser.Document, format parser.SourceFormat, outputPath string) error {
	data, err := MarshalDocument(doc, format)
	if err != nil {
		return fmt.Errorf("merger: failed to marshal merged document: %w", err)
	}

	if err := os.WriteFile(outputPath, data, outputFileMode); err != nil {
		return fmt.Errorf("merger: failed to write output file: %w", err)
	}

	// Ensure permissions are correct even if the file existed before with a
	// different mode.
	if err := os.Chmod(outputPath, outputFileMode); err != nil {
		return fmt.Errorf("merger: failed to set output file permissions: %w", err)
	}

	return nil
}
