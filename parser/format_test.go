package parser

import "testing"

func TestDetectFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want SourceFormat
	}{
		{"api.json", SourceFormatJSON},
		{"api.yaml", SourceFormatYAML},
		{"api.yml", SourceFormatYAML},
		{"api.txt", SourceFormatUnknown},
		{"api", SourceFormatUnknown},
		{"https://example.com/specs/api.yaml?token=abc", SourceFormatYAML},
	}

	for _, tt := range tests {
		if got := detectFormatFromPath(tt.path); got != tt.want {
			t.Errorf("detectFormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDetectFormatFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    SourceFormat
	}{
		{"json object", `{"swagger": "2.0"}`, SourceFormatJSON},
		{"json array", `[1, 2]`, SourceFormatJSON},
		{"json with leading whitespace", "  \n\t{}", SourceFormatJSON},
		{"yaml", "swagger: \"2.0\"\n", SourceFormatYAML},
		{"empty", "", SourceFormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectFormatFromContent([]byte(tt.content)); got != tt.want {
				t.Errorf("detectFormatFromContent(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}
