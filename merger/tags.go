package merger

import "github.com/erraggy/oasmerge/parser"

// MergeTags unions the two documents' tag name lists: left's tags followed
// by right's, duplicates removed, first-occurrence order preserved.
func MergeTags(left, right *parser.Document) []string {
	seen := make(map[string]bool, len(left.Tags)+len(right.Tags))
	result := make([]string, 0, len(left.Tags)+len(right.Tags))

	for _, tag := range left.Tags {
		if !seen[tag] {
			seen[tag] = true
			result = append(result, tag)
		}
	}
	for _, tag := range right.Tags {
		if !seen[tag] {
			seen[tag] = true
			result = append(result, tag)
		}
	}

	return result
}
