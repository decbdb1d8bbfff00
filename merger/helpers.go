package merger

import "sort"

// sortedKeys returns the map's keys in sorted order. Merging in key order
// keeps results and failure choices deterministic across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
