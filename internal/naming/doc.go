// Package naming provides shared name sanitization utilities for oasmerge.
//
// Document titles are used as namespace prefixes when colliding schema names
// are renamed during a merge. Titles are free-form text and may contain
// whitespace or punctuation that makes for awkward schema names; this package
// turns them into clean identifier-shaped prefixes.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
