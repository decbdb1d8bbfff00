// Package oaserrors provides structured error types for oasmerge.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of merge failures.
//
// # Error Categories
//
//   - EmptyInputError: no documents were supplied to a merge
//   - VersionMismatchError: documents declare incompatible OAS version families
//   - DuplicateSecurityDefinitionError: same scheme name, different scheme objects
//   - DuplicateDefinitionError: a collision-resolved schema name is itself taken
//   - DuplicatePathError: the same final path template from two documents
//
// # Usage with errors.Is
//
//	merged, err := merger.Merge(docs)
//	if errors.Is(err, oaserrors.ErrDuplicatePath) {
//	    // two documents contributed the same path
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrEmptyInput indicates a merge was attempted with zero documents.
	ErrEmptyInput = errors.New("empty input")

	// ErrVersionMismatch indicates incompatible OAS version declarations.
	ErrVersionMismatch = errors.New("version mismatch")

	// ErrDuplicateSecurityDefinition indicates conflicting security scheme objects
	// registered under the same scheme name.
	ErrDuplicateSecurityDefinition = errors.New("duplicate security definition")

	// ErrDuplicateDefinition indicates a schema rename collided with an existing name.
	ErrDuplicateDefinition = errors.New("duplicate definition")

	// ErrDuplicatePath indicates the same final path template was contributed twice.
	ErrDuplicatePath = errors.New("duplicate path")
)

// EmptyInputError is returned when a merge is invoked with no documents.
type EmptyInputError struct{}

// Error returns a human-readable error message.
func (e *EmptyInputError) Error() string {
	return "merge requires at least one document, got 0"
}

// Is reports whether target matches this error type.
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// VersionMismatchError is returned when the accumulated document and a
// candidate document declare incompatible or inconsistent OAS versions.
type VersionMismatchError struct {
	// AccumulatorTitle is the title of the in-progress merged document
	AccumulatorTitle string
	// AccumulatorVersion is the version tag the accumulator declares
	AccumulatorVersion string
	// CandidateTitle is the title of the document being folded in
	CandidateTitle string
	// CandidateVersion is the version tag the candidate declares ("" if absent)
	CandidateVersion string
}

// Error returns a human-readable error message.
func (e *VersionMismatchError) Error() string {
	candidate := e.CandidateVersion
	if candidate == "" {
		candidate = "none"
	}
	return fmt.Sprintf("version mismatch: %q declares %s but %q declares %s",
		e.AccumulatorTitle, e.AccumulatorVersion, e.CandidateTitle, candidate)
}

// Is reports whether target matches this error type.
func (e *VersionMismatchError) Is(target error) bool {
	return target == ErrVersionMismatch
}

// DuplicateSecurityDefinitionError is returned when two documents register
// structurally different security schemes under the same name.
type DuplicateSecurityDefinitionError struct {
	// Scheme is the colliding security scheme name
	Scheme string
	// Title is the title of the document that contributed the conflicting scheme
	Title string
}

// Error returns a human-readable error message.
func (e *DuplicateSecurityDefinitionError) Error() string {
	return fmt.Sprintf("duplicate security definition %q contributed by %q differs from the existing definition",
		e.Scheme, e.Title)
}

// Is reports whether target matches this error type.
func (e *DuplicateSecurityDefinitionError) Is(target error) bool {
	return target == ErrDuplicateSecurityDefinition
}

// DuplicateDefinitionError is returned when a schema collision is resolved by
// namespacing and the namespaced name is itself already taken.
type DuplicateDefinitionError struct {
	// Name is the original colliding schema name
	Name string
	// Renamed is the namespaced name that was already in use
	Renamed string
	// Title is the title of the document that contributed the schema
	Title string
}

// Error returns a human-readable error message.
func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("duplicate definition %q from %q: renamed form %q is already taken",
		e.Name, e.Title, e.Renamed)
}

// Is reports whether target matches this error type.
func (e *DuplicateDefinitionError) Is(target error) bool {
	return target == ErrDuplicateDefinition
}

// DuplicatePathError is returned when two documents contribute an identical
// final path template (after basePath prefixing).
type DuplicatePathError struct {
	// Path is the final colliding path template
	Path string
	// Title is the title of the document that contributed the second occurrence
	Title string
}

// Error returns a human-readable error message.
func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("duplicate path %q contributed by %q", e.Path, e.Title)
}

// Is reports whether target matches this error type.
func (e *DuplicatePathError) Is(target error) bool {
	return target == ErrDuplicatePath
}
