package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyInputError(t *testing.T) {
	err := &EmptyInputError{}

	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.NotErrorIs(t, err, ErrDuplicatePath)
	assert.Contains(t, err.Error(), "at least one document")
}

func TestVersionMismatchError(t *testing.T) {
	err := &VersionMismatchError{
		AccumulatorTitle:   "users",
		AccumulatorVersion: "2.0",
		CandidateTitle:     "billing",
		CandidateVersion:   "3.0.0",
	}

	assert.ErrorIs(t, err, ErrVersionMismatch)
	assert.Contains(t, err.Error(), `"users"`)
	assert.Contains(t, err.Error(), `"billing"`)
	assert.Contains(t, err.Error(), "2.0")
	assert.Contains(t, err.Error(), "3.0.0")
}

func TestVersionMismatchError_AbsentCandidateVersion(t *testing.T) {
	err := &VersionMismatchError{
		AccumulatorTitle:   "users",
		AccumulatorVersion: "2.0",
		CandidateTitle:     "billing",
	}

	assert.Contains(t, err.Error(), "none", "absent candidate version should render as 'none'")
}

func TestDuplicateSecurityDefinitionError(t *testing.T) {
	err := &DuplicateSecurityDefinitionError{Scheme: "api_key", Title: "billing"}

	assert.ErrorIs(t, err, ErrDuplicateSecurityDefinition)
	assert.Contains(t, err.Error(), `"api_key"`)
	assert.Contains(t, err.Error(), `"billing"`)
}

func TestDuplicateDefinitionError(t *testing.T) {
	err := &DuplicateDefinitionError{Name: "Error", Renamed: "billing_Error", Title: "billing"}

	assert.ErrorIs(t, err, ErrDuplicateDefinition)
	assert.Contains(t, err.Error(), `"Error"`)
	assert.Contains(t, err.Error(), `"billing_Error"`)
}

func TestDuplicatePathError(t *testing.T) {
	err := &DuplicatePathError{Path: "/v1/pets", Title: "petstore"}

	assert.ErrorIs(t, err, ErrDuplicatePath)
	assert.Contains(t, err.Error(), `"/v1/pets"`)
	assert.Contains(t, err.Error(), `"petstore"`)
}

// TestErrorsAs verifies that wrapped errors remain extractable with errors.As.
func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("merger: %w", &DuplicatePathError{Path: "/pets", Title: "petstore"})

	var pathErr *DuplicatePathError
	require.True(t, errors.As(wrapped, &pathErr))
	assert.Equal(t, "/pets", pathErr.Path)
	assert.ErrorIs(t, wrapped, ErrDuplicatePath)
}

// TestSentinelsAreDistinct guards against two sentinels matching each other.
func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrEmptyInput,
		ErrVersionMismatch,
		ErrDuplicateSecurityDefinition,
		ErrDuplicateDefinition,
		ErrDuplicatePath,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
