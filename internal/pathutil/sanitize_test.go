// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeOutputPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("new file is accepted", func(t *testing.T) {
		got, err := SanitizeOutputPath(filepath.Join(dir, "out.yaml"))
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("existing regular file is accepted", func(t *testing.T) {
		existing := filepath.Join(dir, "existing.yaml")
		require.NoError(t, os.WriteFile(existing, []byte("swagger: '2.0'\n"), 0600))

		got, err := SanitizeOutputPath(existing)
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("symlink is rejected", func(t *testing.T) {
		target := filepath.Join(dir, "target.yaml")
		require.NoError(t, os.WriteFile(target, []byte("{}"), 0600))
		link := filepath.Join(dir, "link.yaml")
		require.NoError(t, os.Symlink(target, link))

		_, err := SanitizeOutputPath(link)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "symlink")
	})

	t.Run("relative path is resolved", func(t *testing.T) {
		got, err := SanitizeOutputPath("out/../merged.yaml")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, "merged.yaml", filepath.Base(got))
	})
}
