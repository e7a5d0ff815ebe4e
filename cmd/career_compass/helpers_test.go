package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// catalogFixture returns the path of a catalog file shared with the catalog package tests.
func catalogFixture(name string) string {
	return filepath.Join("..", "..", "internal", "catalog", "testdata", name)
}

// writeFile writes content under a temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// getBinaryPath returns the path to the career_compass binary for end-to-end tests.
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath, err := filepath.Abs(filepath.Join("..", "..", "bin", "career_compass"))
	require.NoError(t, err)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/career_compass ./cmd/career_compass'", binaryPath)
	}

	return binaryPath
}
