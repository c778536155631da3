package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlsiroute/steinerwire/point"
)

func writeTempInput(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "net.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadInputParsesBoundsAndPins(t *testing.T) {
	path := writeTempInput(t, "0 0 10 10\n2\n0 0\n3 4\n")

	in, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, point.Bounds{LB: point.Point{0, 0}, RU: point.Point{10, 10}}, in.Bounds)
	assert.Equal(t, []point.Point{{0, 0}, {3, 4}}, in.Pins)
}

func TestReadInputRejectsTruncatedPointList(t *testing.T) {
	path := writeTempInput(t, "0 0 10 10\n3\n0 0\n3 4\n")

	_, err := readInput(path)
	assert.Error(t, err)
}

func TestReadInputRejectsMissingFile(t *testing.T) {
	_, err := readInput(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	assert.Error(t, err)
}
