package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/matrixio"
	"github.com/stretchr/testify/require"
)

// writeDoc stores an r×c Float as a matrix document named name in dir.
func writeDoc(t *testing.T, dir, name string, r, c int, vals ...float64) string {
	t.Helper()
	f, err := matrix.NewFloatFromValues(r, c, vals...)
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	format, err := matrixio.FormatFromPath(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrixio.EncodeFloat(&buf, format, f))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	return path
}

// lvmat runs the command line and returns stdout.
func lvmat(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)

	return stdout.String(), err
}

func TestDetSingleFile(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", 3, 3, 0, 2, 3, 1, 0, 1, 1, 1, 0)

	out, err := lvmat(t, "det", a)
	require.NoError(t, err)
	require.Equal(t, "5\n", out)
}

func TestDetManyFilesKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	var files []string
	var want strings.Builder
	for k := 1; k <= 6; k++ {
		name := filepath.Join(dir, "m"+string(rune('0'+k))+".msgpack")
		files = append(files, writeDoc(t, dir, filepath.Base(name), 2, 2, float64(k), 0, 0, 2))
		want.WriteString(name + "\t" + []string{"", "2", "4", "6", "8", "10", "12"}[k] + "\n")
	}

	out, err := lvmat(t, append([]string{"det", "-j", "2"}, files...)...)
	require.NoError(t, err)
	require.Equal(t, want.String(), out)
}

func TestDetReportsFailingFile(t *testing.T) {
	dir := t.TempDir()
	ok := writeDoc(t, dir, "ok.json", 2, 2, 1, 2, 3, 4)
	rect := writeDoc(t, dir, "rect.json", 2, 3, 1, 2, 3, 4, 5, 6)

	_, err := lvmat(t, "det", ok, rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Contains(t, err.Error(), "rect.json")

	txt := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(txt, []byte("1 2\n3 4\n"), 0o600))
	_, err = lvmat(t, "det", txt)
	require.ErrorIs(t, err, matrixio.ErrUnknownFormat)
}

// TestMissingFileIsUsageError checks that every file argument is resolved by
// the parser before any command runs.
func TestMissingFileIsUsageError(t *testing.T) {
	dir := t.TempDir()
	ok := writeDoc(t, dir, "ok.json", 2, 2, 1, 2, 3, 4)
	missing := filepath.Join(dir, "missing.json")

	for _, args := range [][]string{
		{"det", ok, missing},
		{"inv", missing},
		{"add", ok, missing},
	} {
		_, err := lvmat(t, args...)
		var usage *kong.ParseError
		require.ErrorAs(t, err, &usage, "%v", args)
		require.Contains(t, err.Error(), "missing.json", "%v", args)
	}
}

func TestInv(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", 2, 2, 1, 2, 3, 4)

	out, err := lvmat(t, "inv", a)
	require.NoError(t, err)
	require.Equal(t, "-2 1 \n1.5 -0.5 \n", out)

	singular := writeDoc(t, dir, "s.json", 2, 2, 1, 2, 2, 4)
	out, err = lvmat(t, "inv", singular)
	require.ErrorIs(t, err, errSingular)
	require.Empty(t, out)
}

func TestInvJSONOutput(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.mp", 2, 2, 1, 2, 3, 4)

	out, err := lvmat(t, "--output", "json", "inv", a)
	require.NoError(t, err)

	got, err := matrixio.DecodeFloat(strings.NewReader(out), matrixio.JSON)
	require.NoError(t, err)
	want, err := matrix.NewFloatFromValues(2, 2, -2, 1, 1.5, -0.5)
	require.NoError(t, err)
	require.True(t, got.AllClose(want, 1e-12))
}

func TestCofactorAndMinor(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", 3, 3, 1, 2, 3, 0, 4, 5, 1, 0, 6)

	out, err := lvmat(t, "cofactor", a)
	require.NoError(t, err)
	require.Equal(t, "24 5 -4 \n-12 3 2 \n-2 -5 4 \n", out)

	out, err = lvmat(t, "minor", "--row", "1", "--col", "2", a)
	require.NoError(t, err)
	require.Equal(t, "1 2 \n1 0 \n", out)

	out, err = lvmat(t, "minor", "--row", "1", "--col", "2", "--det", a)
	require.NoError(t, err)
	require.Equal(t, "-2\n", out)

	_, err = lvmat(t, "minor", "--row", "3", "--col", "0", a)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestTransposeModes(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", 2, 3, 1, 2, 3, 4, 5, 6)

	cases := map[string]string{
		"main":       "1 4 \n2 5 \n3 6 \n",
		"side":       "6 3 \n5 2 \n4 1 \n",
		"vertical":   "3 2 1 \n6 5 4 \n",
		"horizontal": "4 5 6 \n1 2 3 \n",
	}
	for mode, want := range cases {
		out, err := lvmat(t, "transpose", "--mode", mode, a)
		require.NoError(t, err, mode)
		require.Equal(t, want, out, mode)
	}

	_, err := lvmat(t, "transpose", "--mode", "diagonal", a)
	require.Error(t, err)
}

func TestBinaryCommands(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", 2, 3, 1, 2, 3, 4, 5, 6)
	b := writeDoc(t, dir, "b.json", 3, 2, 7, 8, 9, 10, 11, 12)
	c := writeDoc(t, dir, "c.json", 2, 3, 1, 1, 1, 1, 1, 1)

	out, err := lvmat(t, "mul", a, b)
	require.NoError(t, err)
	require.Equal(t, "58 64 \n139 154 \n", out)

	out, err = lvmat(t, "add", a, c)
	require.NoError(t, err)
	require.Equal(t, "2 3 4 \n5 6 7 \n", out)

	out, err = lvmat(t, "sub", a, c)
	require.NoError(t, err)
	require.Equal(t, "0 1 2 \n3 4 5 \n", out)

	_, err = lvmat(t, "add", a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestScale(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", 2, 2, 1, -2, 3) // (1,1) absent

	out, err := lvmat(t, "scale", "--by", "0.5", a)
	require.NoError(t, err)
	require.Equal(t, "0.5 -1 \n1.5 null \n", out)
}

func TestLogLevelFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", 2, 2, 1, 2, 3, 4)

	t.Setenv("LVMAT_LOG_LEVEL", "debug")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"det", a}, &stdout, &stderr))
	require.Equal(t, "-2\n", stdout.String())
	require.Contains(t, stderr.String(), "determinant computed")
	require.Contains(t, stderr.String(), "level=debug")

	_, err := lvmat(t, "--log-level", "loud", "det", a)
	require.Error(t, err)
}
