package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunBuildSingleFileToStdout(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.weft", "<div><if test={x}>A</if></div>")

	var out bytes.Buffer
	err := runBuild(context.Background(), []string{path}, "", &out)
	require.NoError(t, err)
	require.Equal(t, "<div>{(x ? <>A</> : nil)}</div>\n", out.String())
}

func TestRunBuildMultipleFilesNeedOutputDir(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.weft", "<p>a</p>")
	b := writeFile(t, dir, "b.weft", "<p>b</p>")

	var out bytes.Buffer
	err := runBuild(context.Background(), []string{a, b}, "", &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "output directory")
}

func TestRunBuildToDirectory(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.weft", "<p>a</p>")
	b := writeFile(t, dir, "b.weft", "<ul><for var={i} of={xs}>{i}</for></ul>")
	outDir := filepath.Join(dir, "out")

	var out bytes.Buffer
	err := runBuild(context.Background(), []string{a, b}, outDir, &out)
	require.NoError(t, err)
	require.Empty(t, out.String())

	compiled, err := os.ReadFile(filepath.Join(outDir, "a.weft"))
	require.NoError(t, err)
	require.Equal(t, "<p>a</p>\n", string(compiled))

	compiled, err = os.ReadFile(filepath.Join(outDir, "b.weft"))
	require.NoError(t, err)
	require.Equal(t, "<ul>{xs.map(((i) => i))}</ul>\n", string(compiled))
}

func TestRunBuildReportsFailures(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.weft", "<if>A</if>")

	var out bytes.Buffer
	err := runBuild(context.Background(), []string{bad}, "", &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.weft")
	require.Contains(t, err.Error(), "test attribute")
}
