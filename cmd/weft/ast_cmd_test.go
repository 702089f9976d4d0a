package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestRunAstText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.weft", "<ul><li>{item}</li></ul>")

	var out bytes.Buffer
	err := runAst(context.Background(), path, "text", false, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "Element <ul>")
	require.Contains(t, out.String(), "Ident item")
}

func TestRunAstJSON(t *testing.T) {
	viper.Set("no-color", true)
	defer viper.Set("no-color", false)

	dir := t.TempDir()
	path := writeFile(t, dir, "page.weft", "<p>{n + 1}</p>")

	var out bytes.Buffer
	err := runAst(context.Background(), path, "json", false, &out)
	require.NoError(t, err)

	var root astNode
	require.NoError(t, json.Unmarshal(out.Bytes(), &root))
	require.Equal(t, "Document", root.Type)
	require.Len(t, root.Children, 1)
	require.Equal(t, "Element", root.Children[0].Type)
	require.Equal(t, "p", root.Children[0].Value)
}

func TestRunAstRewritten(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.weft", "<div><if test={x}>A</if></div>")

	var out bytes.Buffer
	err := runAst(context.Background(), path, "text", true, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "Ternary")
	require.NotContains(t, out.String(), "Element <if>")
}

func TestRunAstUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.weft", "<p>a</p>")

	var out bytes.Buffer
	err := runAst(context.Background(), path, "yaml", false, &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown output format")
}
