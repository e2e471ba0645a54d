package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wooorm/textom-link-node/parser/source"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunText(t *testing.T) {
	path := writeInput(t, "notes.txt", "See http://Example.com/a and /local/path.\n\nAlso //cdn.io.")

	var out bytes.Buffer
	require.NoError(t, run(options{format: "auto", path: path}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "absolute\thttp://Example.com/a\texample.com", lines[0])
	assert.Equal(t, "absolute\t//cdn.io\tcdn.io", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2 link nodes in "), lines[2])
}

func TestRunJSON(t *testing.T) {
	path := writeInput(t, "page.html", `<p>Go to <a href="x">https://go.dev/doc</a>.</p>`)

	var out bytes.Buffer
	require.NoError(t, run(options{format: "auto", json: true, path: path}, &out))

	var v struct {
		Type  string                 `json:"type"`
		Value string                 `json:"value"`
		Data  map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &v))
	assert.Equal(t, "LinkNode", v.Type)
	assert.Equal(t, "https://go.dev/doc", v.Value)
	assert.Equal(t, "/doc", v.Data["pathname"])
	assert.Equal(t, float64(443), v.Data["port"])
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(options{format: "rtf"}, &out))
	assert.Error(t, run(options{format: "text", path: filepath.Join(t.TempDir(), "missing.txt")}, &out))
}

func TestResolveFormat(t *testing.T) {
	f, err := resolveFormat("auto", "a.md")
	require.NoError(t, err)
	assert.Equal(t, source.Markdown, f)

	f, err = resolveFormat("", "")
	require.NoError(t, err)
	assert.Equal(t, source.Text, f)

	f, err = resolveFormat("html", "a.md")
	require.NoError(t, err)
	assert.Equal(t, source.HTML, f)
}
