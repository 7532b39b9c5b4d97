package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"napkinwire/sketch"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// saveClientServer writes the two-box sketch plus a config sized to it.
func saveClientServer(t *testing.T) (file, config string) {
	t.Helper()
	dir := t.TempDir()

	shapes, _ := clientServer()
	doc := NewDocument(sketch.ModeDiagram)
	for _, s := range shapes {
		doc.Add(s)
	}
	file = filepath.Join(dir, "flow.napkin")
	require.NoError(t, doc.SaveToFile(file))

	config = filepath.Join(dir, "napkinwire.toml")
	require.NoError(t, os.WriteFile(config, []byte("canvas_width = 300\ncanvas_height = 100\n"), 0644))
	return file, config
}

func TestRenderCommand(t *testing.T) {
	file, config := saveClientServer(t)

	out, err := executeRoot(t, "--config", config, "render", file)
	require.NoError(t, err)

	shapes, opts := clientServer()
	res, err := sketch.Render(shapes, opts)
	require.NoError(t, err)

	assert.Contains(t, out, res.Grid.String())
	assert.Contains(t, out, "Legend")
	assert.Contains(t, out, "Client")
	assert.Contains(t, out, "Client → Server")
}

func TestRenderCommandPrompt(t *testing.T) {
	file, config := saveClientServer(t)

	out, err := executeRoot(t, "--config", config, "render", file, "--prompt", "--note", "stateless please")
	require.NoError(t, err)

	assert.Contains(t, out, "Legend:\n1: Client\n2: Server\n")
	assert.Contains(t, out, "Connections:\n- Client → Server\n")
	assert.Contains(t, out, "Notes:\nstateless please\n")
}

func TestRenderCommandMockupOverride(t *testing.T) {
	file, config := saveClientServer(t)

	out, err := executeRoot(t, "--config", config, "render", file, "--mode", "mockup")
	require.NoError(t, err)
	assert.Contains(t, out, "Content areas")
	assert.NotContains(t, out, "Client → Server")
}

func TestRenderCommandExports(t *testing.T) {
	file, config := saveClientServer(t)
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "flow.png")
	txtPath := filepath.Join(dir, "flow.txt")

	_, err := executeRoot(t, "--config", config, "render", file, "--png", pngPath, "--txt", txtPath)
	require.NoError(t, err)
	assert.FileExists(t, pngPath)
	assert.FileExists(t, txtPath)
}

func TestRenderCommandErrors(t *testing.T) {
	file, config := saveClientServer(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"--config", config, "render", filepath.Join(t.TempDir(), "nope.napkin")}},
		{"no file", []string{"--config", config, "render"}},
		{"bad mode", []string{"--config", config, "render", file, "--mode", "poster"}},
		{"bad config", []string{"--config", filepath.Join(t.TempDir(), "nope.toml"), "render", file}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeRoot(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRenderCommandSnapOverride(t *testing.T) {
	file, config := saveClientServer(t)

	out, err := executeRoot(t, "--config", config, "render", file, "--snap", "20")
	require.NoError(t, err)

	shapes, opts := clientServer()
	opts.SnapSize = 20
	res, err := sketch.Render(shapes, opts)
	require.NoError(t, err)
	assert.Contains(t, out, res.Grid.String())
}

func TestConfigCommand(t *testing.T) {
	_, config := saveClientServer(t)

	tests := []struct {
		format string
		want   string
	}{
		{"toml", "canvas_width = 300"},
		{"json", `"canvas_width": 300`},
		{"yaml", "canvas_width: 300"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := executeRoot(t, "--config", config, "config", "--format", tt.format)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}

	_, err := executeRoot(t, "--config", config, "config", "--format", "ini")
	assert.Error(t, err)
}
