package cliutil

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("public/openapi.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("spec.YML"))
	assert.Equal(t, FormatJSON, FormatForPath("public/swagger.json"))
	assert.Equal(t, FormatJSON, FormatForPath(StdoutPath))
}

func TestMarshal(t *testing.T) {
	data := map[string]any{"openapi": "3.0.0", "paths": map[string]any{}}

	out, err := Marshal(data, FormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"openapi": "3.0.0", "paths": {}}`, string(out))
	assert.Equal(t, byte('\n'), out[len(out)-1])

	out, err = Marshal(data, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "openapi: 3.0.0")

	_, err = Marshal(data, "text")
	assert.Error(t, err)
}

func TestWriteOutput(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, WriteOutput(&stdout, StdoutPath, []byte("spec")))
	assert.Equal(t, "spec", stdout.String())

	path := filepath.Join(t.TempDir(), "nested", "dir", "swagger.json")
	require.NoError(t, WriteOutput(&stdout, path, []byte("{}")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Generated %s: %d paths", "out.json", 3)
	assert.Equal(t, "Generated out.json: 3 paths", buf.String())

	assert.NotPanics(t, func() {
		Writef(failingWriter{}, "lost")
	})
}
