package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode Mode
		want Mode
	}{
		{ModeAuto, ModeText},
		{ModeText, ModeText},
		{ModeJSON, ModeJSON},
		{"", ModeText},
	}

	for _, tt := range tests {
		r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, tt.mode)
		assert.Equal(t, tt.want, r.EffectiveMode())
	}
}

func TestRendererWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeText)

	r.Println("hello")
	r.Printf("%d files\n", 3)
	r.Errorf("failed: %s\n", "reason")

	assert.Equal(t, "hello\n3 files\n", out.String())
	assert.Equal(t, "failed: reason\n", errOut.String())
}

func TestRendererNoColorOnBuffers(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, &bytes.Buffer{}, ModeText)

	// A non-terminal writer gets unstyled output.
	r.Success("all good")
	assert.Equal(t, "all good\n", out.String())

	out.Reset()
	r.Println(r.Styles().Error.Render("plain"))
	assert.Equal(t, "plain\n", out.String())
}

func TestRendererJSON(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, &bytes.Buffer{}, ModeJSON)

	require.NoError(t, r.JSON(map[string]any{"files": 2, "failed": 0}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, float64(2), decoded["files"])

	// Indented output for human inspection of piped results.
	assert.Contains(t, out.String(), "\n  ")
}
