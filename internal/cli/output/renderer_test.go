package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		mode Mode
		want Mode
	}{
		{ModeAuto, ModeText},
		{"", ModeText},
		{ModeText, ModeText},
		{ModeMarkdown, ModeMarkdown},
		{ModeJSON, ModeJSON},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, false, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestRenderer_PlainWhenNotTTY(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &bytes.Buffer{}, false, ModeAuto)

	r.Success("OK: all good")
	r.Println(r.Paint(r.Styles().Error, "\t- boom"))

	assert.Equal(t, "OK: all good\n\t- boom\n", out.String())
	assert.False(t, r.IsTTY())
}

func TestRenderer_PaintKeepsTabsOnTTY(t *testing.T) {
	r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, true, ModeText)

	got := r.Paint(r.Styles().Muted, "\t- Field required")

	assert.Contains(t, got, "\t- Field required")
}

func TestRenderer_WarnGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeText)

	r.Warn("careful")

	assert.Empty(t, out.String())
	assert.Equal(t, "careful\n", errOut.String())
}

func TestRenderer_Table(t *testing.T) {
	header := []string{"Field", "Type"}
	rows := [][]string{{"name", "string"}, {"columns", "list"}}

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		NewRendererWithTTY(&out, &bytes.Buffer{}, false, ModeText).Table(header, rows)
		assert.Contains(t, out.String(), "┌")
		assert.Contains(t, out.String(), "columns")
	})

	t.Run("markdown", func(t *testing.T) {
		var out bytes.Buffer
		NewRendererWithTTY(&out, &bytes.Buffer{}, false, ModeMarkdown).Table(header, rows)
		assert.Contains(t, out.String(), "| Field | Type |")
		assert.Contains(t, out.String(), "| name | string |")
	})
}

func TestRenderer_JSON(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &bytes.Buffer{}, false, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"problems": 2}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 2, got["problems"])
}
