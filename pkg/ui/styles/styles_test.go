package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	for _, name := range []string{"Banner", "Step", "Detail", "Note", "Output", "Feature", "Error", "Warning", "Success"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s should be defined", name)
	}
}

func TestGetStyle_UnknownIsPlain(t *testing.T) {
	style := GetStyle("DoesNotExist")
	assert.Equal(t, "text", style.Render("text"))
}

func TestLoadStylesFromData_Invalid(t *testing.T) {
	err := LoadStylesFromData([]byte("styles: [unterminated"))
	assert.Error(t, err)

	require.NoError(t, LoadStylesFromData(embeddedStyles))
}

func TestBuildStyle(t *testing.T) {
	require.NoError(t, LoadStylesFromData([]byte(`
colors:
  red:
    light: "#FF0000"
    dark: "#FF0000"
styles:
  Loud:
    bold: true
    foreground: red
`)))
	t.Cleanup(func() { _ = LoadStylesFromData(embeddedStyles) })

	style := GetStyle("Loud")
	assert.True(t, style.GetBold())
	assert.NotNil(t, style.GetForeground())
}
