package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultStylesRender(t *testing.T) {
	t.Parallel()

	styles := DefaultStyles()
	require.NotNil(t, styles)
	require.Contains(t, styles.Label.Render("hi"), "hi")

	// Bordered styles must add a frame around the content.
	bordered := styles.Border.Render("x")
	require.Greater(t, len(bordered), 1)
}

func TestLoadPaletteMissingFileReturnsDefault(t *testing.T) {
	t.Parallel()

	palette, err := LoadPalette(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultPalette(), palette)
}

func TestLoadPalettePartialFileOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("accent = \"33\"\n"), 0644))

	palette, err := LoadPalette(path)
	require.NoError(t, err)
	require.Equal(t, "33", palette.Accent)

	// Colors the file does not name keep their defaults.
	require.Equal(t, DefaultPalette().Error, palette.Error)
}

func TestLoadPaletteRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("acent = \"33\"\n"), 0644))

	_, err := LoadPalette(path)
	require.Error(t, err)
}

func TestSaveLoadPaletteRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.toml")
	palette := DefaultPalette()
	palette.Accent = "201"

	require.NoError(t, SavePalette(palette, path))

	loaded, err := LoadPalette(path)
	require.NoError(t, err)
	require.Equal(t, palette, loaded)
}
