package theme

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadPalette reads a palette from a TOML file. A missing file is not an
// error: the default palette is returned so callers can ship without a
// theme file and customize later. Unknown keys are rejected to catch
// typos in hand-edited themes.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultPalette(), nil
	}
	if err != nil {
		return Palette{}, fmt.Errorf("failed to read theme file: %w", err)
	}

	// Start from the defaults so a partial theme file only overrides
	// the colors it names.
	palette := DefaultPalette()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&palette); err != nil {
		return Palette{}, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return palette, nil
}

// SavePalette writes a palette as TOML, creating or truncating the file.
func SavePalette(palette Palette, path string) error {
	data, err := toml.Marshal(palette)
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	return nil
}
