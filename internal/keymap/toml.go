package keymap

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadTOML reads a keymap definition from a TOML file.
func LoadTOML(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap %s: %w", path, err)
	}
	return ParseTOML(data)
}

// ParseTOML parses a TOML keymap definition.
func ParseTOML(data []byte) (*Definition, error) {
	var def Definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing keymap: %w", err)
	}
	return &def, nil
}
