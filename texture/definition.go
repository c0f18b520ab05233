package texture

import (
	"encoding/json"
	"fmt"
	"os"
)

// Definition is the parsed form of a `.texture` source file: `{ "path": "rel/to/image.ext", "mips": true|false }`. Atlas is
// an additive, optional third field (empty by default): when set,
// every .texture file sharing the same Atlas name is packed together
// into one shared atlas texture by the guillotine packer instead of
// each becoming its own standalone texture.
type Definition struct {
	Path  string `json:"path"`
	Mips  bool   `json:"mips"`
	Atlas string `json:"atlas,omitempty"`
}

// ParseDefinition reads and decodes one .texture file.
func ParseDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("texture: parse %s: %w", path, err)
	}
	if def.Path == "" {
		return nil, fmt.Errorf("texture: %s: \"path\" is required", path)
	}
	return &def, nil
}

// readFile is a small wrapper so pipeline.go's cache-key hashing has a
// single, error-wrapped read path for both the definition and the
// source image file.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	return data, nil
}
