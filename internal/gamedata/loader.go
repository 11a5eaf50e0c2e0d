package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load unmarshals one embedded JSON data file into its file struct.
func Load[T any](filename string) (T, error) {
	var out T
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return out, fmt.Errorf("gamedata: read %s: %w", filename, err)
	}
	if err := json.Unmarshal(content, &out); err != nil {
		return out, fmt.Errorf("gamedata: parse %s: %w", filename, err)
	}
	return out, nil
}

// MustLoad is Load for the registries built at startup; the data files
// ship inside the binary, so a failure here is a packaging bug.
func MustLoad[T any](filename string) T {
	out, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return out
}
