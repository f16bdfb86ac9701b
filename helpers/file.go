package helpers

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrReadYaml = errors.New("failed to read config file")

// LoadYamlFile overlays the YAML document at path onto conf. Unknown fields
// are rejected; an empty path leaves conf untouched.
func LoadYamlFile[T any](path string, conf *T) error {
	if path == "" {
		return nil
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadYaml, err)
	}
	defer func() { _ = file.Close() }()
	return DecodeYaml(file, conf)
}

func DecodeYaml[T any](r io.Reader, conf *T) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrReadYaml, err)
	}
	return nil
}
