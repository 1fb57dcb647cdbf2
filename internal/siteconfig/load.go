package siteconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read site config: %w: %w", ErrInputNotFound, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("parse site config: %w: %w", ErrParse, err)
	}
	return d, nil
}
