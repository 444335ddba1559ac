package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seotext-backend/readability/model"
)

// loadProfile reads highlight switches from YAML. Keys missing from the file
// stay enabled.
func loadProfile(path string) (model.HighlightConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.HighlightConfig{}, fmt.Errorf("read profile: %w", err)
	}
	return parseProfile(data)
}

func parseProfile(data []byte) (model.HighlightConfig, error) {
	cfg := model.AllHighlights()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return model.HighlightConfig{}, fmt.Errorf("parse profile: %w", err)
	}
	return cfg, nil
}
