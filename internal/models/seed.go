package models

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

var (
	seedOnce sync.Once
	seedDoc  AppData
	seedErr  error
)

// DefaultAppData returns a fresh copy of the built-in default document.
// Callers may modify the result freely.
func DefaultAppData() AppData {
	seedOnce.Do(func() {
		seedDoc, seedErr = ParseSeed(seedYAML)
	})
	if seedErr != nil {
		// The seed is compiled into the binary, so this is a build defect rather than a runtime condition.
		panic(fmt.Sprintf("models: embedded seed document is invalid: %v", seedErr))
	}
	return seedDoc.Clone()
}

// ParseSeed decodes a YAML document into AppData.
func ParseSeed(data []byte) (AppData, error) {
	var doc AppData
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return AppData{}, fmt.Errorf("failed to parse seed document: %w", err)
	}
	return doc.Clone(), nil
}
