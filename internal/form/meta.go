// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/survey-press/pkg/types"
)

// LoadMeta reads a YAML document-metadata sidecar (title, date, version,
// authors, cover image, skip rows, choice length, translation). Flags set
// on the command line take precedence over sidecar values.
func LoadMeta(path string) (*types.RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata file: %w", err)
	}
	var cfg types.RenderConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing metadata file %s: %w", path, err)
	}
	return &cfg, nil
}
