// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/adschema/pkg/types"
)

// WriteReport saves a build report as YAML so an ingestion run's anomalies
// survive past the process.
func WriteReport(path string, r *types.BuildReport) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling build report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing build report: %w", err)
	}
	return nil
}
