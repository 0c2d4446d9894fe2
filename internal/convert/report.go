// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docshift/pkg/types"
)

// BatchReport is the on-disk YAML summary of a batch run. It lets a
// caller inspect what a run produced without re-parsing the log.
type BatchReport struct {
	InputDir    string       `yaml:"input_dir"`
	OutputDir   string       `yaml:"output_dir"`
	Target      types.Target `yaml:"target"`
	CompletedAt time.Time    `yaml:"completed_at"`
	Converted   int          `yaml:"converted"`
	Failed      int          `yaml:"failed"`
	Outputs     []string     `yaml:"outputs,omitempty"`
}

// NewBatchReport assembles a report from a finished batch run.
func NewBatchReport(inDir, outDir string, target types.Target, result BatchResult) BatchReport {
	return BatchReport{
		InputDir:    inDir,
		OutputDir:   outDir,
		Target:      target,
		CompletedAt: time.Now().UTC(),
		Converted:   result.Converted,
		Failed:      result.Failed,
		Outputs:     result.Outputs,
	}
}

// WriteReport serializes the report to path as YAML.
func WriteReport(path string, report BatchReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling batch report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing batch report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads a previously written report, for inspection in tests
// and tooling.
func ReadReport(path string) (BatchReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BatchReport{}, fmt.Errorf("reading batch report %s: %w", path, err)
	}
	var report BatchReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return BatchReport{}, fmt.Errorf("parsing batch report %s: %w", path, err)
	}
	return report, nil
}
