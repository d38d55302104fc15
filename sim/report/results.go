package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edsim/edsim/sim/hospital"
)

// ResultsFile is the document written by WriteResults.
type ResultsFile struct {
	Config  hospital.Config  `yaml:"config"`
	Summary *Summary         `yaml:"summary"`
	Result  *hospital.Result `yaml:"result"`
}

// WriteResults dumps the configuration, summary and raw run data as YAML.
func WriteResults(path string, cfg hospital.Config, r *hospital.Result, s *Summary) error {
	data, err := yaml.Marshal(&ResultsFile{Config: cfg, Summary: s, Result: r})
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write results %s: %w", path, err)
	}
	return nil
}

// ReadResults loads a file written by WriteResults.
func ReadResults(path string) (*ResultsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results %s: %w", path, err)
	}
	var rf ResultsFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse results %s: %w", path, err)
	}
	return &rf, nil
}
