package simconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Batch is a scripted multi-level evaluation manifest: a shared Params
// block plus a list of level files to run it against, driven by
// cmd/cellmine-sim. It lives in simconfig rather than level to avoid a
// package cycle (level is imported by engine, which this package already
// depends on).
type Batch struct {
	Params     Params   `yaml:"params"`
	LevelFiles []string `yaml:"levels"`
}

// LoadBatch reads and validates a YAML batch manifest.
func LoadBatch(path string) (Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Batch{}, fmt.Errorf("simconfig: reading batch %s: %w", path, err)
	}
	b := Batch{Params: DefaultParams()}
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Batch{}, fmt.Errorf("simconfig: parsing batch YAML: %w", err)
	}
	if err := b.Params.Validate(); err != nil {
		return Batch{}, err
	}
	if len(b.LevelFiles) == 0 {
		return Batch{}, fmt.Errorf("simconfig: batch manifest %s lists no levels", path)
	}
	return b, nil
}
