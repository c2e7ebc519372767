// Package simconfig is the YAML-facing configuration layer for the
// simulation core: a serializable mirror of engine.Params plus the
// batch-manifest shape used to script multi-level evaluation runs from
// cmd/cellmine-sim. engine itself stays free of any serialization
// dependency; only this layer imports yaml.v3.
package simconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/cellmine/engine"
)

// Params is the YAML-serializable mirror of engine.Params.
type Params struct {
	// Gravity enables the falling/rolling physics for Stone, Diamond,
	// Nut and Bomb.
	Gravity bool `yaml:"gravity"`

	// MagicWallSteps is the remaining budget, in ticks of activity, before
	// an active magic wall expires.
	MagicWallSteps int `yaml:"magicWallSteps"`

	// BlobChance is the per-tick, per-blob-cell growth probability
	// numerator out of 256.
	BlobChance int `yaml:"blobChance"`

	// BlobMaxPercentage caps blob growth as a fraction of total cells.
	BlobMaxPercentage float64 `yaml:"blobMaxPercentage"`

	// DisableExplosions stops a blocked falling bomb from detonating.
	// Other explosions (stone on bomb, creatures, chains) are unaffected.
	DisableExplosions bool `yaml:"disableExplosions"`

	// ButterflyExplosionVer selects "explode" vs "convert-to-diamond"
	// when a falling stone lands on a butterfly.
	ButterflyExplosionVer string `yaml:"butterflyExplosionVer"`

	// ButterflyMoveVer selects "delay" vs "instant" butterfly turning.
	ButterflyMoveVer string `yaml:"butterflyMoveVer"`

	// Seed overrides the RNG seed; 0 selects the fixed default.
	Seed uint64 `yaml:"seed"`
}

// DefaultParams mirrors engine.DefaultParams in YAML-facing form.
func DefaultParams() Params {
	d := engine.DefaultParams()
	return fromEngine(d)
}

func fromEngine(p engine.Params) Params {
	return Params{
		Gravity:               p.Gravity,
		MagicWallSteps:        p.MagicWallSteps,
		BlobChance:            p.BlobChance,
		BlobMaxPercentage:     p.BlobMaxPercentage,
		DisableExplosions:     p.DisableExplosions,
		ButterflyExplosionVer: butterflyExplosionVerName(p.ButterflyExplosionVer),
		ButterflyMoveVer:      butterflyMoveVerName(p.ButterflyMoveVer),
		Seed:                  p.Seed,
	}
}

func butterflyExplosionVerName(v engine.ButterflyExplosionVer) string {
	if v == engine.ConvertVer {
		return "convert"
	}
	return "explode"
}

func butterflyMoveVerName(v engine.ButterflyMoveVer) string {
	if v == engine.InstantVer {
		return "instant"
	}
	return "delay"
}

// ToEngineParams converts the YAML mirror into the plain struct
// engine.New expects, defaulting unset enum strings to the base
// behavior (explode, delay).
func (p Params) ToEngineParams() engine.Params {
	ep := engine.Params{
		Gravity:           p.Gravity,
		MagicWallSteps:    p.MagicWallSteps,
		BlobChance:        p.BlobChance,
		BlobMaxPercentage: p.BlobMaxPercentage,
		DisableExplosions: p.DisableExplosions,
		Seed:              p.Seed,
	}
	if p.ButterflyExplosionVer == "convert" {
		ep.ButterflyExplosionVer = engine.ConvertVer
	} else {
		ep.ButterflyExplosionVer = engine.ExplodeVer
	}
	if p.ButterflyMoveVer == "instant" {
		ep.ButterflyMoveVer = engine.InstantVer
	} else {
		ep.ButterflyMoveVer = engine.DelayVer
	}
	return ep
}

// Validate checks field ranges: magic wall budget is non-negative,
// blob chance is a byte-sized probability numerator, and
// blobMaxPercentage is a fraction.
func (p Params) Validate() error {
	if p.MagicWallSteps < 0 {
		return fmt.Errorf("simconfig: magicWallSteps must be non-negative, got %d", p.MagicWallSteps)
	}
	if p.BlobChance < 0 || p.BlobChance > 255 {
		return fmt.Errorf("simconfig: blobChance must be in [0, 255], got %d", p.BlobChance)
	}
	if p.BlobMaxPercentage < 0 || p.BlobMaxPercentage > 1 {
		return fmt.Errorf("simconfig: blobMaxPercentage must be in [0.0, 1.0], got %f", p.BlobMaxPercentage)
	}
	if p.ButterflyExplosionVer != "" && p.ButterflyExplosionVer != "explode" && p.ButterflyExplosionVer != "convert" {
		return fmt.Errorf("simconfig: butterflyExplosionVer must be %q or %q, got %q", "explode", "convert", p.ButterflyExplosionVer)
	}
	if p.ButterflyMoveVer != "" && p.ButterflyMoveVer != "delay" && p.ButterflyMoveVer != "instant" {
		return fmt.Errorf("simconfig: butterflyMoveVer must be %q or %q, got %q", "delay", "instant", p.ButterflyMoveVer)
	}
	return nil
}

// LoadParams reads and validates a YAML params file.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("simconfig: reading %s: %w", path, err)
	}
	p := DefaultParams()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("simconfig: parsing YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
