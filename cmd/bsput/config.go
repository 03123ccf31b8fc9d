// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/pricing"
)

// maxPlaces bounds the quote precision; float64 carries about 15 significant digits.
const maxPlaces = 15

// scenario is the YAML-decodable description of one pricing run.
// Zero values mean "keep the default".
type scenario struct {
	Spots   []float64 `yaml:"spots"`
	Strike  float64   `yaml:"strike"`
	Rate    float64   `yaml:"rate"`
	Yield   float64   `yaml:"yield"`
	Expiry  float64   `yaml:"expiry"`
	Vol     float64   `yaml:"vol"`
	Backend string    `yaml:"backend"`
	Workers int       `yaml:"workers"`
	Places  int       `yaml:"places"`
}

// defaultScenario reproduces the six-spot ladder from the write-up.
func defaultScenario() scenario {
	return scenario{
		Spots:   []float64{55, 56, 57, 58, 59, 60},
		Strike:  60,
		Rate:    0.01,
		Yield:   0.02,
		Expiry:  1,
		Vol:     0.05,
		Backend: pricing.DefaultBackend.String(),
		Workers: pricing.DefaultWorkers,
		Places:  5,
	}
}

// loadScenario decodes path on top of the defaults. Unknown keys are rejected.
func loadScenario(path string) (scenario, error) {
	sc := defaultScenario()
	if path == "" {
		return sc, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return sc, fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return sc, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return sc, nil
}

// params converts the scenario into pricing inputs.
func (sc scenario) params() pricing.Params {
	return pricing.Params{
		Strike: sc.Strike,
		Rate:   sc.Rate,
		Yield:  sc.Yield,
		Expiry: sc.Expiry,
		Vol:    sc.Vol,
	}
}

// options checks the scenario's engine and display settings and converts
// the engine ones into pricing options.
func (sc scenario) options() ([]pricing.Option, error) {
	b, err := pricing.ParseBackend(sc.Backend)
	if err != nil {
		return nil, err
	}
	if sc.Workers < 1 {
		return nil, fmt.Errorf("workers must be >= 1, got %d", sc.Workers)
	}
	if sc.Places < 0 || sc.Places > maxPlaces {
		return nil, fmt.Errorf("places must be in [0, %d], got %d", maxPlaces, sc.Places)
	}

	return []pricing.Option{pricing.WithBackend(b), pricing.WithWorkers(sc.Workers)}, nil
}

// parseSpots reads a comma-separated list such as "55,56,57".
func parseSpots(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return []float64{}, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("spot %q: %w", f, err)
		}
		out = append(out, v)
	}

	return out, nil
}
