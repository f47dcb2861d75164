package gauss

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

/*
Config holds the demonstration parameters: the distribution to draw
from and how many samples to take.
*/
type Config struct {
	Mean float64 `toml:"mean"`
	SD   float64 `toml:"sd"`
	N    int     `toml:"n"`
}

/*
DefaultConfig returns the parameters the demonstration has always
shipped with.
*/
func DefaultConfig() Config {
	return Config{Mean: 0.3, SD: 0.1, N: 10}
}

/*
Demo draws cfg.N samples from Normal(cfg.Mean, cfg.SD), each clamped to
[0, 1], then reports the samples joined by ", " followed by their mean
through notify. src selects the random source; nil uses the shared
global one.
*/
func Demo(cfg Config, src *rand.Rand, notify func(string)) {
	g := Gaussian{Mean: cfg.Mean, SD: cfg.SD, Source: src}
	samples := make([]float64, 0, cfg.N)
	for i := 0; i < cfg.N; i++ {
		samples = append(samples, Clamp(g.Sample(), 0, 1))
	}
	notify(joinFloats(samples, ", "))
	notify(fmt.Sprintf("mean: %s", formatFloat(Mean(samples))))
}

func joinFloats(values []float64, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, sep)
}

// formatFloat renders v with six decimals, matching the host's list
// display format.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
