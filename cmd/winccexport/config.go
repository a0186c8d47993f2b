package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tahaelba/WinCCToSQL/blob"
	"github.com/tahaelba/WinCCToSQL/format"
)

// Heuristics is the optional YAML tuning file. Every field has a working
// default; a missing file means defaults throughout.
type Heuristics struct {
	MinPeriodMS    uint32  `yaml:"min_period_ms"`
	MaxPeriodMS    uint32  `yaml:"max_period_ms"`
	MaxMagnitude   float64 `yaml:"max_magnitude"`
	DigitalDefault bool    `yaml:"digital_default"`
	MSBFirst       bool    `yaml:"msb_first"`
	Codec          string  `yaml:"codec"`
	Scale          float64 `yaml:"scale"`
}

func loadHeuristics(path string) (Heuristics, error) {
	var h Heuristics
	if path == "" {
		return h, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return h, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &h); err != nil {
		return h, fmt.Errorf("parse config %s: %w", path, err)
	}

	return h, nil
}

// decodeOptions merges the YAML heuristics with the CLI overrides, CLI
// winning wherever it was set.
func decodeOptions(h Heuristics, args CmdArgs) (blob.Options, error) {
	opts := blob.Options{
		MinPeriodMS:    h.MinPeriodMS,
		MaxPeriodMS:    h.MaxPeriodMS,
		MaxMagnitude:   h.MaxMagnitude,
		DigitalDefault: h.DigitalDefault || args.DigitalDefault,
		MSBFirst:       h.MSBFirst || args.MSBFirst,
		ForcedScale:    h.Scale,
	}

	if args.Scale != 0 {
		opts.ForcedScale = args.Scale
	}

	codecName := h.Codec
	if args.Codec != "" {
		codecName = args.Codec
	}
	if codecName != "" {
		codec, ok := format.ParseCodec(codecName)
		if !ok {
			return opts, fmt.Errorf("unknown codec %q", codecName)
		}
		opts.ForcedCodec = codec
	}

	return opts, nil
}
