// Package config holds the settings of the regexviz command. Values come
// from Default, then an optional YAML file, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Stages that can be printed.
const (
	StageNFA = "nfa"
	StageDFA = "dfa"
	StageMin = "min"
)

// Output formats.
const (
	FormatTable = "table"
	FormatDOT   = "dot"
	FormatYAML  = "yaml"
)

type Config struct {
	Stage  string `yaml:"stage"`
	Format string `yaml:"format"`
	Color  bool   `yaml:"color"`
	// Output is a file path or "-" for stdout.
	Output string `yaml:"output"`
	// PNG pipes DOT output through `dot -Tpng`.
	PNG   bool `yaml:"png"`
	Check bool `yaml:"check"`
}

func Default() Config {
	return Config{
		Stage:  StageMin,
		Format: FormatTable,
		Output: "-",
	}
}

// Load reads path over Default. Keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Stage {
	case StageNFA, StageDFA, StageMin:
	default:
		return fmt.Errorf("unknown stage %q (want nfa, dfa or min)", c.Stage)
	}
	switch c.Format {
	case FormatTable, FormatDOT:
	case FormatYAML:
		if c.Stage == StageNFA {
			return errors.New("yaml format needs a DFA stage")
		}
	default:
		return fmt.Errorf("unknown format %q (want table, dot or yaml)", c.Format)
	}
	if c.Output == "" {
		return errors.New("output is required (use - for stdout)")
	}
	if c.PNG {
		if c.Format != FormatDOT {
			return errors.New("png needs the dot format")
		}
		if c.Output == "-" {
			return errors.New("png needs an output file")
		}
	}
	return nil
}
