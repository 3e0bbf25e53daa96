package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// cliConfig holds tool defaults that can be overridden per invocation by
// command-line flags.
type cliConfig struct {
	Script   string // default decode script: "iast" or "devanagari"
	Hex      bool   // print hex dumps instead of writing binary
	LogLevel string // zerolog level name
}

func defaultConfig() cliConfig {
	return cliConfig{
		Script:   "iast",
		LogLevel: "warn",
	}
}

type fileConfig struct {
	Script   string `toml:"script"`
	Hex      bool   `toml:"hex"`
	LogLevel string `toml:"log_level"`
}

// loadConfig reads a TOML config file, layering defined keys over the
// defaults.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, errors.Wrap(err, "load slbc config")
	}

	if meta.IsDefined("script") {
		s := strings.TrimSpace(raw.Script)
		if s != "iast" && s != "devanagari" && s != "deva" {
			return cliConfig{}, errors.Newf("config: unknown script %q", s)
		}
		cfg.Script = s
	}

	if meta.IsDefined("hex") {
		cfg.Hex = raw.Hex
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	return cfg, nil
}
