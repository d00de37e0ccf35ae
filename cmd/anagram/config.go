package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/maugrim/anagrammator"
)

// config is the CLI configuration, layered as defaults, then an optional
// YAML file, then ANAGRAM_* environment variables; flags override last.
type config struct {
	WordList      string `yaml:"wordlist"`
	MinWordLength int    `yaml:"minWordLength"`
	MaxResults    int    `yaml:"maxResults"` // 0 means unlimited
}

func defaultConfig() *config {
	return &config{
		WordList:      "/usr/share/dict/words",
		MinWordLength: anagram.DefaultMinWordLength,
		MaxResults:    0,
	}
}

// loadConfig reads a YAML config file (if provided) and applies
// environment-variable overrides.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *config) {
	if v := os.Getenv("ANAGRAM_WORDLIST"); v != "" {
		cfg.WordList = v
	}
	if v := os.Getenv("ANAGRAM_MIN_WORD_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MinWordLength = n
		}
	}
	if v := os.Getenv("ANAGRAM_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxResults = n
		}
	}
}
