// Package seeder loads the question catalog from CSV source files and
// writes it into the database. It is run as a standalone command, never
// by the server itself.
package seeder

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config describes the CSV sources for one seeding run.
type Config struct {
	Lists []ListSource `yaml:"lists"`
}

// ListSource names one curated list and the CSV file holding its
// questions. Lists appear in the API in the order they are declared here.
type ListSource struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	File        string `yaml:"file"`
}

// LoadConfig reads the seeder configuration from a YAML file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read seeder config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Lists) == 0 {
		return fmt.Errorf("seeder config: no lists declared")
	}
	seen := make(map[string]bool, len(c.Lists))
	for _, l := range c.Lists {
		if l.Name == "" {
			return fmt.Errorf("seeder config: list with empty name")
		}
		if seen[l.Name] {
			return fmt.Errorf("seeder config: duplicate list %q", l.Name)
		}
		seen[l.Name] = true
		if l.File == "" {
			return fmt.Errorf("seeder config: list %q has no source file", l.Name)
		}
	}
	return nil
}
