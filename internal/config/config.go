package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataFile          string   `yaml:"data_file" json:"data_file"`
	ExportFile        string   `yaml:"export_file" json:"export_file"`
	DefaultCategories []string `yaml:"default_categories" json:"default_categories"`
}

func Default() Config {
	return Config{
		DataFile:          "tasks.json",
		ExportFile:        "tasks_export.csv",
		DefaultCategories: []string{"Work", "Personal", "Urgent"},
	}
}

// Load reads the optional config file and applies environment overrides on
// top. A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FromEnv(cfg), nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	def := Default()
	if cfg.DataFile == "" {
		cfg.DataFile = def.DataFile
	}
	if cfg.ExportFile == "" {
		cfg.ExportFile = def.ExportFile
	}
	if len(cfg.DefaultCategories) == 0 {
		cfg.DefaultCategories = def.DefaultCategories
	}
	return FromEnv(cfg), nil
}
