package config

import "os"

// FromEnv applies environment variable overrides to cfg.
// Unset variables leave the value untouched.
func FromEnv(cfg Config) Config {
	if val := os.Getenv("TODO_DATA_FILE"); val != "" {
		cfg.DataFile = val
	}
	if val := os.Getenv("TODO_EXPORT_FILE"); val != "" {
		cfg.ExportFile = val
	}
	return cfg
}
