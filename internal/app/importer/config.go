package importer

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds deck import settings.
type Config struct {
	Username   string `yaml:"username"    env:"IMPORT_USERNAME"`
	SheetName  string `yaml:"sheet_name"  env:"IMPORT_SHEET_NAME"  env-default:"Sheet1"`
	SkipHeader bool   `yaml:"skip_header" env:"IMPORT_SKIP_HEADER" env-default:"false"`
	DryRun     bool   `yaml:"dry_run"     env:"IMPORT_DRY_RUN"`
	// Force imports even when the user already owns cards.
	Force   bool `yaml:"force"   env:"IMPORT_FORCE"`
	Workers int  `yaml:"workers" env:"IMPORT_WORKERS" env-default:"4"`
}

// LoadConfig reads config from a YAML file or, when path is empty, from
// environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("import config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("import config: %w", err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("import config: read env: %w", err)
	}
	return &cfg, nil
}
