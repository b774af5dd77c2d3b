package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the per-directory configuration file.
const ConfigFile = "epanet.toml"

// ProjectConfig represents the epanet.toml configuration file
type ProjectConfig struct {
	Library LibraryConfig `toml:"library"`
	Run     RunConfig     `toml:"run"`
	Batch   BatchConfig   `toml:"batch"`
	Log     LogConfig     `toml:"log"`
}

type LibraryConfig struct {
	// Path to libepanet2; empty uses EPANET_LIB_PATH and the default search
	Path string `toml:"path"`
}

type RunConfig struct {
	// Directory for report files; empty writes next to the input file
	ReportDir string `toml:"report_dir"`
	// Directory for binary output files; empty writes next to the report
	OutputDir string `toml:"output_dir"`
	// Write the binary output file
	SaveOutput bool `toml:"save_output"`
	// Print the toolkit's progress messages
	Progress bool `toml:"progress"`
}

type BatchConfig struct {
	// Simulations run at the same time; 0 means one per CPU
	Workers int `toml:"workers"`
	// Stop scheduling new runs after the first failure
	FailFast bool `toml:"fail_fast"`
}

type LogConfig struct {
	// debug, info, warn or error
	Level string `toml:"level"`
	// console or json
	Format string `toml:"format"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Run: RunConfig{
			SaveOutput: true,
			Progress:   false,
		},
		Batch: BatchConfig{
			Workers:  0,
			FailFast: false,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// LoadConfig loads epanet.toml from the project root, or returns the default
// configuration when there is none.
func LoadConfig() (ProjectConfig, error) {
	root, err := FindProjectRoot()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFile(filepath.Join(root, ConfigFile))
}

// LoadConfigFile loads the configuration at path on top of the defaults.
// A missing file yields the defaults.
func LoadConfigFile(path string) (ProjectConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Apply defaults for empty values
	if config.Log.Level == "" {
		config.Log.Level = "warn"
	}
	if config.Log.Format == "" {
		config.Log.Format = "console"
	}
	if config.Batch.Workers < 0 {
		return config, fmt.Errorf("%s: batch.workers must not be negative", path)
	}

	return config, nil
}

// SaveConfig saves the configuration to epanet.toml in dir
func SaveConfig(dir string, config ProjectConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// FindProjectRoot finds the nearest directory at or above the working
// directory that contains epanet.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFile)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", fmt.Errorf("no %s found", ConfigFile)
		}
		dir = parent
	}
}
