// Package config loads the optional pitest configuration file. Flags given
// on the command line always win over values from the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/revpi-tools/picontrol/picontrol"
)

// DefaultFile is the config file consulted when --config is not given.
const DefaultFile = "/etc/revpi/pitest.yaml"

type Config struct {
	// Device is the piControl device node to open.
	Device string `yaml:"device"`
	// DumpFile is the default output path of the dump command.
	DumpFile string `yaml:"dump_file"`
	// LogLevel is a logrus level, 0 (panic) to 6 (trace).
	LogLevel int `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Device:   picontrol.DefaultDevice,
		DumpFile: "revpi_proc_img.bin",
		LogLevel: 4,
	}
}

// Load reads the file at path on top of the defaults. A missing file is only
// an error when the path was given explicitly.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("can not read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("can not parse config file %s: %w", path, err)
	}

	return cfg, nil
}
