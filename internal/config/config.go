// Package config loads the export settings from defaults, a YAML config file, environment
// variables and command line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ecopia-map/dimexport/internal/exporter"
	"github.com/ecopia-map/dimexport/internal/scene"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const EnvPrefix = "DIMEXPORT_"

// Config files looked up in the working directory when none is given explicitly
var DefaultConfigFiles = []string{"dimexport.yaml", "dimexport.yml"}

// Config holds every setting of the export command
type Config struct {
	Input            string   `koanf:"input"`
	FolderProcessing bool     `koanf:"folder"`
	Recursive        bool     `koanf:"recursive"`
	Select           []string `koanf:"select"`
	ObjUpAxis        string   `koanf:"obj_up_axis"`

	ExportPath    string `koanf:"export_path"`
	FileName      string `koanf:"file_name"`
	UnitScale     string `koanf:"unit_scale"`
	IncludeWidth  bool   `koanf:"include_width"`
	IncludeHeight bool   `koanf:"include_height"`
	IncludeDepth  bool   `koanf:"include_depth"`
	LabelWidth    string `koanf:"label_width"`
	LabelHeight   string `koanf:"label_height"`
	LabelDepth    string `koanf:"label_depth"`

	DryRun bool `koanf:"dry_run"`
	Silent bool `koanf:"silent"`

	ConfigFileUsed string `koanf:"-"`
}

func defaults() map[string]interface{} {
	settings := exporter.DefaultExportSettings()
	return map[string]interface{}{
		"obj_up_axis":    string(scene.YUp),
		"export_path":    settings.ExportPath,
		"file_name":      settings.FileName,
		"unit_scale":     settings.UnitScale.String(),
		"include_width":  settings.IncludeWidth,
		"include_height": settings.IncludeHeight,
		"include_depth":  settings.IncludeDepth,
		"label_width":    settings.LabelWidth,
		"label_height":   settings.LabelHeight,
		"label_depth":    settings.LabelDepth,
	}
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range DefaultConfigFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configFileUsed := findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// DIMEXPORT_FILE_NAME -> file_name
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ConfigFileUsed = configFileUsed

	return &cfg, nil
}

// Converts the loaded values into exporter settings, rejecting invalid ones
func (c *Config) ExportSettings() (*exporter.ExportSettings, error) {
	unitScale, err := exporter.ParseUnitScale(c.UnitScale)
	if err != nil {
		return nil, err
	}

	settings := &exporter.ExportSettings{
		ExportPath:    c.ExportPath,
		FileName:      c.FileName,
		UnitScale:     unitScale,
		IncludeWidth:  c.IncludeWidth,
		IncludeHeight: c.IncludeHeight,
		IncludeDepth:  c.IncludeDepth,
		LabelWidth:    c.LabelWidth,
		LabelHeight:   c.LabelHeight,
		LabelDepth:    c.LabelDepth,
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *Config) LoadOptions() (*scene.LoadOptions, error) {
	upAxis, err := scene.ParseUpAxis(c.ObjUpAxis)
	if err != nil {
		return nil, err
	}
	if c.Input == "" {
		return nil, fmt.Errorf("an input scene file or folder is required")
	}

	return &scene.LoadOptions{
		Input:            c.Input,
		FolderProcessing: c.FolderProcessing,
		Recursive:        c.Recursive,
		Select:           c.Select,
		ObjUpAxis:        upAxis,
	}, nil
}
