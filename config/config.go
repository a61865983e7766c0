// Package config loads the member list settings from <profileDir>/vlist.yaml,
// environment variables (VLIST_*) and command-line flags, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jcikl/jcikl-member-app-sub001/window"
)

const (
	fileName  = "vlist"
	fileType  = "yaml"
	envPrefix = "VLIST"
)

// Config holds every setting of the member list.
type Config struct {
	Theme  string       `mapstructure:"theme" yaml:"theme"`
	List   ListConfig   `mapstructure:"list" yaml:"list"`
	Data   DataConfig   `mapstructure:"data" yaml:"data"`
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
}

// ListConfig configures the virtualized list.
type ListConfig struct {
	// ItemSize is the height of one row in terminal lines.
	ItemSize int `mapstructure:"item_size" yaml:"item_size"`
	// OverscanCount is the number of rows rendered beyond each viewport edge.
	OverscanCount int `mapstructure:"overscan_count" yaml:"overscan_count"`
	// Height pins the list to a fixed number of lines. 0 measures the
	// terminal instead.
	Height      int    `mapstructure:"height" yaml:"height"`
	EmptyText   string `mapstructure:"empty_text" yaml:"empty_text"`
	LoadingText string `mapstructure:"loading_text" yaml:"loading_text"`
	Scrollbar   bool   `mapstructure:"scrollbar" yaml:"scrollbar"`
}

// DataConfig configures the synthetic member source.
type DataConfig struct {
	Count int    `mapstructure:"count" yaml:"count"`
	Seed  string `mapstructure:"seed" yaml:"seed"`
}

// LoggerConfig configures structured logging.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Theme: "",
		List: ListConfig{
			ItemSize:      1,
			OverscanCount: window.DefaultOverscan,
			Height:        0,
			EmptyText:     "No members found",
			LoadingText:   "Loading members",
			Scrollbar:     true,
		},
		Data: DataConfig{
			Count: 100_000,
			Seed:  "members",
		},
		Logger: LoggerConfig{
			Level:       "info",
			Format:      "json",
			ServiceName: "vlist",
			MaxSize:     10,
			MaxBackups:  3,
			MaxAge:      28,
		},
	}
}

// SetDefaults registers the defaults on v so that env lookups work for keys
// absent from the config file.
func SetDefaults(v *viper.Viper) {
	d := NewDefaultConfig()
	v.SetDefault("theme", d.Theme)
	v.SetDefault("list.item_size", d.List.ItemSize)
	v.SetDefault("list.overscan_count", d.List.OverscanCount)
	v.SetDefault("list.height", d.List.Height)
	v.SetDefault("list.empty_text", d.List.EmptyText)
	v.SetDefault("list.loading_text", d.List.LoadingText)
	v.SetDefault("list.scrollbar", d.List.Scrollbar)
	v.SetDefault("data.count", d.Data.Count)
	v.SetDefault("data.seed", d.Data.Seed)
	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.format", d.Logger.Format)
	v.SetDefault("logger.service_name", d.Logger.ServiceName)
	v.SetDefault("logger.log_file", d.Logger.LogFile)
	v.SetDefault("logger.max_size", d.Logger.MaxSize)
	v.SetDefault("logger.max_backups", d.Logger.MaxBackups)
	v.SetDefault("logger.max_age", d.Logger.MaxAge)
	v.SetDefault("logger.compress", d.Logger.Compress)
	v.SetDefault("logger.add_source", d.Logger.AddSource)
}

// Prepare wires v to read <profileDir>/vlist.yaml (or file, when set) and
// VLIST_* environment variables.
func Prepare(v *viper.Viper, profileDir, file string) {
	SetDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(profileDir)
		v.SetConfigName(fileName)
		v.SetConfigType(fileType)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Read loads the config file into v. A missing file is not an error; the
// defaults and environment still apply.
func Read(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// Unmarshal decodes v into a Config and validates it.
func Unmarshal(v *viper.Viper) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load is Prepare, Read and Unmarshal on a fresh viper instance.
func Load(profileDir, file string) (*Config, error) {
	v := viper.New()
	Prepare(v, profileDir, file)
	if err := Read(v); err != nil {
		return nil, err
	}
	return Unmarshal(v)
}

// Validate reports list settings the engine cannot run with as a
// *window.ConfigurationError.
func (c *Config) Validate() error {
	if err := window.Validate(float64(c.List.ItemSize)); err != nil {
		return err
	}
	if c.List.OverscanCount < 0 {
		return &window.ConfigurationError{Field: "overscanCount", Value: c.List.OverscanCount}
	}
	if c.List.Height < 0 {
		return &window.ConfigurationError{Field: "height", Value: c.List.Height}
	}
	if c.Data.Count < 0 {
		return &window.ConfigurationError{Field: "count", Value: c.Data.Count}
	}
	return nil
}

// Save writes cfg to <profileDir>/vlist.yaml, creating the directory if needed.
func Save(profileDir string, cfg *Config) error {
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(Path(profileDir), data, 0o644)
}

// Path returns the config file location inside profileDir.
func Path(profileDir string) string {
	return filepath.Join(profileDir, fileName+"."+fileType)
}
