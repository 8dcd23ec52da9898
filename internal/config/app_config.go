// Package config loads layered ltree settings from configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tyemirov/ltree/internal/render"
	"github.com/tyemirov/ltree/internal/utils"
)

const (
	// DefaultPath is the directory rendered when none is given.
	DefaultPath = "."
	// DefaultRootLimit caps the root listing.
	DefaultRootLimit = 10
	// DefaultSubLimit caps every rendered directory listing.
	DefaultSubLimit = 4
	// DefaultLevels is the intended maximum depth.
	DefaultLevels = 3
	// DefaultShowHidden controls dotfile visibility.
	DefaultShowHidden = false
	// DefaultColorMode selects terminal detection for ANSI styling.
	DefaultColorMode = render.ColorModeAuto

	errorNegativeSettingFormat = "%s must not be negative, got %d"
	errorInvalidColorFormat    = "color must be one of auto, always, never, got %q"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration mirrors the configuration file layout.
type ApplicationConfiguration struct {
	Tree TreeConfiguration `mapstructure:"tree"`
}

// TreeConfiguration holds optional tree settings; nil or empty values leave lower layers untouched.
type TreeConfiguration struct {
	Path       string `mapstructure:"path"`
	RootLimit  *int   `mapstructure:"root_limit"`
	SubLimit   *int   `mapstructure:"sub_limit"`
	Levels     *int   `mapstructure:"levels"`
	ShowHidden *bool  `mapstructure:"show_hidden"`
	Color      string `mapstructure:"color"`
	LogLevel   string `mapstructure:"log_level"`
}

// TreeSettings are the fully resolved values used for a render.
type TreeSettings struct {
	Path       string
	RootLimit  int
	SubLimit   int
	Levels     int
	ShowHidden bool
	Color      string
	LogLevel   string
}

// DefaultTreeSettings returns the built-in settings.
func DefaultTreeSettings() TreeSettings {
	return TreeSettings{
		Path:       DefaultPath,
		RootLimit:  DefaultRootLimit,
		SubLimit:   DefaultSubLimit,
		Levels:     DefaultLevels,
		ShowHidden: DefaultShowHidden,
		Color:      DefaultColorMode,
		LogLevel:   utils.DefaultLogLevel,
	}
}

// LoadApplicationConfiguration loads configuration from the global file and then the local or explicit file.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath, false)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	localConfig, loadErr := loadConfigurationFromPath(localPath, options.ExplicitFilePath != "")
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) string {
	if explicitPath == "" {
		return filepath.Join(workingDirectory, utils.LocalConfigFileName)
	}
	if filepath.IsAbs(explicitPath) {
		return explicitPath
	}
	return filepath.Join(workingDirectory, explicitPath)
}

// loadConfigurationFromPath reads one YAML file. Missing files are only an error when required.
func loadConfigurationFromPath(path string, required bool) (ApplicationConfiguration, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) && !required {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		reader.SetConfigType("yaml")
	}
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	result.Tree = result.Tree.merge(override.Tree)
	return result
}

func (config TreeConfiguration) merge(override TreeConfiguration) TreeConfiguration {
	result := config
	if override.Path != "" {
		result.Path = override.Path
	}
	if override.RootLimit != nil {
		result.RootLimit = cloneInt(override.RootLimit)
	}
	if override.SubLimit != nil {
		result.SubLimit = cloneInt(override.SubLimit)
	}
	if override.Levels != nil {
		result.Levels = cloneInt(override.Levels)
	}
	if override.ShowHidden != nil {
		result.ShowHidden = cloneBool(override.ShowHidden)
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	return result
}

// Apply overlays the configured values onto settings.
func (config TreeConfiguration) Apply(settings TreeSettings) TreeSettings {
	result := settings
	if config.Path != "" {
		result.Path = config.Path
	}
	if config.RootLimit != nil {
		result.RootLimit = *config.RootLimit
	}
	if config.SubLimit != nil {
		result.SubLimit = *config.SubLimit
	}
	if config.Levels != nil {
		result.Levels = *config.Levels
	}
	if config.ShowHidden != nil {
		result.ShowHidden = *config.ShowHidden
	}
	if config.Color != "" {
		result.Color = config.Color
	}
	if config.LogLevel != "" {
		result.LogLevel = config.LogLevel
	}
	return result
}

// Validate rejects settings that cannot drive a render.
func (settings TreeSettings) Validate() error {
	limits := []struct {
		name  string
		value int
	}{
		{name: "root_limit", value: settings.RootLimit},
		{name: "sub_limit", value: settings.SubLimit},
		{name: "levels", value: settings.Levels},
	}
	for _, limit := range limits {
		if limit.value < 0 {
			return fmt.Errorf(errorNegativeSettingFormat, limit.name, limit.value)
		}
	}
	if !render.IsValidColorMode(settings.Color) {
		return fmt.Errorf(errorInvalidColorFormat, settings.Color)
	}
	if _, levelErr := utils.ParseLogLevel(settings.LogLevel); levelErr != nil {
		return levelErr
	}
	if strings.TrimSpace(settings.Path) == "" {
		return fmt.Errorf("path must not be empty")
	}
	return nil
}

// RenderOptions converts settings into renderer options.
// Only SubLimit is threaded through the traversal; RootLimit and Levels are carried but not applied.
func (settings TreeSettings) RenderOptions() render.Options {
	return render.Options{
		MaxEntriesPerDirectory: settings.SubLimit,
		ShowHidden:             settings.ShowHidden,
	}
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
