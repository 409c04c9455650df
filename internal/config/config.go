// Package config provides Viper-based configuration loading for the combat simulator.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ActorConfig holds the starting state of one combatant.
type ActorConfig struct {
	// Name is the display name shown in the status screen.
	Name string `mapstructure:"name"`
	// HP is the starting health total.
	HP int `mapstructure:"hp"`
}

// GameConfig holds the two fixed combatants and end-of-game pacing.
type GameConfig struct {
	Human    ActorConfig `mapstructure:"human"`
	Computer ActorConfig `mapstructure:"computer"`
	// EndDelay is the pause after the end-of-game message before exit.
	EndDelay time.Duration `mapstructure:"end_delay"`
}

// ConsoleConfig holds terminal presentation settings.
type ConsoleConfig struct {
	// Color enables ANSI color in rendered output.
	Color bool `mapstructure:"color"`
	// ClearScreen clears the terminal before each status screen.
	ClearScreen bool `mapstructure:"clear_screen"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a zap sink path, e.g. "stderr" or a file path.
	Output string `mapstructure:"output"`
}

// Config is the top-level application configuration.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Console ConsoleConfig `mapstructure:"console"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateActor(key string, a ActorConfig) []string {
	var errs []string
	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, fmt.Sprintf("%s.name must not be empty", key))
	}
	if a.HP < 1 {
		errs = append(errs, fmt.Sprintf("%s.hp must be >= 1, got %d", key, a.HP))
	}
	return errs
}

func validateGame(g GameConfig) error {
	var errs []string
	errs = append(errs, validateActor("game.human", g.Human)...)
	errs = append(errs, validateActor("game.computer", g.Computer)...)
	if g.EndDelay < 0 {
		errs = append(errs, "game.end_delay must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return fmt.Errorf("logging.output must not be empty")
	}
	return nil
}

// envKeys are the only keys that COMBATSIM_ environment variables may
// override. The game.* section is never read from the environment.
var envKeys = []string{
	"console.color",
	"console.clear_screen",
	"logging.level",
	"logging.format",
	"logging.output",
}

// Load builds configuration from defaults, an optional YAML file, and
// environment variable overrides for console and logging keys, then
// validates the result.
//
// Precondition: path is empty (defaults only) or a path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix("COMBATSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.human.name", "Player1")
	v.SetDefault("game.human.hp", 100)
	v.SetDefault("game.computer.name", "Dragon")
	v.SetDefault("game.computer.hp", 200)
	v.SetDefault("game.end_delay", "3s")

	v.SetDefault("console.color", false)
	v.SetDefault("console.clear_screen", true)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
}
