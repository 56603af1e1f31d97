package config

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
)

type Server struct {
	// Mode is "dev" or "prod". Prod switches gin to release mode.
	Mode     string `default:"dev" mapstructure:"mode" debugmap:"visible"`
	HTTPPort int    `default:"8080" mapstructure:"http_port" debugmap:"visible"`
}

type Database struct {
	// Path to the SQLite file. ":memory:" is accepted for throwaway runs.
	Path string `default:"mealbridge.db" mapstructure:"path" debugmap:"visible"`
}

type Configuration struct {
	Server    Server   `mapstructure:"server"`
	Database  Database `mapstructure:"database"`
	LogLevel  string   `default:"info" mapstructure:"log_level" debugmap:"visible"`
	LogFormat string   `default:"console" mapstructure:"log_format" debugmap:"visible"`
}

// Load builds the configuration from defaults, an optional config file and
// MEALBRIDGE_* environment variables, in increasing precedence.
func Load(configFile string) (*Configuration, error) {
	v := viper.New()
	v.SetEnvPrefix("MEALBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{
		"server.mode",
		"server.http_port",
		"database.path",
		"log_level",
		"log_format",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

// DebugMap returns the configuration as a map safe for structured logging.
func (c *Configuration) DebugMap() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"mode":      c.Server.Mode,
			"http_port": c.Server.HTTPPort,
		},
		"database": map[string]any{
			"path": c.Database.Path,
		},
		"log_level":  c.LogLevel,
		"log_format": c.LogFormat,
	}
}
