package main

import (
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

type Config struct {
	Password string `mapstructure:"password"`
	Message  string `mapstructure:"message"`
	LogLevel string `mapstructure:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Password: "key",
		Message:  "zółć",
		LogLevel: "info",
	}
}

// LoadConfig merges, lowest precedence first: defaults, the config file,
// IDEA_* environment variables and flags set on the command line.
func LoadConfig(c *cli.Context) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("password", cfg.Password)
	v.SetDefault("message", cfg.Message)
	v.SetDefault("log_level", cfg.LogLevel)

	if file := c.String("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("ideademo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.ideademo")
	}
	v.SetEnvPrefix("IDEA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	for _, name := range []string{"password", "message", "log-level"} {
		if c.IsSet(name) {
			v.Set(flagKey(name), c.String(name))
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func flagKey(name string) string {
	if name == "log-level" {
		return "log_level"
	}
	return name
}
