// Package config loads the bot settings with Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "clotbot"
	envPrefix  = "CLOTBOT"
	configName = "clotbot.yml"
)

// Config holds all configuration values for the bot.
type Config struct {
	BotToken      string   `mapstructure:"bot_token" yaml:"bot_token"`
	WhatsAppHost  string   `mapstructure:"whatsapp_host" yaml:"whatsapp_host"`
	WhatsAppPhone string   `mapstructure:"whatsapp_phone" yaml:"whatsapp_phone"`
	LogLevel      string   `mapstructure:"log_level" yaml:"log_level"`
	LogFormat     string   `mapstructure:"log_format" yaml:"log_format"`
	Firebase      Firebase `mapstructure:"firebase" yaml:"firebase"`
}

// Firebase locates the optional lead archive.
type Firebase struct {
	ServiceAccountKeyPath string `mapstructure:"service_account_key_path" yaml:"service_account_key_path"`
	DatabaseURL           string `mapstructure:"database_url" yaml:"database_url"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		WhatsAppHost:  "wa.me",
		WhatsAppPhone: "2290166815278",
		LogLevel:      "info",
		LogFormat:     "console",
	}
}

var envKeys = []string{
	"bot_token",
	"whatsapp_host",
	"whatsapp_phone",
	"log_level",
	"log_format",
	"firebase.service_account_key_path",
	"firebase.database_url",
}

// Load reads configuration with precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	def := Default()
	v.SetDefault("bot_token", def.BotToken)
	v.SetDefault("whatsapp_host", def.WhatsAppHost)
	v.SetDefault("whatsapp_phone", def.WhatsAppPhone)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("firebase.service_account_key_path", "")
	v.SetDefault("firebase.database_url", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	if globalPath := GlobalPath(); fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	if projectPath := ProjectPath(); fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings needed to serve the bot.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("bot token is not set (%s_BOT_TOKEN or bot_token)", envPrefix)
	}
	if c.WhatsAppHost == "" || c.WhatsAppPhone == "" {
		return fmt.Errorf("whatsapp_host and whatsapp_phone are required")
	}
	return nil
}

// GlobalPath returns ~/.config/clotbot/clotbot.yml or its XDG_CONFIG_HOME equivalent.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, configName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName, configName)
}

// ProjectPath returns the config path in the working directory.
func ProjectPath() string {
	return configName
}

// Write marshals cfg to path as YAML, creating parent directories.
func Write(path string, cfg *Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
