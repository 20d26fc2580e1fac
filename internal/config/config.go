package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	TransportUser = "user" // MTProto user account
	TransportBot  = "bot"  // Bot API account
)

type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Storage  StorageConfig  `yaml:"storage"`
	UI       UIConfig       `yaml:"ui"`
	Log      LogConfig      `yaml:"log"`
}

type TelegramConfig struct {
	Transport   string `yaml:"transport"`
	APIID       int    `yaml:"api_id"`
	APIHash     string `yaml:"api_hash"`
	Phone       string `yaml:"phone"`
	BotToken    string `yaml:"bot_token"`
	SessionFile string `yaml:"session_file"`
}

type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

type UIConfig struct {
	ExtendedEmoji bool `yaml:"extended_emoji"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads the YAML config, expanding ${VAR} references from the
// environment. A .env file in the working directory is loaded first so
// the API credentials can live there, the way the original client
// expects. Without a config file the client runs on env vars alone.
func Load() (*Config, error) {
	// Missing .env is fine; credentials may come from the real env.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/config.yaml"
	}

	cfg := defaults()

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		cfg.applyEnv()
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		content := expandEnv(string(data))
		if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Telegram: TelegramConfig{
			Transport:   TransportUser,
			SessionFile: "tgcli.session",
		},
		Storage: StorageConfig{
			DBPath: "./data/history.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("API_ID"); v != "" {
		fmt.Sscanf(v, "%d", &c.Telegram.APIID)
	}
	c.Telegram.APIHash = os.Getenv("API_HASH")
	c.Telegram.Phone = os.Getenv("PHONE")
	c.Telegram.BotToken = os.Getenv("BOT_TOKEN")
	if v := os.Getenv("TRANSPORT"); v != "" {
		c.Telegram.Transport = v
	}
}

func (c *Config) validate() error {
	switch c.Telegram.Transport {
	case TransportUser:
		if c.Telegram.APIID == 0 {
			return fmt.Errorf("telegram.api_id is required (get one at my.telegram.org)")
		}
		if c.Telegram.APIHash == "" {
			return fmt.Errorf("telegram.api_hash is required (get one at my.telegram.org)")
		}
		if c.Telegram.Phone == "" {
			return fmt.Errorf("telegram.phone is required for the user transport")
		}
		if c.Telegram.SessionFile == "" {
			return fmt.Errorf("telegram.session_file is required")
		}
	case TransportBot:
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required for the bot transport")
		}
	default:
		return fmt.Errorf("telegram.transport must be %q or %q", TransportUser, TransportBot)
	}

	if c.Storage.DBPath == "" {
		return fmt.Errorf("storage.db_path is required")
	}
	return nil
}

func expandEnv(s string) string {
	return os.Expand(s, func(key string) string {
		return os.Getenv(key)
	})
}

func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("Configuration:\n")
	sb.WriteString(fmt.Sprintf("  Transport: %s\n", c.Telegram.Transport))
	sb.WriteString(fmt.Sprintf("  API Hash: %s\n", maskSecret(c.Telegram.APIHash)))
	sb.WriteString(fmt.Sprintf("  Phone: %s\n", maskSecret(c.Telegram.Phone)))
	sb.WriteString(fmt.Sprintf("  Session File: %s\n", c.Telegram.SessionFile))
	sb.WriteString(fmt.Sprintf("  Storage DB Path: %s\n", c.Storage.DBPath))
	sb.WriteString(fmt.Sprintf("  Extended Emoji: %v\n", c.UI.ExtendedEmoji))
	sb.WriteString(fmt.Sprintf("  Log Level: %s\n", c.Log.Level))
	return sb.String()
}

func maskSecret(s string) string {
	if len(s) <= 8 {
		return "***"
	}
	return s[:4] + "..." + s[len(s)-4:]
}
