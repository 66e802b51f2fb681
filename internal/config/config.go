// Package config загружает настройки клиента и devnet-шлюза:
// значения по умолчанию, затем YAML файл, затем переменные окружения.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type ctxKey string

const configContextKey ctxKey = "gophcert.config"

// EnvPrefix префикс переменных окружения клиента
const EnvPrefix = "gophcert"

// DevnetEnvPrefix префикс переменных окружения devnet-шлюза
const DevnetEnvPrefix = "gophcert_devnet"

// Config настройки клиента gophcert
type Config struct {
	GatewayURL           string        `yaml:"gatewayURL"           split_words:"true"`
	ModuleAddress        string        `yaml:"moduleAddress"        split_words:"true"`
	DatabasePath         string        `yaml:"databasePath"         split_words:"true"`
	LogLevel             string        `yaml:"logLevel"             split_words:"true"`
	WalletPassphrase     string        `yaml:"-"                    split_words:"true"`
	WalletPassphraseFile string        `yaml:"walletPassphraseFile" split_words:"true"`
	ConfirmPollInterval  time.Duration `yaml:"confirmPollInterval"  split_words:"true"`
	ConfirmMaxInterval   time.Duration `yaml:"confirmMaxInterval"   split_words:"true"`
	RequestTimeout       time.Duration `yaml:"requestTimeout"       split_words:"true"`
}

// DevnetConfig настройки devnet-шлюза
type DevnetConfig struct {
	BindAddr      string        `yaml:"bindAddr"      split_words:"true"`
	DatabasePath  string        `yaml:"databasePath"  split_words:"true"`
	ModuleAddress string        `yaml:"moduleAddress" split_words:"true"`
	LogLevel      string        `yaml:"logLevel"      split_words:"true"`
	Port          uint          `yaml:"port"`
	RateLimit     int           `yaml:"rateLimit"     split_words:"true"`
	RateWindow    time.Duration `yaml:"rateWindow"    split_words:"true"`
	BlockInterval time.Duration `yaml:"blockInterval" split_words:"true"`
	TokenMaxAge   time.Duration `yaml:"tokenMaxAge"   split_words:"true"`
}

// DefaultModuleAddress адрес модуля certificates в devnet
const DefaultModuleAddress = "0xce27"

// Default возвращает настройки клиента по умолчанию
func Default() *Config {
	return &Config{
		GatewayURL:          "http://127.0.0.1:8480",
		ModuleAddress:       DefaultModuleAddress,
		DatabasePath:        defaultDataPath("gophcert.db"),
		LogLevel:            "warn",
		ConfirmPollInterval: 250 * time.Millisecond,
		ConfirmMaxInterval:  2 * time.Second,
	}
}

// DefaultDevnet возвращает настройки devnet-шлюза по умолчанию
func DefaultDevnet() *DevnetConfig {
	return &DevnetConfig{
		BindAddr:      "127.0.0.1",
		Port:          8480,
		DatabasePath:  "devnet.db",
		ModuleAddress: DefaultModuleAddress,
		LogLevel:      "info",
		BlockInterval: time.Second,
		RateLimit:     60,
		RateWindow:    time.Minute,
		TokenMaxAge:   5 * time.Minute,
	}
}

// WithContext кладёт настройки клиента в контекст команды
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configContextKey, cfg)
}

// FromContext достаёт настройки клиента из контекста.
// Возвращает nil если настройки не были загружены.
func FromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok {
		return nil
	}
	return cfg
}

// Load загружает настройки клиента. Без явного пути ищет ~/.gophcert/gophcert.yaml.
func Load(configFile string) (*Config, error) {
	cfg := Default()
	if err := load(configFile, "gophcert.yaml", EnvPrefix, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDevnet загружает настройки devnet-шлюза
func LoadDevnet(configFile string) (*DevnetConfig, error) {
	cfg := DefaultDevnet()
	if err := load(configFile, "devnet.yaml", DevnetEnvPrefix, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(configFile, defaultName, prefix string, dst any) error {
	if configFile == "" {
		// Check for config file in this path: ~/.gophcert/<name>
		if homeDir, err := os.UserHomeDir(); err == nil {
			userPath := filepath.Join(homeDir, ".gophcert", defaultName)
			if _, err := os.Stat(userPath); err == nil {
				configFile = userPath
			}
		}
	}

	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Overlay file values onto defaults
		if err := yaml.Unmarshal(buf, dst); err != nil {
			return fmt.Errorf("error parsing config file: %w", err)
		}
	}

	// Process environment variables
	if err := envconfig.Process(prefix, dst); err != nil {
		return fmt.Errorf("error processing environment: %w", err)
	}
	return nil
}

// Validate проверяет обязательные настройки клиента
func (c *Config) Validate() error {
	if c.GatewayURL == "" {
		return fmt.Errorf("gatewayURL must be set")
	}
	if !strings.HasPrefix(c.GatewayURL, "http://") && !strings.HasPrefix(c.GatewayURL, "https://") {
		return fmt.Errorf("invalid gatewayURL %q: must start with http:// or https://", c.GatewayURL)
	}
	if c.ModuleAddress == "" {
		return fmt.Errorf("moduleAddress must be set")
	}
	if c.ConfirmPollInterval <= 0 || c.ConfirmMaxInterval < c.ConfirmPollInterval {
		return fmt.Errorf("invalid confirmation intervals: poll %s, max %s", c.ConfirmPollInterval, c.ConfirmMaxInterval)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("requestTimeout must not be negative")
	}
	return nil
}

// Passphrase возвращает пароль кошелька из окружения или файла.
// Пустая строка означает что пароль нужно запросить у пользователя.
func (c *Config) Passphrase() (string, error) {
	if c.WalletPassphrase != "" {
		return c.WalletPassphrase, nil
	}
	if c.WalletPassphraseFile == "" {
		return "", nil
	}
	buf, err := os.ReadFile(c.WalletPassphraseFile)
	if err != nil {
		return "", fmt.Errorf("error reading passphrase file: %w", err)
	}
	return strings.TrimRight(string(buf), "\r\n"), nil
}

// Validate проверяет настройки devnet-шлюза
func (c *DevnetConfig) Validate() error {
	if c.Port == 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.ModuleAddress == "" {
		return fmt.Errorf("moduleAddress must be set")
	}
	if c.BlockInterval <= 0 {
		return fmt.Errorf("blockInterval must be positive")
	}
	if c.RateLimit <= 0 || c.RateWindow <= 0 {
		return fmt.Errorf("rateLimit and rateWindow must be positive")
	}
	if c.TokenMaxAge <= 0 {
		return fmt.Errorf("tokenMaxAge must be positive")
	}
	return nil
}

// ListenAddr адрес для http.Server
func (c *DevnetConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.BindAddr, c.Port)
}

func defaultDataPath(name string) string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".gophcert", name)
	}
	return name
}

// ParseLogLevel переводит logLevel в slog.Level. Неизвестные значения дают info.
func ParseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
