package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Slot backends understood by the storage layer.
const (
	BackendFile      = "file"
	BackendMemory    = "memory"
	BackendRedis     = "redis"
	BackendFirestore = "firestore"
	BackendAzTables  = "aztables"
)

// Config holds all configuration for the application.
type Config struct {
	Port      string `mapstructure:"PORT"`
	GinMode   string `mapstructure:"GIN_MODE"`
	ClientURL string `mapstructure:"CLIENT_URL"`

	// Durable slot storage
	SlotBackend       string `mapstructure:"SLOT_BACKEND"`
	SlotDir           string `mapstructure:"SLOT_DIR"`
	SlotNamespace     string `mapstructure:"SLOT_NAMESPACE"`
	SlotEncryptionKey string `mapstructure:"SLOT_ENCRYPTION_KEY"` // Base64, optional

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`
	FirestoreCollection              string `mapstructure:"FIRESTORE_COLLECTION"`

	AzureTablesConnectionString string `mapstructure:"AZURE_TABLES_CONNECTION_STRING"`
	AzureTableName              string `mapstructure:"AZURE_TABLE_NAME"`

	// Display gate, not access control. A login turns the admin view on for the whole
	// process: every client reaches the admin routes until someone logs out.
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	WhatsAppLink string `mapstructure:"WHATSAPP_LINK"`

	// Inquiry notifications, all optional
	SMTPHost      string `mapstructure:"SMTP_HOST"`
	SMTPPort      string `mapstructure:"SMTP_PORT"`
	SMTPUser      string `mapstructure:"SMTP_USER"`
	SMTPPass      string `mapstructure:"SMTP_PASS"`
	SMTPFrom      string `mapstructure:"SMTP_FROM"`
	NotifyEmail   string `mapstructure:"NOTIFY_EMAIL"`
	RabbitMQURL   string `mapstructure:"RABBITMQ_URL"`
	RabbitMQQueue string `mapstructure:"RABBITMQ_QUEUE"`

	// Per-client limit on the public form and login endpoints
	RateLimitPerMinute int `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	RateLimitBurst     int `mapstructure:"RATE_LIMIT_BURST"`
}

var configKeys = []string{
	"PORT", "GIN_MODE", "CLIENT_URL",
	"SLOT_BACKEND", "SLOT_DIR", "SLOT_NAMESPACE", "SLOT_ENCRYPTION_KEY",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"FIREBASE_PROJECT_ID", "GOOGLE_APPLICATION_CREDENTIALS", "FIREBASE_SERVICE_ACCOUNT_JSON_BASE64", "FIRESTORE_COLLECTION",
	"AZURE_TABLES_CONNECTION_STRING", "AZURE_TABLE_NAME",
	"ADMIN_EMAIL", "ADMIN_PASSWORD",
	"WHATSAPP_LINK",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_FROM", "NOTIFY_EMAIL",
	"RABBITMQ_URL", "RABBITMQ_QUEUE",
	"RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_BURST",
}

// LoadConfig loads configuration from environment variables using Viper.
// If CONFIG_PATH points to a file (YAML, JSON or TOML), its values are read first
// and environment variables override them.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SLOT_BACKEND", BackendFile)
	v.SetDefault("SLOT_DIR", "data")
	v.SetDefault("SLOT_NAMESPACE", "starterkart:")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("FIRESTORE_COLLECTION", "slots")
	v.SetDefault("AZURE_TABLE_NAME", "starterkart")
	v.SetDefault("ADMIN_EMAIL", "owner@starterkart.dev")
	v.SetDefault("WHATSAPP_LINK", "https://wa.me/9818082449")
	v.SetDefault("SMTP_PORT", "2525")
	v.SetDefault("RABBITMQ_QUEUE", "inquiries")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 20)
	v.SetDefault("RATE_LIMIT_BURST", 5)

	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", key, err)
		}
	}

	if err := v.BindEnv("CONFIG_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind env CONFIG_PATH: %w", err)
	}
	if path := v.GetString("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}
	cfg.SlotBackend = strings.ToLower(strings.TrimSpace(cfg.SlotBackend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings every entry point needs: the slot backend and its connection details.
func (c *Config) Validate() error {
	switch c.SlotBackend {
	case BackendFile:
		if c.SlotDir == "" {
			return errors.New("SLOT_DIR is required for the file backend")
		}
	case BackendMemory:
	case BackendRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required for the redis backend")
		}
	case BackendFirestore:
		if c.FirebaseProjectID == "" {
			return errors.New("FIREBASE_PROJECT_ID is required for the firestore backend")
		}
	case BackendAzTables:
		if c.AzureTablesConnectionString == "" {
			return errors.New("AZURE_TABLES_CONNECTION_STRING is required for the aztables backend")
		}
		if c.AzureTableName == "" {
			return errors.New("AZURE_TABLE_NAME is required for the aztables backend")
		}
	default:
		return fmt.Errorf("unknown SLOT_BACKEND %q", c.SlotBackend)
	}
	return nil
}

// ValidateServer checks the settings only the HTTP server needs.
func (c *Config) ValidateServer() error {
	if c.AdminEmail == "" {
		return errors.New("ADMIN_EMAIL is required")
	}
	if c.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD is required")
	}
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	return nil
}

// MailEnabled reports whether inquiry notifications by e-mail are configured.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.NotifyEmail != ""
}

// QueueEnabled reports whether inquiry notifications to RabbitMQ are configured.
func (c *Config) QueueEnabled() bool {
	return c.RabbitMQURL != ""
}
