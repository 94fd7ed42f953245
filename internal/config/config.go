package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Square    SquareConfig    `yaml:"square"`
	Identity  IdentityConfig  `yaml:"identity"`
	Storage   StorageConfig   `yaml:"storage"`
	SendGrid  SendGridConfig  `yaml:"sendgrid"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// SquareConfig contains payment gateway settings
type SquareConfig struct {
	AccessToken string `yaml:"access_token"`
	Environment string `yaml:"environment"` // "sandbox" or "production"
}

// IdentityConfig points at the auth provider's admin API
type IdentityConfig struct {
	BaseURL    string `yaml:"base_url"`
	ServiceKey string `yaml:"service_key"`
}

// StorageConfig contains image storage settings
type StorageConfig struct {
	Type      string `yaml:"type"`       // "mock" or "s3"
	Bucket    string `yaml:"bucket"`     // For S3 storage
	Region    string `yaml:"region"`     // For S3 storage
	UploadDir string `yaml:"upload_dir"` // For mock storage
	BaseURL   string `yaml:"base_url"`   // Server base URL for mock URLs
}

// SendGridConfig contains email delivery settings
type SendGridConfig struct {
	APIKey    string `yaml:"api_key"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	ExpirePendingRentals string `yaml:"expire_pending_rentals"`
	PendingMaxAgeHours   int    `yaml:"pending_max_age_hours"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Square
	if val := os.Getenv("SQUARE_ACCESS_TOKEN"); val != "" {
		c.Square.AccessToken = val
	}
	if val := os.Getenv("SQUARE_ENVIRONMENT"); val != "" {
		c.Square.Environment = val
	}

	// Identity provider
	if val := os.Getenv("IDENTITY_BASE_URL"); val != "" {
		c.Identity.BaseURL = val
	}
	if val := os.Getenv("IDENTITY_SERVICE_KEY"); val != "" {
		c.Identity.ServiceKey = val
	}

	// SendGrid
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.SendGrid.APIKey = val
	}
	if val := os.Getenv("SENDGRID_FROM_EMAIL"); val != "" {
		c.SendGrid.FromEmail = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Storage
	if val := os.Getenv("STORAGE_TYPE"); val != "" {
		c.Storage.Type = val
	}
	if val := os.Getenv("S3_BUCKET"); val != "" {
		c.Storage.Bucket = val
	}
	if val := os.Getenv("UPLOAD_DIR"); val != "" {
		c.Storage.UploadDir = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// Square validation
	if c.Square.AccessToken == "" {
		return fmt.Errorf("square access token is required")
	}
	if c.Square.Environment == "" {
		c.Square.Environment = "sandbox"
	}
	if c.Square.Environment != "sandbox" && c.Square.Environment != "production" {
		return fmt.Errorf("invalid square environment: %s", c.Square.Environment)
	}

	// Identity validation
	if c.Identity.BaseURL == "" {
		return fmt.Errorf("identity base URL is required")
	}
	if c.Identity.ServiceKey == "" {
		return fmt.Errorf("identity service key is required")
	}

	// Storage validation
	switch c.Storage.Type {
	case "", "mock":
		if c.Storage.UploadDir == "" {
			return fmt.Errorf("upload directory is required for mock storage")
		}
	case "s3":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("S3 bucket is required")
		}
		if c.Storage.Region == "" {
			return fmt.Errorf("S3 region is required")
		}
	default:
		return fmt.Errorf("invalid storage type: %s", c.Storage.Type)
	}

	// Scheduler defaults
	if c.Scheduler.ExpirePendingRentals == "" {
		c.Scheduler.ExpirePendingRentals = "0 0 2 * * *" // 2 AM UTC
	}
	if c.Scheduler.PendingMaxAgeHours <= 0 {
		c.Scheduler.PendingMaxAgeHours = 72
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
