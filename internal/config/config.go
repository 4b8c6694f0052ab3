package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Gemini    GeminiConfig
	Sheets    SheetsConfig
	Reporting ReportingConfig
	Auth      AuthConfig
	Building  BuildingConfig
	Staff     StaffStoreConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for the hosted persistence gateway.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// GeminiConfig holds settings for the generative-language drafting bridge.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// SheetsConfig contains configuration for the report export spreadsheet.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// ReportingConfig holds scheduler-related settings.
type ReportingConfig struct {
	CronSchedule string
	Timezone     string
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	JWTSecret string
}

// BuildingConfig is the condominium identity stamped into drafted documents.
type BuildingConfig struct {
	Name      string
	Address   string
	NIF       string
	AdminName string
	IBAN      string
}

// StaffStoreConfig locates the device-local staff database.
type StaffStoreConfig struct {
	Path string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "condogest"),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getenvWithDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_REPORT_ID"),
		},
		Reporting: ReportingConfig{
			CronSchedule: getenvWithDefault("SNAPSHOT_CRON_SCHEDULE", "0 23 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Europe/Lisbon"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Building: BuildingConfig{
			Name:      getenvWithDefault("BUILDING_NAME", "Condomínio"),
			Address:   os.Getenv("BUILDING_ADDRESS"),
			NIF:       os.Getenv("BUILDING_NIF"),
			AdminName: getenvWithDefault("BUILDING_ADMIN_NAME", "Administração"),
			IBAN:      os.Getenv("BUILDING_IBAN"),
		},
		Staff: StaffStoreConfig{
			Path: getenvWithDefault("STAFF_DB_PATH", "data/staff.db"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
// Gemini and Sheets credentials are optional: without them the drafting
// bridge degrades to fallback text and the export job is skipped.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}
	if c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must not be empty")
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must be provided")
	}

	if c.Reporting.CronSchedule == "" {
		return errors.New("SNAPSHOT_CRON_SCHEDULE must be provided")
	}
	if c.Reporting.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.Staff.Path == "" {
		return errors.New("STAFF_DB_PATH must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
