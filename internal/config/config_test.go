package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:    ServerConfig{Port: "8080"},
		MongoDB:   MongoDBConfig{URI: "mongodb://localhost:27017", DBName: "condogest"},
		Reporting: ReportingConfig{CronSchedule: "0 23 * * *", Timezone: "Europe/Lisbon"},
		Auth:      AuthConfig{JWTSecret: "secret"},
		Staff:     StaffStoreConfig{Path: "data/staff.db"},
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRequiresMongoURI(t *testing.T) {
	cfg := validConfig()
	cfg.MongoDB.URI = ""
	require.Error(t, cfg.Validate())
}

func TestValidateRequiresJWTSecret(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = ""
	require.Error(t, cfg.Validate())
}

func TestValidateAllowsMissingGeminiAndSheets(t *testing.T) {
	cfg := validConfig()
	cfg.Gemini = GeminiConfig{}
	cfg.Sheets = SheetsConfig{}
	require.NoError(t, cfg.Validate())
}

func TestValidateNilConfig(t *testing.T) {
	var cfg *Config
	require.Error(t, cfg.Validate())
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_PORT", "")
	t.Setenv("MONGODB_DB_NAME", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("STAFF_DB_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "condogest", cfg.MongoDB.DBName)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "Europe/Lisbon", cfg.Reporting.Timezone)
	assert.Equal(t, "data/staff.db", cfg.Staff.Path)
}
