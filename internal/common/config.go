package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Migration MigrationConfig
	RefData   RefDataConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// MigrationConfig holds pipeline-related configuration
type MigrationConfig struct {
	ArchiveListPath      string
	ChunkSize            int
	WriterWorkers        int
	ReportDir            string
	RobotUserEmail       string
	NotificationsEnabled bool
	DryRun               bool
}

// RefDataConfig holds reference-data file locations
type RefDataConfig struct {
	SitesPath    string
	ChannelsPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Migration: MigrationConfig{
			ArchiveListPath:      getEnv("ARCHIVE_LIST_PATH", ""),
			ChunkSize:            getEnvAsInt("MIGRATION_CHUNK_SIZE", 100),
			WriterWorkers:        getEnvAsInt("MIGRATION_WRITER_WORKERS", 4),
			ReportDir:            getEnv("MIGRATION_REPORT_DIR", "./reports"),
			RobotUserEmail:       getEnv("ROBOT_USER_EMAIL", "migration-robot@courtrec.local"),
			NotificationsEnabled: getEnvAsBool("NOTIFICATIONS_ENABLED", false),
			DryRun:               getEnvAsBool("MIGRATION_DRY_RUN", false),
		},
		RefData: RefDataConfig{
			SitesPath:    getEnv("SITES_CSV_PATH", ""),
			ChannelsPath: getEnv("CHANNEL_USERS_PATH", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Migration.ArchiveListPath == "" {
		return NewAppError("CONFIG_ERROR", "ARCHIVE_LIST_PATH is required", ErrInvalidInput)
	}
	if c.RefData.SitesPath == "" {
		return NewAppError("CONFIG_ERROR", "SITES_CSV_PATH is required", ErrInvalidInput)
	}
	if c.Migration.ChunkSize <= 0 {
		return NewAppError("CONFIG_ERROR", "MIGRATION_CHUNK_SIZE must be positive", ErrInvalidInput)
	}
	if c.Migration.WriterWorkers <= 0 {
		return NewAppError("CONFIG_ERROR", "MIGRATION_WRITER_WORKERS must be positive", ErrInvalidInput)
	}
	return nil
}
