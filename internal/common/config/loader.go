// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/errors"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like NOTIFICATIONS_STAGE
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	stage := os.Getenv("APP_STAGE")
	if stage != "" {
		viper.SetConfigName(fmt.Sprintf("config.%s", stage))
		_ = viper.MergeInConfig() // ignore error if not found
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg.Notifications); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg.Notifications); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.Notifications.Stage == "" {
		cfg.Notifications.Stage = "dev"
	}

	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 25
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// Validate checks the notification routing configuration once at process
// start. Required address lists left unset surface here, not per build.
func Validate(nc *NotificationConfig) error {
	if len(nc.DevReviewTeamEmails) == 0 {
		return apperrors.NewConfigFieldError("dev_review_team_emails", "notifications.dev_review_team_emails is required")
	}
	if len(nc.DMCOEmails) == 0 {
		return apperrors.NewConfigFieldError("dmco_emails", "notifications.dmco_emails is required")
	}
	if len(nc.DMCPSubmissionEmails) == 0 {
		return apperrors.NewConfigFieldError("dmcp_submission_emails", "notifications.dmcp_submission_emails is required")
	}
	if len(nc.DMCPReviewEmails) == 0 {
		return apperrors.NewConfigFieldError("dmcp_review_emails", "notifications.dmcp_review_emails is required")
	}
	if len(nc.OACTEmails) == 0 {
		return apperrors.NewConfigFieldError("oact_emails", "notifications.oact_emails is required")
	}
	if nc.EmailSource == "" {
		return apperrors.NewConfigFieldError("email_source", "notifications.email_source is required")
	}
	if nc.BaseURL == "" {
		return apperrors.NewConfigFieldError("base_url", "notifications.base_url is required")
	}
	return nil
}
