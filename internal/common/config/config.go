// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Database      DatabaseConfig     `mapstructure:"database"`
	AWS           AWSConfig          `mapstructure:"aws"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// NotificationConfig is the immutable routing configuration. Loaded once
// per process and read-only thereafter.
type NotificationConfig struct {
	DevReviewTeamEmails  []string `mapstructure:"dev_review_team_emails"`
	DMCOEmails           []string `mapstructure:"dmco_emails"`
	DMCPSubmissionEmails []string `mapstructure:"dmcp_submission_emails"`
	DMCPReviewEmails     []string `mapstructure:"dmcp_review_emails"`
	OACTEmails           []string `mapstructure:"oact_emails"`

	EmailSource   string   `mapstructure:"email_source"`
	ReplyToEmails []string `mapstructure:"reply_to_emails"`

	// Help addresses rendered verbatim inside templates.
	HelpDeskEmail             string `mapstructure:"help_desk_email"`
	CMSReviewHelpEmailAddress string `mapstructure:"cms_review_help_email"`
	CMSRateHelpEmailAddress   string `mapstructure:"cms_rate_help_email"`

	// Stage tags every subject line outside prod.
	Stage   string `mapstructure:"stage"`
	BaseURL string `mapstructure:"base_url"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AWSConfig struct {
	Region string `mapstructure:"region"`
	SES    struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"ses"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
