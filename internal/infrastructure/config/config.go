package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/echolabs-dev/echo-api/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port                         string
	AppBaseURL                   string
	DatabaseURL                  string
	JWTSecret                    string
	SMTPHost                     string
	SMTPPort                     int
	SMTPUsername                 string
	SMTPPassword                 string
	FromEmail                    string
	AccessTokenExpiry            time.Duration
	EmailVerificationTokenExpiry time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:3000"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", ""),
		AccessTokenExpiry: time.Hour * time.Duration(
			getEnvAsInt("ACCESS_TOKEN_EXPIRY_HOURS", 168)), // 7 days
		EmailVerificationTokenExpiry: time.Hour * time.Duration(
			getEnvAsInt("EMAIL_VERIFICATION_TOKEN_EXPIRY_HOURS", 24)),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetAppBaseURL returns the base URL used to build links embedded in emails.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetAccessTokenExpiry returns the expiry duration for access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetEmailVerificationTokenExpiry returns the expiry duration for email verification tokens.
func (c *Config) GetEmailVerificationTokenExpiry() time.Duration {
	return c.EmailVerificationTokenExpiry
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
