package usecasecontract

import "time"

// IConfigProvider exposes the configuration values usecases need.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetEmailVerificationTokenExpiry() time.Duration
}
