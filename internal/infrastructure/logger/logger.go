package logger

import (
	"os"

	"github.com/rs/zerolog"

	usecasecontract "github.com/echolabs-dev/echo-api/internal/usecase/contract"
)

// ZerologLogger implements the usecase logging interface on top of zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger creates a logger writing structured lines to stderr.
func NewZerologLogger() usecasecontract.IAppLogger {
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return &ZerologLogger{log: zl}
}

var _ usecasecontract.IAppLogger = (*ZerologLogger)(nil)

// Debugf logs a debug message.
func (l *ZerologLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

// Infof logs an info message.
func (l *ZerologLogger) Infof(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

// Warnf logs a warning message.
func (l *ZerologLogger) Warnf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

// Errorf logs an error message.
func (l *ZerologLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *ZerologLogger) Fatalf(format string, args ...interface{}) {
	l.log.Fatal().Msgf(format, args...)
}
