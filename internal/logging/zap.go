package logging

import (
	"go.uber.org/zap"

	"github.com/justinegdelta/vecstream/types"
)

// ZapLogger implements types.Logger on top of a zap.SugaredLogger.
//
// The interface methods take (msg, keysAndValues...) while the sugared
// logger spells them Debugw/Infow/..., so a thin adapter is needed rather
// than using the sugared logger directly.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// Compile-time assertion that ZapLogger implements Logger.
var _ types.Logger = (*ZapLogger)(nil)

// NewZap creates a logger backed by the given zap.SugaredLogger.
//
// Parameters:
//   - logger: The sugared zap logger to forward to
//
// Returns:
//   - *ZapLogger: Logger forwarding to zap
//
// Example:
//
//	z, _ := zap.NewProduction()
//	logger := logging.NewZap(z.Sugar())
func NewZap(logger *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key-value pairs.
func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Infow(msg, keysAndValues...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key-value pairs.
func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message and exits via zap.
func (l *ZapLogger) Fatal(msg string, keysAndValues ...any) {
	l.logger.Fatalw(msg, keysAndValues...)
}
