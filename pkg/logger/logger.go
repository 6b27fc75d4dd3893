package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger. LOG_MODE=development switches to the
// human-readable console encoder.
func New(mode string) (*zap.Logger, error) {
	if mode == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
