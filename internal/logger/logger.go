package logger

import "go.uber.org/zap"

// New builds the process logger. Debug mode switches to the human-readable
// development encoder.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
