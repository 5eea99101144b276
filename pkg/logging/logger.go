// Package logging builds the service-wide zap logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger returns a zap logger tuned to the environment: human-readable
// development output for local runs, JSON production output otherwise.
func NewLogger(env string) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if env == "local" || env == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger.With(zap.String("service", "erm-engine")), nil
}
