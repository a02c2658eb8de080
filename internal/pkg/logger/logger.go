// Package logger bootstraps the application-wide zap logger.
// Components obtain the logger through zap.L() after initialization.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Initialize builds a production zap logger at the given level and installs
// it as the process-global logger via zap.ReplaceGlobals.
func Initialize(level string) error {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = atomicLevel

	log, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to build zap logger: %w", err)
	}

	zap.ReplaceGlobals(log)

	return nil
}
