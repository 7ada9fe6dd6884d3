package observe

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultLogger returns a zap-backed Logger with the production profile
// (JSON output, info level and above). The returned value is a
// *zap.SugaredLogger, which satisfies Logger directly.
func DefaultLogger() (Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return logger.Sugar(), nil
}
