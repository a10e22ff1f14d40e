// Package logging provides zap logger helpers.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerName is the name carried by every record the application emits.
const LoggerName = "pdq-scraper"

// New builds a zap.Logger that writes to stderr in the
// "timestamp - name - LEVEL - message" record format at the given level.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	core := zapcore.NewCore(newRecordEncoder(), zapcore.Lock(os.Stderr), lvl)
	return zap.New(core).Named(LoggerName), nil
}
