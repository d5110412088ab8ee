// Package logging provides the process-wide structured logger.
//
// All diagnostic output goes to stderr: stdout belongs to the MCP stdio
// transport and must carry nothing but protocol messages.
package logging

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	defaultLogger *log.Logger
	once          sync.Once
)

// Default returns the shared logger, creating it on first use.
func Default() *log.Logger {
	once.Do(func() {
		defaultLogger = newLogger()
	})
	return defaultLogger
}

// Package-level convenience functions for quick logging.
func Info(msg any, keyvals ...any)  { Default().Info(msg, keyvals...) }
func Warn(msg any, keyvals ...any)  { Default().Warn(msg, keyvals...) }
func Error(msg any, keyvals ...any) { Default().Error(msg, keyvals...) }
func Debug(msg any, keyvals ...any) { Default().Debug(msg, keyvals...) }

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "scout",
	})

	switch os.Getenv("SCOUT_LOG") {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	default:
		if os.Getenv("DEBUG") != "" {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.WarnLevel)
		}
	}

	return logger
}
