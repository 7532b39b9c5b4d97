// Package logger holds the process-wide zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is a no-op until Initialize is called.
	Logger *zap.SugaredLogger
	// JSONOutput records the encoder chosen by the last Initialize.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up console (or JSON) logging to stderr. Each verbosity step
// lowers the level: 0 warn, 1 info, 2+ debug.
func Initialize(jsonOutput bool, verbosity int) error {
	return initialize(jsonOutput, verbosity, zapcore.Lock(os.Stderr))
}

// InitializeFile sends logs to a file instead of the terminal. The TUI uses it
// so log lines never land on the screen it draws.
func InitializeFile(path string, verbosity int) error {
	f, _, err := zap.Open(path)
	if err != nil {
		return err
	}
	return initialize(true, verbosity, f)
}

func initialize(jsonOutput bool, verbosity int, out zapcore.WriteSyncer) error {
	JSONOutput = jsonOutput

	var encoder zapcore.Encoder
	if jsonOutput {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	Logger = zap.New(zapcore.NewCore(encoder, out, levelFor(verbosity))).Sugar()
	return nil
}

func levelFor(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zap.WarnLevel
	case verbosity == 1:
		return zap.InfoLevel
	default:
		return zap.DebugLevel
	}
}

// Named returns a child logger for one component.
func Named(component string) *zap.SugaredLogger {
	return Logger.Named(component)
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	_ = Logger.Sync()
}
