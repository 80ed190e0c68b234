package logger

import (
	"go.uber.org/zap"
)

// Log is the process-wide structured logger. Init must run before anything
// else uses it; until then it is a no-op logger so tests need no setup.
var Log = zap.NewNop()

// Init configures the global logger. Release mode gets JSON production
// output; anything else gets the human-readable development encoder.
func Init(ginMode string) error {
	var (
		l   *zap.Logger
		err error
	)
	if ginMode == "release" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	_ = Log.Sync()
}
