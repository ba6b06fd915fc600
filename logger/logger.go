package logger

import "go.uber.org/zap"

var log *zap.Logger

// Init builds the process-wide logger. Call once from main before
// anything logs.
func Init() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	log = l
	return nil
}

// L returns the process-wide logger, a no-op logger if Init was never
// called (tests).
func L() *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return log
}
