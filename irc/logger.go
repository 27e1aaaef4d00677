package irc

import "log/slog"

var defLogger *slog.Logger

// SetDefaultLogger sets the logger DefaultLogger returns. Nothing in the
// irc package logs through it itself (diagnostics use the zerolog.Logger
// in Diagnostics, and NewMetrics returns registration errors to its
// caller); it is a shared default for callers. Must be called before
// DefaultLogger is used if the default slog.Default() isn't wanted.
func SetDefaultLogger(l *slog.Logger) {
	defLogger = l
}

func DefaultLogger() *slog.Logger {
	if defLogger != nil {
		return defLogger
	}
	return slog.Default()
}
