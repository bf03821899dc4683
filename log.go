package memedit

import (
	"log/slog"
	"os"
)

// logLevel controls debug logging for the package.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// editorLogger is the default logger for editors created without WithLogger.
var editorLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// verbose returns true if debug logging is enabled.
func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}
