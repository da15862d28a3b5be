// Package logging configures the process-wide debug log.
//
// bgmi keeps a rotating log file next to its state directory. The
// level comes from the BGMI_LOG environment variable (DEBUG, INFO,
// WARNING, ERROR) and defaults to ERROR so normal runs stay quiet.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs the default slog logger writing to path.
//
// An unknown BGMI_LOG value is an error: silently logging at the
// wrong level hides exactly the information the variable was set to
// reveal.
func Setup(path string) error {
	level, err := levelFromEnv()
	if err != nil {
		return err
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	return nil
}

func levelFromEnv() (slog.Level, error) {
	raw := os.Getenv("BGMI_LOG")
	if raw == "" {
		return slog.LevelError, nil
	}

	switch strings.ToUpper(raw) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown BGMI_LOG level %q", raw)
	}
}
