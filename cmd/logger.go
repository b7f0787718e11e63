package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// newLogger 按级别创建写往 writer 的文本日志，不修改全局 logger。
func newLogger(levelStr string, writer io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unsupported log level %q, allowed values: debug, info, warn, error", levelStr)
	}

	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})), nil
}
