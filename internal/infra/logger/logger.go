package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New 建立 root logger, 輸出 JSON 到 stdout, extra 為額外的輸出 (例如 kafka)
// level 無法解析時使用 info
func New(service string, level string, extra ...io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	writers := make([]io.Writer, 0, len(extra)+1)
	writers = append(writers, os.Stdout)
	for _, w := range extra {
		if w != nil {
			writers = append(writers, w)
		}
	}

	return newWithWriter(zerolog.MultiLevelWriter(writers...), service, lvl)
}

func newWithWriter(w io.Writer, service string, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}
