package logger

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var global atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	global.Store(&l)
}

// InitGlobalLogger replaces the process wide logger. It is meant to be called
// once, right after the config is loaded.
func InitGlobalLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writers := make([]io.Writer, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		switch target {
		case TargetConsole:
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		case TargetFile:
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.Path,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			})
		}
	}

	if len(writers) == 0 {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
	global.Store(&l)
}

func Debug(msg string, keyvals ...any) {
	withFields(global.Load().Debug(), keyvals).Msg(msg)
}

func Info(msg string, keyvals ...any) {
	withFields(global.Load().Info(), keyvals).Msg(msg)
}

func Warn(msg string, keyvals ...any) {
	withFields(global.Load().Warn(), keyvals).Msg(msg)
}

func Error(msg string, keyvals ...any) {
	withFields(global.Load().Error(), keyvals).Msg(msg)
}

// withFields attaches alternating key/value pairs to the event.
func withFields(ev *zerolog.Event, keyvals []any) *zerolog.Event {
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}

		if i+1 >= len(keyvals) {
			ev = ev.Str(key, "!MISSING-VALUE")

			break
		}

		switch v := keyvals[i+1].(type) {
		case error:
			ev = ev.AnErr(key, v)
		case string:
			ev = ev.Str(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}

	return ev
}
