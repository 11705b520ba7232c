// Package logger provides structured logging using zerolog. Everything goes
// to stderr because stdout carries the referee protocol.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const matchIDKey contextKey = "match_id"

const milliTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// maxLogged is the longest command line logged verbatim.
const maxLogged = 1000

// Init initializes the global logger. debug forces the debug level
// regardless of LOG_LEVEL.
func Init(debug bool) {
	InitWithWriter(os.Stderr, debug)
}

// InitWithWriter is Init with an explicit console destination.
func InitWithWriter(out io.Writer, debug bool) {
	zerolog.TimeFieldFormat = milliTimeFormat
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	const callerWidth = 24
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		path := fmt.Sprintf("%s:%d", filepath.Base(file), line)
		if len(path) >= callerWidth {
			return path[len(path)-callerWidth:]
		}
		return path + strings.Repeat(" ", callerWidth-len(path))
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: milliTimeFormat,
		NoColor:    !isDevelopmentMode(),
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		f, ferr := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if ferr == nil {
			output = io.MultiWriter(output, f)
		}
	}

	log.Logger = log.Output(output).With().Caller().Logger()

	log.Debug().
		Str("level", level.String()).
		Bool("dev", isDevelopmentMode()).
		Msg("Logger initialized")
}

func isDevelopmentMode() bool {
	return os.Getenv("DEV") == "true" ||
		os.Getenv("DEV_MODE") == "true" ||
		os.Getenv("DEVELOPMENT") == "true"
}

// Get returns the global logger instance.
func Get() zerolog.Logger {
	return log.Logger
}

// NewMatchID returns a fresh identifier used to correlate one match's logs.
func NewMatchID() string {
	return uuid.NewString()
}

// WithMatchID returns a new context with the given match ID stored.
func WithMatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, matchIDKey, id)
}

// MatchIDFromContext extracts the match ID from context, or empty string.
func MatchIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(matchIDKey).(string)
	return id
}

// ForMatch returns a logger enriched with the match ID from context.
func ForMatch(ctx context.Context) zerolog.Logger {
	id := MatchIDFromContext(ctx)
	if id == "" {
		return log.Logger
	}
	return log.Logger.With().Str("matchId", id).Logger()
}

// LogCommand logs an emitted command line at debug level, truncating if too long.
func LogCommand(logger zerolog.Logger, turn int, line string) {
	if len(line) > maxLogged {
		logger.Debug().Int("turn", turn).Str("command", line[:maxLogged]).Bool("truncated", true).Msg("Command emitted")
	} else {
		logger.Debug().Int("turn", turn).Str("command", line).Msg("Command emitted")
	}
}
