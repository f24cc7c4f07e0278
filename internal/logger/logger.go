package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level is the set of severities this package understands. It exists
// separately from slog.Level so SetLevel can take the same DEBUG/INFO/WARN/
// ERROR strings a user would pass on a command line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func toSlogLevel(l Level) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures the package-level logger. There is no Format or
// Output knob here: this package backs a library and a single developer-
// facing CLI, not a daemon that ships logs to a collector, so the only
// thing worth tuning from outside is verbosity.
type Config struct {
	Level string // DEBUG, INFO, WARN, ERROR
}

var (
	mu       sync.RWMutex
	levelVar = new(slog.LevelVar)
	slogger  *slog.Logger
)

func init() {
	f := os.Stdout
	slogger = slog.New(newTextHandler(f, levelVar, isTerminal(f.Fd())))
}

// Init applies cfg to the package-level logger.
func Init(cfg Config) error {
	if cfg.Level != "" {
		SetLevel(cfg.Level)
	}
	return nil
}

// InitWithWriter points the logger at w instead of stdout. Used by tests
// that need to capture and assert on log output.
func InitWithWriter(w io.Writer, level string, enableColor bool) {
	mu.Lock()
	slogger = slog.New(newTextHandler(w, levelVar, enableColor))
	mu.Unlock()

	if level != "" {
		SetLevel(level)
	}
}

// SetLevel sets the minimum level that reaches output. Unrecognized
// values are ignored rather than rejected, matching the original's
// tolerance for a malformed --log-level flag.
func SetLevel(level string) {
	var l Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		l = LevelDebug
	case "INFO":
		l = LevelInfo
	case "WARN":
		l = LevelWarn
	case "ERROR":
		l = LevelError
	default:
		return
	}
	levelVar.Set(toSlogLevel(l))
}

func getLogger() *slog.Logger {
	mu.RLock()
	l := slogger
	mu.RUnlock()
	return l
}

func log(level slog.Level, msg string, args []any) {
	l := getLogger()
	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, msg, args...)
}

func logCtx(ctx context.Context, level slog.Level, msg string, args []any) {
	l := getLogger()
	if !l.Enabled(ctx, level) {
		return
	}
	l.Log(ctx, level, msg, appendContextFields(ctx, args)...)
}

func Debug(msg string, args ...any) { log(slog.LevelDebug, msg, args) }
func Info(msg string, args ...any)  { log(slog.LevelInfo, msg, args) }
func Warn(msg string, args ...any)  { log(slog.LevelWarn, msg, args) }
func Error(msg string, args ...any) { log(slog.LevelError, msg, args) }

// DebugCtx, InfoCtx, WarnCtx and ErrorCtx behave like their non-Ctx
// counterparts but also pull connection/chunk fields off ctx via
// appendContextFields, so a call site threading a LogContext through
// doesn't have to repeat those fields by hand at every log call.
func DebugCtx(ctx context.Context, msg string, args ...any) { logCtx(ctx, slog.LevelDebug, msg, args) }
func InfoCtx(ctx context.Context, msg string, args ...any)  { logCtx(ctx, slog.LevelInfo, msg, args) }
func WarnCtx(ctx context.Context, msg string, args ...any)  { logCtx(ctx, slog.LevelWarn, msg, args) }
func ErrorCtx(ctx context.Context, msg string, args ...any) { logCtx(ctx, slog.LevelError, msg, args) }

// appendContextFields prepends the fields carried by a LogContext, if
// any, so they appear first in the logged attribute list.
func appendContextFields(ctx context.Context, args []any) []any {
	lc := FromContext(ctx)
	if lc == nil {
		return args
	}

	ctxArgs := make([]any, 0, 8+len(args))
	if lc.ConnectionID != "" {
		ctxArgs = append(ctxArgs, KeyConnectionID, lc.ConnectionID)
	}
	if lc.RemoteAddr != "" {
		ctxArgs = append(ctxArgs, KeyRemoteAddr, lc.RemoteAddr)
	}
	if lc.ChunkType != "" {
		ctxArgs = append(ctxArgs, KeyChunkType, lc.ChunkType)
	}
	if lc.ElementName != "" {
		ctxArgs = append(ctxArgs, KeyElementName, lc.ElementName)
	}
	ctxArgs = append(ctxArgs, args...)
	return ctxArgs
}
