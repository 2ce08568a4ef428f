package app

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level is a log severity level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel parses a level name, defaulting to info for unknown
// names.
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

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

// Logger writes leveled, structured log lines. The terminal owns
// stdout and stderr while the viewer runs, so logs go to a file or
// nowhere.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	fields map[string]any
	closer io.Closer
}

// NewLogger creates a logger writing to out at the given level.
func NewLogger(out io.Writer, level Level) *Logger {
	return &Logger{out: out, level: level}
}

// NewFileLogger creates a logger appending to the file at path.
func NewFileLogger(path string, level Level) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	l := NewLogger(f, level)
	l.closer = f
	return l, nil
}

// NullLogger returns a logger that discards everything.
func NullLogger() *Logger {
	return NewLogger(io.Discard, LevelError+1)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// WithField returns a logger that includes key=value on every line.
func (l *Logger) WithField(key string, value any) *Logger {
	fields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &Logger{out: l.out, level: l.level, fields: fields, closer: l.closer}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string) { l.log(LevelDebug, msg) }

// Info logs at info level.
func (l *Logger) Info(msg string) { l.log(LevelInfo, msg) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string) { l.log(LevelWarn, msg) }

// Error logs at error level.
func (l *Logger) Error(msg string) { l.log(LevelError, msg) }

func (l *Logger) log(level Level, msg string) {
	if level < l.level {
		return
	}

	var sb strings.Builder
	sb.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	sb.WriteString(" [")
	sb.WriteString(level.String())
	sb.WriteString("] ")
	sb.WriteString(msg)

	if len(l.fields) > 0 {
		keys := make([]string, 0, len(l.fields))
		for k := range l.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, " %s=%v", k, l.fields[k])
		}
	}
	sb.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, sb.String())
}
