// Package logger provides the small leveled logger jobber uses for
// operational/diagnostic output (database load and save, fatal startup errors).
// User-facing warnings, prompts and reports go through internal/cli instead —
// this logger never writes anything a script parses.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Level is a logging severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
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
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "FATAL":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Logger is a component-tagged, level-filtered writer over stderr.
type Logger struct {
	component string
	level     Level
	out       *log.Logger
}

// New creates a Logger for the given component, filtering below levelStr.
func New(component, levelStr string) *Logger {
	return &Logger{
		component: component,
		level:     ParseLevel(levelStr),
		out:       log.New(os.Stderr, "", 0),
	}
}

func (l *Logger) format(level Level, msg string, fields ...interface{}) string {
	ts := time.Now().Format("2006-01-02T15:04:05.000Z07:00")
	var b strings.Builder
	if len(fields) > 0 {
		b.WriteString(" |")
		for i := 0; i+1 < len(fields); i += 2 {
			fmt.Fprintf(&b, " %s=%v", fields[i], fields[i+1])
		}
	}
	return fmt.Sprintf("[%s] %s [%s] %s%s", ts, level, l.component, msg, b.String())
}

func (l *Logger) log(level Level, msg string, fields ...interface{}) {
	if level >= l.level {
		l.out.Println(l.format(level, msg, fields...))
	}
}

func (l *Logger) Debug(msg string, fields ...interface{}) { l.log(LevelDebug, msg, fields...) }
func (l *Logger) Info(msg string, fields ...interface{})  { l.log(LevelInfo, msg, fields...) }
func (l *Logger) Warn(msg string, fields ...interface{})  { l.log(LevelWarn, msg, fields...) }
func (l *Logger) Error(msg string, fields ...interface{}) { l.log(LevelError, msg, fields...) }

// Fatal logs and terminates the process; jobber's main only calls this for
// conditions that prevent any further command processing (e.g. a corrupt
// config file), never for ordinary command errors which are returned values.
func (l *Logger) Fatal(msg string, fields ...interface{}) {
	l.out.Println(l.format(LevelFatal, msg, fields...))
	os.Exit(1)
}
