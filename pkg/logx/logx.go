package logx

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level is the logging severity threshold
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	level  atomic.Int32
	logger = log.New(os.Stdout, "", log.LstdFlags)
)

func init() {
	level.Store(int32(LevelInfo))
}

// SetLevel sets the minimum level that will be emitted
func SetLevel(l Level) {
	level.Store(int32(l))
}

// ParseLevel converts a level name to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
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

func output(l Level, tag string, msg string) {
	if l < Level(level.Load()) {
		return
	}
	logger.Printf("%s %s", tag, msg)
}

func Debug(args ...any) { output(LevelDebug, "[DEBUG]", fmt.Sprint(args...)) }
func Info(args ...any)  { output(LevelInfo, "[INFO]", fmt.Sprint(args...)) }
func Warn(args ...any)  { output(LevelWarn, "[WARN]", fmt.Sprint(args...)) }
func Error(args ...any) { output(LevelError, "[ERROR]", fmt.Sprint(args...)) }

func Debugf(format string, args ...any) { output(LevelDebug, "[DEBUG]", fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { output(LevelInfo, "[INFO]", fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { output(LevelWarn, "[WARN]", fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { output(LevelError, "[ERROR]", fmt.Sprintf(format, args...)) }

// Fatal logs at error level and exits
func Fatal(args ...any) {
	output(LevelError, "[FATAL]", fmt.Sprint(args...))
	os.Exit(1)
}

// Fatalf logs a formatted message at error level and exits
func Fatalf(format string, args ...any) {
	output(LevelError, "[FATAL]", fmt.Sprintf(format, args...))
	os.Exit(1)
}
