package b64file

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type Logger struct {
	level  LogLevel
	output io.Writer
	mu     sync.RWMutex
}

var GlobalLogger = &Logger{
	level:  INFO,
	output: os.Stderr,
}

func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) SetOutput(output io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = output
}

func (l *Logger) log(level LogLevel, prefix, format string, args ...interface{}) {
	l.mu.RLock()
	if level < l.level {
		l.mu.RUnlock()
		return
	}
	output := l.output
	l.mu.RUnlock()

	_, _ = fmt.Fprintf(output, prefix+format+"\n", args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, "[DEBUG] ", format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, "[INFO] ", format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, "[WARN] ", format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, "[ERROR] ", format, args...)
}

func SetGlobalLogLevel(level LogLevel) {
	GlobalLogger.SetLevel(level)
}

func SetGlobalLogOutput(output io.Writer) {
	GlobalLogger.SetOutput(output)
}

func LogDebug(format string, args ...interface{}) {
	GlobalLogger.Debug(format, args...)
}

func LogInfo(format string, args ...interface{}) {
	GlobalLogger.Info(format, args...)
}

func LogWarn(format string, args ...interface{}) {
	GlobalLogger.Warn(format, args...)
}

func LogError(format string, args ...interface{}) {
	GlobalLogger.Error(format, args...)
}
