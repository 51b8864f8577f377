package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel парсит уровень из строки конфигурации (debug, info, warn, error)
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// Logger логгер с уровнями и printf-форматированием
type Logger struct {
	l     *log.Logger
	level Level
	file  *os.File
}

// New создает логгер, который пишет в stdout и, если указан filePath, дополнительно в файл
func New(filePath string, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if filePath == "" {
		return NewWithWriter(os.Stdout, lvl), nil
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", filePath, err)
	}

	lg := NewWithWriter(io.MultiWriter(os.Stdout, file), lvl)
	lg.file = file
	return lg, nil
}

// NewWithWriter создает логгер поверх произвольного writer
func NewWithWriter(w io.Writer, level Level) *Logger {
	return &Logger{
		l:     log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		level: level,
	}
}

func (lg *Logger) Debug(format string, v ...interface{}) {
	lg.write(LevelDebug, format, v...)
}

func (lg *Logger) Info(format string, v ...interface{}) {
	lg.write(LevelInfo, format, v...)
}

func (lg *Logger) Warn(format string, v ...interface{}) {
	lg.write(LevelWarn, format, v...)
}

func (lg *Logger) Error(format string, v ...interface{}) {
	lg.write(LevelError, format, v...)
}

// Fatal пишет сообщение с уровнем ERROR и завершает процесс
func (lg *Logger) Fatal(format string, v ...interface{}) {
	lg.l.Printf("[FATAL] %s", fmt.Sprintf(format, v...))
	lg.Close()
	os.Exit(1)
}

// Close закрывает файл лога, если он был открыт
func (lg *Logger) Close() error {
	if lg.file == nil {
		return nil
	}
	err := lg.file.Close()
	lg.file = nil
	return err
}

func (lg *Logger) write(level Level, format string, v ...interface{}) {
	if level < lg.level {
		return
	}
	lg.l.Printf("[%s] %s", level, fmt.Sprintf(format, v...))
}
