// Package logger предоставляет уровневый логгер поверх log/slog
// с printf-подобным интерфейсом, которым пользуется весь сервис.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
	With(args ...any) Logger
}

// SlogLogger реализует Logger через *slog.Logger.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger создаёт логгер, формат которого зависит от APP_ENV:
// JSON для production, текст для остальных окружений.
func NewSlogLogger() *SlogLogger {
	return NewSlogLoggerWithWriter(os.Stdout, os.Getenv("APP_ENV"))
}

func NewSlogLoggerWithWriter(w io.Writer, env string) *SlogLogger {
	var handler slog.Handler
	switch env {
	case "production", "prod":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	return &SlogLogger{l: slog.New(handler)}
}

func (s *SlogLogger) Debugf(format string, args ...any) {
	s.l.Debug(fmt.Sprintf(format, args...))
}

func (s *SlogLogger) Infof(format string, args ...any) {
	s.l.Info(fmt.Sprintf(format, args...))
}

func (s *SlogLogger) Warnf(format string, args ...any) {
	s.l.Warn(fmt.Sprintf(format, args...))
}

// Errorf логирует сообщение на уровне ERROR, прикладывая ошибку отдельным атрибутом.
func (s *SlogLogger) Errorf(err error, format string, args ...any) {
	if err == nil {
		s.l.Error(fmt.Sprintf(format, args...))
		return
	}
	s.l.Error(fmt.Sprintf(format, args...), slog.String("error", err.Error()))
}

// With возвращает логгер с дополнительными атрибутами (например, request_id).
func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}

// Nop возвращает логгер, который ничего не пишет. Удобен в тестах.
func Nop() Logger {
	return NewSlogLoggerWithWriter(io.Discard, "test")
}
