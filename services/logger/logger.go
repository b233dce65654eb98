package logger

import "log"

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implement Logger interface sử dụng log package
type DefaultLogger struct {
	level  Level
	prefix string
}

// NewDefaultLogger tạo một instance mới của DefaultLogger
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{level: level}
}

// NewNamedLogger tạo DefaultLogger có prefix tên component
func NewNamedLogger(name string, level Level) *DefaultLogger {
	return &DefaultLogger{level: level, prefix: name + " "}
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		log.Printf("[INFO] "+l.prefix+format, v...)
	}
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		log.Printf("[ERROR] "+l.prefix+format, v...)
	}
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		log.Printf("[DEBUG] "+l.prefix+format, v...)
	}
}
