// Package logger provides structured logging for the game server.
// Operational messages go here; in-game narration goes to the journal.
package logger

import (
	"fmt"
	"log"
	"os"
)

// Logger provides structured logging with context.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger creates a new logger instance.
func NewLogger() *Logger {
	return &Logger{
		infoLogger:  log.New(os.Stdout, "[DERBY-INFO] ", log.Ldate|log.Ltime|log.Lshortfile),
		warnLogger:  log.New(os.Stdout, "[DERBY-WARN] ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(os.Stderr, "[DERBY-ERROR] ", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

// Info logs informational messages.
func (l *Logger) Info(msg string) {
	l.infoLogger.Println(msg)
}

// Warn logs warning messages.
func (l *Logger) Warn(msg string) {
	l.warnLogger.Println(msg)
}

// Error logs error messages, with optional formatting args.
func (l *Logger) Error(msg string, args ...interface{}) {
	if len(args) > 0 {
		l.errorLogger.Println(fmt.Sprintf(msg, args...))
		return
	}
	l.errorLogger.Println(msg)
}

// Event logs a traceable game event for server oversight.
func (l *Logger) Event(eventType string, subject string, details string) {
	l.infoLogger.Printf("[EVENT:%s] Subject:%s | %s", eventType, subject, details)
}
