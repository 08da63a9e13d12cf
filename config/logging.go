package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// LogWriter is the writer used for application and database logs. The shell
// owns stdout, so diagnostics never go there.
var LogWriter io.Writer = os.Stderr

// LogFilePath returns the path to the shell's log file.
func LogFilePath() string {
	if p := strings.TrimSpace(os.Getenv("LOG_FILE")); p != "" {
		return p
	}
	return filepath.Join("logs", "journal.log")
}

// InitLogging prepares the log file and configures the standard logger output.
// Set LOG_STDERR=true to mirror log lines to stderr.
func InitLogging() (*os.File, io.Writer) {
	logPath := filepath.Dir(LogFilePath())
	if err := os.MkdirAll(logPath, os.ModePerm); err != nil {
		log.Printf("Warning: Failed to create logs directory: %v", err)
	}

	logFile, err := os.OpenFile(LogFilePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Warning: Failed to open log file: %v", err)
		LogWriter = os.Stderr
		log.SetOutput(LogWriter)
		return nil, LogWriter
	}

	LogWriter = logFile
	if strings.ToLower(os.Getenv("LOG_STDERR")) == "true" {
		LogWriter = io.MultiWriter(os.Stderr, logFile)
	}
	log.SetOutput(LogWriter)
	return logFile, LogWriter
}
