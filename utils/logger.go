package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
)

var (
	ErrorLogger *log.Logger
	PanicLogger *log.Logger
)

func InitLogger() error {
	logsDir := "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	errorLogFile, err := os.OpenFile(filepath.Join(logsDir, "errors.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open error log file: %v", err)
	}

	panicLogFile, err := os.OpenFile(filepath.Join(logsDir, "panics.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open panic log file: %v", err)
	}

	ErrorLogger = log.New(errorLogFile, "", log.Ldate|log.Ltime)
	PanicLogger = log.New(panicLogFile, "", log.Ldate|log.Ltime)

	return nil
}

func LogError(err error, context string) {
	if ErrorLogger == nil {
		return
	}

	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file = "unknown"
		line = 0
	}

	ErrorLogger.Printf("ERROR in %s:%d - %s: %v", filepath.Base(file), line, context, err)
}

func LogPanic(recovered interface{}, context string) {
	if PanicLogger == nil {
		return
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	}

	PanicLogger.Printf("PANIC in %s:%d - %s: %v", filepath.Base(file), line, context, recovered)
}
