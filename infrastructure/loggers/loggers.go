package loggers

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// MultiLogger sends debug and info messages to stdout, and warnings and
// errors to stderr.
type MultiLogger struct {
	outLoggers []*log.Logger
	errLoggers []*log.Logger
	exit       func(int)
}

func InitializeMultiLogger(logToStdout bool, level string) (*MultiLogger, error) {
	var stdout io.Writer
	if logToStdout {
		stdout = os.Stdout
	}
	return newMultiLogger(stdout, os.Stderr, level)
}

func newMultiLogger(stdout, stderr io.Writer, level string) (*MultiLogger, error) {
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("error on parsing log level='%s': %w", level, err)
	}
	multiLogger := &MultiLogger{exit: os.Exit}
	if stdout != nil {
		multiLogger.outLoggers = append(multiLogger.outLoggers, newLogger(stdout, logLevel))
	}
	if stderr != nil {
		multiLogger.errLoggers = append(multiLogger.errLoggers, newLogger(stderr, logLevel))
	}
	return multiLogger, nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}

func (multiLogger *MultiLogger) Info(msg string, args ...any) {
	multiLogger.doLog(multiLogger.outLoggers, log.InfoLevel, msg, args...)
}

func (multiLogger *MultiLogger) Warn(msg string, args ...any) {
	multiLogger.doLog(multiLogger.errLoggers, log.WarnLevel, msg, args...)
}

func (multiLogger *MultiLogger) Debug(msg string, args ...any) {
	multiLogger.doLog(multiLogger.outLoggers, log.DebugLevel, msg, args...)
}

func (multiLogger *MultiLogger) Error(msg string, args ...any) {
	multiLogger.doLog(multiLogger.errLoggers, log.ErrorLevel, msg, args...)
}

func (multiLogger *MultiLogger) Fatal(msg string, args ...any) {
	multiLogger.doLog(multiLogger.errLoggers, log.FatalLevel, msg, args...)
	multiLogger.exit(1)
}

func (multiLogger *MultiLogger) doLog(loggers []*log.Logger, level log.Level, msg string, args ...any) {
	for _, logger := range loggers {
		logger.Logf(level, msg, args...)
	}
}
