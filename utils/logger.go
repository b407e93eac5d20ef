package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
)

// Logger provides leveled logging tagged with the id of the current run.
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
	debug *log.Logger

	runID   string
	verbose bool
}

// NewLogger creates a new Logger writing to stdout/stderr.
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout, os.Stderr)
}

// NewLoggerTo creates a Logger that writes info/warn/debug lines to out and
// errors to errOut.
func NewLoggerTo(out, errOut io.Writer) *Logger {
	flags := 0
	return &Logger{
		info:  log.New(out, "", flags),
		warn:  log.New(out, "", flags),
		err:   log.New(errOut, "", flags),
		debug: log.New(out, "", flags),
		runID: uuid.NewString()[:8],
	}
}

// SetDebug toggles Debug output. It is off by default.
func (l *Logger) SetDebug(on bool) {
	l.verbose = on
}

// RunID returns the short id stamped on every line of this run.
func (l *Logger) RunID() string {
	return l.runID
}

func (l *Logger) prefix() string {
	return fmt.Sprintf("[%s] [%s]", time.Now().Format("2006-01-02 15:04:05"), l.runID)
}

func (l *Logger) Info(format string, args ...any) {
	l.info.Printf(fmt.Sprintf("%s \033[32mINFO\033[0m  %s\n", l.prefix(), format), args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.warn.Printf(fmt.Sprintf("%s \033[33mWARN\033[0m  %s\n", l.prefix(), format), args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.err.Printf(fmt.Sprintf("%s \033[31mERROR\033[0m %s\n", l.prefix(), format), args...)
}

func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.debug.Printf(fmt.Sprintf("%s \033[36mDEBUG\033[0m %s\n", l.prefix(), format), args...)
}
