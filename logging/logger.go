// Package logging provides pre-configured logrus loggers for jj-prompt
// components. Everything goes to stderr: standard output belongs to the
// prompt line and must never carry diagnostics.
package logging

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
	verbose   bool
)

// NewLogger creates and returns a pre-configured logger for a specific
// component. It uses a singleton pattern per component to avoid
// re-initializing.
//
// The default level is Error so a prompt redraw stays silent; SetVerbose
// lowers it to Debug.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level())
	logger.SetFormatter(&TextFormatter{
		Color: isatty.IsTerminal(os.Stderr.Fd()),
	})

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// SetVerbose switches all loggers, existing and future, to debug level.
func SetVerbose(v bool) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	verbose = v
	for _, entry := range loggers {
		entry.Logger.SetLevel(level())
	}
}

func level() logrus.Level {
	if verbose {
		return logrus.DebugLevel
	}
	return logrus.ErrorLevel
}
