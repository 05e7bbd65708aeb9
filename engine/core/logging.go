package core

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	once.Do(
		func() {
			l := log.NewWithOptions(os.Stderr, log.Options{
				ReportCaller:    true,
				ReportTimestamp: true,
				TimeFormat:      time.RFC3339,
				Prefix:          "Mesh 🔺 ",
			})
			l.SetLevel(log.InfoLevel)
			singleton = &logger{l}
		})
	return singleton
}

// SetLogLevel changes the level of the package logger. Accepted names are
// debug, info, warn, error and fatal.
func SetLogLevel(level string) error {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, level)
	}
	getLogger().SetLevel(lvl)
	return nil
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}

var (
	fatalMu      sync.Mutex
	fatalHandler = func(err error) { LogFatal(err.Error()) }
)

// Fatal escalates an unrecoverable input error. The default handler logs the
// error and exits the process.
func Fatal(err error) {
	fatalMu.Lock()
	h := fatalHandler
	fatalMu.Unlock()
	h(err)
}

// SetFatalHandler replaces the handler invoked by Fatal and returns the
// previous one. When a handler returns instead of exiting, the caller of
// Fatal returns the error to its own caller.
func SetFatalHandler(h func(error)) func(error) {
	fatalMu.Lock()
	defer fatalMu.Unlock()
	prev := fatalHandler
	fatalHandler = h
	return prev
}
