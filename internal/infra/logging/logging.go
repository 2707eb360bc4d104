// Where: cli/internal/infra/logging/logging.go
// What: logrus logger construction.
// Why: Give --verbose a structured debug trace without mixing it into progress output.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing text records to out. Debug records are only
// emitted when verbose is set.
func New(out io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}
