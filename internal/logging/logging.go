package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns a JSON logger writing to stdout. Unknown levels fall
// back to info.
func SetupLogging(level string) *logrus.Logger {
	return NewLogger(os.Stdout, level)
}

func NewLogger(out io.Writer, level string) *logrus.Logger {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:      out,
		Level:    parsed,
		Hooks:    make(logrus.LevelHooks),
		ExitFunc: os.Exit,
	}

	return &logger
}
