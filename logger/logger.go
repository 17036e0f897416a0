package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init.
var Log = logrus.StandardLogger()

// Init configures Log. Unknown levels fall back to info; any format other
// than "json" gets the text formatter.
func Init(level, format string, out io.Writer) *logrus.Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if out == nil {
		out = os.Stdout
	}
	l.SetOutput(out)

	Log = l
	return l
}

// Or returns log, or Log when log is nil.
func Or(log logrus.FieldLogger) logrus.FieldLogger {
	if log != nil {
		return log
	}
	return Log
}
