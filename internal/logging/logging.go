package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Init configures the global logrus logger.
func Init(level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info: %v", level, err)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logrus.SetOutput(os.Stdout)
}
