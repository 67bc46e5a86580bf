package util

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// SetupLogger configures the global logrus logger.
// format "json" (or LOG_FORMAT=json) selects the JSON formatter
func SetupLogger(level, format string) error {
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}

		logrus.SetLevel(lvl)
	}

	if format == "" {
		format = Getenv("LOG_FORMAT", "text")
	}

	if strings.ToLower(format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	return nil
}
