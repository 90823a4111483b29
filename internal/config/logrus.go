package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logg.SetLevel(level)
}

// LogSkippedRecord is the report-and-continue hook used by the ingestion
// jobs: one malformed source record logs and is skipped, never aborting the
// whole run.
func LogSkippedRecord(logger *logrus.Logger, source string, externalID string, err error) {
	logger.WithFields(logrus.Fields{
		"source":      source,
		"external_id": externalID,
	}).Warn("skipping record: " + err.Error())
}
