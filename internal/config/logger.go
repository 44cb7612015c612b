package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Init configures the process-wide logger. JSON output everywhere except
// local runs, level taken from LOG_LEVEL when set.
func Init() {
	log.SetOutput(os.Stdout)

	if os.Getenv("APP_ENV") == "local" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}
}

func Logger() *logrus.Logger {
	return log
}

// WithContext returns a log entry carrying the chi request id, when present.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(log)
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}
