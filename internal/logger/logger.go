package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process-wide zap logger. Production JSON output by
// default, human-readable console output when APP_ENV=development.
func New() *zap.Logger {
	var (
		log *zap.Logger
		err error
	)

	if os.Getenv("APP_ENV") == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}

	return log
}
