package logger

import (
	"embrew-service/internal/app/config"
	"embrew-service/internal/pkg/constvars"
	"os"

	"github.com/sirupsen/logrus"
)

// NewAccessLogger builds the logger behind the one-line-per-request access log.
func NewAccessLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile(driverConfig.Logger.AccessLogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logger.SetOutput(file)
		} else {
			logger.Info("Failed to log to file, using default stderr")
		}
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
