package middlewares

import (
	"embrew-service/internal/app/config"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AccessLogger   *logrus.Logger
	InternalConfig *config.InternalConfig
}
