package main

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/app/delivery/http/controllers"
	"embrew-service/internal/app/delivery/http/middlewares"
	"embrew-service/internal/app/delivery/http/routers"
	"embrew-service/internal/app/drivers/database"
	"embrew-service/internal/app/drivers/logger"
	"embrew-service/internal/app/drivers/messaging"
	"embrew-service/internal/app/drivers/storage"
	"embrew-service/internal/app/services/core/announcements"
	"embrew-service/internal/app/services/core/banners"
	"embrew-service/internal/app/services/core/closures"
	"embrew-service/internal/app/services/core/configurations"
	"embrew-service/internal/app/services/core/pages"
	"embrew-service/internal/app/services/shared/clock"
	"embrew-service/internal/app/services/shared/icons"
	"embrew-service/internal/app/services/shared/locker"
	"embrew-service/internal/app/services/shared/origin"
	"embrew-service/internal/app/services/shared/publisher"
	"embrew-service/internal/app/services/shared/redis"
	minioStorage "embrew-service/internal/app/services/shared/storage"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewAccessLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		AccessLogger:   accessLogger,
		Location:       location,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if driverConfig.Redis.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig, log)
	}
	if driverConfig.Minio.Enabled {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig, log)
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, log)
	}

	err = bootstrapingTheApp(&bootstrap)
	if err != nil {
		log.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error closing drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	cfg := bootstrap.InternalConfig

	// Redis
	var redisRepository contracts.RedisRepository
	var lockerService contracts.LockerService
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
		lockerService = locker.NewLockService(redisRepository, log)
	}

	// Minio
	var storageService contracts.Storage
	if bootstrap.Minio != nil {
		storageService = minioStorage.NewMinioStorage(bootstrap.Minio)
	}

	// Middlewares
	middlewares := &middlewares.Middlewares{
		Log:            log,
		AccessLogger:   bootstrap.AccessLogger,
		InternalConfig: cfg,
	}

	// Shared
	systemClock := clock.NewSystemClock(bootstrap.Location)
	originClient := origin.NewOriginClient(cfg, log)
	iconSource := icons.NewIconSource(cfg, originClient, storageService, redisRepository, log)

	// Configuration, closures and banner
	configurationUsecase := configurations.NewConfigurationUsecase(originClient, redisRepository, cfg, log)
	closureUsecase := closures.NewClosureUsecase(configurationUsecase, systemClock, cfg, log)
	bannerUsecase := banners.NewBannerUsecase(configurationUsecase, closureUsecase, systemClock, cfg, log)

	// Pages
	pageUsecase := pages.NewPageUsecase(originClient, iconSource, bannerUsecase, cfg, log)

	// Announcement worker needs the run lock and the queue
	if bootstrap.RabbitMQ != nil && lockerService != nil {
		announcementPublisher, err := publisher.NewAnnouncementPublisher(bootstrap.RabbitMQ, cfg.Announcement.Queue, log)
		if err != nil {
			return err
		}
		worker := announcements.NewWorker(log, cfg, lockerService, bannerUsecase, announcementPublisher, systemClock)
		worker.Start(context.Background())
		bootstrap.WorkerStop = worker.Stop
	} else if bootstrap.RabbitMQ != nil {
		log.Warn("Announcement worker disabled, redis is required for the run lock")
	}

	// Controllers
	configurationController := controllers.NewConfigurationController(log, configurationUsecase, cfg)
	closureController := controllers.NewClosureController(log, closureUsecase, bannerUsecase, systemClock, cfg)
	pageController := controllers.NewPageController(log, pageUsecase, cfg)

	routers.SetupRoutes(
		bootstrap.Router,
		cfg,
		bootstrap.Location,
		middlewares,
		configurationController,
		closureController,
		pageController,
	)

	return nil
}
