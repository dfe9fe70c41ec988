package routers

import (
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/delivery/http/controllers"
	"embrew-service/internal/app/delivery/http/middlewares"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/exceptions"
	"embrew-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	location *time.Location,
	middlewares *middlewares.Middlewares,
	configurationController *controllers.ConfigurationController,
	closureController *controllers.ClosureController,
	pageController *controllers.PageController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	if middlewares.AccessLogger != nil {
		router.Use(middlewares.AccessLog(location, middlewares.AccessLogger))
	}

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	window := time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, window))

	router.Use(middlewares.ErrorHandler)

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrMethodNotAllowed(r.Method))
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceConfiguration, func(r chi.Router) {
				attachConfigurationRoutes(r, middlewares, configurationController)
			})

			r.Route("/"+constvars.ResourceClosures, func(r chi.Router) {
				attachClosureRoutes(r, middlewares, closureController)
			})

			r.Route("/"+constvars.ResourceOpeningHours, func(r chi.Router) {
				attachOpeningHoursRoutes(r, middlewares, closureController)
			})
		})
	})

	attachPageRoutes(router, middlewares, pageController)
}
