package routers

import (
	"embrew-service/internal/app/delivery/http/controllers"
	"embrew-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachConfigurationRoutes(router chi.Router, middlewares *middlewares.Middlewares, configurationController *controllers.ConfigurationController) {
	router.Get("/", configurationController.GetConfiguration)
}
