package routers

import (
	"embrew-service/internal/app/delivery/http/controllers"
	"embrew-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachClosureRoutes(router chi.Router, middlewares *middlewares.Middlewares, closureController *controllers.ClosureController) {
	router.Get("/", closureController.IsClosed)
	router.Get("/upcoming", closureController.Upcoming)
}

func attachOpeningHoursRoutes(router chi.Router, middlewares *middlewares.Middlewares, closureController *controllers.ClosureController) {
	router.Get("/", closureController.OpeningHours)
}
