package routers

import (
	"embrew-service/internal/app/delivery/http/controllers"
	"embrew-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// attachPageRoutes serves every path outside the API through the page decorator.
func attachPageRoutes(router chi.Router, middlewares *middlewares.Middlewares, pageController *controllers.PageController) {
	if limiter := middlewares.PageRateLimiter(); limiter != nil {
		router = router.With(limiter.Limit)
	}
	router.Get("/*", pageController.RenderPage)
}
