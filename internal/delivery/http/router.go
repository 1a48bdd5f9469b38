package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"quizreg/internal/delivery/http/controllers"
	"quizreg/internal/delivery/http/middleware"
	"quizreg/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(runController *controllers.RunController, healthController *controllers.HealthController, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// API Routes
	mux.HandleFunc("POST /runs", auth(runController.TriggerRun))
	mux.HandleFunc("GET /healthz", healthController.Healthz)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
