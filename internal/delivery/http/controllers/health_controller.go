package controllers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"quizreg/internal/delivery/http/helpers"
)

type HealthController struct {
	Logger *slog.Logger
	DB     *sql.DB
}

func NewHealthController(logger *slog.Logger, db *sql.DB) *HealthController {
	return &HealthController{Logger: logger, DB: db}
}

// HealthStatus is the response body for GET /healthz.
type HealthStatus struct {
	Status string `json:"status"`
}

// Healthz godoc
// @Summary Liveness and store check
// @Produce json
// @Success 200 {object} controllers.HealthStatus
// @Failure 503 {object} helpers.APIResponse "error.code: internal_error"
// @Router /healthz [get]
func (c *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := c.DB.PingContext(r.Context()); err != nil {
		c.Logger.ErrorContext(r.Context(), "store ping failed", "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "store unavailable")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthStatus{Status: "ok"})
}
