package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"quizreg/internal/delivery/http/helpers"
	"quizreg/internal/domain"
)

// TriggerRunRequest is the request body for POST /runs. game_ids is the
// optional list of manually supplied game ids; empty or absent means a normal
// run with the digest step enabled.
type TriggerRunRequest struct {
	GameIDs []string `json:"game_ids"`
}

// Validate implements Validator. Manually supplied ids must be non-blank.
func (r TriggerRunRequest) Validate() []string {
	var errs []string
	for _, id := range r.GameIDs {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, "game_ids entries must be non-empty")
			break
		}
	}
	return errs
}

// TriggerRunSuccessResponse is the success response envelope for POST /runs (200).
type TriggerRunSuccessResponse struct {
	Data  *domain.RunReport `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type RunController struct {
	Logger  *slog.Logger
	Service domain.WorkflowService
}

func NewRunController(logger *slog.Logger, svc domain.WorkflowService) *RunController {
	return &RunController{
		Logger:  logger,
		Service: svc,
	}
}

// TriggerRun godoc
// @Summary Trigger a reconciliation run
// @Description Run discovery, registration and digest once. game_ids may carry manually supplied game ids to back-fill; a non-empty list suppresses the weekly digest.
// @Tags runs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param run body TriggerRunRequest false "Manual game ids (optional)"
// @Success 200 {object} controllers.TriggerRunSuccessResponse "data contains the run report"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: registration_failed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /runs [post]
func (c *RunController) TriggerRun(w http.ResponseWriter, r *http.Request) {
	var req TriggerRunRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	report, err := c.Service.Run(r.Context(), req.GameIDs)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "run failed", "path", r.URL.Path, "method", r.Method, "err", err)
		if errors.Is(err, domain.ErrRegistrationFailed) {
			helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeRegistrationFailed, err.Error())
			return
		}
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}
