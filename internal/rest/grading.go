package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gradePredictor/business/grading"
	"gradePredictor/domain"
	"gradePredictor/pkg/logger"
	"gradePredictor/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	GradingHandler struct {
		validate       *validator.Validate
		gradingService GradingService
		timeout        time.Duration
	}

	GradingService interface {
		Predict(ctx context.Context, profile string, obs domain.Observation) (domain.Prediction, error)
		Simulate(ctx context.Context, profile string, obs domain.Observation, overrides grading.SimulationOverrides) (domain.Simulation, error)
		Scenarios(ctx context.Context, profile string, obs domain.Observation) ([]domain.ScenarioResult, error)
		Evaluate(ctx context.Context, profile string, obs domain.Observation, overrides grading.SimulationOverrides) (domain.Evaluation, error)
		Profile(name string) (grading.Config, error)
		ProfileNames() []string
		DefaultProfile() string
	}

	// ObservationRequest carries raw inputs; ranges are clamped by the service.
	ObservationRequest struct {
		Profile          string `json:"profile" validate:"omitempty,max=64"`
		TotalSessions    int    `json:"total_sessions" validate:"gte=0"`
		AttendedSessions int    `json:"attended_sessions" validate:"gte=0"`
		Participation    string `json:"participation" validate:"required"`
		TestsCompleted   int    `json:"tests_completed" validate:"gte=0"`
		SampleCount      *int   `json:"sample_count" validate:"omitempty,gte=1,lte=10000"`
		Seed             *int64 `json:"seed"`
	}

	ProfilesResponse struct {
		Default  string   `json:"default"`
		Profiles []string `json:"profiles"`
	}
)

func NewGradingHandler(svc GradingService) *GradingHandler {
	return &GradingHandler{
		validate:       validator.New(),
		gradingService: svc,
		timeout:        5 * time.Second,
	}
}

// POST /api/v1/grades/predict
func (h *GradingHandler) Predict(c echo.Context) error {
	defer h.track(c, "predict", time.Now())

	req, obs, err := h.bindObservation(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	pred, err := h.gradingService.Predict(ctx, req.Profile, obs)
	if err != nil {
		return h.fail(c, "Failed to predict grade", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(pred))
}

// POST /api/v1/grades/simulate
func (h *GradingHandler) Simulate(c echo.Context) error {
	defer h.track(c, "simulate", time.Now())

	req, obs, err := h.bindObservation(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sim, err := h.gradingService.Simulate(ctx, req.Profile, obs, req.overrides())
	if err != nil {
		return h.fail(c, "Failed to simulate neighborhood", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(sim))
}

// POST /api/v1/grades/scenarios
func (h *GradingHandler) Scenarios(c echo.Context) error {
	defer h.track(c, "scenarios", time.Now())

	req, obs, err := h.bindObservation(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	results, err := h.gradingService.Scenarios(ctx, req.Profile, obs)
	if err != nil {
		return h.fail(c, "Failed to evaluate scenarios", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(results))
}

// POST /api/v1/grades/evaluate
func (h *GradingHandler) Evaluate(c echo.Context) error {
	defer h.track(c, "evaluate", time.Now())

	req, obs, err := h.bindObservation(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ev, err := h.gradingService.Evaluate(ctx, req.Profile, obs, req.overrides())
	if err != nil {
		return h.fail(c, "Failed to evaluate observation", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ev))
}

// GET /api/v1/grades/profiles
func (h *GradingHandler) ListProfiles(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(ProfilesResponse{
		Default:  h.gradingService.DefaultProfile(),
		Profiles: h.gradingService.ProfileNames(),
	}))
}

// GET /api/v1/grades/profiles/:name
func (h *GradingHandler) GetProfile(c echo.Context) error {
	cfg, err := h.gradingService.Profile(c.Param("name"))
	if err != nil {
		return h.fail(c, "Failed to find profile", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cfg))
}

func (h *GradingHandler) bindObservation(c echo.Context) (ObservationRequest, domain.Observation, error) {
	var req ObservationRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return req, domain.Observation{}, err
	}
	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate observation request", err)
		return req, domain.Observation{}, err
	}

	participation, err := domain.ParseParticipation(req.Participation)
	if err != nil {
		return req, domain.Observation{}, err
	}

	return req, domain.Observation{
		TotalSessions:    req.TotalSessions,
		AttendedSessions: req.AttendedSessions,
		Participation:    participation,
		TestsCompleted:   req.TestsCompleted,
	}, nil
}

func (r ObservationRequest) overrides() grading.SimulationOverrides {
	return grading.SimulationOverrides{
		SampleCount: r.SampleCount,
		Seed:        r.Seed,
	}
}

func (h *GradingHandler) fail(c echo.Context, msg string, err error) error {
	if errors.Is(err, grading.ErrUnknownProfile) {
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}

	logger.Error(msg, "trace_id", grading.TraceIDFromContext(c.Request().Context()), err)
	return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
}

func (h *GradingHandler) track(c echo.Context, endpoint string, start time.Time) {
	metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	metrics.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(c.Response().Status)).Inc()
}
