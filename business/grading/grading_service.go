package grading

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gradePredictor/domain"
	"gradePredictor/pkg/logger"
)

var ErrUnknownProfile = errors.New("unknown scoring profile")

// SimulationOverrides replaces the profile's sample count or seed when set.
type SimulationOverrides struct {
	SampleCount *int
	Seed        *int64
}

// Service evaluates observations against a fixed set of validated profiles.
// It keeps no per-request state and is safe for concurrent use.
type Service struct {
	profiles       map[string]Config
	defaultProfile string
}

func NewService(profiles map[string]Config, defaultProfile string) (*Service, error) {
	if len(profiles) == 0 {
		profiles = DefaultProfiles()
	}

	owned := make(map[string]Config, len(profiles))
	for name, cfg := range profiles {
		cfg = cfg.clone()
		cfg.Name = name
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid profile %q: %w", name, err)
		}
		owned[name] = cfg
	}

	if defaultProfile == "" {
		defaultProfile = ProfileExtended
	}
	if _, ok := owned[defaultProfile]; !ok {
		return nil, fmt.Errorf("default profile %q: %w", defaultProfile, ErrUnknownProfile)
	}

	return &Service{
		profiles:       owned,
		defaultProfile: defaultProfile,
	}, nil
}

func (s *Service) DefaultProfile() string {
	return s.defaultProfile
}

func (s *Service) ProfileNames() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profile returns a copy of the named profile; an empty name selects the default.
func (s *Service) Profile(name string) (Config, error) {
	if name == "" {
		name = s.defaultProfile
	}
	cfg, ok := s.profiles[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownProfile, name)
	}
	return cfg.clone(), nil
}

func (s *Service) Predict(ctx context.Context, profile string, obs domain.Observation) (domain.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return domain.Prediction{}, fmt.Errorf("context error: %w", err)
	}

	cfg, err := s.Profile(profile)
	if err != nil {
		return domain.Prediction{}, err
	}

	return s.predict(ctx, cfg, obs), nil
}

func (s *Service) Simulate(ctx context.Context, profile string, obs domain.Observation, overrides SimulationOverrides) (domain.Simulation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Simulation{}, fmt.Errorf("context error: %w", err)
	}

	cfg, err := s.Profile(profile)
	if err != nil {
		return domain.Simulation{}, err
	}

	obs, _ = Normalize(cfg, obs)
	return s.simulate(ctx, cfg, obs, overrides), nil
}

func (s *Service) Scenarios(ctx context.Context, profile string, obs domain.Observation) ([]domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	cfg, err := s.Profile(profile)
	if err != nil {
		return nil, err
	}

	obs, _ = Normalize(cfg, obs)
	return EvaluateNamedScenarios(cfg, obs, DefaultScenarios(cfg)), nil
}

// Evaluate runs prediction, simulation and scenarios for one observation.
func (s *Service) Evaluate(ctx context.Context, profile string, obs domain.Observation, overrides SimulationOverrides) (domain.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Evaluation{}, fmt.Errorf("context error: %w", err)
	}

	cfg, err := s.Profile(profile)
	if err != nil {
		return domain.Evaluation{}, err
	}

	pred := s.predict(ctx, cfg, obs)
	normalized := pred.Observation

	return domain.Evaluation{
		Prediction: pred,
		Simulation: s.simulate(ctx, cfg, normalized, overrides),
		Scenarios:  EvaluateNamedScenarios(cfg, normalized, DefaultScenarios(cfg)),
	}, nil
}

func (s *Service) predict(ctx context.Context, cfg Config, obs domain.Observation) domain.Prediction {
	pred := Predict(cfg, obs)

	PredictionsTotal.WithLabelValues(cfg.Name, string(pred.Status)).Inc()
	logger.Debug("grade_predict",
		"trace_id", TraceIDFromContext(ctx),
		"profile", cfg.Name,
		"attendance_rate", pred.AttendanceRate,
		"participation", string(pred.Observation.Participation),
		"tests_completed", pred.Observation.TestsCompleted,
		"grade", pred.Grade,
		"status", string(pred.Status),
	)
	if len(pred.Adjustments) > 0 {
		logger.Warn("grade_input_adjusted",
			"trace_id", TraceIDFromContext(ctx),
			"profile", cfg.Name,
			"adjustments", pred.Adjustments,
		)
	}

	return pred
}

func (s *Service) simulate(ctx context.Context, cfg Config, obs domain.Observation, overrides SimulationOverrides) domain.Simulation {
	sim := cfg.Simulation
	if overrides.SampleCount != nil && *overrides.SampleCount > 0 {
		sim.SampleCount = *overrides.SampleCount
	}
	if overrides.Seed != nil {
		sim.Seed = *overrides.Seed
	}

	res := SimulateNeighborhood(cfg, obs, sim)

	SimulationSamplesTotal.WithLabelValues(cfg.Name).Add(float64(res.SampleCount))
	logger.Debug("grade_simulate",
		"trace_id", TraceIDFromContext(ctx),
		"profile", cfg.Name,
		"samples", res.SampleCount,
		"seed", res.Seed,
		"mean", res.Mean,
	)

	return res
}
