package grading

import (
	"fmt"
	"math"

	"gradePredictor/domain"
)

// Scenario is a named what-if transformation evaluated once.
type Scenario struct {
	Label string
	Apply func(cfg Config, obs domain.Observation) domain.Observation
}

// DefaultScenarios returns the fixed comparison list in display order.
func DefaultScenarios(cfg Config) []Scenario {
	return []Scenario{
		{
			Label: "Actual",
			Apply: func(_ Config, obs domain.Observation) domain.Observation { return obs },
		},
		{
			Label: "Complete max tests",
			Apply: func(cfg Config, obs domain.Observation) domain.Observation {
				obs.TestsCompleted = cfg.MaxTests
				return obs
			},
		},
		{
			Label: fmt.Sprintf("Attendance ≥ %d%%", int(math.Round(cfg.AttendanceTarget*100))),
			Apply: func(cfg Config, obs domain.Observation) domain.Observation {
				if target := attendanceTargetSessions(cfg, obs.TotalSessions); obs.AttendedSessions < target {
					obs.AttendedSessions = target
				}
				return obs
			},
		},
		{
			Label: "Participation → next tier",
			Apply: func(_ Config, obs domain.Observation) domain.Observation {
				obs.Participation = obs.Participation.Next()
				return obs
			},
		},
	}
}

// attendanceTargetSessions is the smallest session count reaching the target share,
// e.g. 13 of 16 for 80%.
func attendanceTargetSessions(cfg Config, total int) int {
	// the epsilon keeps exact products such as 0.8*10 from rounding up
	n := int(math.Ceil(cfg.AttendanceTarget*float64(total) - 1e-9))
	return clampInt(n, 0, total)
}

// EvaluateNamedScenarios scores each scenario once and keeps the declared order.
func EvaluateNamedScenarios(cfg Config, obs domain.Observation, defs []Scenario) []domain.ScenarioResult {
	out := make([]domain.ScenarioResult, 0, len(defs))
	for _, d := range defs {
		o := obs
		if d.Apply != nil {
			o = d.Apply(cfg, obs)
		}
		out = append(out, domain.ScenarioResult{
			Label: d.Label,
			Grade: PredictGrade(cfg, o.AttendanceRate(), o.Participation, o.TestsCompleted),
		})
	}
	return out
}
