package grading

import (
	"fmt"

	"gradePredictor/domain"
)

// Normalize clamps an observation into the ranges the profile allows and
// reports every correction so callers can warn the user.
func Normalize(cfg Config, obs domain.Observation) (domain.Observation, []string) {
	var adjustments []string

	switch {
	case !cfg.CustomSessions:
		if obs.TotalSessions != 0 && obs.TotalSessions != cfg.TotalSessions {
			adjustments = append(adjustments,
				fmt.Sprintf("total_sessions fixed at %d by profile %s", cfg.TotalSessions, cfg.Name))
		}
		obs.TotalSessions = cfg.TotalSessions
	case obs.TotalSessions == 0:
		obs.TotalSessions = cfg.TotalSessions
	default:
		if t := clampInt(obs.TotalSessions, cfg.MinSessions, cfg.MaxSessions); t != obs.TotalSessions {
			adjustments = append(adjustments,
				fmt.Sprintf("total_sessions clamped from %d to %d", obs.TotalSessions, t))
			obs.TotalSessions = t
		}
	}

	if a := clampInt(obs.AttendedSessions, 0, obs.TotalSessions); a != obs.AttendedSessions {
		adjustments = append(adjustments,
			fmt.Sprintf("attended_sessions clamped from %d to %d", obs.AttendedSessions, a))
		obs.AttendedSessions = a
	}

	if t := clampInt(obs.TestsCompleted, 0, cfg.MaxTests); t != obs.TestsCompleted {
		adjustments = append(adjustments,
			fmt.Sprintf("tests_completed clamped from %d to %d", obs.TestsCompleted, t))
		obs.TestsCompleted = t
	}

	if !obs.Participation.Valid() {
		adjustments = append(adjustments,
			fmt.Sprintf("participation %q replaced with %q", obs.Participation, domain.ParticipationNone))
		obs.Participation = domain.ParticipationNone
	}

	return obs, adjustments
}

// Predict normalizes and scores an observation with its breakdown and feedback.
func Predict(cfg Config, obs domain.Observation) domain.Prediction {
	obs, adjustments := Normalize(cfg, obs)
	rate := obs.AttendanceRate()

	b := Breakdown(cfg, rate, obs.Participation, obs.TestsCompleted)
	grade := clamp(b.RawSum, cfg.MinGrade, cfg.MaxGrade)

	return domain.Prediction{
		Profile:        cfg.Name,
		Observation:    obs,
		AttendanceRate: rate,
		Grade:          grade,
		Status:         Status(cfg, grade),
		Progress:       Progress(cfg, grade),
		Breakdown:      b,
		Feedback:       Feedback(cfg, obs),
		Adjustments:    adjustments,
	}
}
