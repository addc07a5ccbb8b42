package grading

import (
	"math"

	"gradePredictor/domain"
)

// PredictGrade scores one input tuple. Inputs are not clamped; only the
// final sum is constrained to [MinGrade, MaxGrade].
func PredictGrade(cfg Config, attendanceRate float64, participation domain.Participation, testsCompleted int) float64 {
	b := Breakdown(cfg, attendanceRate, participation, testsCompleted)
	return clamp(b.RawSum, cfg.MinGrade, cfg.MaxGrade)
}

// Breakdown returns each additive term of the grade.
func Breakdown(cfg Config, attendanceRate float64, participation domain.Participation, testsCompleted int) domain.ScoreBreakdown {
	b := domain.ScoreBreakdown{
		Base:               baseScore(cfg, attendanceRate),
		ParticipationBonus: cfg.ParticipationBonus[participation],
		TestsBonus:         testsBonus(cfg, testsCompleted),
	}
	b.RawSum = b.Base + b.ParticipationBonus + b.TestsBonus
	return b
}

func baseScore(cfg Config, rate float64) float64 {
	for _, band := range cfg.AttendanceBands {
		if rate >= band.MinRate {
			return band.Base
		}
	}
	return cfg.FallbackBase
}

func testsBonus(cfg Config, tests int) float64 {
	if !cfg.TestsBonusEnabled {
		return 0
	}
	return float64(tests) * cfg.TestsBonusPerTest
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Status maps a grade to its display band.
func Status(cfg Config, grade float64) domain.StatusBand {
	switch {
	case grade >= cfg.ApprovedCutoff:
		return domain.StatusApproved
	case grade >= cfg.BorderlineCutoff:
		return domain.StatusBorderline
	default:
		return domain.StatusFailed
	}
}

// Progress is the grade as a share of MaxGrade, capped at 1.
func Progress(cfg Config, grade float64) float64 {
	if cfg.MaxGrade <= 0 {
		return 0
	}
	return clamp(grade/cfg.MaxGrade, 0, 1)
}
