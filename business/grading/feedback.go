package grading

import "gradePredictor/domain"

const (
	attendanceHighRate   = 0.85
	attendanceMediumRate = 0.65
	testsNearlyComplete  = 4
	testsPartial         = 2
)

// Feedback produces the quick qualitative reading of an observation.
// The tests note is omitted when the profile does not score tests.
func Feedback(cfg Config, obs domain.Observation) []domain.FeedbackNote {
	notes := make([]domain.FeedbackNote, 0, 3)

	rate := obs.AttendanceRate()
	switch {
	case rate >= attendanceHighRate:
		notes = append(notes, note("attendance", domain.FeedbackGood, "High attendance: solid support for the final grade."))
	case rate >= attendanceMediumRate:
		notes = append(notes, note("attendance", domain.FeedbackWarn, "Average attendance: keep it up or improve presence."))
	default:
		notes = append(notes, note("attendance", domain.FeedbackBad, "Low attendance: main risk factor."))
	}

	switch obs.Participation {
	case domain.ParticipationHigh, domain.ParticipationVeryHigh:
		notes = append(notes, note("participation", domain.FeedbackGood, "Strong participation: contributes positively to the result."))
	case domain.ParticipationMedium:
		notes = append(notes, note("participation", domain.FeedbackWarn, "Medium participation: there is room to add more."))
	default:
		notes = append(notes, note("participation", domain.FeedbackBad, "No participation: it does not add to performance."))
	}

	if !cfg.TestsBonusEnabled {
		return notes
	}

	switch {
	case obs.TestsCompleted >= testsNearlyComplete:
		notes = append(notes, note("tests", domain.FeedbackGood, "Tests almost complete: they reinforce learning."))
	case obs.TestsCompleted >= testsPartial:
		notes = append(notes, note("tests", domain.FeedbackWarn, "Partial tests: completing assessments could raise the grade."))
	default:
		notes = append(notes, note("tests", domain.FeedbackBad, "Few tests: completing more improves the projection."))
	}

	return notes
}

func note(factor string, level domain.FeedbackLevel, msg string) domain.FeedbackNote {
	return domain.FeedbackNote{Factor: factor, Level: level, Message: msg}
}
