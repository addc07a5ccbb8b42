//go:build !integration

package grading

import (
	"testing"

	"gradePredictor/domain"
)

func TestEvaluateNamedScenarios_DefaultList(t *testing.T) {
	cfg := DefaultConfig()
	got := EvaluateNamedScenarios(cfg, midObservation, DefaultScenarios(cfg))

	want := []domain.ScenarioResult{
		{Label: "Actual", Grade: 7.9},
		{Label: "Complete max tests", Grade: 8.5},
		{Label: "Attendance ≥ 80%", Grade: 8.9},
		{Label: "Participation → next tier", Grade: 8.4},
	}

	if len(got) != len(want) {
		t.Fatalf("scenarios = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Label != want[i].Label {
			t.Errorf("scenario %d label = %q, want %q", i, got[i].Label, want[i].Label)
		}
		if !approx(got[i].Grade, want[i].Grade) {
			t.Errorf("%s grade = %v, want %v", want[i].Label, got[i].Grade, want[i].Grade)
		}
	}
}

func TestEvaluateNamedScenarios_OrderIndependentOfInput(t *testing.T) {
	cfg := DefaultConfig()
	labels := func(obs domain.Observation) []string {
		var out []string
		for _, r := range EvaluateNamedScenarios(cfg, obs, DefaultScenarios(cfg)) {
			out = append(out, r.Label)
		}
		return out
	}

	base := labels(midObservation)
	for _, obs := range []domain.Observation{
		{TotalSessions: 16, AttendedSessions: 0, Participation: domain.ParticipationNone},
		{TotalSessions: 16, AttendedSessions: 16, Participation: domain.ParticipationVeryHigh, TestsCompleted: 5},
	} {
		got := labels(obs)
		for i := range base {
			if got[i] != base[i] {
				t.Fatalf("order changed: %v vs %v", got, base)
			}
		}
	}
}

func TestEvaluateNamedScenarios_ClampsAtTop(t *testing.T) {
	cfg := SimpleConfig()
	obs := domain.Observation{TotalSessions: 16, AttendedSessions: 15, Participation: domain.ParticipationVeryHigh}

	got := EvaluateNamedScenarios(cfg, obs, DefaultScenarios(cfg))
	for _, r := range got {
		if r.Grade != 10 {
			t.Errorf("%s = %v, want 10", r.Label, r.Grade)
		}
	}
}

func TestAttendanceTargetSessions(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		total, want int
	}{
		{16, 13},
		{10, 8},
		{15, 12},
		{40, 32},
		{0, 0},
	}
	for _, tt := range tests {
		if got := attendanceTargetSessions(cfg, tt.total); got != tt.want {
			t.Errorf("target(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestAttendanceScenario_KeepsHigherAttendance(t *testing.T) {
	cfg := DefaultConfig()
	obs := domain.Observation{TotalSessions: 16, AttendedSessions: 15, Participation: domain.ParticipationNone}

	raise := DefaultScenarios(cfg)[2]
	if got := raise.Apply(cfg, obs); got.AttendedSessions != 15 {
		t.Errorf("attended = %d, want 15", got.AttendedSessions)
	}
}
