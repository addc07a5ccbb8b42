//go:build !integration

package domain

import "testing"

func TestParseParticipation(t *testing.T) {
	tests := []struct {
		in      string
		want    Participation
		wantErr bool
	}{
		{"none", ParticipationNone, false},
		{"Nula", ParticipationNone, false},
		{"Media", ParticipationMedium, false},
		{" High ", ParticipationHigh, false},
		{"Alta", ParticipationHigh, false},
		{"Muy alta", ParticipationVeryHigh, false},
		{"VeryHigh", ParticipationVeryHigh, false},
		{"very_high", ParticipationVeryHigh, false},
		{"", "", true},
		{"loud", "", true},
	}

	for _, tt := range tests {
		got, err := ParseParticipation(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseParticipation(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseParticipation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParticipationStep(t *testing.T) {
	tests := []struct {
		from Participation
		n    int
		want Participation
	}{
		{ParticipationNone, 1, ParticipationMedium},
		{ParticipationNone, -1, ParticipationNone},
		{ParticipationHigh, 1, ParticipationVeryHigh},
		{ParticipationVeryHigh, 1, ParticipationVeryHigh},
		{ParticipationMedium, -1, ParticipationNone},
		{ParticipationMedium, 0, ParticipationMedium},
		{"unknown", 1, ParticipationMedium},
	}

	for _, tt := range tests {
		if got := tt.from.Step(tt.n); got != tt.want {
			t.Errorf("%q.Step(%d) = %q, want %q", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestAttendanceRate(t *testing.T) {
	if r := (Observation{TotalSessions: 16, AttendedSessions: 12}).AttendanceRate(); r != 0.75 {
		t.Errorf("rate = %v, want 0.75", r)
	}
	if r := (Observation{TotalSessions: 0, AttendedSessions: 3}).AttendanceRate(); r != 0 {
		t.Errorf("rate with no sessions = %v, want 0", r)
	}
}
