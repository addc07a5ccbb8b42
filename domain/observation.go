package domain

// Observation is one set of student inputs to be scored.
type Observation struct {
	TotalSessions    int           `json:"total_sessions"`
	AttendedSessions int           `json:"attended_sessions"`
	Participation    Participation `json:"participation"`
	TestsCompleted   int           `json:"tests_completed"`
}

// AttendanceRate is attended/total, defined as 0 when there are no sessions.
func (o Observation) AttendanceRate() float64 {
	if o.TotalSessions <= 0 {
		return 0
	}
	return float64(o.AttendedSessions) / float64(o.TotalSessions)
}
