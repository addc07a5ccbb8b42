package domain

type StatusBand string

const (
	StatusApproved   StatusBand = "approved"
	StatusBorderline StatusBand = "borderline"
	StatusFailed     StatusBand = "failed"
)

type FeedbackLevel string

const (
	FeedbackGood FeedbackLevel = "good"
	FeedbackWarn FeedbackLevel = "warn"
	FeedbackBad  FeedbackLevel = "bad"
)

// FeedbackNote is one line of the qualitative reading of an observation.
type FeedbackNote struct {
	Factor  string        `json:"factor"` // attendance, participation, tests
	Level   FeedbackLevel `json:"level"`
	Message string        `json:"message"`
}

type ScoreBreakdown struct {
	Base               float64 `json:"base"`
	ParticipationBonus float64 `json:"participation_bonus"`
	TestsBonus         float64 `json:"tests_bonus"`
	RawSum             float64 `json:"raw_sum"` // before clamping
}

type Prediction struct {
	Profile        string         `json:"profile"`
	Observation    Observation    `json:"observation"`
	AttendanceRate float64        `json:"attendance_rate"`
	Grade          float64        `json:"grade"`
	Status         StatusBand     `json:"status"`
	Progress       float64        `json:"progress"` // grade/10 capped at 1
	Breakdown      ScoreBreakdown `json:"breakdown"`
	Feedback       []FeedbackNote `json:"feedback"`
	Adjustments    []string       `json:"adjustments,omitempty"`
}

type ScenarioResult struct {
	Label string  `json:"label"`
	Grade float64 `json:"grade"`
}

type HistogramBin struct {
	Midpoint float64 `json:"midpoint"`
	Count    int     `json:"count"`
}

type Simulation struct {
	SampleCount int            `json:"sample_count"`
	Seed        int64          `json:"seed"`
	Samples     []float64      `json:"samples"`
	Mean        float64        `json:"mean"`
	Histogram   []HistogramBin `json:"histogram"`
}

// Evaluation bundles everything a dashboard needs for one observation.
type Evaluation struct {
	Prediction Prediction       `json:"prediction"`
	Simulation Simulation       `json:"simulation"`
	Scenarios  []ScenarioResult `json:"scenarios"`
}
