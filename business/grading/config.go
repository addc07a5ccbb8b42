package grading

import (
	"errors"
	"fmt"

	"gradePredictor/domain"

	"github.com/go-playground/validator/v10"
)

// AttendanceBand maps a minimum attendance rate to a base score.
type AttendanceBand struct {
	MinRate float64 `yaml:"min_rate" json:"min_rate" validate:"gte=0,lte=1"`
	Base    float64 `yaml:"base" json:"base"`
}

type SimulationConfig struct {
	SampleCount int   `yaml:"sample_count" json:"sample_count" validate:"gte=1,lte=100000"`
	Seed        int64 `yaml:"seed" json:"seed"`

	// symmetric perturbation ranges
	SessionJitter       int `yaml:"session_jitter" json:"session_jitter" validate:"gte=0"`
	TestsJitter         int `yaml:"tests_jitter" json:"tests_jitter" validate:"gte=0"`
	ParticipationJitter int `yaml:"participation_jitter" json:"participation_jitter" validate:"gte=0"`

	Bins int `yaml:"bins" json:"bins" validate:"gte=1,lte=1000"`
}

type Config struct {
	Name string `yaml:"-" json:"name"`

	// when CustomSessions is false every observation uses TotalSessions
	TotalSessions  int  `yaml:"total_sessions" json:"total_sessions" validate:"gte=1"`
	CustomSessions bool `yaml:"custom_sessions" json:"custom_sessions"`
	MinSessions    int  `yaml:"min_sessions" json:"min_sessions" validate:"gte=1"`
	MaxSessions    int  `yaml:"max_sessions" json:"max_sessions" validate:"gtefield=MinSessions"`

	MaxTests          int     `yaml:"max_tests" json:"max_tests" validate:"gte=0"`
	TestsBonusEnabled bool    `yaml:"tests_bonus_enabled" json:"tests_bonus_enabled"`
	TestsBonusPerTest float64 `yaml:"tests_bonus_per_test" json:"tests_bonus_per_test" validate:"gte=0"`

	// evaluated top-down, first match wins
	AttendanceBands []AttendanceBand `yaml:"attendance_bands" json:"attendance_bands" validate:"required,min=1,dive"`
	FallbackBase    float64          `yaml:"fallback_base" json:"fallback_base"`

	ParticipationBonus map[domain.Participation]float64 `yaml:"participation_bonus" json:"participation_bonus" validate:"required"`

	ApprovedCutoff   float64 `yaml:"approved_cutoff" json:"approved_cutoff"`
	BorderlineCutoff float64 `yaml:"borderline_cutoff" json:"borderline_cutoff"`
	MinGrade         float64 `yaml:"min_grade" json:"min_grade"`
	MaxGrade         float64 `yaml:"max_grade" json:"max_grade" validate:"gtfield=MinGrade"`

	// share of sessions targeted by the attendance what-if scenario
	AttendanceTarget float64 `yaml:"attendance_target" json:"attendance_target" validate:"gt=0,lte=1"`

	Simulation SimulationConfig `yaml:"simulation" json:"simulation"`
}

const (
	ProfileExtended = "extended"
	ProfileSimple   = "simple"
)

const (
	defaultTotalSessions    = 16
	defaultMinSessions      = 10
	defaultMaxSessions      = 40
	defaultMaxTests         = 5
	defaultTestsBonus       = 0.3
	defaultFallbackBase     = 3.5
	defaultApprovedCutoff   = 6.0
	defaultBorderlineCutoff = 5.0
	defaultMinGrade         = 0.0
	defaultMaxGrade         = 10.0
	defaultAttendanceTarget = 0.8

	defaultSampleCount         = 400
	defaultSeed                = 7
	defaultSessionJitter       = 4
	defaultTestsJitter         = 2
	defaultParticipationJitter = 1
	defaultBins                = 20
)

func defaultAttendanceBands() []AttendanceBand {
	return []AttendanceBand{
		{MinRate: 0.90, Base: 8.5},
		{MinRate: 0.80, Base: 7.5},
		{MinRate: 0.70, Base: 6.5},
		{MinRate: 0.60, Base: 5.5},
		{MinRate: 0.50, Base: 4.5},
	}
}

func defaultParticipationBonus() map[domain.Participation]float64 {
	return map[domain.Participation]float64{
		domain.ParticipationVeryHigh: 1.5,
		domain.ParticipationHigh:     1.0,
		domain.ParticipationMedium:   0.5,
		domain.ParticipationNone:     0.0,
	}
}

// DefaultConfig is the extended profile: attendance, participation and tests.
// Every call returns fresh slices and maps.
func DefaultConfig() Config {
	return Config{
		Name: ProfileExtended,

		TotalSessions:  defaultTotalSessions,
		CustomSessions: false,
		MinSessions:    defaultMinSessions,
		MaxSessions:    defaultMaxSessions,

		MaxTests:          defaultMaxTests,
		TestsBonusEnabled: true,
		TestsBonusPerTest: defaultTestsBonus,

		AttendanceBands:    defaultAttendanceBands(),
		FallbackBase:       defaultFallbackBase,
		ParticipationBonus: defaultParticipationBonus(),

		ApprovedCutoff:   defaultApprovedCutoff,
		BorderlineCutoff: defaultBorderlineCutoff,
		MinGrade:         defaultMinGrade,
		MaxGrade:         defaultMaxGrade,

		AttendanceTarget: defaultAttendanceTarget,

		Simulation: SimulationConfig{
			SampleCount:         defaultSampleCount,
			Seed:                defaultSeed,
			SessionJitter:       defaultSessionJitter,
			TestsJitter:         defaultTestsJitter,
			ParticipationJitter: defaultParticipationJitter,
			Bins:                defaultBins,
		},
	}
}

// SimpleConfig is the two-input profile: completed tests do not score.
func SimpleConfig() Config {
	cfg := DefaultConfig()
	cfg.Name = ProfileSimple
	cfg.TestsBonusEnabled = false
	return cfg
}

// DefaultProfiles returns the built-in profiles keyed by name.
func DefaultProfiles() map[string]Config {
	return map[string]Config{
		ProfileExtended: DefaultConfig(),
		ProfileSimple:   SimpleConfig(),
	}
}

var configValidate = validator.New()

// Validate checks field ranges and the ordering rules the scoring engine relies on.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return err
	}

	for i := 1; i < len(c.AttendanceBands); i++ {
		if c.AttendanceBands[i].MinRate >= c.AttendanceBands[i-1].MinRate {
			return fmt.Errorf("attendance band %d: min_rate %.2f must be below %.2f",
				i, c.AttendanceBands[i].MinRate, c.AttendanceBands[i-1].MinRate)
		}
	}

	for _, p := range domain.ParticipationTiers {
		if _, ok := c.ParticipationBonus[p]; !ok {
			return fmt.Errorf("participation bonus missing for %q", p)
		}
	}
	for p := range c.ParticipationBonus {
		if !p.Valid() {
			return fmt.Errorf("participation bonus has unknown level %q", p)
		}
	}

	if c.BorderlineCutoff > c.ApprovedCutoff {
		return errors.New("borderline cutoff must not exceed approved cutoff")
	}

	if c.CustomSessions && (c.TotalSessions < c.MinSessions || c.TotalSessions > c.MaxSessions) {
		return fmt.Errorf("total sessions %d outside custom range [%d, %d]",
			c.TotalSessions, c.MinSessions, c.MaxSessions)
	}

	return nil
}
