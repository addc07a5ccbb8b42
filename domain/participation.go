package domain

import (
	"fmt"
	"strings"
)

// Participation is the ordered classroom engagement level.
type Participation string

const (
	ParticipationNone     Participation = "none"
	ParticipationMedium   Participation = "medium"
	ParticipationHigh     Participation = "high"
	ParticipationVeryHigh Participation = "very_high"
)

// ParticipationTiers lists every level from lowest to highest.
var ParticipationTiers = []Participation{
	ParticipationNone,
	ParticipationMedium,
	ParticipationHigh,
	ParticipationVeryHigh,
}

var participationAliases = map[string]Participation{
	"none":      ParticipationNone,
	"nula":      ParticipationNone,
	"medium":    ParticipationMedium,
	"media":     ParticipationMedium,
	"high":      ParticipationHigh,
	"alta":      ParticipationHigh,
	"very_high": ParticipationVeryHigh,
	"very high": ParticipationVeryHigh,
	"veryhigh":  ParticipationVeryHigh,
	"muy alta":  ParticipationVeryHigh,
	"muy_alta":  ParticipationVeryHigh,
}

// ParseParticipation accepts canonical names, display names and the
// Spanish labels used by the original demo ("Nula", "Media", "Alta", "Muy alta").
func ParseParticipation(s string) (Participation, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if p, ok := participationAliases[key]; ok {
		return p, nil
	}
	return "", fmt.Errorf("invalid participation level %q", s)
}

// Rank returns the position of p in ParticipationTiers, or -1 if p is unknown.
func (p Participation) Rank() int {
	for i, t := range ParticipationTiers {
		if t == p {
			return i
		}
	}
	return -1
}

func (p Participation) Valid() bool {
	return p.Rank() >= 0
}

// Step moves n tiers along the order, clamped at both ends.
// Unknown levels step from the lowest tier.
func (p Participation) Step(n int) Participation {
	r := p.Rank()
	if r < 0 {
		r = 0
	}
	r += n
	if r < 0 {
		r = 0
	}
	if last := len(ParticipationTiers) - 1; r > last {
		r = last
	}
	return ParticipationTiers[r]
}

func (p Participation) Next() Participation {
	return p.Step(1)
}
