package grading

import (
	"math"
	"math/rand"

	"gradePredictor/domain"
)

// SimulateNeighborhood scores sim.SampleCount perturbed copies of obs.
// Draws come from a PRNG seeded with sim.Seed, so equal inputs give equal results.
func SimulateNeighborhood(cfg Config, obs domain.Observation, sim SimulationConfig) domain.Simulation {
	n := sim.SampleCount
	if n < 0 {
		n = 0
	}
	rng := rand.New(rand.NewSource(sim.Seed))

	samples := make([]float64, n)
	sum := 0.0
	for i := range n {
		p := perturb(rng, cfg, obs, sim)
		g := PredictGrade(cfg, p.AttendanceRate(), p.Participation, p.TestsCompleted)
		samples[i] = g
		sum += g
	}

	mean := 0.0
	if n > 0 {
		mean = sum / float64(n)
	}

	return domain.Simulation{
		SampleCount: n,
		Seed:        sim.Seed,
		Samples:     samples,
		Mean:        mean,
		Histogram:   Histogram(samples, cfg.MinGrade, cfg.MaxGrade, sim.Bins),
	}
}

func perturb(rng *rand.Rand, cfg Config, obs domain.Observation, sim SimulationConfig) domain.Observation {
	out := obs
	out.AttendedSessions = clampInt(obs.AttendedSessions+offset(rng, sim.SessionJitter), 0, obs.TotalSessions)
	out.TestsCompleted = clampInt(obs.TestsCompleted+offset(rng, sim.TestsJitter), 0, cfg.MaxTests)
	out.Participation = obs.Participation.Step(offset(rng, sim.ParticipationJitter))
	return out
}

// offset draws a uniform integer in [-r, r].
func offset(rng *rand.Rand, r int) int {
	if r <= 0 {
		return 0
	}
	return rng.Intn(2*r+1) - r
}

// Histogram counts values into equal-width bins over [lo, hi].
// Values equal to hi land in the last bin; values outside the range go to the nearest edge bin.
func Histogram(values []float64, lo, hi float64, bins int) []domain.HistogramBin {
	if bins <= 0 || hi <= lo {
		return []domain.HistogramBin{}
	}
	width := (hi - lo) / float64(bins)

	out := make([]domain.HistogramBin, bins)
	for i := range out {
		out[i].Midpoint = lo + (float64(i)+0.5)*width
	}

	for _, v := range values {
		idx := int(math.Floor((v - lo) / width))
		out[clampInt(idx, 0, bins-1)].Count++
	}
	return out
}
