package grading

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grade_predictions_total",
			Help: "Count of grade predictions by profile and status band.",
		},
		[]string{"profile", "status"},
	)

	SimulationSamplesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grade_simulation_samples_total",
			Help: "Count of perturbed samples scored by neighborhood simulations, by profile.",
		},
		[]string{"profile"},
	)
)

func init() {
	prometheus.MustRegister(PredictionsTotal, SimulationSamplesTotal)
}
