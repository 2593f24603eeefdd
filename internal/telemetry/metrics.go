// SPDX-License-Identifier: MIT

// Package telemetry exposes sweep progress as Prometheus metrics.
//
// Metrics (namespace "spinmix"):
//
//	spinmix_trials_total{model,outcome}   counter, outcome ∈ {coalesced, capped}
//	spinmix_trial_steps{model}            histogram of steps per coalesced trial
//	spinmix_trial_seconds{model}          histogram of trial durations
//	spinmix_sweep_param{model}            gauge, parameter of the current point
//
// Metrics implements sweep.Observer. All operations are safe for concurrent use.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/spinmix/coupling"
)

const (
	namespace = "spinmix"

	OutcomeCoalesced = "coalesced"
	OutcomeCapped    = "capped"
)

// Metrics holds the collectors for one model.
type Metrics struct {
	Trials  *prometheus.CounterVec
	Steps   *prometheus.HistogramVec
	Seconds *prometheus.HistogramVec
	Param   *prometheus.GaugeVec

	model string
}

// New registers the collectors on reg and labels every observation with model.
// Registering twice on the same registry panics, as with promauto.
func New(reg prometheus.Registerer, model string) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Trials: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trials_total",
			Help:      "Finished trials by model and outcome.",
		}, []string{"model", "outcome"}),
		Steps: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trial_steps",
			Help:      "Coupled steps until coalescence.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 12),
		}, []string{"model"}),
		Seconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trial_seconds",
			Help:      "Wall time per trial.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"model"}),
		Param: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sweep_param",
			Help:      "Parameter value of the point being swept.",
		}, []string{"model"}),
		model: model,
	}
}

// PointStarted implements sweep.Observer.
func (m *Metrics) PointStarted(param float64) {
	m.Param.WithLabelValues(m.model).Set(param)
}

// TrialDone implements sweep.Observer.
func (m *Metrics) TrialDone(_ float64, res coupling.Result, err error) {
	m.Seconds.WithLabelValues(m.model).Observe(res.Duration.Seconds())
	if err != nil || !res.Coalesced {
		m.Trials.WithLabelValues(m.model, OutcomeCapped).Inc()
		return
	}
	m.Trials.WithLabelValues(m.model, OutcomeCoalesced).Inc()
	m.Steps.WithLabelValues(m.model).Observe(float64(res.Steps))
}
