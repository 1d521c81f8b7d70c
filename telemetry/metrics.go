// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "apps_actions"

// Metrics counts post menu activity. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	invocations   *prometheus.CounterVec
	callDuration  *prometheus.HistogramVec
	bindingsFetch *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg, if not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "invocations_total",
				Help:      "Total number of post menu binding invocations, by outcome.",
			},
			[]string{"outcome"},
		),
		callDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "call_duration_seconds",
				Help:      "Duration of call submissions.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"app_id"},
		),
		bindingsFetch: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "bindings_fetches_total",
				Help:      "Total number of post menu bindings fetches, by result.",
			},
			[]string{"result"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.invocations, m.callDuration, m.bindingsFetch)
	}
	return m
}

func (m *Metrics) ObserveInvocation(outcome string) {
	if m == nil {
		return
	}
	m.invocations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveCallDuration(appID string, d time.Duration) {
	if m == nil {
		return
	}
	m.callDuration.WithLabelValues(appID).Observe(d.Seconds())
}

func (m *Metrics) ObserveBindingsFetch(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.bindingsFetch.WithLabelValues(result).Inc()
}
