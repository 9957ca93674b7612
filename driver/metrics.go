/*
 * metrics.go, part of goMap
 *
 * Copyright 2026 The goMap authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package driver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts the evaluations done by Run and their duration.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	Duration    prometheus.Histogram
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gomap",
			Name:      "mapping_evaluations_total",
			Help:      "Number of mappings evaluated, by outcome.",
		}, []string{"outcome"}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gomap",
			Name:      "mapping_evaluation_seconds",
			Help:      "Time spent evaluating one mapping.",
			Buckets:   prometheus.ExponentialBuckets(1e-4, 4, 10),
		}),
	}
}

//observe does nothing on a nil receiver.
func (M *Metrics) observe(err error, d time.Duration) {
	if M == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	M.Evaluations.WithLabelValues(outcome).Inc()
	M.Duration.Observe(d.Seconds())
}
