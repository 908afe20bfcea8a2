/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package metrics collects per-run metrics. A run is a single batch
// invocation, so instead of serving a scrape endpoint the registry can be
// dumped into a node_exporter textfile.
package metrics

import (
	"time"
)

import (
	"github.com/pkg/errors"

	"github.com/prometheus/client_golang/prometheus"
)

const _namespace = "polysecret"

type Registry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

type Recorder struct {
	registry Registry

	PointsDecoded prometheus.Counter
	PointsUsed    prometheus.Gauge
	Failures      *prometheus.CounterVec
	Duration      prometheus.Histogram
	Result        prometheus.Gauge
	LastSuccess   prometheus.Gauge
}

// NewRecorder registers the run metrics on r. A nil r gets a private
// registry.
func NewRecorder(r Registry) *Recorder {
	if r == nil {
		r = prometheus.NewRegistry()
	}

	rec := &Recorder{
		registry: r,
		PointsDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: _namespace,
			Name:      "points_decoded_total",
			Help:      "Number of share points decoded successfully.",
		}),
		PointsUsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: _namespace,
			Name:      "points_used",
			Help:      "Number of points fed to the last interpolation.",
		}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: _namespace,
			Name:      "failures_total",
			Help:      "Failed runs by error kind.",
		}, []string{"kind"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: _namespace,
			Name:      "interpolation_duration_seconds",
			Help:      "Time spent in Lagrange interpolation.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
		Result: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: _namespace,
			Name:      "result",
			Help:      "Constant term computed by the last successful run.",
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: _namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run.",
		}),
	}

	r.MustRegister(rec.PointsDecoded, rec.PointsUsed, rec.Failures, rec.Duration, rec.Result, rec.LastSuccess)

	return rec
}

func (rec *Recorder) ObserveDecoded(n int) {
	rec.PointsDecoded.Add(float64(n))
}

func (rec *Recorder) ObserveFailure(kind string) {
	rec.Failures.WithLabelValues(kind).Inc()
}

func (rec *Recorder) ObserveResult(v float64, used int, elapsed time.Duration) {
	rec.PointsUsed.Set(float64(used))
	rec.Duration.Observe(elapsed.Seconds())
	rec.Result.Set(v)
	rec.LastSuccess.SetToCurrentTime()
}

func (rec *Recorder) Gatherer() prometheus.Gatherer {
	return rec.registry
}

// WriteTextfile writes all metrics in the text exposition format. The file is
// replaced atomically.
func (rec *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, rec.registry); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}
	return nil
}
