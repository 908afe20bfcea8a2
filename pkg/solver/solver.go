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

// Package solver recovers the constant term of a share document: it loads
// the points, applies the threshold policy and runs the interpolation.
package solver

import (
	"context"
	"math"
	"time"
)

import (
	"github.com/pkg/errors"
)

import (
	"github.com/arana-db/polysecret/pkg/config"
	"github.com/arana-db/polysecret/pkg/lagrange"
	"github.com/arana-db/polysecret/pkg/loader"
	"github.com/arana-db/polysecret/pkg/metrics"
	"github.com/arana-db/polysecret/pkg/util/log"
)

var ErrInvalidThreshold = errors.New("invalid threshold")

type Options struct {
	Threshold config.ThresholdPolicy
	// StrictX rejects point sets with repeated x values instead of returning
	// a non-finite result.
	StrictX bool
	// Parallelism bounds the goroutines used by the interpolation, 0 means
	// GOMAXPROCS.
	Parallelism int
}

// OptionsFrom extracts the solver options of a bootstrap config.
func OptionsFrom(cfg *config.Solver) Options {
	return Options{
		Threshold:   cfg.Threshold,
		StrictX:     cfg.StrictX,
		Parallelism: cfg.Parallelism,
	}
}

type Result struct {
	Value    float64
	Document *loader.Document
	// Used are the points the interpolation actually ran on.
	Used    lagrange.PointSet
	Elapsed time.Duration
}

type Solver struct {
	opts     Options
	recorder *metrics.Recorder
}

// New creates a Solver. A nil recorder gets a private one.
func New(opts Options, recorder *metrics.Recorder) *Solver {
	if recorder == nil {
		recorder = metrics.NewRecorder(nil)
	}
	if len(opts.Threshold) == 0 {
		opts.Threshold = config.ThresholdAll
	}
	return &Solver{
		opts:     opts,
		recorder: recorder,
	}
}

func (s *Solver) Recorder() *metrics.Recorder {
	return s.recorder
}

// Solve loads src and returns f(0). Any failure aborts the run before a
// result is produced.
func (s *Solver) Solve(ctx context.Context, src loader.Source) (*Result, error) {
	res, err := s.solve(ctx, src)
	if err != nil {
		s.recorder.ObserveFailure(Kind(err))
		return nil, err
	}
	return res, nil
}

func (s *Solver) solve(ctx context.Context, src loader.Source) (*Result, error) {
	doc, err := src.Load(ctx)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to load %s", src.Name())
	}
	s.recorder.ObserveDecoded(len(doc.Records))
	log.Debugf("[Solver] loaded %d points from %s (n=%d, k=%d)", len(doc.Points), src.Name(), doc.N, doc.K)

	used, err := s.selectPoints(doc)
	if err != nil {
		return nil, err
	}

	if s.opts.StrictX {
		if err = lagrange.CheckDistinct(used); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	v, err := lagrange.InterpolateAtZeroParallel(ctx, used, s.opts.Parallelism)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	elapsed := time.Since(start)

	if math.IsNaN(v) || math.IsInf(v, 0) {
		log.Warnf("[Solver] interpolation of %s produced %v, the x values are probably not distinct", src.Name(), v)
	}

	s.recorder.ObserveResult(v, len(used), elapsed)
	log.Debugf("[Solver] f(0)=%v from %d of %d points in %s", v, len(used), doc.N, elapsed)

	return &Result{
		Value:    v,
		Document: doc,
		Used:     used,
		Elapsed:  elapsed,
	}, nil
}

func (s *Solver) selectPoints(doc *loader.Document) (lagrange.PointSet, error) {
	switch s.opts.Threshold {
	case config.ThresholdAll:
		if doc.K < 1 || doc.K > doc.N {
			log.Warnf("[Solver] threshold k=%d is outside [1, %d], using all points", doc.K, doc.N)
		}
		return doc.Points, nil
	case config.ThresholdFirst:
		if doc.K < 1 || doc.K > doc.N {
			return nil, errors.Wrapf(ErrInvalidThreshold, "k=%d is outside [1, %d]", doc.K, doc.N)
		}
		return doc.Points[:doc.K], nil
	default:
		return nil, errors.Wrapf(ErrInvalidThreshold, "unknown policy %q", s.opts.Threshold)
	}
}
