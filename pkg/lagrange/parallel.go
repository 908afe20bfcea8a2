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

package lagrange

import (
	"context"
	"runtime"
)

import (
	"golang.org/x/sync/errgroup"
)

// _chunk is the number of terms handed to one goroutine.
const _chunk = 64

// InterpolateAtZeroParallel computes the same value as InterpolateAtZero,
// spreading the per-point terms over at most workers goroutines. Terms are
// stored by index and summed in ascending order afterwards, so both functions
// return bit-identical results. workers <= 0 means runtime.GOMAXPROCS(0).
func InterpolateAtZeroParallel(ctx context.Context, ps PointSet, workers int) (float64, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || len(ps) <= _chunk {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return InterpolateAtZero(ps), nil
	}

	terms := make([]float64, len(ps))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for begin := 0; begin < len(ps); begin += _chunk {
		begin := begin
		end := begin + _chunk
		if end > len(ps) {
			end = len(ps)
		}
		g.Go(func() error {
			for i := begin; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				terms[i] = termAt(ps, i)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var result float64
	for _, term := range terms {
		result += term
	}
	return result, nil
}
