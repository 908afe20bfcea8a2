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
	"fmt"
)

import (
	"github.com/pkg/errors"
)

var (
	ErrPointCountMismatch = errors.New("point count mismatch")
	ErrEmptyPointSet      = errors.New("empty point set")
	ErrDuplicateX         = errors.New("duplicate x value")
)

// Point is a single (x, y) sample of the polynomial.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// PointSet is an ordered sequence of points whose length matched the declared
// count when it was built.
type PointSet []Point

// NewPointSet checks that exactly n points were supplied.
func NewPointSet(n int, points []Point) (PointSet, error) {
	if len(points) != n {
		return nil, errors.Wrapf(ErrPointCountMismatch, "expected %d points, but found %d", n, len(points))
	}
	if n < 1 {
		return nil, errors.WithStack(ErrEmptyPointSet)
	}
	ps := make(PointSet, n)
	copy(ps, points)
	return ps, nil
}

// Xs returns the x coordinates in order.
func (ps PointSet) Xs() []float64 {
	xs := make([]float64, 0, len(ps))
	for _, p := range ps {
		xs = append(xs, p.X)
	}
	return xs
}

// CheckDistinct fails with ErrDuplicateX when two points share an x value.
func CheckDistinct(ps PointSet) error {
	seen := make(map[float64]int, len(ps))
	for i, p := range ps {
		if j, ok := seen[p.X]; ok {
			return errors.Wrapf(ErrDuplicateX, "x=%g at index %d and %d", p.X, j, i)
		}
		seen[p.X] = i
	}
	return nil
}
