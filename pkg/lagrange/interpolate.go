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

// Package lagrange evaluates the Lagrange interpolating polynomial at x=0.
//
// For n points the basis polynomial L_i evaluated at zero is
//
//	L_i(0) = Π_{j≠i} (0 - x_j) / (x_i - x_j)
//
// and f(0) = Σ y_i * L_i(0). The work is O(n^2).
package lagrange

// InterpolateAtZero returns f(0), the constant term of the polynomial passing
// through every point. Terms are summed in ascending index order. Duplicate x
// values make a denominator zero and the result becomes ±Inf or NaN.
func InterpolateAtZero(ps PointSet) float64 {
	var result float64
	for i := range ps {
		result += termAt(ps, i)
	}
	return result
}

// Weights returns L_i(0) for every point, i.e. the factor each y_i
// contributes to f(0).
func Weights(ps PointSet) []float64 {
	ws := make([]float64, len(ps))
	for i := range ps {
		num, denom := 1.0, 1.0
		for j := range ps {
			if i == j {
				continue
			}
			num *= 0 - ps[j].X
			denom *= ps[i].X - ps[j].X
		}
		ws[i] = num / denom
	}
	return ws
}

// termAt is y_i * L_i(0). y_i seeds the numerator product so the rounding
// sequence stays y*(-x_0)*(-x_1)...
func termAt(ps PointSet, i int) float64 {
	var (
		term  = ps[i].Y
		denom = 1.0
	)
	for j := range ps {
		if i == j {
			continue
		}
		term *= 0 - ps[j].X
		denom *= ps[i].X - ps[j].X
	}
	return term / denom
}
