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

// Package output renders interpolation results. All formats are
// locale-independent: '.' is the decimal separator and no grouping is used.
package output

import (
	"math"
	"strconv"
)

import (
	"github.com/pkg/errors"

	"github.com/shopspring/decimal"
)

const (
	// Default prints up to precision significant digits and switches to
	// exponent notation for large or small magnitudes, e.g. "6" or
	// "1.23457e+06".
	Default = "default"
	// Decimal prints the shortest decimal that round-trips to the same
	// float64, never in exponent notation.
	Decimal = "decimal"
	// Fixed prints exactly precision digits after the decimal point.
	Fixed = "fixed"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Format renders v. Non-finite values print as "nan", "inf" or "-inf" in
// every format.
func Format(v float64, format string, precision int) (string, error) {
	if precision < 0 {
		precision = 0
	}

	switch {
	case math.IsNaN(v):
		return "nan", nil
	case math.IsInf(v, 1):
		return "inf", nil
	case math.IsInf(v, -1):
		return "-inf", nil
	}

	switch format {
	case Default, "":
		return strconv.FormatFloat(v, 'g', precision, 64), nil
	case Decimal:
		return decimal.NewFromFloat(v).String(), nil
	case Fixed:
		return decimal.NewFromFloat(v).StringFixed(int32(precision)), nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}
