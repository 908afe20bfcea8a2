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

package solver

import (
	"context"
)

import (
	"github.com/pkg/errors"
)

import (
	"github.com/arana-db/polysecret/pkg/lagrange"
	"github.com/arana-db/polysecret/pkg/loader"
	"github.com/arana-db/polysecret/pkg/radix"
)

// Error kinds, used as the metrics label of failed runs.
const (
	KindSource     = "source"
	KindMalformed  = "malformed"
	KindDecode     = "decode"
	KindCount      = "count"
	KindDuplicateX = "duplicate_x"
	KindThreshold  = "threshold"
	KindCanceled   = "canceled"
	KindOther      = "other"
)

// Kind classifies err into one of the error kinds.
func Kind(err error) string {
	switch {
	case errors.Is(err, loader.ErrSourceUnavailable):
		return KindSource
	case errors.Is(err, loader.ErrMalformedInput):
		return KindMalformed
	case errors.Is(err, radix.ErrInvalidCharacter),
		errors.Is(err, radix.ErrDigitExceedsBase),
		errors.Is(err, radix.ErrInvalidBase),
		errors.Is(err, radix.ErrEmptyDigits):
		return KindDecode
	case errors.Is(err, lagrange.ErrPointCountMismatch),
		errors.Is(err, lagrange.ErrEmptyPointSet):
		return KindCount
	case errors.Is(err, lagrange.ErrDuplicateX):
		return KindDuplicateX
	case errors.Is(err, ErrInvalidThreshold):
		return KindThreshold
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindOther
	}
}
