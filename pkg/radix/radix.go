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

// Package radix decodes digit strings written in bases 2 to 36.
package radix

import (
	"github.com/pkg/errors"
)

const (
	MinBase = 2
	MaxBase = 36
)

var (
	ErrInvalidCharacter = errors.New("invalid character in value string")
	ErrDigitExceedsBase = errors.New("digit exceeds specified base")
	ErrInvalidBase      = errors.New("base out of range")
	ErrEmptyDigits      = errors.New("empty value string")
)

// EncodedValue is a digit string together with the base it is written in.
type EncodedValue struct {
	Digits string
	Base   int
}

// Decode evaluates digits in the given base. Digits are '0'-'9' followed by
// the letters 'a'-'z' (case-insensitive). The value is accumulated as a
// float64, so very long inputs lose precision.
func Decode(digits string, base int) (float64, error) {
	if base < MinBase || base > MaxBase {
		return 0, errors.Wrapf(ErrInvalidBase, "base %d not in [%d, %d]", base, MinBase, MaxBase)
	}
	if len(digits) == 0 {
		return 0, errors.WithStack(ErrEmptyDigits)
	}

	var result float64
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		d, ok := digitValue(c)
		if !ok {
			return 0, errors.Wrapf(ErrInvalidCharacter, "%q at position %d", c, i)
		}
		if d >= base {
			return 0, errors.Wrapf(ErrDigitExceedsBase, "digit %q (%d) at position %d, base %d", c, d, i, base)
		}
		result = result*float64(base) + float64(d)
	}
	return result, nil
}

// DecodeValue is Decode for an EncodedValue.
func DecodeValue(v EncodedValue) (float64, error) {
	return Decode(v.Digits, v.Base)
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
