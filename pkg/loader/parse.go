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

package loader

import (
	"math"
	"strconv"
	"strings"
)

import (
	"github.com/pkg/errors"

	"github.com/spf13/cast"

	"github.com/tidwall/gjson"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

import (
	"github.com/arana-db/polysecret/pkg/lagrange"
	"github.com/arana-db/polysecret/pkg/radix"
	"github.com/arana-db/polysecret/pkg/util/env"
	"github.com/arana-db/polysecret/pkg/util/log"
)

const _keysField = "keys"

// Parse decodes a share document. Point entries are processed in
// lexicographic key order; a later duplicate key replaces an earlier one.
// The first failing entry aborts parsing.
func Parse(content []byte) (*Document, error) {
	if !gjson.ValidBytes(content) {
		return nil, errors.Wrap(ErrMalformedInput, "invalid json")
	}

	root := gjson.ParseBytes(content)
	if !root.IsObject() {
		return nil, errors.Wrap(ErrMalformedInput, "top level is not an object")
	}

	keys := root.Get(_keysField)
	if !keys.IsObject() {
		return nil, errors.Wrapf(ErrMalformedInput, "missing '%s' object", _keysField)
	}

	n, err := intField(keys, "n")
	if err != nil {
		return nil, err
	}
	k, err := intField(keys, "k")
	if err != nil {
		return nil, err
	}

	entries := make(map[string]gjson.Result)
	root.ForEach(func(key, value gjson.Result) bool {
		if name := key.String(); name != _keysField {
			entries[name] = value
		}
		return true
	})

	names := maps.Keys(entries)
	slices.Sort(names)

	var (
		records = make([]Record, 0, len(names))
		points  = make([]lagrange.Point, 0, len(names))
	)
	for _, name := range names {
		rec, err := parseRecord(name, entries[name])
		if err != nil {
			return nil, errors.Wrapf(err, "point '%s'", name)
		}
		records = append(records, rec)
		points = append(points, rec.Point)
	}

	ps, err := lagrange.NewPointSet(n, points)
	if err != nil {
		return nil, err
	}

	if env.IsDevelopEnvironment() {
		log.Debugf("[Loader] n=%d k=%d records=%+v", n, k, records)
	}

	return &Document{
		N:       n,
		K:       k,
		Records: records,
		Points:  ps,
	}, nil
}

func intField(obj gjson.Result, name string) (int, error) {
	v := obj.Get(name)
	if !v.Exists() {
		return 0, errors.Wrapf(ErrMalformedInput, "missing '%s.%s'", _keysField, name)
	}
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return 0, errors.Wrapf(ErrMalformedInput, "'%s.%s' is not an integer: %s", _keysField, name, v.Raw)
	}
	return int(v.Int()), nil
}

func parseRecord(name string, value gjson.Result) (Record, error) {
	if !value.IsObject() {
		return Record{}, errors.Wrap(ErrMalformedInput, "entry is not an object")
	}

	x, err := cast.ToFloat64E(strings.TrimSpace(name))
	if err != nil || math.IsInf(x, 0) || math.IsNaN(x) {
		return Record{}, errors.Wrap(ErrMalformedInput, "key is not a finite number")
	}

	base, err := baseField(value.Get("base"))
	if err != nil {
		return Record{}, err
	}

	digits := value.Get("value")
	if digits.Type != gjson.String {
		return Record{}, errors.Wrap(ErrMalformedInput, "'value' must be a string")
	}

	y, err := radix.Decode(digits.Str, base)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Key:   name,
		Base:  base,
		Value: digits.Str,
		Point: lagrange.Point{X: x, Y: y},
	}, nil
}

// baseField accepts the base as a decimal string ("16") or a JSON integer.
func baseField(v gjson.Result) (int, error) {
	switch v.Type {
	case gjson.String:
		base, err := strconv.Atoi(strings.TrimSpace(v.Str))
		if err != nil {
			return 0, errors.Wrapf(ErrMalformedInput, "'base' is not an integer: %q", v.Str)
		}
		return base, nil
	case gjson.Number:
		if v.Num != math.Trunc(v.Num) {
			return 0, errors.Wrapf(ErrMalformedInput, "'base' is not an integer: %s", v.Raw)
		}
		return int(v.Int()), nil
	case gjson.Null:
		if !v.Exists() {
			return 0, errors.Wrap(ErrMalformedInput, "missing 'base'")
		}
	}
	return 0, errors.Wrapf(ErrMalformedInput, "'base' is not an integer: %s", v.Raw)
}
