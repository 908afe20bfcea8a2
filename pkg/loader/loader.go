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

// Package loader turns a share document into a decoded point set.
//
// A share document is a JSON object with a "keys" object declaring the point
// count n and threshold k, and one entry per point keyed by its x coordinate:
//
//	{
//	    "keys": {"n": 4, "k": 3},
//	    "1": {"base": "10", "value": "4"},
//	    "2": {"base": "2", "value": "111"}
//	}
package loader

import (
	"context"
)

import (
	"github.com/pkg/errors"
)

import (
	"github.com/arana-db/polysecret/pkg/lagrange"
)

var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrMalformedInput    = errors.New("malformed input")
)

// Record is one decoded entry of a share document.
type Record struct {
	Key   string
	Base  int
	Value string
	Point lagrange.Point
}

// Document is the decoded content of a share document. Points holds exactly
// N entries, in the same order as Records.
type Document struct {
	N, K    int
	Records []Record
	Points  lagrange.PointSet
}

// Source produces a decoded document.
type Source interface {
	// Name identifies the source in diagnostics.
	Name() string
	Load(ctx context.Context) (*Document, error)
}
