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

package loader_test

import (
	"context"
	"strings"
	"testing"
)

import (
	"github.com/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

import (
	"github.com/arana-db/polysecret/pkg/lagrange"
	"github.com/arana-db/polysecret/pkg/loader"
	"github.com/arana-db/polysecret/pkg/radix"
	"github.com/arana-db/polysecret/testdata"
)

func TestParse(t *testing.T) {
	doc, err := loader.Parse([]byte(`{
		"keys": {"n": 3, "k": 2},
		"2": {"base": "16", "value": "fF"},
		"10": {"base": 2, "value": "101"},
		"1": {"base": " 36 ", "value": "z"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, 3, doc.N)
	assert.Equal(t, 2, doc.K)

	// lexicographic key order: "1" < "10" < "2"
	require.Len(t, doc.Records, 3)
	assert.Equal(t, "1", doc.Records[0].Key)
	assert.Equal(t, "10", doc.Records[1].Key)
	assert.Equal(t, "2", doc.Records[2].Key)

	assert.Equal(t, lagrange.PointSet{{X: 1, Y: 35}, {X: 10, Y: 5}, {X: 2, Y: 255}}, doc.Points)
	assert.Equal(t, 36, doc.Records[0].Base)
	assert.Equal(t, "fF", doc.Records[2].Value)
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	doc, err := loader.Parse([]byte(`{"keys": {"n": 1, "k": 1}, "1": {"base": "10", "value": "4"}, "1": {"base": "10", "value": "7"}}`))
	require.NoError(t, err)
	assert.Equal(t, lagrange.PointSet{{X: 1, Y: 7}}, doc.Points)
}

func TestParse_Malformed(t *testing.T) {
	for _, it := range []struct {
		name    string
		content string
		msg     string
	}{
		{"not json", `{"keys": `, "invalid json"},
		{"array", `[1, 2]`, "top level is not an object"},
		{"no keys", `{"1": {"base": "10", "value": "4"}}`, "missing 'keys' object"},
		{"no n", `{"keys": {"k": 1}}`, "missing 'keys.n'"},
		{"string k", `{"keys": {"n": 1, "k": "1"}}`, "'keys.k' is not an integer"},
		{"fraction n", `{"keys": {"n": 1.5, "k": 1}}`, "'keys.n' is not an integer"},
		{"entry not object", `{"keys": {"n": 1, "k": 1}, "1": "4"}`, "point '1': entry is not an object"},
		{"key not number", `{"keys": {"n": 1, "k": 1}, "one": {"base": "10", "value": "4"}}`, "point 'one': key is not a finite number"},
		{"key with trailing text", `{"keys": {"n": 1, "k": 1}, "1abc": {"base": "10", "value": "4"}}`, "point '1abc': key is not a finite number"},
		{"base with trailing text", `{"keys": {"n": 1, "k": 1}, "1": {"base": "16abc", "value": "4"}}`, "'base' is not an integer"},
		{"key infinite", `{"keys": {"n": 1, "k": 1}, "inf": {"base": "10", "value": "4"}}`, "key is not a finite number"},
		{"no base", `{"keys": {"n": 1, "k": 1}, "1": {"value": "4"}}`, "missing 'base'"},
		{"bad base", `{"keys": {"n": 1, "k": 1}, "1": {"base": "ten", "value": "4"}}`, "'base' is not an integer"},
		{"null base", `{"keys": {"n": 1, "k": 1}, "1": {"base": null, "value": "4"}}`, "'base' is not an integer"},
		{"numeric value", `{"keys": {"n": 1, "k": 1}, "1": {"base": "10", "value": 4}}`, "'value' must be a string"},
	} {
		t.Run(it.name, func(t *testing.T) {
			_, err := loader.Parse([]byte(it.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, loader.ErrMalformedInput), "%v", err)
			assert.Contains(t, err.Error(), it.msg)
		})
	}
}

func TestParse_DecodeErrors(t *testing.T) {
	_, err := loader.Parse([]byte(`{"keys": {"n": 1, "k": 1}, "7": {"base": "16", "value": "1a!"}}`))
	assert.True(t, errors.Is(err, radix.ErrInvalidCharacter))
	assert.True(t, strings.HasPrefix(err.Error(), "point '7': "), err.Error())

	_, err = loader.Parse([]byte(`{"keys": {"n": 1, "k": 1}, "7": {"base": "1", "value": "0"}}`))
	assert.True(t, errors.Is(err, radix.ErrInvalidBase))
}

func TestFileSource(t *testing.T) {
	src := loader.NewFileSource(testdata.Path("shares/sample.json"))
	assert.Equal(t, testdata.Path("shares/sample.json"), src.Name())

	doc, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, doc.N)
	assert.Equal(t, 3, doc.K)
	assert.Equal(t, lagrange.PointSet{{X: 1, Y: 4}, {X: 2, Y: 7}, {X: 3, Y: 12}, {X: 6, Y: 39}}, doc.Points)
}

func TestFileSource_Errors(t *testing.T) {
	_, err := loader.NewFileSource(testdata.Path("shares/absent.json")).Load(context.Background())
	assert.True(t, errors.Is(err, loader.ErrSourceUnavailable))
	assert.Contains(t, err.Error(), "absent.json")

	_, err = loader.NewFileSource(testdata.Path("shares/mismatch.json")).Load(context.Background())
	assert.True(t, errors.Is(err, lagrange.ErrPointCountMismatch))
	assert.Contains(t, err.Error(), "expected 4 points, but found 3")

	_, err = loader.NewFileSource(testdata.Path("shares/bad_digit.json")).Load(context.Background())
	assert.True(t, errors.Is(err, radix.ErrDigitExceedsBase))
	assert.Contains(t, err.Error(), "point '2'")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = loader.NewFileSource(testdata.Path("shares/sample.json")).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReaderSource(t *testing.T) {
	src := loader.NewReaderSource("stdin", strings.NewReader(`{"keys": {"n": 1, "k": 1}, "3": {"base": "10", "value": "8"}}`))
	assert.Equal(t, "stdin", src.Name())

	doc, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lagrange.PointSet{{X: 3, Y: 8}}, doc.Points)

	assert.IsType(t, &loader.ReaderSource{}, loader.Open("-"))
	assert.IsType(t, &loader.FileSource{}, loader.Open("shares.json"))
}
