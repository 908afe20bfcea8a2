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

package solve

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

import (
	"github.com/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

import (
	"github.com/arana-db/polysecret/cmd/cmds"
	"github.com/arana-db/polysecret/pkg/config"
	"github.com/arana-db/polysecret/pkg/loader"
	"github.com/arana-db/polysecret/testdata"
)

func execute(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	args = append([]string{"solve", "-c", testdata.Path("bootstrap.yaml")}, args...)
	code := cmds.Execute(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestSolveCommand(t *testing.T) {
	type tt struct {
		name   string
		args   []string
		expect string
	}

	for _, it := range []tt{
		{"positional", []string{testdata.Path("shares/sample.json"), "--format", "default"}, "3\n"},
		{"file flag", []string{"-f", testdata.Path("shares/linear.json"), "--format", "default"}, "6\n"},
		{"fixed", []string{testdata.Path("shares/linear.json"), "--format", "fixed", "--precision", "2"}, "6.00\n"},
		{"first k", []string{testdata.Path("shares/sample.json"), "--format", "default", "--threshold", "first"}, "3\n"},
		{"parallel", []string{testdata.Path("shares/sample.json"), "--format", "default", "--parallelism", "0"}, "3\n"},
	} {
		t.Run(it.name, func(t *testing.T) {
			code, stdout, stderr := execute(it.args...)
			assert.Equal(t, 0, code, stderr)
			assert.Equal(t, it.expect, stdout)
		})
	}
}

func TestSolveCommand_Failures(t *testing.T) {
	type tt struct {
		name   string
		args   []string
		expect string
	}

	for _, it := range []tt{
		{"no input", nil, "missing input file"},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.json")}, "could not open file"},
		{"bad digit", []string{testdata.Path("shares/bad_digit.json")}, "digit exceeds specified base"},
		{"count mismatch", []string{testdata.Path("shares/mismatch.json")}, "expected 4 points, but found 3"},
		{"strict x", []string{testdata.Path("shares/duplicate_x.json"), "--strict-x"}, "duplicate x"},
		{"bad format", []string{testdata.Path("shares/sample.json"), "--format", "hex"}, "invalid bootstrap config"},
		{"bad threshold", []string{testdata.Path("shares/sample.json"), "--threshold", "some"}, "invalid bootstrap config"},
	} {
		t.Run(it.name, func(t *testing.T) {
			code, stdout, stderr := execute(it.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Error: ")
			assert.Contains(t, stderr, it.expect)
		})
	}
}

func TestSolveCommand_MetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polysecret.prom")

	code, _, stderr := execute(testdata.Path("shares/sample.json"), "--metrics-textfile", path)
	require.Equal(t, 0, code, stderr)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "polysecret_points_decoded_total 4")
	assert.Contains(t, string(content), "polysecret_points_used 4")

	code, _, _ = execute(testdata.Path("shares/bad_digit.json"), "--metrics-textfile", path)
	require.Equal(t, 1, code)

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `polysecret_failures_total{kind="decode"} 1`)
}

func TestRun_Stdin(t *testing.T) {
	const doc = `{"keys": {"n": 2, "k": 2}, "1": {"base": "10", "value": "5"}, "2": {"base": "16", "value": "7"}}`

	var out bytes.Buffer
	err := Run(context.Background(), config.NewBootOptions(), loader.NewReaderSource("stdin", strings.NewReader(doc)), &out)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out.String())

	out.Reset()
	err = Run(context.Background(), config.NewBootOptions(), loader.NewReaderSource("stdin", strings.NewReader("[]")), &out)
	assert.True(t, errors.Is(err, loader.ErrMalformedInput))
	assert.Empty(t, out.String())
}
