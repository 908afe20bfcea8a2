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

package inspect

import (
	"bytes"
	"context"
	"testing"
)

import (
	"github.com/golang/mock/gomock"

	"github.com/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

import (
	"github.com/arana-db/polysecret/cmd/cmds"
	"github.com/arana-db/polysecret/pkg/loader"
	"github.com/arana-db/polysecret/pkg/output"
	"github.com/arana-db/polysecret/testdata"
)

func TestInspectCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := cmds.Execute(context.Background(), []string{
		"inspect", "-c", testdata.Path("bootstrap.yaml"),
		testdata.Path("shares/linear.json"), "--format", "default",
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	for _, s := range []string{"key", "base", "L(0)", "1001", "36", "n=4 k=3 f(0)=6"} {
		assert.Contains(t, out, s)
	}
}

func TestRun_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := testdata.NewMockSource(ctrl)
	src.EXPECT().Load(gomock.Any()).Return(nil, errors.Wrap(loader.ErrMalformedInput, "invalid json"))

	var out bytes.Buffer
	err := Run(context.Background(), src, Options{}, &out)
	assert.True(t, errors.Is(err, loader.ErrMalformedInput))
	assert.Empty(t, out.String())
}

func TestInspectCommand_Failures(t *testing.T) {
	for _, args := range [][]string{
		{testdata.Path("shares/sample.json"), "--format", "hex"},
		{testdata.Path("shares/bad_digit.json")},
		{},
	} {
		var stdout, stderr bytes.Buffer
		code := cmds.Execute(context.Background(),
			append([]string{"inspect", "-c", testdata.Path("bootstrap.yaml")}, args...), &stdout, &stderr)

		assert.Equal(t, 1, code, "%v", args)
		assert.Empty(t, stdout.String(), "%v", args)
		assert.Contains(t, stderr.String(), "Error: ", "%v", args)
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	src := loader.NewFileSource(testdata.Path("shares/sample.json"))

	var out bytes.Buffer
	err := Run(context.Background(), src, Options{Format: "hex"}, &out)
	assert.True(t, errors.Is(err, output.ErrUnknownFormat))
	assert.Empty(t, out.String())
}
