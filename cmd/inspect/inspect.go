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
	"context"
	"fmt"
	"io"
)

import (
	"github.com/spf13/cobra"
)

import (
	"github.com/arana-db/polysecret/cmd/cmds"
	"github.com/arana-db/polysecret/pkg/config"
	"github.com/arana-db/polysecret/pkg/lagrange"
	"github.com/arana-db/polysecret/pkg/loader"
	"github.com/arana-db/polysecret/pkg/output"
	"github.com/arana-db/polysecret/pkg/util/log"
	"github.com/arana-db/polysecret/pkg/util/tableprint"
)

const _colorKey = "color"

func init() {
	cmds.Handle(func(root *cobra.Command) {
		root.AddCommand(newCommand())
	})
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the decoded points of a document with their Lagrange weights",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	cmds.AddInputFlag(cmd)
	cmds.AddOutputFlags(cmd)
	cmd.Flags().Bool(_colorKey, false, "colorize the table header")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := cmds.Boot(cmd)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	input, err := cmds.InputPath(cmd, args)
	if err != nil {
		return err
	}
	cmds.ApplyOutputFlags(cmd, &cfg.Solver)
	if err = config.Validate(cfg); err != nil {
		return err
	}

	var src loader.Source
	if input == loader.StdinName {
		src = loader.NewReaderSource("stdin", cmd.InOrStdin())
	} else {
		src = loader.NewFileSource(input)
	}

	color, _ := cmd.Flags().GetBool(_colorKey)
	return Run(cmd.Context(), src, Options{
		Format:    cfg.Solver.Format,
		Precision: cfg.Solver.Precision,
		Color:     color,
	}, cmd.OutOrStdout())
}

type Options struct {
	Format    string
	Precision int
	Color     bool
}

// Run loads src and writes one table row per point followed by the
// interpolated f(0) over all of them. Nothing is written on failure.
func Run(ctx context.Context, src loader.Source, opts Options, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := src.Load(ctx)
	if err != nil {
		return err
	}

	text, err := output.Format(lagrange.InterpolateAtZero(doc.Points), opts.Format, opts.Precision)
	if err != nil {
		return err
	}

	weights := lagrange.Weights(doc.Points)
	if opts.Color {
		tableprint.WritePointsColor(w, doc.Records, weights)
	} else {
		tableprint.WritePoints(w, doc.Records, weights)
	}

	_, err = fmt.Fprintf(w, "n=%d k=%d f(0)=%s\n", doc.N, doc.K, text)
	return err
}
