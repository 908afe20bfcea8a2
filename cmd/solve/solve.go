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
	"context"
	"fmt"
	"io"
)

import (
	"github.com/pkg/errors"

	"github.com/spf13/cobra"
)

import (
	"github.com/arana-db/polysecret/cmd/cmds"
	"github.com/arana-db/polysecret/pkg/config"
	"github.com/arana-db/polysecret/pkg/constants"
	"github.com/arana-db/polysecret/pkg/loader"
	"github.com/arana-db/polysecret/pkg/output"
	"github.com/arana-db/polysecret/pkg/solver"
	"github.com/arana-db/polysecret/pkg/util/log"
)

func init() {
	cmds.Handle(func(root *cobra.Command) {
		root.AddCommand(newCommand())
	})
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Decode the shares of a document and print the constant term f(0)",
		Example: "  polysecret solve shares.json\n" +
			"  cat shares.json | polysecret solve -\n" +
			"  polysecret solve -f shares.json --format fixed --precision 2",
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}
	cmds.AddInputFlag(cmd)
	cmds.AddOutputFlags(cmd)
	cmd.Flags().String(constants.ThresholdKey, "", "point selection: all or first")
	cmd.Flags().Bool(constants.StrictXKey, false, "reject shares with repeated x values")
	cmd.Flags().Int(constants.ParallelismKey, 1, "goroutines used by the interpolation, 0 means GOMAXPROCS")
	cmd.Flags().String(constants.MetricsKey, "", "write run metrics in prometheus text format to this file")
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
	applySolverFlags(cmd, cfg)
	if err = config.Validate(cfg); err != nil {
		return err
	}

	var src loader.Source
	if input == loader.StdinName {
		src = loader.NewReaderSource("stdin", cmd.InOrStdin())
	} else {
		src = loader.NewFileSource(input)
	}

	return Run(cmd.Context(), cfg, src, cmd.OutOrStdout())
}

func applySolverFlags(cmd *cobra.Command, cfg *config.BootOptions) {
	flags := cmd.Flags()
	if flags.Changed(constants.ThresholdKey) {
		threshold, _ := flags.GetString(constants.ThresholdKey)
		cfg.Solver.Threshold = config.ThresholdPolicy(threshold)
	}
	if flags.Changed(constants.StrictXKey) {
		cfg.Solver.StrictX, _ = flags.GetBool(constants.StrictXKey)
	}
	if flags.Changed(constants.ParallelismKey) {
		cfg.Solver.Parallelism, _ = flags.GetInt(constants.ParallelismKey)
	}
	if flags.Changed(constants.MetricsKey) {
		cfg.Metrics.Textfile, _ = flags.GetString(constants.MetricsKey)
	}
}

// Run solves src with cfg and writes the formatted f(0) as a single line to
// w. The metrics textfile, when configured, is written whether the run
// succeeds or not.
func Run(ctx context.Context, cfg *config.BootOptions, src loader.Source, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s := solver.New(solver.OptionsFrom(&cfg.Solver), nil)
	res, err := s.Solve(ctx, src)

	if path := cfg.Metrics.Textfile; len(path) > 0 {
		if werr := s.Recorder().WriteTextfile(path); werr != nil {
			log.Warnf("failed to write metrics to %s: %v", path, werr)
		}
	}

	if err != nil {
		log.Debugf("solve %s failed: %+v", src.Name(), err)
		return err
	}

	text, err := output.Format(res.Value, cfg.Solver.Format, cfg.Solver.Precision)
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = fmt.Fprintln(w, text)
	return err
}

