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

// Package cmds holds the root command and the plumbing shared by
// subcommands. Subcommand packages register themselves through Handle from
// their init functions.
package cmds

import (
	"context"
	"fmt"
	"io"
	"os"
)

import (
	"github.com/google/uuid"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"go.uber.org/zap"
)

import (
	"github.com/arana-db/polysecret/pkg/config"
	"github.com/arana-db/polysecret/pkg/constants"
	"github.com/arana-db/polysecret/pkg/util/log"
)

var Version = "0.1.0"

// ErrUsage marks a command line that lacks a required input.
var ErrUsage = errors.New("usage error")

var _handlers []func(root *cobra.Command)

// Handle registers a hook which adds subcommands to the root command.
func Handle(fn func(root *cobra.Command)) {
	_handlers = append(_handlers, fn)
}

// NewRootCommand builds the root command with every registered subcommand.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "polysecret",
		Short:         "polysecret recovers the constant term of a polynomial from base-encoded shares",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().
		StringP(constants.ConfigPathKey, "c", os.Getenv(constants.EnvBootstrapPath), "bootstrap configuration file path")

	for _, fn := range _handlers {
		fn(root)
	}
	return root
}

// Execute runs the command line and returns the process exit code: 0 on
// success, 1 on any error. The diagnostic goes to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Boot loads the bootstrap config selected by --config, installs its logger
// and tags the following log entries with a run id.
func Boot(cmd *cobra.Command) (*config.BootOptions, error) {
	path, _ := cmd.Flags().GetString(constants.ConfigPathKey)

	cfg, used, err := config.ResolveBootOptions(path)
	if err != nil {
		return nil, err
	}

	if err = log.Init(&cfg.Logging); err != nil {
		log.Debugf("failed to close previous logger: %v", err)
	}
	log.With(zap.String("run", uuid.NewString()))

	if len(used) > 0 {
		log.Debugf("load bootstrap config from %s", used)
	}
	return cfg, nil
}

// InputPath returns the share document named either by the first positional
// argument or by --file.
func InputPath(cmd *cobra.Command, args []string) (string, error) {
	flagPath, _ := cmd.Flags().GetString(constants.InputPathKey)

	switch {
	case len(args) > 0 && len(flagPath) > 0 && args[0] != flagPath:
		return "", errors.Wrapf(ErrUsage, "input given twice: %s and --%s %s", args[0], constants.InputPathKey, flagPath)
	case len(args) > 0:
		return args[0], nil
	case len(flagPath) > 0:
		return flagPath, nil
	default:
		return "", errors.Wrapf(ErrUsage, "missing input file, try '%s <file>'", cmd.CommandPath())
	}
}

// AddInputFlag registers --file.
func AddInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(constants.InputPathKey, "f", "", "share document path, '-' reads stdin")
}

// AddOutputFlags registers the flags which control result rendering.
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String(constants.FormatKey, "", "result format: default, decimal or fixed")
	cmd.Flags().Int(constants.PrecisionKey, 0, "significant digits (default) or digits after the point (fixed)")
}

// ApplyOutputFlags copies explicitly set output flags over cfg.
func ApplyOutputFlags(cmd *cobra.Command, cfg *config.Solver) {
	if cmd.Flags().Changed(constants.FormatKey) {
		cfg.Format, _ = cmd.Flags().GetString(constants.FormatKey)
	}
	if cmd.Flags().Changed(constants.PrecisionKey) {
		cfg.Precision, _ = cmd.Flags().GetInt(constants.PrecisionKey)
	}
}
