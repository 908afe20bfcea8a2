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

package decode

import (
	"fmt"
	"io"
	"strconv"
)

import (
	"github.com/pkg/errors"

	"github.com/spf13/cobra"
)

import (
	"github.com/arana-db/polysecret/cmd/cmds"
	"github.com/arana-db/polysecret/pkg/config"
	"github.com/arana-db/polysecret/pkg/output"
	"github.com/arana-db/polysecret/pkg/radix"
	"github.com/arana-db/polysecret/pkg/util/log"
)

func init() {
	cmds.Handle(func(root *cobra.Command) {
		root.AddCommand(newCommand())
	})
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decode <digits> <base>",
		Short:   "Decode a single digit string in base 2 to 36",
		Example: "  polysecret decode 111 2\n  polysecret decode zz 36",
		Args:    cobra.ExactArgs(2),
		RunE:    run,
	}
	cmds.AddOutputFlags(cmd)
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

	cmds.ApplyOutputFlags(cmd, &cfg.Solver)
	if err = config.Validate(cfg); err != nil {
		return err
	}

	base, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Wrapf(cmds.ErrUsage, "base %q is not an integer", args[1])
	}

	return Run(radix.EncodedValue{Digits: args[0], Base: base}, cfg.Solver.Format, cfg.Solver.Precision, cmd.OutOrStdout())
}

// Run decodes ev and writes the value as a single line to w.
func Run(ev radix.EncodedValue, format string, precision int, w io.Writer) error {
	v, err := radix.DecodeValue(ev)
	if err != nil {
		return err
	}

	text, err := output.Format(v, format, precision)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, text)
	return err
}
