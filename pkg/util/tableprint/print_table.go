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

package tableprint

import (
	"fmt"
	"io"
	"strconv"
)

import (
	"github.com/olekukonko/tablewriter"
)

import (
	"github.com/arana-db/polysecret/pkg/loader"
)

var _pointHeader = []string{"key", "base", "value", "x", "y", "L(0)"}

// WritePoints writes decoded records as a table. weights[i] is the Lagrange
// basis value of records[i]; a shorter weights slice leaves the column empty.
func WritePoints(w io.Writer, records []loader.Record, weights []float64) {
	writePoints(w, records, weights, false)
}

// WritePointsColor writes colorful table into writer.
func WritePointsColor(w io.Writer, records []loader.Record, weights []float64) {
	writePoints(w, records, weights, true)
}

func writePoints(w io.Writer, records []loader.Record, weights []float64, color bool) {
	header := make([]string, 0, len(_pointHeader))
	for _, h := range _pointHeader {
		if color {
			h = fmt.Sprintf("\033[32m%s\033[0m", h)
		}
		header = append(header, h)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)

	for i, rec := range records {
		weight := ""
		if i < len(weights) {
			weight = formatFloat(weights[i])
		}
		table.Append([]string{
			rec.Key,
			strconv.Itoa(rec.Base),
			rec.Value,
			formatFloat(rec.Point.X),
			formatFloat(rec.Point.Y),
			weight,
		})
	}

	table.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
