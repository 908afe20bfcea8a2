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

package config

import (
	"os"
	"path/filepath"
)

import (
	"github.com/creasty/defaults"

	"github.com/go-playground/validator/v10"

	"github.com/pkg/errors"

	"gopkg.in/yaml.v3"
)

import (
	"github.com/arana-db/polysecret/pkg/constants"
	"github.com/arana-db/polysecret/pkg/util/file"
	"github.com/arana-db/polysecret/pkg/util/log"
)

// ThresholdPolicy decides how the declared threshold k is applied.
type ThresholdPolicy string

const (
	// ThresholdAll interpolates over every decoded point; k is metadata only.
	ThresholdAll ThresholdPolicy = "all"
	// ThresholdFirst interpolates over the first k points in key order.
	ThresholdFirst ThresholdPolicy = "first"
)

// Output formats of the result.
const (
	FormatDefault = "default"
	FormatDecimal = "decimal"
	FormatFixed   = "fixed"
)

var bootstrapFilenameList = []string{"bootstrap.yaml", "bootstrap.yml"}

type (
	BootOptions struct {
		Logging log.LoggingConfig `yaml:"logging" json:"logging"`
		Solver  Solver            `yaml:"solver" json:"solver"`
		Metrics Metrics           `yaml:"metrics" json:"metrics"`
	}

	Solver struct {
		Format      string          `default:"default" validate:"oneof=default decimal fixed" yaml:"format" json:"format"`
		Precision   int             `default:"6" validate:"gte=0,lte=64" yaml:"precision" json:"precision"`
		Threshold   ThresholdPolicy `default:"all" validate:"oneof=all first" yaml:"threshold" json:"threshold"`
		StrictX     bool            `yaml:"strict_x" json:"strict_x"`
		Parallelism int             `default:"1" validate:"gte=0" yaml:"parallelism" json:"parallelism"`
	}

	Metrics struct {
		Textfile string `yaml:"textfile" json:"textfile"`
	}
)

// NewBootOptions returns options filled with their defaults.
func NewBootOptions() *BootOptions {
	var cfg BootOptions
	_ = defaults.Set(&cfg)
	return &cfg
}

// LoadBootOptions loads BootOptions from specified file path.
func LoadBootOptions(path string) (*BootOptions, error) {
	path, err := file.FormatPath(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	if !file.IsYaml(path) {
		return nil, errors.Errorf("invalid config file format: %s", filepath.Ext(path))
	}

	cfg := NewBootOptions()
	if err = yaml.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ResolveBootOptions loads the bootstrap file at path. An empty path falls
// back to the search path list; when nothing is found the defaults are used.
// The second return value is the file actually loaded.
func ResolveBootOptions(path string) (*BootOptions, string, error) {
	if len(path) < 1 {
		var ok bool
		if path, ok = file.SearchFile(constants.GetConfigSearchPathList(), bootstrapFilenameList); !ok {
			return NewBootOptions(), "", nil
		}
	}

	cfg, err := LoadBootOptions(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Validate validates the input configuration.
func Validate(cfg *BootOptions) error {
	v := validator.New()
	return errors.Wrap(v.Struct(cfg), "invalid bootstrap config")
}
