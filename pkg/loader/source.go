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

package loader

import (
	"context"
	"io"
	"os"
)

import (
	"github.com/pkg/errors"
)

import (
	"github.com/arana-db/polysecret/pkg/util/bufferpool"
	"github.com/arana-db/polysecret/pkg/util/file"
)

// StdinName selects standard input as the source.
const StdinName = "-"

// FileSource reads a share document from a path.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Name() string {
	return f.path
}

func (f *FileSource) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := file.FormatPath(f.path)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "could not open file %s: %v", f.path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "could not open file %s: %v", f.path, err)
	}

	return Parse(content)
}

// ReaderSource reads a share document from an io.Reader, e.g. stdin.
type ReaderSource struct {
	name string
	r    io.Reader
}

func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, r: r}
}

func (rs *ReaderSource) Name() string {
	return rs.name
}

func (rs *ReaderSource) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buf := bufferpool.Get()
	defer bufferpool.Put(buf)

	if _, err := buf.ReadFrom(rs.r); err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "could not read %s: %v", rs.name, err)
	}

	return Parse(buf.Bytes())
}

// Open returns the source for a command line argument: "-" is stdin,
// anything else a file path.
func Open(arg string) Source {
	if arg == StdinName {
		return NewReaderSource("stdin", os.Stdin)
	}
	return NewFileSource(arg)
}
