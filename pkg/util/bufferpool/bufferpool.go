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

// Package bufferpool recycles the buffers share documents are read into.
package bufferpool

import (
	"bytes"
	"sync"
)

// _maxRetained caps the capacity of a buffer kept for reuse; documents with
// thousands of shares are rare and their buffers are left to the GC.
const _maxRetained = 1 << 20

var _pool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// Get borrows an empty Buffer.
func Get() *bytes.Buffer {
	return _pool.Get().(*bytes.Buffer)
}

// Put returns b to the pool. Nil and oversized buffers are dropped.
func Put(b *bytes.Buffer) {
	if b == nil || b.Cap() > _maxRetained {
		return
	}
	b.Reset()
	_pool.Put(b)
}
