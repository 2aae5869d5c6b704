// Copyright 2026 Jacob Maynard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bytebuf provides fixed-capacity byte buffers with checked copy
// operations.
package bytebuf

import "fmt"

// Buffer is a byte buffer with a fixed capacity and an explicit logical
// length. Every write is checked against the capacity: an operation that
// does not fit fails and leaves the buffer unchanged, it never truncates
// silently.
//
// The zero value is an empty buffer with zero capacity.
type Buffer struct {
	data []byte
	n    int
}

// New returns an empty buffer with the given capacity.
func New(capacity int) Buffer {
	return Buffer{data: make([]byte, capacity)}
}

// Cap returns the buffer's capacity in bytes.
func (b *Buffer) Cap() int { return len(b.data) }

// Len returns the buffer's logical length in bytes.
func (b *Buffer) Len() int { return b.n }

// Bytes returns the buffer's contents. The returned slice aliases the
// buffer's storage; it is valid until the next write and must not be
// resized by the caller.
func (b *Buffer) Bytes() []byte { return b.data[:b.n] }

// Set replaces the buffer's contents with a copy of src and sets the
// length to len(src). It fails if src does not fit.
func (b *Buffer) Set(src []byte) error {
	if len(src) > len(b.data) {
		return fmt.Errorf("bytebuf: %d bytes exceed capacity %d", len(src), len(b.data))
	}
	copy(b.data, src)
	b.n = len(src)
	return nil
}

// SetFixed replaces the buffer's contents with src truncated or
// zero-padded to exactly n bytes. It fails if n is negative or exceeds the
// capacity. src may alias the buffer's own storage.
func (b *Buffer) SetFixed(src []byte, n int) error {
	if n < 0 || n > len(b.data) {
		return fmt.Errorf("bytebuf: fixed length %d outside [0, %d]", n, len(b.data))
	}
	if len(src) > n {
		src = src[:n]
	}
	copied := copy(b.data, src)
	for i := copied; i < n; i++ {
		b.data[i] = 0
	}
	b.n = n
	return nil
}
