// Copyright 2019 Google LLC
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

package samba

// Buffer is a grow-on-demand byte FIFO with separate read and write
// cursors. It backs the transport's reply collection. Not safe for
// concurrent use.
type Buffer struct {
	data     []byte
	readPos  int
	writePos int
}

// grow makes room for at least n more bytes past the write cursor.
func (b *Buffer) grow(n int) {
	if b.writePos+n <= len(b.data) {
		return
	}
	newLen := 2 * len(b.data)
	if newLen < b.writePos+n {
		newLen = b.writePos + n
	}
	data := make([]byte, newLen)
	copy(data, b.data[:b.writePos])
	b.data = data
}

// Push appends a single byte.
func (b *Buffer) Push(v byte) {
	b.grow(1)
	b.data[b.writePos] = v
	b.writePos++
}

// Copy appends the contents of p.
func (b *Buffer) Copy(p []byte) {
	b.grow(len(p))
	copy(b.data[b.writePos:], p)
	b.writePos += len(p)
}

// Fill appends n copies of v.
func (b *Buffer) Fill(v byte, n int) {
	b.grow(n)
	for i := 0; i < n; i++ {
		b.data[b.writePos+i] = v
	}
	b.writePos += n
}

// Shift consumes and returns the byte under the read cursor.
// The second return value is false when the buffer is drained.
func (b *Buffer) Shift() (byte, bool) {
	if b.readPos >= b.writePos {
		return 0, false
	}
	v := b.data[b.readPos]
	b.readPos++
	return v, true
}

// Reset rewinds both cursors. Storage is retained.
func (b *Buffer) Reset() {
	b.readPos = 0
	b.writePos = 0
}

// Len reports the number of unread bytes.
func (b *Buffer) Len() int {
	return b.writePos - b.readPos
}

// View exposes the unread bytes. The slice aliases the buffer's storage
// and is invalidated by the next mutating call.
func (b *Buffer) View() []byte {
	return b.data[b.readPos:b.writePos]
}
