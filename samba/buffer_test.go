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

package samba_test

import (
	"bytes"
	"testing"

	"github.com/ma-ku/bossa-web/samba"
)

func TestBufferPushShift(t *testing.T) {
	var b samba.Buffer
	b.Push(0x11)
	b.Push(0x22)

	v, ok := b.Shift()
	if !ok || v != 0x11 {
		t.Errorf("Shift returned (%#x, %v)", v, ok)
	}
	v, ok = b.Shift()
	if !ok || v != 0x22 {
		t.Errorf("Shift returned (%#x, %v)", v, ok)
	}
	if _, ok = b.Shift(); ok {
		t.Errorf("Shift on drained buffer reported data")
	}
}

func TestBufferCopyView(t *testing.T) {
	var b samba.Buffer
	b.Copy([]byte{1, 2, 3})
	b.Copy([]byte{4, 5})
	if b.Len() != 5 {
		t.Errorf("Len = %d", b.Len())
	}
	if !bytes.Equal(b.View(), []byte{1, 2, 3, 4, 5}) {
		t.Errorf("View = %v", b.View())
	}
	b.Shift()
	if !bytes.Equal(b.View(), []byte{2, 3, 4, 5}) {
		t.Errorf("View after Shift = %v", b.View())
	}
}

func TestBufferFill(t *testing.T) {
	var b samba.Buffer
	b.Fill(0xaa, 4)
	if !bytes.Equal(b.View(), []byte{0xaa, 0xaa, 0xaa, 0xaa}) {
		t.Errorf("View = %v", b.View())
	}
}

func TestBufferGrowth(t *testing.T) {
	var b samba.Buffer
	big := make([]byte, 10000)
	for i := range big {
		big[i] = byte(i)
	}
	// Byte-at-a-time forces repeated doubling.
	for _, v := range big {
		b.Push(v)
	}
	if !bytes.Equal(b.View(), big) {
		t.Errorf("View does not round-trip after growth")
	}
}

func TestBufferReset(t *testing.T) {
	var b samba.Buffer
	b.Copy([]byte{1, 2, 3})
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len after Reset = %d", b.Len())
	}
	b.Push(9)
	if !bytes.Equal(b.View(), []byte{9}) {
		t.Errorf("View after Reset+Push = %v", b.View())
	}
}
