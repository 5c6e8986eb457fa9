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

package flash

import (
	"github.com/golang/glog"

	"github.com/ma-ku/bossa-web/samba"
)

// Thumb-1 word-copy applet. Copies the word count at +0x28 from the
// source pointer at +0x24 to the destination pointer at +0x20, then
// hits a breakpoint. The parameter cells double as the literal pool.
//
//	00: 4807      ldr   r0, [pc, #28]   ; dst
//	02: 4908      ldr   r1, [pc, #32]   ; src
//	04: 4a08      ldr   r2, [pc, #32]   ; words
//	06: 2a00      cmp   r2, #0
//	08: d003      beq   done
//	0a: c908      ldmia r1!, {r3}
//	0c: c008      stmia r0!, {r3}
//	0e: 3a01      subs  r2, #1
//	10: e7f9      b     6
//	12: be00      done: bkpt  0
var wordCopyCode = []byte{
	0x07, 0x48, 0x08, 0x49, 0x08, 0x4a, 0x00, 0x2a,
	0x03, 0xd0, 0x08, 0xc9, 0x08, 0xc0, 0x01, 0x3a,
	0xf9, 0xe7, 0x00, 0xbe, 0xc0, 0x46, 0xc0, 0x46,
	0xc0, 0x46, 0xc0, 0x46, 0xc0, 0x46, 0xc0, 0x46,
	// Parameter cells: dst, src, words, stack, reset.
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

const (
	appletDstOffset   = 0x20
	appletSrcOffset   = 0x24
	appletWordsOffset = 0x28
	appletStackOffset = 0x2c
	appletResetOffset = 0x30
)

// WordCopyApplet manages the SRAM-resident copy trampoline. The code
// blob is uploaded at most once per session, on the first parameter
// write.
type WordCopyApplet struct {
	samba     samba.SambaInterface
	addr      uint32
	installed bool
}

func newWordCopyApplet(s samba.SambaInterface, addr uint32) *WordCopyApplet {
	return &WordCopyApplet{samba: s, addr: addr}
}

// Size reports the SRAM footprint of the applet image including its
// parameter cells.
func (a *WordCopyApplet) Size() uint32 {
	return uint32(len(wordCopyCode))
}

func (a *WordCopyApplet) install() error {
	if a.installed {
		return nil
	}
	glog.V(1).Infof("Installing word-copy applet at 0x%08x", a.addr)
	if err := a.samba.Write(a.addr, wordCopyCode); err != nil {
		return err
	}
	a.installed = true
	return nil
}

func (a *WordCopyApplet) setCell(offset uint32, v uint32) error {
	if err := a.install(); err != nil {
		return err
	}
	return a.samba.WriteWord(a.addr+offset, v)
}

func (a *WordCopyApplet) SetDst(addr uint32) error {
	return a.setCell(appletDstOffset, addr)
}

func (a *WordCopyApplet) SetSrc(addr uint32) error {
	return a.setCell(appletSrcOffset, addr)
}

func (a *WordCopyApplet) SetWords(words uint32) error {
	return a.setCell(appletWordsOffset, words)
}

func (a *WordCopyApplet) SetStack(addr uint32) error {
	return a.setCell(appletStackOffset, addr)
}

// Runv launches the applet on a Cortex-M target and returns without
// waiting for completion: the reset vector cell gets the Thumb entry
// point and G points the ROM at the stack cell, which it treats as a
// vector table (SP at +0, PC at +4).
func (a *WordCopyApplet) Runv() error {
	if err := a.samba.WriteWord(a.addr+appletResetOffset, a.addr|1); err != nil {
		return err
	}
	return a.samba.Go(a.addr + appletStackOffset)
}
