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

package flash_test

import (
	"bytes"
	"testing"

	"github.com/ma-ku/bossa-web/flash"
	"github.com/ma-ku/bossa-web/samba/mocks"

	"github.com/golang/mock/gomock"
)

const (
	d5xCtrlA   = uint32(0x41004000)
	d5xCtrlB   = uint32(0x41004004)
	d5xIntFlag = uint32(0x41004010)
	d5xStatus  = uint32(0x41004012)
	d5xAddr    = uint32(0x41004014)

	d5xUser  = uint32(0x20004000)
	d5xStack = uint32(0x20008000)
	d5xBufA  = d5xUser + 0x34
	d5xBufB  = d5xBufA + 512
)

func newD5x(t *testing.T, s *mocks.MockSambaInterface, pages uint32) flash.FlashInterface {
	f, err := flash.NewD5xFlash(s, "ATSAMD51", 0x0, pages, 512, 1, 32,
		d5xUser, d5xStack)
	if err != nil {
		t.Fatalf("NewD5xFlash failed: %v", err)
	}
	return f
}

// expectD5xCommand returns the exact wire trace of one NVM command on
// the 16-bit register file: every halfword access is a low/high byte
// pair.
func expectD5xCommand(s *mocks.MockSambaInterface, cmd uint8) []*gomock.Call {
	return []*gomock.Call{
		// Ready poll on STATUS.
		s.EXPECT().ReadByte(d5xStatus).Return(uint8(1), nil),
		s.EXPECT().ReadByte(d5xStatus+1).Return(uint8(0), nil),
		// Keyed dispatch via CTRLB.
		s.EXPECT().WriteByte(d5xCtrlB, cmd).Return(nil),
		s.EXPECT().WriteByte(d5xCtrlB+1, uint8(0xa5)).Return(nil),
		// Completion poll, then error-flag read.
		s.EXPECT().ReadByte(d5xStatus).Return(uint8(1), nil),
		s.EXPECT().ReadByte(d5xStatus+1).Return(uint8(0), nil),
		s.EXPECT().ReadByte(d5xIntFlag).Return(uint8(0), nil),
		s.EXPECT().ReadByte(d5xIntFlag+1).Return(uint8(0), nil),
	}
}

func expectD5xPipeline(s *mocks.MockSambaInterface, install bool,
	dst, src, words uint32, writeCmd uint8) []*gomock.Call {
	var calls []*gomock.Call
	calls = append(calls, expectD5xCommand(s, 0x15)...) // PBC
	if install {
		calls = append(calls,
			s.EXPECT().Write(d5xUser, gomock.Len(52)).Return(nil))
	}
	calls = append(calls,
		s.EXPECT().WriteWord(d5xUser+0x20, dst).Return(nil),
		s.EXPECT().WriteWord(d5xUser+0x24, src).Return(nil),
		s.EXPECT().WriteWord(d5xUser+0x28, words).Return(nil),
		s.EXPECT().WriteWord(d5xUser+0x2c, d5xStack).Return(nil),
		s.EXPECT().ReadByte(d5xStatus).Return(uint8(1), nil),
		s.EXPECT().ReadByte(d5xStatus+1).Return(uint8(0), nil),
		s.EXPECT().WriteWord(d5xUser+0x30, d5xUser|1).Return(nil),
		s.EXPECT().Go(d5xUser+0x2c).Return(nil),
		// Byte addressing: ADDR takes the destination as-is.
		s.EXPECT().WriteWord(d5xAddr, dst).Return(nil),
	)
	calls = append(calls, expectD5xCommand(s, writeCmd)...)
	return calls
}

func TestD5xWritePageTrace(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s := mocks.NewMockSambaInterface(mockCtrl)
	page := bytes.Repeat([]byte{0x5a}, 512)

	var calls []*gomock.Call
	calls = append(calls, s.EXPECT().Write(d5xBufA, page).Return(nil))
	// Manual-write mode: cache-disable bits set, auto-write bits cleared.
	calls = append(calls,
		s.EXPECT().ReadByte(d5xCtrlA).Return(uint8(0x04), nil),
		s.EXPECT().ReadByte(d5xCtrlA+1).Return(uint8(0x00), nil),
		s.EXPECT().WriteByte(d5xCtrlA, uint8(0x04)).Return(nil),
		s.EXPECT().WriteByte(d5xCtrlA+1, uint8(0xc0)).Return(nil),
	)
	calls = append(calls, expectD5xPipeline(s, true, 0x0, d5xBufA, 128, 0x03)...)
	gomock.InOrder(calls...)

	f := newD5x(t, s, 64)
	f.SetEraseAuto(false)
	if err := f.LoadBuffer(page); err != nil {
		t.Fatalf("LoadBuffer failed: %v", err)
	}
	if err := f.WritePage(0); err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}
}

// The D5x ADDR register takes byte addresses, and erase-all without the
// chip-erase extension walks the flash in 16-page blocks.
func TestD5xEraseAllBlockSequence(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s := mocks.NewMockSambaInterface(mockCtrl)
	var calls []*gomock.Call
	calls = append(calls, s.EXPECT().CanChipErase().Return(false))
	for addr := uint32(0); addr < 0x8000; addr += 0x2000 {
		calls = append(calls, s.EXPECT().WriteWord(d5xAddr, addr).Return(nil))
		calls = append(calls, expectD5xCommand(s, 0x01)...) // EB
	}
	gomock.InOrder(calls...)

	f := newD5x(t, s, 64)
	if f.EraseGranule() != 0x2000 {
		t.Fatalf("EraseGranule = 0x%x", f.EraseGranule())
	}
	if err := f.EraseAll(0); err != nil {
		t.Errorf("EraseAll failed: %v", err)
	}
}

func TestD5xGetBodInverted(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s := mocks.NewMockSambaInterface(mockCtrl)
	s.EXPECT().Read(uint32(0x804000), gomock.Len(512)).
		DoAndReturn(func(addr uint32, data []byte) error {
			data[0] = 0x01 // BOD33 disable bit set
			data[1] = 0x02 // BOR enabled
			return nil
		}).Times(2)

	f := newD5x(t, s, 64)
	bod, err := f.GetBod()
	if err != nil {
		t.Fatalf("GetBod failed: %v", err)
	}
	if bod {
		t.Errorf("GetBod = true with the disable bit set")
	}
	bor, err := f.GetBor()
	if err != nil {
		t.Fatalf("GetBor failed: %v", err)
	}
	if !bor {
		t.Errorf("GetBor = false with the reset bit set")
	}
}

// Disabling BOD erases the user page and rewrites it in 32 quad-word
// applet runs.
func TestD5xWriteOptionsBodDisable(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s := mocks.NewMockSambaInterface(mockCtrl)
	user := uint32(0x00804000)

	var calls []*gomock.Call
	calls = append(calls, s.EXPECT().Read(user, gomock.Len(512)).Return(nil))
	calls = append(calls, s.EXPECT().WriteWord(d5xAddr, user).Return(nil))
	calls = append(calls, expectD5xCommand(s, 0x00)...) // EP
	for off := uint32(0); off < 512; off += 16 {
		chunk := make([]byte, 16)
		if off == 0 {
			chunk[0] = 0x01 // disable bit now set
		}
		src := d5xBufA
		if (off/16)%2 == 1 {
			src = d5xBufB
		}
		calls = append(calls, s.EXPECT().Write(src, chunk).Return(nil))
		calls = append(calls, expectD5xCommand(s, 0x15)...) // PBC
		if off == 0 {
			calls = append(calls,
				s.EXPECT().Write(d5xUser, gomock.Len(52)).Return(nil))
		}
		calls = append(calls,
			s.EXPECT().WriteWord(d5xUser+0x20, user+off).Return(nil),
			s.EXPECT().WriteWord(d5xUser+0x24, src).Return(nil),
			s.EXPECT().WriteWord(d5xUser+0x28, uint32(4)).Return(nil),
			s.EXPECT().WriteWord(d5xUser+0x2c, d5xStack).Return(nil),
			s.EXPECT().ReadByte(d5xStatus).Return(uint8(1), nil),
			s.EXPECT().ReadByte(d5xStatus+1).Return(uint8(0), nil),
			s.EXPECT().WriteWord(d5xUser+0x30, d5xUser|1).Return(nil),
			s.EXPECT().Go(d5xUser+0x2c).Return(nil),
			s.EXPECT().WriteWord(d5xAddr, user+off).Return(nil),
		)
		calls = append(calls, expectD5xCommand(s, 0x04)...) // WQW
	}
	gomock.InOrder(calls...)

	f := newD5x(t, s, 64)
	f.SetBod(false)
	if err := f.WriteOptions(); err != nil {
		t.Fatalf("WriteOptions failed: %v", err)
	}
}
