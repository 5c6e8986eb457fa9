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
	"errors"
	"testing"

	"github.com/ma-ku/bossa-web/samba"
	"github.com/ma-ku/bossa-web/samba/mocks"

	"github.com/golang/mock/gomock"
)

func TestConnectParsesCapabilities(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tr := mocks.NewMockTransportInterface(mockCtrl)
	gomock.InOrder(
		tr.EXPECT().WriteCommand("N").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutQuick, 2).Return([]byte("\n\r")),
		tr.EXPECT().WriteCommand("V").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutNormal, 0).
			Return([]byte("v2.0 [Arduino:XYZP] Apr 19 2019 14:38:48\n\r\x00")),
		tr.EXPECT().SetCapabilities(samba.Capabilities{
			ChipErase:      true,
			WriteBuffer:    true,
			ChecksumBuffer: true,
			Protect:        true,
			ReadBufferSize: 63,
		}),
	)

	s := samba.NewSamba(tr)
	if err := s.Connect(); err != nil {
		t.Errorf("Connect failed: %v", err)
	}
}

func TestConnectWithoutExtensionBracket(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tr := mocks.NewMockTransportInterface(mockCtrl)
	gomock.InOrder(
		tr.EXPECT().WriteCommand("N").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutQuick, 2).Return([]byte("\n\r")),
		tr.EXPECT().WriteCommand("V").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutNormal, 0).
			Return([]byte("v1.1 Dec 15 2010 19:25:04\n\r\x00")),
		tr.EXPECT().SetCapabilities(samba.Capabilities{}),
	)

	s := samba.NewSamba(tr)
	if err := s.Connect(); err != nil {
		t.Errorf("Connect failed: %v", err)
	}
}

func TestReadWordLittleEndian(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tr := mocks.NewMockTransportInterface(mockCtrl)
	gomock.InOrder(
		tr.EXPECT().WriteCommand("w000000e4,4").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutNormal, 4).
			Return([]byte{0x12, 0x34, 0x56, 0x78}),
	)

	s := samba.NewSamba(tr)
	v, err := s.ReadWord(0xe4)
	if err != nil {
		t.Errorf("ReadWord failed: %v", err)
	}
	if v != 0x78563412 {
		t.Errorf("ReadWord = 0x%08x", v)
	}
}

func TestReadWordTimeout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tr := mocks.NewMockTransportInterface(mockCtrl)
	gomock.InOrder(
		tr.EXPECT().WriteCommand("w00000000,4").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutNormal, 4).Return(nil),
	)

	s := samba.NewSamba(tr)
	if _, err := s.ReadWord(0); !errors.Is(err, samba.ErrTimeout) {
		t.Errorf("ReadWord error = %v, want timeout", err)
	}
}

// A 64-byte read with no reply cap is a USB-quirked shape: one byte is
// peeled off first so the monitor never sends a >32 power-of-two block.
func TestReadUsbQuirk(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tr := mocks.NewMockTransportInterface(mockCtrl)
	tr.EXPECT().Capabilities().Return(samba.Capabilities{}).AnyTimes()
	gomock.InOrder(
		tr.EXPECT().WriteCommand("o00001000,4").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutNormal, 1).Return([]byte{0xaa}),
		tr.EXPECT().WriteCommand("R00001001,0000003f").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutNormal, 63).
			Return(bytes.Repeat([]byte{0xbb}, 63)),
	)

	s := samba.NewSamba(tr)
	data := make([]byte, 64)
	if err := s.Read(0x1000, data); err != nil {
		t.Errorf("Read failed: %v", err)
	}
	if data[0] != 0xaa || data[1] != 0xbb || data[63] != 0xbb {
		t.Errorf("Read returned %v", data)
	}
}

func TestReadNonPowerOfTwoIsSingleCommand(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tr := mocks.NewMockTransportInterface(mockCtrl)
	tr.EXPECT().Capabilities().Return(samba.Capabilities{}).AnyTimes()
	gomock.InOrder(
		tr.EXPECT().WriteCommand("R00000000,00000030").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutNormal, 48).
			Return(make([]byte, 48)),
	)

	s := samba.NewSamba(tr)
	if err := s.Read(0, make([]byte, 48)); err != nil {
		t.Errorf("Read failed: %v", err)
	}
}

func TestReadChunksToReadBufferSize(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tr := mocks.NewMockTransportInterface(mockCtrl)
	tr.EXPECT().Capabilities().
		Return(samba.Capabilities{ReadBufferSize: 63}).AnyTimes()
	gomock.InOrder(
		tr.EXPECT().WriteCommand("R00000000,0000003f").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutNormal, 63).Return(make([]byte, 63)),
		tr.EXPECT().WriteCommand("R0000003f,00000001").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutNormal, 1).Return(make([]byte, 1)),
	)

	s := samba.NewSamba(tr)
	if err := s.Read(0, make([]byte, 64)); err != nil {
		t.Errorf("Read failed: %v", err)
	}
}

func TestWriteSendsCommandThenPayload(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	payload := bytes.Repeat([]byte{0xaa}, 64)
	tr := mocks.NewMockTransportInterface(mockCtrl)
	gomock.InOrder(
		tr.EXPECT().WriteCommand("S20004034,00000040").Return(nil),
		tr.EXPECT().WriteBytes(payload).Return(nil),
	)

	s := samba.NewSamba(tr)
	if err := s.Write(0x20004034, payload); err != nil {
		t.Errorf("Write failed: %v", err)
	}
}

func TestChipEraseCommand(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tr := mocks.NewMockTransportInterface(mockCtrl)
	tr.EXPECT().Capabilities().
		Return(samba.Capabilities{ChipErase: true}).AnyTimes()
	gomock.InOrder(
		tr.EXPECT().WriteCommand("X00000000").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutChipErase, 3).Return([]byte("X\n\r")),
	)

	s := samba.NewSamba(tr)
	if err := s.ChipErase(0); err != nil {
		t.Errorf("ChipErase failed: %v", err)
	}
}

func TestChipEraseEchoMismatch(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tr := mocks.NewMockTransportInterface(mockCtrl)
	tr.EXPECT().Capabilities().
		Return(samba.Capabilities{ChipErase: true}).AnyTimes()
	gomock.InOrder(
		tr.EXPECT().WriteCommand("X00000000").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutChipErase, 3).Return([]byte("Y\n\r")),
	)

	s := samba.NewSamba(tr)
	var perr *samba.ProtocolError
	if err := s.ChipErase(0); !errors.As(err, &perr) {
		t.Errorf("ChipErase error = %v, want protocol error", err)
	}
}

func TestWriteBufferTwoPhase(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tr := mocks.NewMockTransportInterface(mockCtrl)
	gomock.InOrder(
		tr.EXPECT().WriteCommand("Y20004034,0").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutNormal, 3).Return([]byte("Y\n\r")),
		tr.EXPECT().WriteCommand("Y00002000,00000100").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutLong, 3).Return([]byte("Y\n\r")),
	)

	s := samba.NewSamba(tr)
	if err := s.WriteBuffer(0x20004034, 0x2000, 0x100); err != nil {
		t.Errorf("WriteBuffer failed: %v", err)
	}
}

func TestChecksumBuffer(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tr := mocks.NewMockTransportInterface(mockCtrl)
	gomock.InOrder(
		tr.EXPECT().WriteCommand("Z00000000,00000100").Return(nil),
		tr.EXPECT().ReadBuffer(samba.TimeoutLong, 12).
			Return([]byte("Z0000beef#\n\r")),
	)

	s := samba.NewSamba(tr)
	crc, err := s.ChecksumBuffer(0, 0x100)
	if err != nil {
		t.Errorf("ChecksumBuffer failed: %v", err)
	}
	if crc != 0xbeef {
		t.Errorf("ChecksumBuffer = 0x%08x", crc)
	}
}

func TestCrc16KnownVector(t *testing.T) {
	if crc := samba.Crc16([]byte("123456789")); crc != 0x31c3 {
		t.Errorf("Crc16 = 0x%04x, want 0x31c3", crc)
	}
}
