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

// Client for the SAM-BA ROM monitor command set.
package samba

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

// Reply chunk limit advertised by boards with the Arduino USB stack.
const usbReadBufferSize = 63

//go:generate mockgen -destination=mocks/samba.go -package=mocks github.com/ma-ku/bossa-web/samba SambaInterface
type SambaInterface interface {
	// Puts the monitor in binary mode and parses the version banner for
	// capability extensions. Called once per session.
	Connect() error
	Version() (string, error)
	SetBinaryMode() error
	ReadByte(addr uint32) (uint8, error)
	WriteByte(addr uint32, v uint8) error
	ReadWord(addr uint32) (uint32, error)
	WriteWord(addr uint32, v uint32) error
	// Block read/write of target memory.
	Read(addr uint32, data []byte) error
	Write(addr uint32, data []byte) error
	// Executes code at addr on the target.
	Go(addr uint32) error
	ChipErase(startAddr uint32) error
	// Two-phase on-device copy from src to dst of size bytes.
	WriteBuffer(src uint32, dst uint32, size uint32) error
	// CRC over size bytes at addr, computed on the target.
	ChecksumBuffer(addr uint32, size uint32) (uint32, error)
	CanChipErase() bool
	CanWriteBuffer() bool
	CanChecksumBuffer() bool
	CanProtect() bool
}

// Implements SambaInterface over a SAM-BA transport.
type Samba struct {
	transport TransportInterface
	version   string
}

func NewSamba(transport TransportInterface) *Samba {
	return &Samba{transport: transport}
}

// decodeResponse strips a trailing LF/CR pair from an ASCII reply.
func decodeResponse(data []byte) []byte {
	n := len(data)
	if n >= 2 && data[n-2] == 0x0A && data[n-1] == 0x0D {
		return data[:n-2]
	}
	return data
}

func (s *Samba) Connect() error {
	var err error
	if err = s.SetBinaryMode(); err != nil {
		return fmt.Errorf("SetBinaryMode failed: %v", err)
	}
	var version string
	if version, err = s.Version(); err != nil {
		return fmt.Errorf("Version failed: %v", err)
	}

	// Each letter inside an [Arduino:...] extension bracket advertises
	// one optional command. Bracket presence also means the USB stack
	// caps replies at 63 bytes.
	caps := Capabilities{}
	if start := strings.Index(version, "[Arduino:"); start >= 0 {
		ext := version[start+len("[Arduino:"):]
		if end := strings.IndexByte(ext, ']'); end >= 0 {
			for _, c := range ext[:end] {
				switch c {
				case 'X':
					caps.ChipErase = true
				case 'Y':
					caps.WriteBuffer = true
				case 'Z':
					caps.ChecksumBuffer = true
				case 'P':
					caps.Protect = true
				}
			}
			caps.ReadBufferSize = usbReadBufferSize
		}
	}
	s.transport.SetCapabilities(caps)
	glog.V(1).Infof("Connected: %q caps=%+v", version, caps)
	return nil
}

func (s *Samba) SetBinaryMode() error {
	if err := s.transport.WriteCommand("N"); err != nil {
		return err
	}
	resp := s.transport.ReadBuffer(TimeoutQuick, 2)
	if resp == nil {
		return fmt.Errorf("SetBinaryMode: %w", ErrTimeout)
	}
	if len(resp) != 2 {
		return &ProtocolError{"SetBinaryMode", resp}
	}
	return nil
}

func (s *Samba) Version() (string, error) {
	if s.version != "" {
		return s.version, nil
	}
	if err := s.transport.WriteCommand("V"); err != nil {
		return "", err
	}
	resp := s.transport.ReadBuffer(TimeoutNormal, 0)
	if resp == nil {
		return "", fmt.Errorf("Version: %w", ErrTimeout)
	}
	resp = decodeResponse(strippedOfNul(resp))
	s.version = strings.TrimSpace(string(resp))
	glog.V(1).Infof("Bootloader version: %q", s.version)
	return s.version, nil
}

func strippedOfNul(data []byte) []byte {
	for len(data) > 0 && data[len(data)-1] == 0x00 {
		data = data[:len(data)-1]
	}
	return data
}

func (s *Samba) ReadByte(addr uint32) (uint8, error) {
	if err := s.transport.WriteCommand(fmt.Sprintf("o%08x,4", addr)); err != nil {
		return 0, err
	}
	resp := s.transport.ReadBuffer(TimeoutNormal, 1)
	if resp == nil {
		return 0, fmt.Errorf("ReadByte: %w", ErrTimeout)
	}
	if len(resp) != 1 {
		return 0, &ProtocolError{"ReadByte", resp}
	}
	glog.V(2).Infof("ReadByte(0x%08x) = 0x%02x", addr, resp[0])
	return resp[0], nil
}

func (s *Samba) WriteByte(addr uint32, v uint8) error {
	glog.V(2).Infof("WriteByte(0x%08x, 0x%02x)", addr, v)
	return s.transport.WriteCommand(fmt.Sprintf("O%08x,%02x", addr, v))
}

func (s *Samba) ReadWord(addr uint32) (uint32, error) {
	if err := s.transport.WriteCommand(fmt.Sprintf("w%08x,4", addr)); err != nil {
		return 0, err
	}
	resp := s.transport.ReadBuffer(TimeoutNormal, 4)
	if resp == nil {
		return 0, fmt.Errorf("ReadWord: %w", ErrTimeout)
	}
	if len(resp) != 4 {
		return 0, &ProtocolError{"ReadWord", resp}
	}
	v := binary.LittleEndian.Uint32(resp)
	glog.V(2).Infof("ReadWord(0x%08x) = 0x%08x", addr, v)
	return v, nil
}

func (s *Samba) WriteWord(addr uint32, v uint32) error {
	glog.V(2).Infof("WriteWord(0x%08x, 0x%08x)", addr, v)
	return s.transport.WriteCommand(fmt.Sprintf("W%08x,%08x", addr, v))
}

// readChunk issues a single R command for len(data) bytes.
func (s *Samba) readChunk(addr uint32, data []byte) error {
	if err := s.transport.WriteCommand(
		fmt.Sprintf("R%08x,%08x", addr, len(data))); err != nil {
		return err
	}
	resp := s.transport.ReadBuffer(TimeoutNormal, len(data))
	if resp == nil {
		return fmt.Errorf("Read: %w", ErrTimeout)
	}
	if len(resp) != len(data) {
		return &ProtocolError{"Read", resp}
	}
	copy(data, resp)
	return nil
}

func (s *Samba) Read(addr uint32, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	glog.V(1).Infof("Read(0x%08x, %d)", addr, len(data))

	// Without an Arduino reply cap, the ROM monitor's USB stack chokes on
	// power-of-two replies larger than 32 bytes: peel the first byte off
	// so the R below is odd-sized.
	size := len(data)
	chunkLimit := s.transport.Capabilities().ReadBufferSize
	if chunkLimit == 0 && size > 32 && size&(size-1) == 0 {
		b, err := s.ReadByte(addr)
		if err != nil {
			return err
		}
		data[0] = b
		data = data[1:]
		addr++
	}

	for len(data) > 0 {
		n := len(data)
		if chunkLimit > 0 && n > chunkLimit {
			n = chunkLimit
		}
		if err := s.readChunk(addr, data[:n]); err != nil {
			return err
		}
		data = data[n:]
		addr += uint32(n)
	}
	return nil
}

func (s *Samba) Write(addr uint32, data []byte) error {
	glog.V(1).Infof("Write(0x%08x, %d)", addr, len(data))
	if err := s.transport.WriteCommand(
		fmt.Sprintf("S%08x,%08x", addr, len(data))); err != nil {
		return err
	}
	return s.transport.WriteBytes(data)
}

func (s *Samba) Go(addr uint32) error {
	glog.V(1).Infof("Go(0x%08x)", addr)
	return s.transport.WriteCommand(fmt.Sprintf("G%08x", addr))
}

func (s *Samba) ChipErase(startAddr uint32) error {
	if !s.CanChipErase() {
		return &ProtocolError{"ChipErase", nil}
	}
	glog.Info("Chip erase, this can take a while...")
	if err := s.transport.WriteCommand(fmt.Sprintf("X%08x", startAddr)); err != nil {
		return err
	}
	resp := s.transport.ReadBuffer(TimeoutChipErase, 3)
	if resp == nil {
		return fmt.Errorf("ChipErase: %w", ErrTimeout)
	}
	if len(resp) != 3 || resp[0] != 'X' {
		return &ProtocolError{"ChipErase", resp}
	}
	return nil
}

func (s *Samba) WriteBuffer(src uint32, dst uint32, size uint32) error {
	glog.V(1).Infof("WriteBuffer(0x%08x -> 0x%08x, %d)", src, dst, size)
	if err := s.transport.WriteCommand(fmt.Sprintf("Y%08x,0", src)); err != nil {
		return err
	}
	resp := s.transport.ReadBuffer(TimeoutNormal, 3)
	if resp == nil {
		return fmt.Errorf("WriteBuffer: %w", ErrTimeout)
	}
	if len(resp) != 3 || resp[0] != 'Y' {
		return &ProtocolError{"WriteBuffer", resp}
	}

	if err := s.transport.WriteCommand(fmt.Sprintf("Y%08x,%08x", dst, size)); err != nil {
		return err
	}
	resp = s.transport.ReadBuffer(TimeoutLong, 3)
	if resp == nil {
		return fmt.Errorf("WriteBuffer: %w", ErrTimeout)
	}
	if len(resp) != 3 || resp[0] != 'Y' {
		return &ProtocolError{"WriteBuffer", resp}
	}
	return nil
}

func (s *Samba) ChecksumBuffer(addr uint32, size uint32) (uint32, error) {
	if err := s.transport.WriteCommand(
		fmt.Sprintf("Z%08x,%08x", addr, size)); err != nil {
		return 0, err
	}
	resp := s.transport.ReadBuffer(TimeoutLong, 12)
	if resp == nil {
		return 0, fmt.Errorf("ChecksumBuffer: %w", ErrTimeout)
	}
	if len(resp) != 12 || resp[0] != 'Z' {
		return 0, &ProtocolError{"ChecksumBuffer", resp}
	}
	crc, err := strconv.ParseUint(string(resp[1:9]), 16, 32)
	if err != nil {
		return 0, &ProtocolError{"ChecksumBuffer", resp}
	}
	return uint32(crc), nil
}

func (s *Samba) CanChipErase() bool {
	return s.transport.Capabilities().ChipErase
}

func (s *Samba) CanWriteBuffer() bool {
	return s.transport.Capabilities().WriteBuffer
}

func (s *Samba) CanChecksumBuffer() bool {
	return s.transport.Capabilities().ChecksumBuffer
}

func (s *Samba) CanProtect() bool {
	return s.transport.Capabilities().Protect
}
