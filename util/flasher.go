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

// Flash orchestration: erase, program, verify, read back.
package util

import (
	"bytes"
	"fmt"

	"github.com/golang/glog"

	"github.com/ma-ku/bossa-web/flash"
	"github.com/ma-ku/bossa-web/samba"
)

// SizeError reports a payload that does not fit the device's flash.
type SizeError struct {
	Size  uint32
	Limit uint32
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("image of %d bytes exceeds %d bytes of flash", e.Size, e.Limit)
}

// Observer receives progress reports during long operations.
type Observer interface {
	OnStatus(message string)
	OnProgress(done int, total int)
}

type nullObserver struct{}

func (nullObserver) OnStatus(string)      {}
func (nullObserver) OnProgress(int, int) {}

// Flasher drives a device's NVM engine through whole-image operations.
type Flasher struct {
	samba    samba.SambaInterface
	flash    flash.FlashInterface
	observer Observer
}

func NewFlasher(s samba.SambaInterface, f flash.FlashInterface, observer Observer) *Flasher {
	if observer == nil {
		observer = nullObserver{}
	}
	return &Flasher{s, f, observer}
}

func (f *Flasher) Erase(offset uint32) error {
	f.observer.OnStatus("Erasing flash")
	if err := f.flash.EraseAll(offset); err != nil {
		return fmt.Errorf("EraseAll failed: %v", err)
	}
	return nil
}

// checkRange validates page alignment of offset and that size bytes
// starting there fit in flash. Returns the first and one-past-last
// page indices.
func (f *Flasher) checkRange(offset uint32, size uint32) (uint32, uint32, error) {
	pageSize := f.flash.PageSize()
	if offset%pageSize != 0 {
		return 0, 0, &flash.OffsetError{Offset: offset}
	}
	if offset+size > f.flash.TotalSize() {
		return 0, 0, &SizeError{size, f.flash.TotalSize() - offset}
	}
	first := offset / pageSize
	last := first + (size+pageSize-1)/pageSize
	return first, last, nil
}

// page returns page i of data, zero padded to the device page size.
func (f *Flasher) page(data []byte, i uint32) []byte {
	pageSize := f.flash.PageSize()
	chunk := data[i*pageSize:]
	if uint32(len(chunk)) >= pageSize {
		return chunk[:pageSize]
	}
	padded := make([]byte, pageSize)
	copy(padded, chunk)
	return padded
}

// Write programs data at offset, one page at a time through the
// double-buffered pipeline: each LoadBuffer targets the SRAM buffer the
// previous WritePage left idle.
func (f *Flasher) Write(data []byte, offset uint32) error {
	first, last, err := f.checkRange(offset, uint32(len(data)))
	if err != nil {
		return err
	}
	total := int(last - first)
	f.observer.OnStatus(fmt.Sprintf("Writing %d bytes (%d pages)", len(data), total))
	for page := first; page < last; page++ {
		if err = f.flash.LoadBuffer(f.page(data, page-first)); err != nil {
			return fmt.Errorf("LoadBuffer failed: %v", err)
		}
		if err = f.flash.WritePage(page); err != nil {
			return fmt.Errorf("WritePage(%d) failed: %v", page, err)
		}
		f.observer.OnProgress(int(page-first)+1, total)
	}
	return nil
}

// Verify compares flash contents at offset against data, using the
// bootloader's on-target checksum when available and falling back to a
// page-by-page read back otherwise.
func (f *Flasher) Verify(data []byte, offset uint32) error {
	first, last, err := f.checkRange(offset, uint32(len(data)))
	if err != nil {
		return err
	}
	pageSize := f.flash.PageSize()
	total := int(last - first)
	f.observer.OnStatus(fmt.Sprintf("Verifying %d pages", total))

	useChecksum := f.samba.CanChecksumBuffer()
	readBack := make([]byte, pageSize)
	for page := first; page < last; page++ {
		expected := f.page(data, page-first)
		if useChecksum {
			var crc uint32
			addr := f.flash.Address() + page*pageSize
			if crc, err = f.samba.ChecksumBuffer(addr, pageSize); err != nil {
				return fmt.Errorf("ChecksumBuffer failed: %v", err)
			}
			if uint16(crc) != samba.Crc16(expected) {
				return fmt.Errorf("verify failed at page %d (crc 0x%04x != 0x%04x)",
					page, uint16(crc), samba.Crc16(expected))
			}
		} else {
			if err = f.flash.ReadPage(page, readBack); err != nil {
				return fmt.Errorf("ReadPage(%d) failed: %v", page, err)
			}
			if !bytes.Equal(expected, readBack) {
				return fmt.Errorf("verify failed at page %d", page)
			}
		}
		f.observer.OnProgress(int(page-first)+1, total)
	}
	glog.Info("Verify passed")
	return nil
}

// Read fills data with flash contents starting at offset.
func (f *Flasher) Read(data []byte, offset uint32) error {
	first, last, err := f.checkRange(offset, uint32(len(data)))
	if err != nil {
		return err
	}
	pageSize := f.flash.PageSize()
	total := int(last - first)
	f.observer.OnStatus(fmt.Sprintf("Reading %d bytes", len(data)))
	pageBuf := make([]byte, pageSize)
	for page := first; page < last; page++ {
		if err = f.flash.ReadPage(page, pageBuf); err != nil {
			return fmt.Errorf("ReadPage(%d) failed: %v", page, err)
		}
		copy(data[(page-first)*pageSize:], pageBuf)
		f.observer.OnProgress(int(page-first)+1, total)
	}
	return nil
}

// Lock marks every lock region locked and flushes the user row.
func (f *Flasher) Lock() error {
	return f.setAllRegions(true)
}

// Unlock marks every lock region unlocked and flushes the user row.
func (f *Flasher) Unlock() error {
	return f.setAllRegions(false)
}

func (f *Flasher) setAllRegions(locked bool) error {
	regions := make([]bool, f.flash.LockRegionCount())
	for i := range regions {
		regions[i] = locked
	}
	if err := f.flash.SetLockRegions(regions); err != nil {
		return err
	}
	return f.flash.WriteOptions()
}
