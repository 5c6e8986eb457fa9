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

// NVM driver for the SAMD5x/E5x controller generation.
package flash

import (
	"bytes"

	"github.com/golang/glog"

	"github.com/ma-ku/bossa-web/samba"
)

// CTRLA/CTRLB/INTFLAG/STATUS are 16 bits wide on this controller and
// must be accessed as byte pairs, low half first. ADDR is 32 bits.
const (
	d5xRegCtrlA   = 0x41004000
	d5xRegCtrlB   = 0x41004004
	d5xRegIntFlag = 0x41004010
	d5xRegStatus  = 0x41004012
	d5xRegAddr    = 0x41004014
	d5xRegRunLock = 0x41004018
)

const (
	d5xCmdErasePage     = 0x00
	d5xCmdEraseBlock    = 0x01
	d5xCmdWritePage     = 0x03
	d5xCmdWriteQuadWord = 0x04
	d5xCmdLockRegion    = 0x11
	d5xCmdUnlockRegion  = 0x12
	d5xCmdClearPageBuf  = 0x15
	d5xCmdSetSecurity   = 0x16

	// Command execution key, CTRLB bits 15:8.
	d5xCmdKey = 0xa500

	d5xStatusReady  = 0x0001
	d5xIntFlagError = 0xce

	// CTRLA manual-mode tweak: set the cache-disable bits, clear the
	// automatic-write bits.
	d5xCtrlACacheDis  = 0x3 << 14
	d5xCtrlAWModeMask = 0xffcf
)

// An erase block spans sixteen pages; a quad-word write covers sixteen
// bytes.
const (
	d5xBlockPages   = 16
	d5xQuadWordSize = 16
)

// User page layout. Note the inverted BOD33 bit: set means disabled.
const (
	d5xUserPage      = 0x00804000
	d5xBodOffset     = 0
	d5xBodDisableBit = 0x01
	d5xBorOffset     = 1
	d5xBorMask       = 0x02
	d5xLockOffset    = 8
)

// Implements FlashInterface for the D5x NVM controller. The ADDR
// register takes byte addresses.
type D5xFlash struct {
	*flashCore
}

func NewD5xFlash(s samba.SambaInterface, name string,
	addr uint32, pages uint32, size uint32, planes uint32,
	lockRegions uint32, user uint32, stack uint32) (*D5xFlash, error) {
	core, err := newFlashCore(s, name, addr, pages, size, planes,
		lockRegions, user, stack)
	if err != nil {
		return nil, err
	}
	f := &D5xFlash{core}
	core.ops = f
	return f, nil
}

func (f *D5xFlash) EraseGranule() uint32 {
	return d5xBlockPages * f.size
}

func (f *D5xFlash) readReg16(addr uint32) (uint16, error) {
	lo, err := f.samba.ReadByte(addr)
	if err != nil {
		return 0, err
	}
	hi, err := f.samba.ReadByte(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

func (f *D5xFlash) writeReg16(addr uint32, v uint16) error {
	if err := f.samba.WriteByte(addr, uint8(v)); err != nil {
		return err
	}
	return f.samba.WriteByte(addr+1, uint8(v>>8))
}

func (f *D5xFlash) waitReady() error {
	for {
		v, err := f.readReg16(d5xRegStatus)
		if err != nil {
			return err
		}
		if v&d5xStatusReady != 0 {
			return nil
		}
	}
}

func (f *D5xFlash) command(cmd uint8) error {
	var err error
	if err = f.waitReady(); err != nil {
		return err
	}
	if err = f.writeReg16(d5xRegCtrlB, d5xCmdKey|uint16(cmd)); err != nil {
		return err
	}
	if err = f.waitReady(); err != nil {
		return err
	}
	var flags uint16
	if flags, err = f.readReg16(d5xRegIntFlag); err != nil {
		return err
	}
	if flags&d5xIntFlagError != 0 {
		if err = f.writeReg16(d5xRegIntFlag, flags&d5xIntFlagError); err != nil {
			return err
		}
		return &CmdError{uint32(flags & d5xIntFlagError)}
	}
	return nil
}

// enterManualMode disables the NVM caches and automatic page writes.
func (f *D5xFlash) enterManualMode() error {
	ctrla, err := f.readReg16(d5xRegCtrlA)
	if err != nil {
		return err
	}
	return f.writeReg16(d5xRegCtrlA, (ctrla|d5xCtrlACacheDis)&d5xCtrlAWModeMask)
}

func (f *D5xFlash) Erase(offset uint32, size uint32) error {
	if err := f.checkErase(offset, size); err != nil {
		return err
	}
	granule := f.EraseGranule()
	for off := offset; off < offset+size; off += granule {
		if err := f.samba.WriteWord(d5xRegAddr, f.addr+off); err != nil {
			return err
		}
		if err := f.command(d5xCmdEraseBlock); err != nil {
			return err
		}
	}
	return nil
}

func (f *D5xFlash) EraseAll(offset uint32) error {
	return f.eraseAll(offset)
}

func (f *D5xFlash) WritePage(page uint32) error {
	var err error
	if page >= f.pages {
		return &PageError{page, f.pages}
	}
	if f.eraseAuto && page%d5xBlockPages == 0 {
		if err = f.Erase(page*f.size, f.EraseGranule()); err != nil {
			return err
		}
	}

	if err = f.enterManualMode(); err != nil {
		return err
	}
	if err = f.command(d5xCmdClearPageBuf); err != nil {
		return err
	}
	dst := f.addr + page*f.size
	if err = f.stageApplet(dst, f.size/4); err != nil {
		return err
	}
	if err = f.waitReady(); err != nil {
		return err
	}
	if err = f.applet.Runv(); err != nil {
		return err
	}
	if err = f.samba.WriteWord(d5xRegAddr, dst); err != nil {
		return err
	}
	return f.command(d5xCmdWritePage)
}

func (f *D5xFlash) readUserPage() ([]byte, error) {
	page := make([]byte, f.size)
	if err := f.samba.Read(d5xUserPage, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (f *D5xFlash) GetBod() (bool, error) {
	if f.bod.dirty {
		return f.bod.value, nil
	}
	page, err := f.readUserPage()
	if err != nil {
		return false, err
	}
	return page[d5xBodOffset]&d5xBodDisableBit == 0, nil
}

func (f *D5xFlash) GetBor() (bool, error) {
	if f.bor.dirty {
		return f.bor.value, nil
	}
	page, err := f.readUserPage()
	if err != nil {
		return false, err
	}
	return page[d5xBorOffset]&d5xBorMask != 0, nil
}

func (f *D5xFlash) GetLockRegions() ([]bool, error) {
	if f.lockDirty {
		regions := make([]bool, len(f.lock))
		copy(regions, f.lock)
		return regions, nil
	}
	page, err := f.readUserPage()
	if err != nil {
		return nil, err
	}
	return f.parseLockBits(page, d5xLockOffset), nil
}

// WriteOptions merges the pending options into the user page and, only
// when the merged image differs, erases the page and rewrites it in
// quad-word chunks through the applet.
func (f *D5xFlash) WriteOptions() error {
	var err error
	if !f.optionsDirty() {
		return nil
	}
	var page []byte
	if page, err = f.readUserPage(); err != nil {
		return err
	}
	image := make([]byte, len(page))
	copy(image, page)

	if f.bod.dirty {
		if f.bod.value {
			image[d5xBodOffset] &^= d5xBodDisableBit
		} else {
			image[d5xBodOffset] |= d5xBodDisableBit
		}
	}
	if f.bor.dirty {
		if f.bor.value {
			image[d5xBorOffset] |= d5xBorMask
		} else {
			image[d5xBorOffset] &^= d5xBorMask
		}
	}
	if f.lockDirty {
		f.applyLockBits(image, d5xLockOffset)
	}

	if !bytes.Equal(image, page) {
		f.logOptionFlush("page")
		if err = f.samba.WriteWord(d5xRegAddr, d5xUserPage); err != nil {
			return err
		}
		if err = f.command(d5xCmdErasePage); err != nil {
			return err
		}
		for off := uint32(0); off < f.size; off += d5xQuadWordSize {
			if err = f.LoadBuffer(image[off : off+d5xQuadWordSize]); err != nil {
				return err
			}
			if err = f.command(d5xCmdClearPageBuf); err != nil {
				return err
			}
			if err = f.stageApplet(d5xUserPage+off, d5xQuadWordSize/4); err != nil {
				return err
			}
			if err = f.waitReady(); err != nil {
				return err
			}
			if err = f.applet.Runv(); err != nil {
				return err
			}
			if err = f.samba.WriteWord(d5xRegAddr, d5xUserPage+off); err != nil {
				return err
			}
			if err = f.command(d5xCmdWriteQuadWord); err != nil {
				return err
			}
		}
	} else {
		glog.V(1).Infof("User page already matches pending options, skipping rewrite")
	}

	if f.security.dirty && f.security.value {
		if err = f.command(d5xCmdSetSecurity); err != nil {
			return err
		}
	}
	f.clearDirty()
	return nil
}
