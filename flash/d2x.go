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

// NVM driver for the SAMD2x/L21/R21 controller generation.
package flash

import (
	"bytes"

	"github.com/golang/glog"

	"github.com/ma-ku/bossa-web/samba"
)

// All D2x NVM registers are 32 bits wide.
const (
	d2xRegCtrlA   = 0x41004000
	d2xRegCtrlB   = 0x41004004
	d2xRegIntFlag = 0x41004014
	d2xRegStatus  = 0x41004018
	d2xRegAddr    = 0x4100401c
	d2xRegLock    = 0x41004020
)

const (
	d2xCmdEraseRow     = 0x02
	d2xCmdWritePage    = 0x04
	d2xCmdEraseAuxRow  = 0x05
	d2xCmdWriteAuxPage = 0x06
	d2xCmdLockRegion   = 0x40
	d2xCmdUnlockRegion = 0x41
	d2xCmdClearPageBuf = 0x44
	d2xCmdSetSecurity  = 0x45

	// Command execution key, CTRLA bits 15:8.
	d2xCmdKey = 0xa500

	d2xIntFlagReady = 0x01
	d2xIntFlagError = 0x02

	// CTRLB manual-write and cache-disable bits.
	d2xCtrlBManW     = 1 << 7
	d2xCtrlBCacheDis = 1 << 18
)

// An erase row spans four pages.
const d2xRowPages = 4

// User row layout.
const (
	d2xUserRow    = 0x00804000
	d2xBodOffset  = 1
	d2xBodMask    = 0x06
	d2xBorOffset  = 1
	d2xBorMask    = 0x07
	d2xLockOffset = 6
)

// Implements FlashInterface for the D2x NVM controller. The ADDR
// register takes half-word addresses.
type D2xFlash struct {
	*flashCore
}

func NewD2xFlash(s samba.SambaInterface, name string,
	addr uint32, pages uint32, size uint32, planes uint32,
	lockRegions uint32, user uint32, stack uint32) (*D2xFlash, error) {
	core, err := newFlashCore(s, name, addr, pages, size, planes,
		lockRegions, user, stack)
	if err != nil {
		return nil, err
	}
	f := &D2xFlash{core}
	core.ops = f
	return f, nil
}

func (f *D2xFlash) EraseGranule() uint32 {
	return d2xRowPages * f.size
}

func (f *D2xFlash) waitReady() error {
	for {
		v, err := f.samba.ReadWord(d2xRegIntFlag)
		if err != nil {
			return err
		}
		if v&d2xIntFlagReady != 0 {
			return nil
		}
	}
}

// command waits for the controller, dispatches cmd with the execution
// key, waits for completion and surfaces any error flags (clearing
// them first).
func (f *D2xFlash) command(cmd uint8) error {
	var err error
	if err = f.waitReady(); err != nil {
		return err
	}
	if err = f.samba.WriteWord(d2xRegCtrlA, d2xCmdKey|uint32(cmd)); err != nil {
		return err
	}
	if err = f.waitReady(); err != nil {
		return err
	}
	var flags uint32
	if flags, err = f.samba.ReadWord(d2xRegIntFlag); err != nil {
		return err
	}
	if flags&d2xIntFlagError != 0 {
		if err = f.samba.WriteWord(d2xRegIntFlag, d2xIntFlagError); err != nil {
			return err
		}
		return &CmdError{flags & d2xIntFlagError}
	}
	return nil
}

func (f *D2xFlash) Erase(offset uint32, size uint32) error {
	if err := f.checkErase(offset, size); err != nil {
		return err
	}
	granule := f.EraseGranule()
	for off := offset; off < offset+size; off += granule {
		if err := f.samba.WriteWord(d2xRegAddr, (f.addr+off)/2); err != nil {
			return err
		}
		if err := f.command(d2xCmdEraseRow); err != nil {
			return err
		}
	}
	return nil
}

func (f *D2xFlash) EraseAll(offset uint32) error {
	return f.eraseAll(offset)
}

func (f *D2xFlash) WritePage(page uint32) error {
	var err error
	if page >= f.pages {
		return &PageError{page, f.pages}
	}
	if f.eraseAuto && page%d2xRowPages == 0 {
		if err = f.Erase(page*f.size, f.EraseGranule()); err != nil {
			return err
		}
	}

	// Disable the NVM cache and select manual page writes.
	var ctrlb uint32
	if ctrlb, err = f.samba.ReadWord(d2xRegCtrlB); err != nil {
		return err
	}
	if err = f.samba.WriteWord(d2xRegCtrlB,
		ctrlb|d2xCtrlBManW|d2xCtrlBCacheDis); err != nil {
		return err
	}
	if err = f.command(d2xCmdClearPageBuf); err != nil {
		return err
	}
	// Stage the applet (flipping the active SRAM buffer), fence on the
	// previous write, then launch it and commit the page.
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
	if err = f.samba.WriteWord(d2xRegAddr, dst/2); err != nil {
		return err
	}
	return f.command(d2xCmdWritePage)
}

func (f *D2xFlash) userRowSize() uint32 {
	return d2xRowPages * f.size
}

func (f *D2xFlash) readUserRow() ([]byte, error) {
	row := make([]byte, f.userRowSize())
	if err := f.samba.Read(d2xUserRow, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (f *D2xFlash) GetBod() (bool, error) {
	if f.bod.dirty {
		return f.bod.value, nil
	}
	row, err := f.readUserRow()
	if err != nil {
		return false, err
	}
	return row[d2xBodOffset]&d2xBodMask == d2xBodMask, nil
}

func (f *D2xFlash) GetBor() (bool, error) {
	if f.bor.dirty {
		return f.bor.value, nil
	}
	row, err := f.readUserRow()
	if err != nil {
		return false, err
	}
	return row[d2xBorOffset]&d2xBorMask == d2xBorMask, nil
}

func (f *D2xFlash) GetLockRegions() ([]bool, error) {
	if f.lockDirty {
		regions := make([]bool, len(f.lock))
		copy(regions, f.lock)
		return regions, nil
	}
	row, err := f.readUserRow()
	if err != nil {
		return nil, err
	}
	return f.parseLockBits(row, d2xLockOffset), nil
}

// WriteOptions merges the pending options into the user row and, only
// when the merged image differs, erases the aux row and rewrites it
// page by page through the applet. The row is always rewritten whole;
// partial writes would corrupt unrelated option bits.
func (f *D2xFlash) WriteOptions() error {
	var err error
	if !f.optionsDirty() {
		return nil
	}
	var row []byte
	if row, err = f.readUserRow(); err != nil {
		return err
	}
	image := make([]byte, len(row))
	copy(image, row)

	if f.bod.dirty {
		if f.bod.value {
			image[d2xBodOffset] |= d2xBodMask
		} else {
			image[d2xBodOffset] &^= d2xBodMask
		}
	}
	if f.bor.dirty {
		if f.bor.value {
			image[d2xBorOffset] |= d2xBorMask
		} else {
			image[d2xBorOffset] &^= d2xBorMask
		}
	}
	if f.lockDirty {
		f.applyLockBits(image, d2xLockOffset)
	}

	if !bytes.Equal(image, row) {
		f.logOptionFlush("row")
		if err = f.samba.WriteWord(d2xRegAddr, d2xUserRow/2); err != nil {
			return err
		}
		if err = f.command(d2xCmdEraseAuxRow); err != nil {
			return err
		}
		for i := uint32(0); i < d2xRowPages; i++ {
			pageAddr := d2xUserRow + i*f.size
			if err = f.LoadBuffer(image[i*f.size : (i+1)*f.size]); err != nil {
				return err
			}
			if err = f.command(d2xCmdClearPageBuf); err != nil {
				return err
			}
			if err = f.stageApplet(pageAddr, f.size/4); err != nil {
				return err
			}
			if err = f.waitReady(); err != nil {
				return err
			}
			if err = f.applet.Runv(); err != nil {
				return err
			}
			if err = f.samba.WriteWord(d2xRegAddr, pageAddr/2); err != nil {
				return err
			}
			if err = f.command(d2xCmdWriteAuxPage); err != nil {
				return err
			}
		}
	} else {
		glog.V(1).Infof("User row already matches pending options, skipping rewrite")
	}

	if f.security.dirty && f.security.value {
		if err = f.command(d2xCmdSetSecurity); err != nil {
			return err
		}
	}
	f.clearDirty()
	return nil
}
