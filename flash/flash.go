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

// NVM programming engine for SAM-family targets: double-buffered page
// pipeline plus per-family controller drivers.
package flash

import (
	"github.com/golang/glog"

	"github.com/ma-ku/bossa-web/samba"
)

// DSU STATUSB, shared by both families. Bit 0 reads back the security
// (chip protection) state.
const dsuStatusB = 0x41002002

//go:generate mockgen -destination=mocks/flash.go -package=mocks github.com/ma-ku/bossa-web/flash FlashInterface
type FlashInterface interface {
	Name() string
	// Base address of the flash plane.
	Address() uint32
	PageCount() uint32
	PageSize() uint32
	TotalSize() uint32
	Planes() uint32
	LockRegionCount() uint32
	// Smallest erasable unit in bytes.
	EraseGranule() uint32
	// Controls whether WritePage and WriteBuffer erase granules they
	// are about to land on. Enabled by default.
	SetEraseAuto(enable bool)
	// Erases from offset to the end of flash, using the bootloader's
	// chip-erase extension when advertised.
	EraseAll(offset uint32) error
	Erase(offset uint32, size uint32) error
	// Uploads data into the active SRAM page buffer.
	LoadBuffer(data []byte) error
	// Commits the active SRAM page buffer to the given flash page.
	WritePage(page uint32) error
	ReadPage(page uint32, data []byte) error
	// On-device copy of size bytes from the active SRAM page buffer to
	// flash offset dst.
	WriteBuffer(dst uint32, size uint32) error
	SetLockRegions(regions []bool) error
	GetLockRegions() ([]bool, error)
	SetBod(enable bool)
	GetBod() (bool, error)
	SetBor(enable bool)
	GetBor() (bool, error)
	// One-shot: takes effect at the next WriteOptions and cannot be
	// undone over SAM-BA.
	SetSecurity()
	GetSecurity() (bool, error)
	// Flushes pending option changes to the user row. A no-op when
	// nothing differs from what the device already holds.
	WriteOptions() error
}

type option struct {
	value bool
	dirty bool
}

// nvmOps is the slice of a family driver the shared core needs for
// erase bookkeeping.
type nvmOps interface {
	Erase(offset uint32, size uint32) error
	EraseGranule() uint32
}

// flashCore carries the state shared by both family drivers: geometry,
// the word-copy applet, the SRAM page buffer pair and pending option
// values.
type flashCore struct {
	samba       samba.SambaInterface
	ops         nvmOps
	name        string
	addr        uint32
	pages       uint32
	size        uint32
	planes      uint32
	lockRegions uint32
	user        uint32
	stack       uint32

	applet    *WordCopyApplet
	bufferA   uint32
	bufferB   uint32
	onBufferA bool
	eraseAuto bool

	bod       option
	bor       option
	security  option
	lock      []bool
	lockDirty bool
}

func isPowerOfTwo(v uint32) bool {
	return v != 0 && v&(v-1) == 0
}

func newFlashCore(s samba.SambaInterface, name string,
	addr uint32, pages uint32, size uint32, planes uint32,
	lockRegions uint32, user uint32, stack uint32) (*flashCore, error) {
	if !isPowerOfTwo(pages) {
		return nil, &ConfigError{"pages", pages}
	}
	if !isPowerOfTwo(size) {
		return nil, &ConfigError{"pageSize", size}
	}
	if !isPowerOfTwo(lockRegions) {
		return nil, &ConfigError{"lockRegions", lockRegions}
	}
	applet := newWordCopyApplet(s, user)
	// Page buffers sit immediately after the applet image, word aligned.
	bufferA := (user + applet.Size() + 3) &^ 3
	f := &flashCore{
		samba:       s,
		name:        name,
		addr:        addr,
		pages:       pages,
		size:        size,
		planes:      planes,
		lockRegions: lockRegions,
		user:        user,
		stack:       stack,
		applet:      applet,
		bufferA:     bufferA,
		bufferB:     bufferA + size,
		onBufferA:   true,
		eraseAuto:   true,
		lock:        make([]bool, lockRegions),
	}
	return f, nil
}

func (f *flashCore) Name() string            { return f.name }
func (f *flashCore) Address() uint32         { return f.addr }
func (f *flashCore) PageCount() uint32       { return f.pages }
func (f *flashCore) PageSize() uint32        { return f.size }
func (f *flashCore) TotalSize() uint32       { return f.pages * f.size }
func (f *flashCore) Planes() uint32          { return f.planes }
func (f *flashCore) LockRegionCount() uint32 { return f.lockRegions }

func (f *flashCore) SetEraseAuto(enable bool) {
	f.eraseAuto = enable
}

func (f *flashCore) activeBuffer() uint32 {
	if f.onBufferA {
		return f.bufferA
	}
	return f.bufferB
}

// stageApplet programs the applet for one copy out of the active SRAM
// buffer and flips the active side, so the caller's next LoadBuffer
// lands in the idle buffer while the target drains this one.
func (f *flashCore) stageApplet(dst uint32, words uint32) error {
	var err error
	if err = f.applet.SetDst(dst); err != nil {
		return err
	}
	if err = f.applet.SetSrc(f.activeBuffer()); err != nil {
		return err
	}
	if err = f.applet.SetWords(words); err != nil {
		return err
	}
	if err = f.applet.SetStack(f.stack); err != nil {
		return err
	}
	f.onBufferA = !f.onBufferA
	return nil
}

func (f *flashCore) LoadBuffer(data []byte) error {
	return f.samba.Write(f.activeBuffer(), data)
}

func (f *flashCore) ReadPage(page uint32, data []byte) error {
	if page >= f.pages {
		return &PageError{page, f.pages}
	}
	return f.samba.Read(f.addr+page*f.size, data)
}

func (f *flashCore) WriteBuffer(dst uint32, size uint32) error {
	if f.eraseAuto && dst%f.ops.EraseGranule() == 0 {
		if err := f.ops.Erase(dst, size); err != nil {
			return err
		}
	}
	return f.samba.WriteBuffer(f.activeBuffer(), f.addr+dst, size)
}

func (f *flashCore) eraseAll(offset uint32) error {
	if f.samba.CanChipErase() {
		return f.samba.ChipErase(f.addr + offset)
	}
	return f.ops.Erase(offset, f.TotalSize()-offset)
}

// checkErase validates granule alignment and range for Erase.
func (f *flashCore) checkErase(offset uint32, size uint32) error {
	granule := f.ops.EraseGranule()
	if offset%granule != 0 || offset+size > f.TotalSize() {
		return &EraseError{offset, size}
	}
	return nil
}

func (f *flashCore) SetLockRegions(regions []bool) error {
	if len(regions) > len(f.lock) {
		return &RegionError{len(regions), len(f.lock)}
	}
	copy(f.lock, regions)
	f.lockDirty = true
	return nil
}

func (f *flashCore) SetBod(enable bool) {
	f.bod = option{enable, true}
}

func (f *flashCore) SetBor(enable bool) {
	f.bor = option{enable, true}
}

func (f *flashCore) SetSecurity() {
	f.security = option{true, true}
}

func (f *flashCore) GetSecurity() (bool, error) {
	if f.security.dirty {
		return f.security.value, nil
	}
	b, err := f.samba.ReadByte(dsuStatusB)
	if err != nil {
		return false, err
	}
	return b&0x01 != 0, nil
}

func (f *flashCore) optionsDirty() bool {
	return f.bod.dirty || f.bor.dirty || f.security.dirty || f.lockDirty
}

func (f *flashCore) clearDirty() {
	f.bod.dirty = false
	f.bor.dirty = false
	f.security.dirty = false
	f.lockDirty = false
}

// applyLockBits folds the pending lock vector into the user row image.
// A cleared bit locks its region.
func (f *flashCore) applyLockBits(row []byte, lockOffset int) {
	for i, locked := range f.lock {
		bit := byte(1) << (i % 8)
		if locked {
			row[lockOffset+i/8] &^= bit
		} else {
			row[lockOffset+i/8] |= bit
		}
	}
}

// parseLockBits decodes the user row lock bytes into a region vector.
func (f *flashCore) parseLockBits(row []byte, lockOffset int) []bool {
	regions := make([]bool, f.lockRegions)
	for i := range regions {
		regions[i] = row[lockOffset+i/8]&(1<<(i%8)) == 0
	}
	return regions
}

func (f *flashCore) logOptionFlush(kind string) {
	glog.V(1).Infof("Rewriting %s user %s with pending options", f.name, kind)
}
