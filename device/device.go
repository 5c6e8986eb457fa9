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

// Target identification: probes CPUID/CHIPID/DSU registers and builds
// the matching NVM driver.
package device

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/ma-ku/bossa-web/flash"
	"github.com/ma-ku/bossa-web/samba"
)

const (
	regCpuid      = 0xe000ed00
	regAircr      = 0xe000ed0c
	regDsuDid     = 0x41002018
	regChipId     = 0x400e0740
	regChipIdExt  = 0x400e0744
	regChipId2    = 0x400e0940
	regChipId2Ext = 0x400e0944

	cpuidPartMask  = 0x0000fff0
	cpuidCortexM0p = 0xc600
	cpuidCortexM4  = 0xc240

	// AIRCR: VECTKEY | SYSRESETREQ.
	aircrSystemReset = 0x05fa0004
)

// UnsupportedError reports a chip/device id with no dispatch entry.
type UnsupportedError struct {
	ChipID   uint32
	DeviceID uint32
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported device (chipId=0x%08x, deviceId=0x%08x)",
		e.ChipID, e.DeviceID)
}

type family int

const (
	familyD2x family = iota
	familyD5x
)

type geometry struct {
	name   string
	family family
	pages  uint32
	size   uint32
	user   uint32
	stack  uint32
}

// Keyed by DSU DID with the revision field masked off (& 0xffff00ff).
var supportedDevices = map[uint32]geometry{
	// SAMD21
	0x10010000: {"ATSAMD21J18A", familyD2x, 4096, 64, 0x20004000, 0x20008000},
	0x10010005: {"ATSAMD21G18A", familyD2x, 4096, 64, 0x20004000, 0x20008000},
	0x1001000a: {"ATSAMD21E18A", familyD2x, 4096, 64, 0x20004000, 0x20008000},
	0x10010001: {"ATSAMD21J17A", familyD2x, 2048, 64, 0x20002000, 0x20004000},
	0x10010006: {"ATSAMD21G17A", familyD2x, 2048, 64, 0x20002000, 0x20004000},
	0x1001000b: {"ATSAMD21E17A", familyD2x, 2048, 64, 0x20002000, 0x20004000},
	0x10010002: {"ATSAMD21J16A", familyD2x, 1024, 64, 0x20001000, 0x20002000},
	0x10010007: {"ATSAMD21G16A", familyD2x, 1024, 64, 0x20001000, 0x20002000},
	0x1001000c: {"ATSAMD21E16A", familyD2x, 1024, 64, 0x20001000, 0x20002000},
	0x10010003: {"ATSAMD21J15A", familyD2x, 512, 64, 0x20000800, 0x20001000},
	0x10010008: {"ATSAMD21G15A", familyD2x, 512, 64, 0x20000800, 0x20001000},
	0x1001000d: {"ATSAMD21E15A", familyD2x, 512, 64, 0x20000800, 0x20001000},
	// SAMD11
	0x10030000: {"ATSAMD11D14AM", familyD2x, 256, 64, 0x20000800, 0x20001000},
	0x10030003: {"ATSAMD11D14AS", familyD2x, 256, 64, 0x20000800, 0x20001000},
	0x10030006: {"ATSAMD11C14A", familyD2x, 256, 64, 0x20000800, 0x20001000},
	// SAMR21
	0x10010019: {"ATSAMR21G18A", familyD2x, 4096, 64, 0x20004000, 0x20008000},
	0x1001001a: {"ATSAMR21G17A", familyD2x, 2048, 64, 0x20002000, 0x20004000},
	0x1001001b: {"ATSAMR21G16A", familyD2x, 1024, 64, 0x20001000, 0x20002000},
	0x1001001e: {"ATSAMR21E17A", familyD2x, 2048, 64, 0x20002000, 0x20004000},
	0x1001001f: {"ATSAMR21E16A", familyD2x, 1024, 64, 0x20001000, 0x20002000},
	// SAML21
	0x10810000: {"ATSAML21J18A", familyD2x, 4096, 64, 0x20004000, 0x20008000},
	0x10810001: {"ATSAML21J17A", familyD2x, 2048, 64, 0x20002000, 0x20004000},
	0x10810002: {"ATSAML21J16A", familyD2x, 1024, 64, 0x20001000, 0x20002000},
	// SAMD51
	0x60060000: {"ATSAMD51P20A", familyD5x, 2048, 512, 0x20004000, 0x20008000},
	0x60060001: {"ATSAMD51P19A", familyD5x, 1024, 512, 0x20004000, 0x20008000},
	0x60060002: {"ATSAMD51N20A", familyD5x, 2048, 512, 0x20004000, 0x20008000},
	0x60060003: {"ATSAMD51N19A", familyD5x, 1024, 512, 0x20004000, 0x20008000},
	0x60060004: {"ATSAMD51J20A", familyD5x, 2048, 512, 0x20004000, 0x20008000},
	0x60060005: {"ATSAMD51J19A", familyD5x, 1024, 512, 0x20004000, 0x20008000},
	0x60060006: {"ATSAMD51G19A", familyD5x, 1024, 512, 0x20004000, 0x20008000},
	0x60060007: {"ATSAMD51G18A", familyD5x, 512, 512, 0x20004000, 0x20008000},
	// SAME51
	0x61810000: {"ATSAME51N20A", familyD5x, 2048, 512, 0x20004000, 0x20008000},
	0x61810001: {"ATSAME51N19A", familyD5x, 1024, 512, 0x20004000, 0x20008000},
	0x61810002: {"ATSAME51J19A", familyD5x, 1024, 512, 0x20004000, 0x20008000},
	0x61810003: {"ATSAME51J18A", familyD5x, 512, 512, 0x20004000, 0x20008000},
	// SAME53
	0x61830002: {"ATSAME53J19A", familyD5x, 1024, 512, 0x20004000, 0x20008000},
	0x61830003: {"ATSAME53J18A", familyD5x, 512, 512, 0x20004000, 0x20008000},
	// SAME54
	0x61840000: {"ATSAME54P20A", familyD5x, 2048, 512, 0x20004000, 0x20008000},
	0x61840001: {"ATSAME54P19A", familyD5x, 1024, 512, 0x20004000, 0x20008000},
	0x61840002: {"ATSAME54N20A", familyD5x, 2048, 512, 0x20004000, 0x20008000},
	0x61840003: {"ATSAME54N19A", familyD5x, 1024, 512, 0x20004000, 0x20008000},
}

// Device couples an identified target with its NVM driver.
type Device struct {
	samba samba.SambaInterface
	flash flash.FlashInterface
	name  string
}

func (d *Device) Name() string                { return d.name }
func (d *Device) Flash() flash.FlashInterface { return d.flash }

// identify performs the probe in an order that never touches an
// address the attached core does not map; a stray read hangs the
// target.
func identify(s samba.SambaInterface) (chipId, extChipId, deviceId uint32, err error) {
	var v uint32
	if v, err = s.ReadWord(0x0); err != nil {
		return
	}
	if v>>24 == 0xea {
		// ARM7/9 parts vector through a branch instruction at 0.
		chipId, err = s.ReadWord(0xfffff240)
		return
	}

	var cpuid uint32
	if cpuid, err = s.ReadWord(regCpuid); err != nil {
		return
	}
	switch cpuid & cpuidPartMask {
	case cpuidCortexM0p:
		deviceId, err = s.ReadWord(regDsuDid)
		return
	case cpuidCortexM4:
		if v, err = s.ReadWord(0x4); err != nil {
			return
		}
		if v>>20 == 0x800 {
			break // CHIPID probe below
		}
		deviceId, err = s.ReadWord(regDsuDid)
		return
	}

	if chipId, err = s.ReadWord(regChipId); err != nil {
		return
	}
	if chipId != 0 {
		extChipId, err = s.ReadWord(regChipIdExt)
		return
	}
	if chipId, err = s.ReadWord(regChipId2); err != nil {
		return
	}
	extChipId, err = s.ReadWord(regChipId2Ext)
	return
}

// Create probes the attached target and returns a Device with the
// matching NVM driver constructed.
func Create(s samba.SambaInterface) (*Device, error) {
	chipId, extChipId, deviceId, err := identify(s)
	if err != nil {
		return nil, fmt.Errorf("identify failed: %v", err)
	}
	glog.V(1).Infof("chipId=0x%08x extChipId=0x%08x deviceId=0x%08x",
		chipId, extChipId, deviceId)

	if chipId != 0 {
		// Only the D2x/D5x NVM generations are supported; everything
		// reached through CHIPID is an older EEFC part.
		return nil, &UnsupportedError{chipId & 0x7fffffe0, deviceId}
	}

	geo, ok := supportedDevices[deviceId&0xffff00ff]
	if !ok {
		return nil, &UnsupportedError{chipId, deviceId}
	}

	var fl flash.FlashInterface
	switch geo.family {
	case familyD2x:
		fl, err = flash.NewD2xFlash(s, geo.name, 0x0, geo.pages, geo.size,
			1, 16, geo.user, geo.stack)
	case familyD5x:
		fl, err = flash.NewD5xFlash(s, geo.name, 0x0, geo.pages, geo.size,
			1, 32, geo.user, geo.stack)
	}
	if err != nil {
		return nil, fmt.Errorf("flash driver construction failed: %v", err)
	}

	glog.Infof("Found %v (%d pages of %d bytes)", geo.name, geo.pages, geo.size)
	return &Device{samba: s, flash: fl, name: geo.name}, nil
}

// Reset requests a system reset through AIRCR. The target usually
// drops the link before acknowledging, so a failed write is expected
// and ignored.
func (d *Device) Reset() error {
	if err := d.samba.WriteWord(regAircr, aircrSystemReset); err != nil {
		glog.Warningf("Reset ack not received (expected): %v", err)
	}
	return nil
}
