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
	"errors"
	"testing"

	"github.com/ma-ku/bossa-web/flash"
	"github.com/ma-ku/bossa-web/samba/mocks"

	"github.com/golang/mock/gomock"
)

func TestGeometryMustBePowersOfTwo(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s := mocks.NewMockSambaInterface(mockCtrl)
	var cerr *flash.ConfigError
	if _, err := flash.NewD2xFlash(s, "bad", 0, 1000, 64, 1, 16,
		d2xUser, d2xStack); !errors.As(err, &cerr) {
		t.Errorf("non-power-of-two pages error = %v", err)
	}
	if _, err := flash.NewD2xFlash(s, "bad", 0, 1024, 96, 1, 16,
		d2xUser, d2xStack); !errors.As(err, &cerr) {
		t.Errorf("non-power-of-two page size error = %v", err)
	}
	if _, err := flash.NewD5xFlash(s, "bad", 0, 1024, 512, 1, 24,
		d5xUser, d5xStack); !errors.As(err, &cerr) {
		t.Errorf("non-power-of-two lock regions error = %v", err)
	}
}

func TestPageBoundsChecked(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	f := newD2x(t, mocks.NewMockSambaInterface(mockCtrl))

	var perr *flash.PageError
	if err := f.WritePage(4096); !errors.As(err, &perr) {
		t.Errorf("WritePage error = %v", err)
	}
	if err := f.ReadPage(4096, make([]byte, 64)); !errors.As(err, &perr) {
		t.Errorf("ReadPage error = %v", err)
	}
}

func TestReadPageAddress(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s := mocks.NewMockSambaInterface(mockCtrl)
	s.EXPECT().Read(uint32(0x80), gomock.Len(64)).Return(nil)

	f := newD2x(t, s)
	if err := f.ReadPage(2, make([]byte, 64)); err != nil {
		t.Errorf("ReadPage failed: %v", err)
	}
}

func TestLockRegionVectorTooLong(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	f := newD2x(t, mocks.NewMockSambaInterface(mockCtrl))

	var rerr *flash.RegionError
	if err := f.SetLockRegions(make([]bool, 17)); !errors.As(err, &rerr) {
		t.Errorf("SetLockRegions error = %v", err)
	}
}

// Pending option values are answered without touching the device.
func TestPendingOptionsShadowDevice(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// No expectations: any samba call fails the test.
	f := newD2x(t, mocks.NewMockSambaInterface(mockCtrl))

	f.SetBod(true)
	f.SetBor(false)
	f.SetSecurity()
	if v, err := f.GetBod(); err != nil || !v {
		t.Errorf("GetBod = (%v, %v)", v, err)
	}
	if v, err := f.GetBor(); err != nil || v {
		t.Errorf("GetBor = (%v, %v)", v, err)
	}
	if v, err := f.GetSecurity(); err != nil || !v {
		t.Errorf("GetSecurity = (%v, %v)", v, err)
	}
	if err := f.SetLockRegions([]bool{true, false}); err != nil {
		t.Fatalf("SetLockRegions failed: %v", err)
	}
	regions, err := f.GetLockRegions()
	if err != nil {
		t.Fatalf("GetLockRegions failed: %v", err)
	}
	if !regions[0] || regions[1] {
		t.Errorf("GetLockRegions = %v", regions)
	}
}

// WriteBuffer erases the landing granule when auto-erase is on and the
// destination is granule aligned, then hands off to the bootloader's
// on-device copy.
func TestWriteBufferAutoErase(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s := mocks.NewMockSambaInterface(mockCtrl)
	var calls []*gomock.Call
	calls = append(calls, s.EXPECT().WriteWord(d2xAddr, uint32(0)).Return(nil))
	calls = append(calls, expectD2xCommand(s, 0x02)...)
	calls = append(calls,
		s.EXPECT().WriteBuffer(d2xBufA, uint32(0), uint32(256)).Return(nil))
	gomock.InOrder(calls...)

	f := newD2x(t, s)
	if err := f.WriteBuffer(0, 256); err != nil {
		t.Errorf("WriteBuffer failed: %v", err)
	}
}

func TestWriteBufferUnalignedSkipsErase(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s := mocks.NewMockSambaInterface(mockCtrl)
	s.EXPECT().WriteBuffer(d2xBufA, uint32(64), uint32(64)).Return(nil)

	f := newD2x(t, s)
	if err := f.WriteBuffer(64, 64); err != nil {
		t.Errorf("WriteBuffer failed: %v", err)
	}
}
