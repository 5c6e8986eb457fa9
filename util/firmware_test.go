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

package util_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ma-ku/bossa-web/util"
)

func TestLoadIntelHexFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "fw.hex")
	contents := ":020000040000FA\n:0400000001020304F2\n:00000001FF\n"
	if err := os.WriteFile(name, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	seg, err := util.LoadFirmwareFile(name, 0)
	if err != nil {
		t.Fatalf("LoadFirmwareFile failed: %v", err)
	}
	if seg.Address != 0 {
		t.Errorf("Address = 0x%08x", seg.Address)
	}
	if !bytes.Equal(seg.Data, []byte{1, 2, 3, 4}) {
		t.Errorf("Data = %v", seg.Data)
	}
}

func TestLoadBinaryFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "fw.bin")
	if err := os.WriteFile(name, []byte{0xde, 0xad}, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	seg, err := util.LoadFirmwareFile(name, 0x2000)
	if err != nil {
		t.Fatalf("LoadFirmwareFile failed: %v", err)
	}
	if seg.Address != 0x2000 {
		t.Errorf("Address = 0x%08x", seg.Address)
	}
	if !bytes.Equal(seg.Data, []byte{0xde, 0xad}) {
		t.Errorf("Data = %v", seg.Data)
	}
}
