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

package flash

import "fmt"

// ConfigError reports geometry that violates a constructor invariant
// (page size, page count and lock region count must be powers of two).
type ConfigError struct {
	Field string
	Value uint32
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid flash geometry: %s = %d", e.Field, e.Value)
}

// OffsetError reports an offset that is not page aligned or out of range.
type OffsetError struct {
	Offset uint32
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("invalid flash offset 0x%08x", e.Offset)
}

// EraseError reports an erase that is not granule aligned or exceeds the
// total flash size.
type EraseError struct {
	Offset uint32
	Size   uint32
}

func (e *EraseError) Error() string {
	return fmt.Sprintf("invalid erase range [0x%08x, +0x%x)", e.Offset, e.Size)
}

// PageError reports a page index beyond the device's page count.
type PageError struct {
	Page  uint32
	Pages uint32
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d out of range (%d pages)", e.Page, e.Pages)
}

// CmdError reports NVM controller error flags raised by a command. The
// driver clears the flags before returning this.
type CmdError struct {
	Flags uint32
}

func (e *CmdError) Error() string {
	return fmt.Sprintf("NVM command failed, INTFLAG error bits 0x%02x", e.Flags)
}

// RegionError reports a lock region vector longer than the device
// supports.
type RegionError struct {
	Regions int
	Max     int
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("%d lock regions requested, device has %d", e.Regions, e.Max)
}
