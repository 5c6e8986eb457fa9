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

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Identify the attached device and print its flash geometry",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := connect()
		if err != nil {
			return err
		}
		defer sess.Close()

		version, err := sess.samba.Version()
		if err != nil {
			return err
		}
		fl := sess.device.Flash()
		fmt.Printf("Device       : %v\n", sess.device.Name())
		fmt.Printf("Version      : %v\n", version)
		fmt.Printf("Flash base   : 0x%08x\n", fl.Address())
		fmt.Printf("Pages        : %d x %d bytes (%d KiB)\n",
			fl.PageCount(), fl.PageSize(), fl.TotalSize()/1024)
		fmt.Printf("Lock regions : %d\n", fl.LockRegionCount())

		if regions, err := fl.GetLockRegions(); err == nil {
			locked := 0
			for _, r := range regions {
				if r {
					locked++
				}
			}
			fmt.Printf("Locked       : %d of %d\n", locked, len(regions))
		}
		if bod, err := fl.GetBod(); err == nil {
			fmt.Printf("BOD          : %v\n", bod)
		}
		if bor, err := fl.GetBor(); err == nil {
			fmt.Printf("BOR          : %v\n", bor)
		}
		if security, err := fl.GetSecurity(); err == nil {
			fmt.Printf("Security     : %v\n", security)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
