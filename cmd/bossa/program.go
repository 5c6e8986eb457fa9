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

	"github.com/ma-ku/bossa-web/util"
)

var programCmd = &cobra.Command{
	Use:   "program <image>",
	Short: "Erase, write and verify a firmware image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, _ := cmd.Flags().GetUint32("offset")
		verify, _ := cmd.Flags().GetBool("verify")
		erase, _ := cmd.Flags().GetBool("erase")
		reset, _ := cmd.Flags().GetBool("reset")

		sess, err := connect()
		if err != nil {
			return err
		}
		defer sess.Close()

		fl := sess.device.Flash()
		segment, err := util.LoadFirmwareFile(args[0], fl.Address()+offset)
		if err != nil {
			return fmt.Errorf("loading %v failed: %v", args[0], err)
		}

		flasher := util.NewFlasher(sess.samba, fl, consoleObserver{})
		if erase {
			if err = flasher.Erase(offset); err != nil {
				return err
			}
			// A full erase leaves nothing for the per-granule erase to do.
			fl.SetEraseAuto(false)
		}
		if err = flasher.Write(segment.Data, offset); err != nil {
			return err
		}
		if verify {
			if err = flasher.Verify(segment.Data, offset); err != nil {
				return err
			}
		}
		if reset {
			return sess.device.Reset()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(programCmd)
	programCmd.Flags().Uint32("offset", 0, "flash offset to program at")
	programCmd.Flags().BoolP("verify", "V", true, "verify after writing")
	programCmd.Flags().BoolP("erase", "e", false, "erase all flash before writing")
	programCmd.Flags().BoolP("reset", "R", true, "reset the device when done")
}
