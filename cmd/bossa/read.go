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
	"os"

	"github.com/spf13/cobra"

	"github.com/ma-ku/bossa-web/util"
)

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Read flash contents into a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, _ := cmd.Flags().GetUint32("offset")
		size, _ := cmd.Flags().GetUint32("size")

		sess, err := connect()
		if err != nil {
			return err
		}
		defer sess.Close()

		fl := sess.device.Flash()
		if size == 0 {
			size = fl.TotalSize() - offset
		}
		data := make([]byte, size)
		flasher := util.NewFlasher(sess.samba, fl, consoleObserver{})
		if err = flasher.Read(data, offset); err != nil {
			return err
		}
		if err = os.WriteFile(args[0], data, 0644); err != nil {
			return fmt.Errorf("writing %v failed: %v", args[0], err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().Uint32("offset", 0, "flash offset to read from")
	readCmd.Flags().Uint32("size", 0, "bytes to read (default to end of flash)")
}
