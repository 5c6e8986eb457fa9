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
	"github.com/spf13/cobra"

	"github.com/ma-ku/bossa-web/util"
)

var eraseCmd = &cobra.Command{
	Use:   "erase",
	Short: "Erase flash from an offset to the end",
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, _ := cmd.Flags().GetUint32("offset")

		sess, err := connect()
		if err != nil {
			return err
		}
		defer sess.Close()

		flasher := util.NewFlasher(sess.samba, sess.device.Flash(), consoleObserver{})
		return flasher.Erase(offset)
	},
}

func init() {
	rootCmd.AddCommand(eraseCmd)
	eraseCmd.Flags().Uint32("offset", 0, "flash offset to start erasing at")
}
