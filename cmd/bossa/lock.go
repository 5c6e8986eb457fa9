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

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock every flash region",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := connect()
		if err != nil {
			return err
		}
		defer sess.Close()

		flasher := util.NewFlasher(sess.samba, sess.device.Flash(), consoleObserver{})
		return flasher.Lock()
	},
}

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock every flash region",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := connect()
		if err != nil {
			return err
		}
		defer sess.Close()

		flasher := util.NewFlasher(sess.samba, sess.device.Flash(), consoleObserver{})
		return flasher.Unlock()
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the attached device",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := connect()
		if err != nil {
			return err
		}
		defer sess.Close()

		return sess.device.Reset()
	},
}

func init() {
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(resetCmd)
}
