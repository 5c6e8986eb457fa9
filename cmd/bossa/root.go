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
	goflag "flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/matishsiao/goInfo"
	"github.com/spf13/cobra"

	"github.com/ma-ku/bossa-web/device"
	"github.com/ma-ku/bossa-web/samba"
)

var (
	portName string
	baudRate int
)

var rootCmd = &cobra.Command{
	Use:   "bossa",
	Short: "SAM-BA flash programmer for SAM-family microcontrollers",
	Long: `Programs Atmel/Microchip SAM-family devices over the SAM-BA ROM
bootloader: erase, write, verify, read and lock/option handling.`,
}

// Execute runs the command tree. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "",
		"serial port of the target (default guessed per OS)")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b",
		samba.DefaultBaudRate, "baud rate")
	// Pull in glog's -v/-logtostderr flags.
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
}

// defaultPort guesses a port name from the host OS when --port is not
// given.
func defaultPort() string {
	gi, err := goInfo.GetInfo()
	if err != nil {
		return "/dev/ttyACM0"
	}
	switch gi.GoOS {
	case "windows":
		return "COM3"
	case "darwin":
		return "/dev/cu.usbmodem14101"
	default:
		return "/dev/ttyACM0"
	}
}

// session holds everything a subcommand needs to talk to the target.
type session struct {
	transport *samba.SerialTransport
	samba     *samba.Samba
	device    *device.Device
}

func (s *session) Close() {
	if err := s.transport.Close(); err != nil {
		glog.Warningf("Close failed: %v", err)
	}
}

// connect opens the port, puts the monitor into binary mode and
// identifies the attached device.
func connect() (*session, error) {
	name := portName
	if name == "" {
		name = defaultPort()
		glog.V(1).Infof("No --port given, trying %v", name)
	}
	port, err := samba.OpenSerialPort(name, baudRate)
	if err != nil {
		return nil, fmt.Errorf("opening %v failed: %v", name, err)
	}
	transport := samba.NewSerialTransport(port)
	client := samba.NewSamba(transport)
	if err = client.Connect(); err != nil {
		transport.Close()
		return nil, fmt.Errorf("connect failed: %v", err)
	}
	dev, err := device.Create(client)
	if err != nil {
		transport.Close()
		return nil, err
	}
	return &session{transport, client, dev}, nil
}

// consoleObserver prints flasher progress to stdout.
type consoleObserver struct{}

func (consoleObserver) OnStatus(message string) {
	fmt.Println(message)
}

func (consoleObserver) OnProgress(done int, total int) {
	fmt.Printf("\r[%d/%d pages]", done, total)
	if done == total {
		fmt.Println()
	}
}
