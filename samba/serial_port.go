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

// Serial port access for the SAM-BA ROM monitor.
package samba

import (
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"
	"go.bug.st/serial"
)

const (
	// The SAM-BA USB CDC port ignores the requested rate, but physical
	// UARTs need it.
	DefaultBaudRate = 921600

	// Bounded poll interval for the background reader.
	readPollTimeout = 25 * time.Millisecond
)

//go:generate mockgen -destination=mocks/serial_port.go -package=mocks github.com/ma-ku/bossa-web/samba SerialPortInterface
type SerialPortInterface interface {
	io.Reader
	io.Writer
	io.Closer
	// Discards any pending data in the OS receive buffer.
	ResetInputBuffer() error
}

// Encapsulates an opened host serial port.
type SerialPort struct {
	name string
	port serial.Port
}

// OpenSerialPort opens name at baud, 8N1, and asserts DTR/RTS so
// flow-controlled boards start transmitting.
func OpenSerialPort(name string, baud int) (*SerialPort, error) {
	var err error
	if baud == 0 {
		baud = DefaultBaudRate
	}
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	var port serial.Port
	if port, err = serial.Open(name, mode); err != nil {
		return nil, fmt.Errorf("serial.Open failed: %v", err)
	}
	if err = port.SetDTR(true); err != nil {
		port.Close()
		return nil, fmt.Errorf("SetDTR failed: %v", err)
	}
	if err = port.SetRTS(true); err != nil {
		port.Close()
		return nil, fmt.Errorf("SetRTS failed: %v", err)
	}
	// The reader polls with a short timeout so Close can take effect.
	if err = port.SetReadTimeout(readPollTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("SetReadTimeout failed: %v", err)
	}
	// Drop whatever the bootloader sent before we were listening.
	if err = port.ResetInputBuffer(); err != nil {
		port.Close()
		return nil, fmt.Errorf("ResetInputBuffer failed: %v", err)
	}
	glog.V(1).Infof("Opened %v at %v baud", name, baud)
	return &SerialPort{name, port}, nil
}

func (s *SerialPort) Read(p []byte) (int, error) {
	return s.port.Read(p)
}

func (s *SerialPort) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

func (s *SerialPort) ResetInputBuffer() error {
	return s.port.ResetInputBuffer()
}

func (s *SerialPort) Close() error {
	glog.V(1).Infof("Closing %v", s.name)
	return s.port.Close()
}
