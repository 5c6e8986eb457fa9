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

// SAM-BA wire transport: '#'-terminated ASCII commands out, raw bytes in.
package samba

import (
	"fmt"
	"time"

	"github.com/golang/glog"
)

// Reply timeout budgets per command class.
const (
	TimeoutQuick     = 100 * time.Millisecond
	TimeoutNormal    = 1 * time.Second
	TimeoutLong      = 5 * time.Second
	TimeoutChipErase = 300 * time.Second
)

// Quiet time before each host write. The ROM monitor drops bytes that
// arrive while it is still draining its transmitter.
const interMessageDelay = 50 * time.Millisecond

// Depth of the reader-to-issuer chunk queue.
const readQueueDepth = 64

// Capabilities holds the optional command extensions advertised by the
// bootloader version banner, plus the reply chunk limit imposed by
// USB-quirked boards (0 = unlimited).
type Capabilities struct {
	ChipErase      bool
	WriteBuffer    bool
	ChecksumBuffer bool
	Protect        bool
	ReadBufferSize int
}

//go:generate mockgen -destination=mocks/transport.go -package=mocks github.com/ma-ku/bossa-web/samba TransportInterface
type TransportInterface interface {
	// Sends cmd with the trailing '#' appended.
	WriteCommand(cmd string) error
	// Sends a raw binary payload.
	WriteBytes(p []byte) error
	// Collects reply bytes until expected bytes have arrived (when
	// expected > 0), a trailing 0x00 is seen after at least two bytes
	// (when expected is 0), or the timeout elapses. Returns nil on
	// timeout or disconnect.
	ReadBuffer(timeout time.Duration, expected int) []byte
	Capabilities() Capabilities
	SetCapabilities(caps Capabilities)
	Close() error
}

// SerialTransport frames SAM-BA commands over a serial byte stream. A
// single background goroutine drains the port into a bounded channel;
// command issue and reply collection stay strictly serialized on the
// caller's goroutine.
type SerialTransport struct {
	port SerialPortInterface
	in   chan []byte
	done chan struct{}
	buf  Buffer
	caps Capabilities
}

func NewSerialTransport(port SerialPortInterface) *SerialTransport {
	t := &SerialTransport{
		port: port,
		in:   make(chan []byte, readQueueDepth),
		done: make(chan struct{}),
	}
	go t.readLoop()
	return t
}

// readLoop continuously pulls from the port and hands chunks to the
// issuer. It exits when the port errors out (disconnect or Close).
func (t *SerialTransport) readLoop() {
	defer close(t.in)
	chunk := make([]byte, 256)
	for {
		select {
		case <-t.done:
			return
		default:
		}
		n, err := t.port.Read(chunk)
		if err != nil {
			glog.V(1).Infof("Reader stopped: %v", err)
			return
		}
		if n == 0 {
			// Poll timeout.
			continue
		}
		p := make([]byte, n)
		copy(p, chunk[:n])
		select {
		case t.in <- p:
		case <-t.done:
			return
		}
	}
}

func (t *SerialTransport) write(p []byte) error {
	time.Sleep(interMessageDelay)
	for n := 0; n < len(p); {
		written, err := t.port.Write(p[n:])
		if err != nil {
			return fmt.Errorf("port write failed: %v", err)
		}
		n += written
	}
	return nil
}

func (t *SerialTransport) WriteCommand(cmd string) error {
	glog.V(1).Infof("[samba-cmd]: %s", cmd)
	return t.write(append([]byte(cmd), '#'))
}

func (t *SerialTransport) WriteBytes(p []byte) error {
	glog.V(2).Infof("[samba-data]: %d bytes", len(p))
	return t.write(p)
}

func (t *SerialTransport) ReadBuffer(timeout time.Duration, expected int) []byte {
	t.buf.Reset()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case chunk, ok := <-t.in:
			if !ok {
				// Reader gone; surfaced upstream as a timeout.
				return nil
			}
			t.buf.Copy(chunk)
			v := t.buf.View()
			if expected > 0 {
				if len(v) >= expected {
					return v[:expected]
				}
			} else if len(v) >= 2 && v[len(v)-1] == 0x00 {
				// Open-ended ASCII replies are NUL terminated.
				return v
			}
		case <-timer.C:
			glog.V(1).Infof("ReadBuffer timed out after %v (%d of %d bytes)",
				timeout, t.buf.Len(), expected)
			return nil
		}
	}
}

func (t *SerialTransport) Capabilities() Capabilities {
	return t.caps
}

func (t *SerialTransport) SetCapabilities(caps Capabilities) {
	t.caps = caps
}

func (t *SerialTransport) Close() error {
	close(t.done)
	return t.port.Close()
}
