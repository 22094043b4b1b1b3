// {{{ Copyright (c) Paul R. Tagliamonte <paul@k3xec.com>, 2024
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE. }}}

package airspy

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.airspy.dev/sdr/dsp"
	"go.airspy.dev/sdr/usbtransport"
)

// Sample is one completed, converted buffer handed to the streaming
// callback: Data holds interleaved int16 I/Q pairs, and Count is the
// number of complex samples (len(Data)/2).
type Sample struct {
	Data  []int16
	Count int
}

// InitRx prepares the device for streaming: clears the receiver mode,
// resets the converter, sets RX mode, and submits the transfer ring
// against the sample endpoint.
func (d *Device) InitRx() error {
	if err := d.setReceiverMode(ReceiverModeOff); err != nil {
		return newError("InitRx", KindTransport, err)
	}
	if err := d.setReceiverMode(ReceiverModeRx); err != nil {
		return newError("InitRx", KindTransport, err)
	}

	ep, err := d.intf.InEndpoint(usbtransport.SampleEndpoint)
	if err != nil {
		return newError("InitRx", KindTransport, err)
	}

	atomic.StoreInt32(&d.streaming, 1)
	atomic.StoreInt32(&d.stopRequested, 0)

	if err := d.ring.Prepare(ep, d.onTransferComplete); err != nil {
		atomic.StoreInt32(&d.streaming, 0)
		return newError("InitRx", KindTransport, err)
	}
	return nil
}

// onTransferComplete is the ring's completion handler. It runs on the
// ring's pump goroutine and must not block.
func (d *Device) onTransferComplete(buf []byte, err error) {
	if atomic.LoadInt32(&d.streaming) == 0 || atomic.LoadInt32(&d.stopRequested) != 0 {
		return
	}

	if err != nil {
		atomic.StoreInt32(&d.streaming, 0)
		return
	}
	if len(buf) != d.ring.BufferSize() {
		atomic.StoreInt32(&d.streaming, 0)
		return
	}

	var samples []int16
	if d.packing {
		unpacked := make([]uint16, len(buf)/12*8)
		dsp.Unpack(unpacked, buf)
		samples = make([]int16, len(unpacked))
		for i, v := range unpacked {
			samples[i] = int16(v)
		}
	} else {
		samples = make([]int16, len(buf)/2)
		for i := range samples {
			samples[i] = int16(uint16(buf[2*i]) | uint16(buf[2*i+1])<<8)
		}
	}

	if err := d.converter.Process(samples); err != nil {
		atomic.StoreInt32(&d.streaming, 0)
		return
	}

	cb := d.callback
	if cb == nil {
		return
	}
	result := Sample{Data: samples, Count: len(samples) / 2}
	if cb(result) != 0 {
		atomic.StoreInt32(&d.stopRequested, 1)
	}
}

// DoRx records callback and pumps completions until streaming stops or
// the caller's context (via TermRx) requests a halt. callback is invoked
// with the converted interleaved I/Q samples for each completed transfer;
// a non-zero return requests that streaming stop.
func (d *Device) DoRx(callback func(Sample) int) error {
	d.callback = callback

	const pollInterval = 500 * time.Millisecond
	for atomic.LoadInt32(&d.streaming) != 0 && atomic.LoadInt32(&d.stopRequested) == 0 {
		time.Sleep(pollInterval)
	}

	if atomic.LoadInt32(&d.stopRequested) != 0 {
		return nil
	}
	return newError("DoRx", KindStreamingStopped, fmt.Errorf("event pump exited unexpectedly"))
}

// TermRx signals the streaming controller to stop, cancels all in-flight
// transfers, and sets the receiver mode to OFF.
func (d *Device) TermRx() error {
	atomic.StoreInt32(&d.stopRequested, 1)

	if err := d.ring.Cancel(); err != nil {
		return newError("TermRx", KindTransport, err)
	}
	atomic.StoreInt32(&d.streaming, 0)

	if d.usb != nil {
		if err := d.setReceiverMode(ReceiverModeOff); err != nil {
			return newError("TermRx", KindTransport, err)
		}
	}
	return nil
}

// vim: foldmethod=marker
