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

// Package airspy drives an Airspy-family 12-bit complex-baseband receiver
// over USB: device enumeration and claim, vendor control requests, gain
// and sample-rate configuration, and a streaming controller that converts
// the raw wire format into interleaved I/Q and hands it to a callback.
package airspy

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/google/gousb"

	"hz.tools/rf"

	"go.airspy.dev/sdr"
	"go.airspy.dev/sdr/debug"
	"go.airspy.dev/sdr/dsp"
	"go.airspy.dev/sdr/usbtransport"
)

// fallbackSampleRates is used when GET_SAMPLERATES is not answered by the
// device.
var fallbackSampleRates = []uint{10_000_000, 2_500_000}

// Device is an open Airspy receiver session.
type Device struct {
	ctx   *gousb.Context
	usb   *gousb.Device
	intf  *gousb.Interface
	iDone func()

	// ctrl is the control-transfer backend vendor request helpers use; it
	// is usb on a live device, or a fake in tests.
	ctrl usbControl

	info sdr.HardwareInfo

	sampleRates []uint
	sampleRate  uint
	centerFreq  rf.Hz
	packing     bool

	ring      *usbtransport.Ring
	converter *dsp.Converter

	streaming     int32
	stopRequested int32
	callback      func(Sample) int
}

// Open opens the first Airspy device found on the bus.
func Open() (*Device, error) {
	return open(nil)
}

// OpenBySerial opens the first Airspy found on the bus and compares its
// serial descriptor with the one built from sn, returning KindNotFound if
// they differ. Other attached Airspy devices are not examined.
func OpenBySerial(sn uint64) (*Device, error) {
	return open(&sn)
}

func open(sn *uint64) (*Device, error) {
	ctx := gousb.NewContext()

	usbDev, err := ctx.OpenDeviceWithVIDPID(usbtransport.VendorID, usbtransport.ProductID)
	if err != nil {
		ctx.Close()
		return nil, newError("Open", KindTransport, err)
	}
	if usbDev == nil {
		ctx.Close()
		return nil, newError("Open", KindNotFound, fmt.Errorf("no device matched vid=%s pid=%s", usbtransport.VendorID, usbtransport.ProductID))
	}

	serial, err := usbDev.SerialNumber()
	if err != nil {
		usbDev.Close()
		ctx.Close()
		return nil, newError("Open", KindTransport, err)
	}

	if sn != nil {
		want := serialDescriptor(*sn)
		if serial != want {
			usbDev.Close()
			ctx.Close()
			return nil, newError("OpenBySerial", KindNotFound, fmt.Errorf("serial %q did not match %q", serial, want))
		}
	}

	if err := usbDev.SetAutoDetach(true); err != nil {
		usbDev.Close()
		ctx.Close()
		return nil, newError("Open", KindTransport, err)
	}

	intf, iDone, err := usbDev.DefaultInterface()
	if err != nil {
		usbDev.Close()
		ctx.Close()
		return nil, newError("Open", KindTransport, err)
	}

	dev := &Device{
		ctx:   ctx,
		usb:   usbDev,
		ctrl:  usbDev,
		intf:  intf,
		iDone: iDone,
		info: sdr.HardwareInfo{
			Manufacturer: "Airspy",
			Product:      "Airspy",
			Serial:       serial,
		},
		ring:      usbtransport.NewRing(),
		converter: dsp.NewConverter(dsp.NewHalfbandKernel(9)),
	}

	rates, err := dev.queryGetSampleRates()
	if err != nil {
		rates = fallbackSampleRates
	}
	dev.sampleRates = rates

	if err := dev.ring.Allocate(usbtransport.DefaultTransferCount, usbtransport.UnpackedBufferSize); err != nil {
		dev.Close()
		return nil, newError("Open", KindNoMem, err)
	}

	debug.RegisterRadioDriver("go.airspy.dev/sdr/airspy.Device")
	return dev, nil
}

// queryGetSampleRates performs the two-phase GET_SAMPLERATES request: a
// zero-length probe for the count, then a fetch of that many uint32 rates.
func (d *Device) queryGetSampleRates() ([]uint, error) {
	countBuf := make([]byte, 4)
	n, err := d.controlIn(reqGetSamplerates, 0, 0, countBuf)
	if err != nil || n != 4 {
		return nil, fmt.Errorf("airspy: GET_SAMPLERATES count query failed")
	}
	count := binary.LittleEndian.Uint32(countBuf)
	if count == 0 {
		return nil, fmt.Errorf("airspy: device reports zero sample rates")
	}

	raw := make([]byte, count*4)
	n, err = d.controlIn(reqGetSamplerates, 0, uint16(count), raw)
	if err != nil || n != len(raw) {
		return nil, fmt.Errorf("airspy: GET_SAMPLERATES list query failed")
	}

	rates := make([]uint, count)
	for i := range rates {
		rates[i] = uint(binary.LittleEndian.Uint32(raw[i*4 : i*4+4]))
	}
	return rates, nil
}

// GetSampleRates returns the sample rates learned at Open, or the static
// fallback list if the device did not answer GET_SAMPLERATES.
func (d *Device) GetSampleRates() []uint {
	return d.sampleRates
}

// HardwareInfo implements the sdr.Sdr interface.
func (d *Device) HardwareInfo() sdr.HardwareInfo {
	return d.info
}

// IsStreaming reports whether the device is currently streaming.
func (d *Device) IsStreaming() bool {
	return atomic.LoadInt32(&d.streaming) != 0
}

// Close releases the USB device. It is idempotent and calls TermRx first,
// ignoring its result, as required of a correct close sequence.
func (d *Device) Close() error {
	_ = d.TermRx()

	_ = d.ring.Free()

	var err error
	if d.intf != nil {
		d.intf.Close()
		d.intf = nil
	}
	if d.iDone != nil {
		d.iDone()
		d.iDone = nil
	}
	if d.usb != nil {
		err = d.usb.Close()
		d.usb = nil
	}
	if d.ctx != nil {
		d.ctx.Close()
		d.ctx = nil
	}
	return err
}

// vim: foldmethod=marker
