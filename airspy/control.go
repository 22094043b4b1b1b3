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
	"encoding/binary"
	"fmt"

	"github.com/google/gousb"

	"hz.tools/rf"

	"go.airspy.dev/sdr/usbtransport"
)

// Vendor request numbers, in the order the board's firmware assigns them.
const (
	reqInvalid uint8 = iota
	reqReceiverMode
	reqSetFreq
	reqSetSamplerate
	reqSetFreqLOCorrect
	reqSetLNAGain
	reqSetMixerGain
	reqSetVGAGain
	reqSetLNAAGC
	reqSetMixerAGC
	reqSetRFBias
	reqSetPacking
	reqGPIOWrite
	reqGPIORead
	reqGPIODirWrite
	reqGPIODirRead
	reqGetSamplerates
	reqSI5351CWrite
	reqSI5351CRead
	reqConfigWrite
	reqConfigRead
	reqR820TWrite
	reqR820TRead
	reqSPIFlashErase
	reqSPIFlashWrite
	reqBoardIDRead
	reqVersionStringRead
	reqBoardPartIDSerialNoRead
	reqSetVGAAGC
	reqSetMixerAGCUnused
	reqSPIFlashEraseSector
	reqSPIFlashRead
)

// ReceiverMode selects whether the tuner streams samples.
type ReceiverMode uint16

const (
	ReceiverModeOff ReceiverMode = 0
	ReceiverModeRx  ReceiverMode = 1
)

// BoardID names the board identifiers read back by BoardID.
type BoardID uint8

// usbControl is the subset of *gousb.Device's surface the vendor control
// helpers need. A live Device talks to a real *gousb.Device; tests
// substitute a fake satisfying this interface instead of a USB bus.
type usbControl interface {
	Control(rType, request uint8, val, idx uint16, data []byte) (int, error)
}

// BoardIDName renders a BoardID the way board_id_name does.
func BoardIDName(id BoardID) string {
	switch id {
	case 0:
		return "AIRSPY"
	case 1:
		return "AIRSPY MINI"
	default:
		return fmt.Sprintf("UNKNOWN (0x%02x)", uint8(id))
	}
}

func (d *Device) controlIn(request uint8, val, idx uint16, data []byte) (int, error) {
	rType := uint8(gousb.ControlIn) | uint8(gousb.ControlVendor) | uint8(gousb.RecipientDevice)
	n, err := d.ctrl.Control(rType, request, val, idx, data)
	if err != nil {
		return n, newError("controlIn", KindTransport, err)
	}
	return n, nil
}

func (d *Device) controlOut(request uint8, val, idx uint16, data []byte) (int, error) {
	rType := uint8(gousb.ControlOut) | uint8(gousb.ControlVendor) | uint8(gousb.RecipientDevice)
	n, err := d.ctrl.Control(rType, request, val, idx, data)
	if err != nil {
		return n, newError("controlOut", KindTransport, err)
	}
	return n, nil
}

// SetFrequency sets the receiver's center frequency. The payload is the
// frequency in Hz as a 32-bit little-endian integer.
func (d *Device) SetFrequency(freq rf.Hz) error {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(freq))
	n, err := d.controlOut(reqSetFreq, 0, 0, buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return newError("SetFrequency", KindTransport, fmt.Errorf("short control transfer: wrote %d of %d bytes", n, len(buf)))
	}
	d.centerFreq = freq
	return nil
}

// SetCenterFrequency implements the sdr.Sdr interface by calling
// SetFrequency.
func (d *Device) SetCenterFrequency(freq rf.Hz) error {
	return d.SetFrequency(freq)
}

// GetCenterFrequency implements the sdr.Sdr interface, returning the
// frequency last set by SetFrequency.
func (d *Device) GetCenterFrequency() (rf.Hz, error) {
	return d.centerFreq, nil
}

// SetSampleRate selects a sample rate. If rate matches an entry in
// GetSampleRates by value, its index is sent; otherwise, for backward
// compatibility with older firmware, the rate is sent in kHz provided it
// is at least 1,000,000 Hz.
func (d *Device) SetSampleRate(rate uint) error {
	for i, r := range d.sampleRates {
		if r == rate {
			return d.setSampleRateValue(uint16(i), uint16(i))
		}
	}
	if rate < 1_000_000 {
		return newError("SetSampleRate", KindInvalidParam, fmt.Errorf("rate %d Hz not in supported list and too low for kHz fallback", rate))
	}
	kHz := uint16(rate / 1000)
	return d.setSampleRateValue(kHz, kHz)
}

func (d *Device) setSampleRateValue(val, idx uint16) error {
	n, err := d.controlIn(reqSetSamplerate, val, idx, nil)
	if err != nil {
		return err
	}
	if n != 0 {
		return newError("SetSampleRate", KindTransport, fmt.Errorf("unexpected response length %d", n))
	}
	d.sampleRate = uint(val)
	return nil
}

// GetSampleRate implements the sdr.Sdr interface, returning the sample
// rate index or kHz value last sent by SetSampleRate.
func (d *Device) GetSampleRate() (uint, error) {
	return d.sampleRate, nil
}

// setReceiverMode issues RECEIVER_MODE and, on an OFF→RX transition,
// clears the sample endpoint halt and resets the IQ converter.
func (d *Device) setReceiverMode(mode ReceiverMode) error {
	if mode == ReceiverModeRx {
		if err := d.clearHalt(); err != nil {
			return err
		}
		d.converter.Reset()
	}
	_, err := d.controlOut(reqReceiverMode, uint16(mode), 0, nil)
	return err
}

// clearHalt confirms the sample endpoint is still claimable. gousb has no
// direct clear-halt primitive; the endpoint's halt condition is cleared
// implicitly when the transfer ring's stream is (re)opened in InitRx.
func (d *Device) clearHalt() error {
	_, err := d.intf.InEndpoint(usbtransport.SampleEndpoint)
	if err != nil {
		return newError("clearHalt", KindTransport, err)
	}
	return nil
}

// SetPacking toggles the wire format. It fails with KindBusy if the device
// is currently streaming, since it tears down and reallocates the ring.
func (d *Device) SetPacking(enabled bool) error {
	if d.IsStreaming() {
		return newError("SetPacking", KindBusy, fmt.Errorf("cannot change packing while streaming"))
	}

	var val uint16
	if enabled {
		val = 1
	}
	if _, err := d.controlIn(reqSetPacking, val, 0, nil); err != nil {
		return err
	}

	if err := d.ring.Cancel(); err != nil {
		return err
	}
	if err := d.ring.Free(); err != nil {
		return err
	}

	bufferSize := usbtransport.UnpackedBufferSize
	if enabled {
		bufferSize = usbtransport.PackedBufferSize
	}
	if err := d.ring.Allocate(usbtransport.DefaultTransferCount, bufferSize); err != nil {
		return newError("SetPacking", KindNoMem, err)
	}

	d.packing = enabled
	return nil
}

// IsPacking reports whether the packed wire format is currently enabled.
func (d *Device) IsPacking() bool {
	return d.packing
}

// SetRFBias enables or disables bias-tee power on the antenna port,
// implemented as a GPIO write to port 1, pin 13.
func (d *Device) SetRFBias(enabled bool) error {
	return d.GPIOWrite(1, 13, enabled)
}

// gpioIndex packs a GPIO port and pin into the control request's index
// field: (port << 5) | pin.
func gpioIndex(port, pin uint8) uint16 {
	return uint16(port)<<5 | uint16(pin)
}

// GPIOWrite sets a single GPIO pin.
func (d *Device) GPIOWrite(port, pin uint8, high bool) error {
	var val uint16
	if high {
		val = 1
	}
	_, err := d.controlOut(reqGPIOWrite, val, gpioIndex(port, pin), nil)
	return err
}

// GPIORead reads a single GPIO pin.
func (d *Device) GPIORead(port, pin uint8) (bool, error) {
	buf := make([]byte, 1)
	n, err := d.controlIn(reqGPIORead, 0, gpioIndex(port, pin), buf)
	if err != nil {
		return false, err
	}
	if n != 1 {
		return false, newError("GPIORead", KindTransport, fmt.Errorf("short read"))
	}
	return buf[0] != 0, nil
}

// GPIODirWrite sets a GPIO pin's direction; dirOut selects output mode.
func (d *Device) GPIODirWrite(port, pin uint8, dirOut bool) error {
	var val uint16
	if dirOut {
		val = 1
	}
	_, err := d.controlOut(reqGPIODirWrite, val, gpioIndex(port, pin), nil)
	return err
}

// GPIODirRead reads a GPIO pin's configured direction.
func (d *Device) GPIODirRead(port, pin uint8) (bool, error) {
	buf := make([]byte, 1)
	n, err := d.controlIn(reqGPIODirRead, 0, gpioIndex(port, pin), buf)
	if err != nil {
		return false, err
	}
	if n != 1 {
		return false, newError("GPIODirRead", KindTransport, fmt.Errorf("short read"))
	}
	return buf[0] != 0, nil
}

// SI5351CRead reads one register of the SI5351C clock generator.
func (d *Device) SI5351CRead(reg uint8) (uint8, error) {
	buf := make([]byte, 1)
	n, err := d.controlIn(reqSI5351CRead, 0, uint16(reg), buf)
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, newError("SI5351CRead", KindTransport, fmt.Errorf("short read"))
	}
	return buf[0], nil
}

// SI5351CWrite writes one register of the SI5351C clock generator.
func (d *Device) SI5351CWrite(reg, value uint8) error {
	_, err := d.controlOut(reqSI5351CWrite, uint16(value), uint16(reg), nil)
	return err
}

// R820TRead reads one register of the R820T tuner.
func (d *Device) R820TRead(reg uint8) (uint8, error) {
	buf := make([]byte, 1)
	n, err := d.controlIn(reqR820TRead, 0, uint16(reg), buf)
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, newError("R820TRead", KindTransport, fmt.Errorf("short read"))
	}
	return buf[0], nil
}

// R820TWrite writes one register of the R820T tuner.
func (d *Device) R820TWrite(reg, value uint8) error {
	_, err := d.controlOut(reqR820TWrite, uint16(value), uint16(reg), nil)
	return err
}

// SPIFlashErase erases the whole SPI flash.
func (d *Device) SPIFlashErase() error {
	_, err := d.controlOut(reqSPIFlashErase, 0, 0, nil)
	return err
}

// SPIFlashEraseSector erases one sector of the SPI flash.
func (d *Device) SPIFlashEraseSector(sectorNum uint16) error {
	_, err := d.controlOut(reqSPIFlashEraseSector, sectorNum, 0, nil)
	return err
}

// SPIFlashRead reads length bytes from the SPI flash starting at address.
func (d *Device) SPIFlashRead(address uint32, length int) ([]byte, error) {
	buf := make([]byte, length)
	n, err := d.controlIn(reqSPIFlashRead, uint16(address>>16), uint16(address), buf)
	if err != nil {
		return nil, err
	}
	if n != length {
		return nil, newError("SPIFlashRead", KindTransport, fmt.Errorf("short read: got %d of %d bytes", n, length))
	}
	return buf, nil
}

// SPIFlashWrite writes data to the SPI flash starting at address.
func (d *Device) SPIFlashWrite(address uint32, data []byte) error {
	n, err := d.controlOut(reqSPIFlashWrite, uint16(address>>16), uint16(address), data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return newError("SPIFlashWrite", KindTransport, fmt.Errorf("short write: wrote %d of %d bytes", n, len(data)))
	}
	return nil
}

// BoardID reads back the board identifier byte.
func (d *Device) BoardID() (BoardID, error) {
	buf := make([]byte, 1)
	n, err := d.controlIn(reqBoardIDRead, 0, 0, buf)
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, newError("BoardID", KindTransport, fmt.Errorf("short read"))
	}
	return BoardID(buf[0]), nil
}

// VersionString reads the firmware's version string.
func (d *Device) VersionString() (string, error) {
	buf := make([]byte, 127)
	n, err := d.controlIn(reqVersionStringRead, 0, 0, buf)
	if err != nil {
		return "", err
	}
	for i, b := range buf[:n] {
		if b == 0 {
			return string(buf[:i]), nil
		}
	}
	return string(buf[:n]), nil
}

// PartIDSerialNo is the device's part identifiers and serial number, as
// reported by BOARD_PARTID_SERIALNO_READ.
type PartIDSerialNo struct {
	PartID [2]uint32
	Serial [4]uint32
}

// BoardPartIDSerialNo reads the part-id/serial-number structure.
func (d *Device) BoardPartIDSerialNo() (PartIDSerialNo, error) {
	buf := make([]byte, 6*4)
	n, err := d.controlIn(reqBoardPartIDSerialNoRead, 0, 0, buf)
	if err != nil {
		return PartIDSerialNo{}, err
	}
	if n != len(buf) {
		return PartIDSerialNo{}, newError("BoardPartIDSerialNo", KindTransport, fmt.Errorf("short read"))
	}

	var out PartIDSerialNo
	for i := range out.PartID {
		out.PartID[i] = binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
	}
	for i := range out.Serial {
		off := 8 + i*4
		out.Serial[i] = binary.LittleEndian.Uint32(buf[off : off+4])
	}
	return out, nil
}

// vim: foldmethod=marker
