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

	"go.airspy.dev/sdr"
)

const (
	lnaGainMax   = 14
	mixerGainMax = 15
	vgaGainMax   = 15

	// gainTableRows is the number of entries in the linearity and
	// sensitivity composite gain presets (indices 0..21).
	gainTableRows = 22
)

// gainTableRow is one (VGA, MIXER, LNA) triple from a composite gain
// preset table.
type gainTableRow struct {
	VGA, Mixer, LNA uint8
}

// buildGainTable zips three parallel per-stage gain arrays, indexed by
// preset index 0..21, into gainTableRow triples.
func buildGainTable(vga, mixer, lna [gainTableRows]uint8) [gainTableRows]gainTableRow {
	var table [gainTableRows]gainTableRow
	for i := 0; i < gainTableRows; i++ {
		table[i] = gainTableRow{VGA: vga[i], Mixer: mixer[i], LNA: lna[i]}
	}
	return table
}

// linearityGainTable favors linearity (SFDR) over noise floor; the literal,
// non-monotonic per-stage values the firmware programs at each preset
// index, transcribed from airspy_linearity_{vga,mixer,lna}_gains.
var linearityGainTable = buildGainTable(
	[gainTableRows]uint8{13, 12, 11, 11, 11, 11, 11, 10, 10, 10, 10, 10, 10, 10, 10, 10, 9, 8, 7, 6, 5, 4},
	[gainTableRows]uint8{12, 12, 11, 9, 8, 7, 6, 6, 5, 0, 0, 1, 0, 0, 2, 2, 1, 1, 1, 1, 0, 0},
	[gainTableRows]uint8{14, 14, 14, 13, 12, 10, 9, 9, 8, 9, 8, 6, 5, 3, 1, 0, 0, 0, 0, 0, 0, 0},
)

// sensitivityGainTable favors noise floor over linearity; transcribed from
// airspy_sensitivity_{vga,mixer,lna}_gains.
var sensitivityGainTable = buildGainTable(
	[gainTableRows]uint8{13, 12, 11, 10, 9, 8, 7, 6, 5, 5, 5, 5, 5, 4, 4, 4, 4, 4, 4, 4, 4, 4},
	[gainTableRows]uint8{12, 12, 12, 12, 11, 10, 10, 9, 9, 8, 7, 4, 4, 4, 3, 2, 2, 1, 0, 0, 0, 0},
	[gainTableRows]uint8{14, 14, 14, 14, 14, 14, 14, 14, 14, 13, 12, 12, 9, 9, 8, 7, 6, 5, 3, 2, 1, 0},
)

// presetIndex clamps value to [0, gainTableRows) before inverting it, per
// the corrected (clamp-before-invert) behavior: the reference source
// inverts an unclamped value and only clamps the underflowed result.
func presetIndex(value int) int {
	if value < 0 {
		value = 0
	}
	if value > gainTableRows-1 {
		value = gainTableRows - 1
	}
	return gainTableRows - 1 - value
}

// SetLNAGain sets the LNA gain stage, clipping to its maximum of 14.
func (d *Device) SetLNAGain(value uint8) error {
	if value > lnaGainMax {
		value = lnaGainMax
	}
	_, err := d.controlIn(reqSetLNAGain, uint16(value), 0, nil)
	return err
}

// SetMixerGain sets the mixer gain stage, clipping to its maximum of 15.
func (d *Device) SetMixerGain(value uint8) error {
	if value > mixerGainMax {
		value = mixerGainMax
	}
	_, err := d.controlIn(reqSetMixerGain, uint16(value), 0, nil)
	return err
}

// SetVGAGain sets the VGA gain stage, clipping to its maximum of 15.
func (d *Device) SetVGAGain(value uint8) error {
	if value > vgaGainMax {
		value = vgaGainMax
	}
	_, err := d.controlIn(reqSetVGAGain, uint16(value), 0, nil)
	return err
}

// SetLNAAGC enables or disables the LNA's automatic gain control.
func (d *Device) SetLNAAGC(enabled bool) error {
	var val uint16
	if enabled {
		val = 1
	}
	_, err := d.controlIn(reqSetLNAAGC, val, 0, nil)
	return err
}

// SetMixerAGC enables or disables the mixer's automatic gain control.
func (d *Device) SetMixerAGC(enabled bool) error {
	var val uint16
	if enabled {
		val = 1
	}
	_, err := d.controlIn(reqSetMixerAGC, val, 0, nil)
	return err
}

func (d *Device) applyGainPreset(table [gainTableRows]gainTableRow, value int) error {
	if err := d.SetMixerAGC(false); err != nil {
		return err
	}
	if err := d.SetLNAAGC(false); err != nil {
		return err
	}

	row := table[presetIndex(value)]
	if err := d.SetVGAGain(row.VGA); err != nil {
		return err
	}
	if err := d.SetMixerGain(row.Mixer); err != nil {
		return err
	}
	return d.SetLNAGain(row.LNA)
}

// SetLinearityGain applies the linearity-optimized composite gain preset
// at index 0..21 (higher favors SFDR over noise floor).
func (d *Device) SetLinearityGain(value int) error {
	return d.applyGainPreset(linearityGainTable, value)
}

// SetSensitivityGain applies the sensitivity-optimized composite gain
// preset at index 0..21 (higher favors noise floor over SFDR).
func (d *Device) SetSensitivityGain(value int) error {
	return d.applyGainPreset(sensitivityGainTable, value)
}

// The sdr.GainStage implementations below let a Device be driven through
// the generic sdr.Sdr gain interface in addition to the named setters
// above.

type gainStage interface {
	SetGain(*Device, float32) error
	GetGain(*Device) (float32, error)
}

// GetGain implements the sdr.Sdr interface.
func (d *Device) GetGain(gs sdr.GainStage) (float32, error) {
	stage, ok := gs.(gainStage)
	if !ok {
		return 0, fmt.Errorf("airspy.Device.GetGain: unknown GainStage")
	}
	return stage.GetGain(d)
}

// SetGain implements the sdr.Sdr interface.
func (d *Device) SetGain(gs sdr.GainStage, gain float32) error {
	stage, ok := gs.(gainStage)
	if !ok {
		return fmt.Errorf("airspy.Device.SetGain: unknown GainStage")
	}
	return stage.SetGain(d, gain)
}

// GetGainStages implements the sdr.Sdr interface.
func (d *Device) GetGainStages() (sdr.GainStages, error) {
	return sdr.GainStages{
		lnaGain(newSteppedGain("LNA", 0, lnaGainMax)),
		mixerGain(newSteppedGain("Mixer", 0, mixerGainMax)),
		vgaGain(newSteppedGain("VGA", 0, vgaGainMax)),
	}, nil
}

// steppedGain is the base type for Device's integer-stepped gain stages.
type steppedGain struct {
	Name     string
	min, max uint8
}

func newSteppedGain(name string, min, max uint8) steppedGain {
	return steppedGain{Name: name, min: min, max: max}
}

func (stg steppedGain) String() string {
	return stg.Name
}

func (stg steppedGain) Range() [2]float32 {
	return [2]float32{float32(stg.min), float32(stg.max)}
}

func (stg steppedGain) GetGainSteps() []float32 {
	steps := make([]float32, 0, int(stg.max-stg.min)+1)
	for v := stg.min; ; v++ {
		steps = append(steps, float32(v))
		if v == stg.max {
			break
		}
	}
	return steps
}

func (stg steppedGain) clamp(gain float32) uint8 {
	if gain < float32(stg.min) {
		return stg.min
	}
	if gain > float32(stg.max) {
		return stg.max
	}
	return uint8(gain)
}

type lnaGain steppedGain

func (g lnaGain) Type() sdr.GainStageType {
	return sdr.GainStageTypeRecieve | sdr.GainStageTypeFE
}
func (g lnaGain) String() string             { return steppedGain(g).String() }
func (g lnaGain) Range() [2]float32          { return steppedGain(g).Range() }
func (g lnaGain) GetGainSteps() []float32    { return steppedGain(g).GetGainSteps() }
func (g lnaGain) SetGain(d *Device, v float32) error {
	return d.SetLNAGain(steppedGain(g).clamp(v))
}
func (g lnaGain) GetGain(d *Device) (float32, error) {
	return 0, sdr.ErrNotSupported
}

type mixerGain steppedGain

func (g mixerGain) Type() sdr.GainStageType {
	return sdr.GainStageTypeRecieve | sdr.GainStageTypeIF
}
func (g mixerGain) String() string          { return steppedGain(g).String() }
func (g mixerGain) Range() [2]float32       { return steppedGain(g).Range() }
func (g mixerGain) GetGainSteps() []float32 { return steppedGain(g).GetGainSteps() }
func (g mixerGain) SetGain(d *Device, v float32) error {
	return d.SetMixerGain(steppedGain(g).clamp(v))
}
func (g mixerGain) GetGain(d *Device) (float32, error) {
	return 0, sdr.ErrNotSupported
}

type vgaGain steppedGain

func (g vgaGain) Type() sdr.GainStageType {
	return sdr.GainStageTypeRecieve | sdr.GainStageTypeBB
}
func (g vgaGain) String() string          { return steppedGain(g).String() }
func (g vgaGain) Range() [2]float32       { return steppedGain(g).Range() }
func (g vgaGain) GetGainSteps() []float32 { return steppedGain(g).GetGainSteps() }
func (g vgaGain) SetGain(d *Device, v float32) error {
	return d.SetVGAGain(steppedGain(g).clamp(v))
}
func (g vgaGain) GetGain(d *Device) (float32, error) {
	return 0, sdr.ErrNotSupported
}

// SetAutomaticGain implements the sdr.Sdr interface by toggling both the
// mixer and LNA automatic gain controls together.
func (d *Device) SetAutomaticGain(enabled bool) error {
	if err := d.SetLNAAGC(enabled); err != nil {
		return err
	}
	return d.SetMixerAGC(enabled)
}

// vim: foldmethod=marker
