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
	"testing"

	"github.com/stretchr/testify/assert"

	"go.airspy.dev/sdr"
)

func TestLinearityGainTableEndpoints(t *testing.T) {
	assert.Equal(t, gainTableRow{VGA: 13, Mixer: 12, LNA: 14}, linearityGainTable[0])
	assert.Equal(t, gainTableRow{VGA: 4, Mixer: 0, LNA: 0}, linearityGainTable[gainTableRows-1])
}

// TestLinearityGainTableMatchesFirmwareValues pins down a few interior rows
// of the literal, non-monotonic firmware table (row 9's mixer/mixer dip to
// 0, row 14's rebound to 2), so a future edit can't silently drift back
// toward a smooth interpolation.
func TestLinearityGainTableMatchesFirmwareValues(t *testing.T) {
	assert.Equal(t, gainTableRow{VGA: 10, Mixer: 0, LNA: 9}, linearityGainTable[9])
	assert.Equal(t, gainTableRow{VGA: 10, Mixer: 2, LNA: 1}, linearityGainTable[14])
	assert.Equal(t, gainTableRow{VGA: 10, Mixer: 6, LNA: 9}, linearityGainTable[7])
}

func TestSensitivityGainTableEndpoints(t *testing.T) {
	assert.Equal(t, gainTableRow{VGA: 13, Mixer: 12, LNA: 14}, sensitivityGainTable[0])
	assert.Equal(t, gainTableRow{VGA: 4, Mixer: 0, LNA: 0}, sensitivityGainTable[gainTableRows-1])
}

func TestSensitivityGainTableMatchesFirmwareValues(t *testing.T) {
	assert.Equal(t, gainTableRow{VGA: 5, Mixer: 7, LNA: 12}, sensitivityGainTable[10])
	assert.Equal(t, gainTableRow{VGA: 4, Mixer: 4, LNA: 9}, sensitivityGainTable[13])
}

func TestPresetIndexClampsBeforeInverting(t *testing.T) {
	assert.Equal(t, gainTableRows-1, presetIndex(0))
	assert.Equal(t, 0, presetIndex(gainTableRows-1))
	assert.Equal(t, 0, presetIndex(9999), "out-of-range high value clamps before inverting")
	assert.Equal(t, gainTableRows-1, presetIndex(-5), "negative value clamps before inverting")
}

func TestGpioIndexPacksPortAndPin(t *testing.T) {
	assert.Equal(t, uint16(1<<5|13), gpioIndex(1, 13))
	assert.Equal(t, uint16(0), gpioIndex(0, 0))
}

func TestSteppedGainStepsCoverFullRange(t *testing.T) {
	g := newSteppedGain("LNA", 0, 14)
	steps := g.GetGainSteps()
	assert.Len(t, steps, 15)
	assert.Equal(t, float32(0), steps[0])
	assert.Equal(t, float32(14), steps[len(steps)-1])
}

func TestSteppedGainClampsToRange(t *testing.T) {
	g := newSteppedGain("VGA", 0, 15)
	assert.Equal(t, uint8(0), g.clamp(-5))
	assert.Equal(t, uint8(15), g.clamp(999))
	assert.Equal(t, uint8(7), g.clamp(7))
}

func TestGainStageTypesAreReceiveOnly(t *testing.T) {
	var lna lnaGain
	var mixer mixerGain
	var vga vgaGain

	assert.NotZero(t, lna.Type()&sdr.GainStageTypeRecieve)
	assert.NotZero(t, mixer.Type()&sdr.GainStageTypeRecieve)
	assert.NotZero(t, vga.Type()&sdr.GainStageTypeRecieve)
	assert.Zero(t, lna.Type()&sdr.GainStageTypeTransmit)
}

// vim: foldmethod=marker
