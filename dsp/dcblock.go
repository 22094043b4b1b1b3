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

package dsp

// dcBlockerPole is the fixed-point pole location, approximately 32768*0.98.
const dcBlockerPole = 32100

// dcBlockState is a one-pole fixed-point DC-blocking IIR. Its three running
// variables carry between calls and across buffer boundaries.
type dcBlockState struct {
	oldX int16
	oldY int16
	oldE int32
}

func (d *dcBlockState) reset() {
	d.oldX = 0
	d.oldY = 0
	d.oldE = 0
}

// step runs one sample of the blocker and returns y. raw is the unsigned
// 12-bit input sample, centered at 2048.
func (d *dcBlockState) step(raw uint16) int16 {
	x := int16((int32(raw) - 2048) << 3)
	w := x - d.oldX
	u := d.oldE + int32(d.oldY)*dcBlockerPole
	s := int16(u >> 15)
	y := w + s

	d.oldE = u - (int32(s) << 15)
	d.oldX = x
	d.oldY = y

	return y
}

// vim: foldmethod=marker
