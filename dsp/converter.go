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

import "fmt"

// ErrBufferLength is returned by Converter.Process when the buffer length
// is not a multiple of 4.
var ErrBufferLength = fmt.Errorf("dsp: buffer length must be a multiple of 4")

// Converter composes the DC blocker and half-band FIR/delay pair into the
// single stateful transform that turns a raw real sample stream centered at
// Fs/4 into interleaved complex baseband at Fs/2. It is not safe for
// concurrent use; at most one Process call may be in flight at a time.
type Converter struct {
	dc    dcBlockState
	fir   *halfbandFIR
	delay *delayLine
}

// NewConverter builds a Converter around the even taps of a symmetric
// half-band filter (including the center tap; len = fullTaps/2 + 1). See
// NewHalfbandKernel for a ready-made kernel.
func NewConverter(kernel []int16) *Converter {
	return &Converter{
		fir:   newHalfbandFIR(kernel),
		delay: newDelayLine(len(kernel) - 1),
	}
}

// Reset zeroes all filter history: the DC blocker state, the FIR queue, and
// the Q delay line.
func (c *Converter) Reset() {
	c.dc.reset()
	c.fir.reset()
	c.delay.reset()
}

// Process runs the DC blocker (with its Fs/4 mixing pattern), the half-band
// FIR, and the Q delay line over buf in place. len(buf) must be a multiple
// of 4; on entry buf holds unsigned 12-bit samples (as uint16-range int16
// values), on return it holds signed 16-bit interleaved I/Q.
func (c *Converter) Process(buf []int16) error {
	if len(buf)%4 != 0 {
		return ErrBufferLength
	}

	for i := range buf {
		y := c.dc.step(uint16(buf[i]))
		switch i % 4 {
		case 0:
			buf[i] = -y
		case 1:
			buf[i] = -(y >> 1)
		case 2:
			buf[i] = y
		case 3:
			buf[i] = y >> 1
		}
	}

	c.fir.process(buf)
	c.delay.process(buf)

	return nil
}

// vim: foldmethod=marker
