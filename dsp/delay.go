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

// delayLine is a circular buffer that delays its input stream by exactly
// len(buf) samples, matching the half-band FIR's group delay on the Q path.
// Each step swaps the incoming sample with the oldest entry in the ring.
type delayLine struct {
	buf []int16
	pos int
}

func newDelayLine(n int) *delayLine {
	return &delayLine{buf: make([]int16, n)}
}

func (d *delayLine) reset() {
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.pos = 0
}

// process runs the delay line over the Q samples of buf (odd indices), in
// place.
func (d *delayLine) process(buf []int16) {
	if len(d.buf) == 0 {
		return
	}
	for i := 1; i < len(buf); i += 2 {
		buf[i], d.buf[d.pos] = d.buf[d.pos], buf[i]
		d.pos++
		if d.pos == len(d.buf) {
			d.pos = 0
		}
	}
}

// vim: foldmethod=marker
