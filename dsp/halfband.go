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

import "math"

// sizeFactor trades memory for a branch-free inner loop in halfbandFIR: the
// queue is sized len(kernel)*sizeFactor so a mirror-copy on wrap keeps the
// sliding window contiguous.
const sizeFactor = 16

// halfbandFIR is a symmetric half-band low-pass filter storing only its
// even taps (odd taps of a half-band filter, besides the center, are zero).
// It runs over the I samples of an interleaved buffer, stride 2.
type halfbandFIR struct {
	kernel   []int16
	queue    []int16
	firIndex int
}

func newHalfbandFIR(kernel []int16) *halfbandFIR {
	return &halfbandFIR{
		kernel: kernel,
		queue:  make([]int16, len(kernel)*sizeFactor),
	}
}

func (f *halfbandFIR) reset() {
	for i := range f.queue {
		f.queue[i] = 0
	}
	f.firIndex = 0
}

// process runs the filter over the I samples of buf (even indices), in
// place.
func (f *halfbandFIR) process(buf []int16) {
	n := len(f.kernel)
	for i := 0; i < len(buf); i += 2 {
		f.queue[f.firIndex] = buf[i]

		var acc int32
		for j := 0; j < n; j++ {
			acc += int32(f.kernel[j]) * int32(f.queue[f.firIndex+j])
		}
		buf[i] = int16(acc >> 15)

		f.firIndex--
		if f.firIndex < 0 {
			f.firIndex = n * (sizeFactor - 1)
			copy(f.queue[f.firIndex+1:f.firIndex+n], f.queue[:n-1])
		}
	}
}

// NewHalfbandKernel generates the even taps (including the center tap) of a
// Hamming-windowed-sinc half-band low-pass filter, scaled into the Q15
// fixed-point domain the converter's accumulator expects (see halfbandFIR's
// `acc >> 15`). evenTaps is fullTaps/2 + 1.
//
// This is a from-scratch design rather than a transcription of a specific
// device's ROM kernel: nothing in this driver's wire format depends on the
// exact tap values, only on the even/odd-zero structure and the Q15 scale.
// Callers needing bit-exact parity with a particular unit's factory kernel
// should build their own []int16 and pass it to NewConverter instead.
func NewHalfbandKernel(evenTaps int) []int16 {
	full := (evenTaps-1)*2 + 1
	center := full / 2

	taps := make([]float64, full)
	var sum float64
	for n := 0; n < full; n++ {
		m := n - center
		var h float64
		switch {
		case m == 0:
			h = 0.5
		case m%2 != 0:
			h = math.Sin(math.Pi*float64(m)/2) / (math.Pi * float64(m))
		default:
			h = 0
		}
		w := 0.54 - 0.46*math.Cos(2*math.Pi*float64(n)/float64(full-1))
		taps[n] = h * w
		sum += taps[n]
	}

	kernel := make([]int16, evenTaps)
	for i := 0; i < evenTaps; i++ {
		scaled := taps[i*2] / sum * 2 * 32768
		kernel[i] = int16(math.Round(scaled))
	}
	return kernel
}

// vim: foldmethod=marker
