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
	"context"
	"fmt"

	"hz.tools/rf"

	"go.airspy.dev/sdr"
)

// SampleFormat implements the sdr.Sdr interface. The streaming controller
// always hands StartRx's consumer interleaved signed 16-bit I/Q.
func (d *Device) SampleFormat() sdr.SampleFormat {
	return sdr.SampleFormatI16
}

// SetPPM applies a parts-per-million frequency correction by nudging the
// center frequency already configured; Airspy hardware has no dedicated
// PPM register, so this re-derives and resends the corrected frequency.
func (d *Device) SetPPM(ppm int) error {
	if d.centerFreq == 0 {
		if ppm == 0 {
			return nil
		}
		return newError("SetPPM", KindInvalidParam, fmt.Errorf("cannot apply PPM correction before a center frequency is set"))
	}
	delta := rf.Hz(float64(d.centerFreq) * float64(ppm) / 1e6)
	return d.SetFrequency(d.centerFreq + delta)
}

type rxStream struct {
	sdr.ReadCloser

	device *Device
	cancel context.CancelFunc
}

func (r rxStream) Close() error {
	r.cancel()
	return r.device.TermRx()
}

// StartRx implements the sdr.Receiver interface. It initializes the
// receiver, starts the streaming controller on a background goroutine, and
// returns a ReadCloser that yields interleaved int16 I/Q samples until the
// caller closes it or the device stops streaming.
func (d *Device) StartRx() (sdr.ReadCloser, error) {
	if d.IsStreaming() {
		if err := d.TermRx(); err != nil {
			return nil, newError("StartRx", KindBusy, err)
		}
	}

	if err := d.InitRx(); err != nil {
		return nil, err
	}

	sps, _ := d.GetSampleRate()
	ctx, cancel := context.WithCancel(context.Background())
	pipeReader, pipeWriter := sdr.PipeWithContext(ctx, sps, sdr.SampleFormatI16)

	go func() {
		err := d.DoRx(func(s Sample) int {
			if ctx.Err() != nil {
				return 1
			}
			if _, err := pipeWriter.Write(sdr.SamplesI16(asPairs(s.Data))); err != nil {
				return 1
			}
			return 0
		})
		pipeWriter.CloseWithError(err)
	}()

	return rxStream{
		ReadCloser: pipeReader,
		device:     d,
		cancel:     cancel,
	}, nil
}

// asPairs regroups an interleaved int16 I/Q buffer into [2]int16 complex
// pairs.
func asPairs(buf []int16) [][2]int16 {
	pairs := make([][2]int16, len(buf)/2)
	for i := range pairs {
		pairs[i][0] = buf[2*i]
		pairs[i][1] = buf[2*i+1]
	}
	return pairs
}

// vim: foldmethod=marker
