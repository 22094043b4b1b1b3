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
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.airspy.dev/sdr/dsp"
	"go.airspy.dev/sdr/usbtransport"
)

func newStreamingTestDevice(t *testing.T, bufferSize int) *Device {
	t.Helper()
	d := newTestDevice(&fakeControl{})
	d.converter = dsp.NewConverter(dsp.NewHalfbandKernel(9))
	assert.NoError(t, d.ring.Allocate(usbtransport.DefaultTransferCount, bufferSize))
	atomic.StoreInt32(&d.streaming, 1)
	return d
}

func TestOnTransferCompleteReportsUnpackedSampleCount(t *testing.T) {
	d := newStreamingTestDevice(t, 64)

	var got Sample
	d.callback = func(s Sample) int {
		got = s
		return 0
	}

	d.onTransferComplete(make([]byte, 64), nil)

	assert.Equal(t, 32, len(got.Data))
	assert.Equal(t, 16, got.Count)
	assert.True(t, atomic.LoadInt32(&d.streaming) != 0)
}

func TestOnTransferCompleteReportsUnpackedSampleCountWhenPacked(t *testing.T) {
	d := newStreamingTestDevice(t, 12)
	d.packing = true

	var got Sample
	d.callback = func(s Sample) int {
		got = s
		return 0
	}

	d.onTransferComplete(make([]byte, 12), nil)

	assert.Equal(t, 8, len(got.Data))
	assert.Equal(t, 4, got.Count)
}

func TestOnTransferCompleteStopsOnTransportError(t *testing.T) {
	d := newStreamingTestDevice(t, 64)
	called := false
	d.callback = func(s Sample) int {
		called = true
		return 0
	}

	d.onTransferComplete(nil, assertError{})

	assert.False(t, called)
	assert.Equal(t, int32(0), atomic.LoadInt32(&d.streaming))
}

func TestOnTransferCompleteDropsWrongSizedBuffer(t *testing.T) {
	d := newStreamingTestDevice(t, 64)
	called := false
	d.callback = func(s Sample) int {
		called = true
		return 0
	}

	d.onTransferComplete(make([]byte, 32), nil)

	assert.False(t, called)
	assert.Equal(t, int32(0), atomic.LoadInt32(&d.streaming))
}

func TestOnTransferCompleteStopsStreamingOnNonZeroCallback(t *testing.T) {
	d := newStreamingTestDevice(t, 64)

	calls := 0
	d.callback = func(s Sample) int {
		calls++
		if calls == 3 {
			return 1
		}
		return 0
	}

	for i := 0; i < 3; i++ {
		d.onTransferComplete(make([]byte, 64), nil)
	}

	assert.Equal(t, 3, calls)
	assert.Equal(t, int32(1), atomic.LoadInt32(&d.stopRequested))

	// A fourth completion must not reach the callback: streaming is still
	// marked live (only TermRx clears it), but stopRequested short-circuits
	// delivery.
	d.onTransferComplete(make([]byte, 64), nil)
	assert.Equal(t, 3, calls)
}

func TestDoRxReturnsStreamingStoppedOnUnexpectedExit(t *testing.T) {
	d := newStreamingTestDevice(t, 64)
	atomic.StoreInt32(&d.streaming, 0)

	err := d.DoRx(func(Sample) int { return 0 })
	assert.Error(t, err)
	var aerr *Error
	assert.ErrorAs(t, err, &aerr)
	assert.Equal(t, KindStreamingStopped, aerr.Kind)
}

func TestDoRxReturnsNilOnRequestedStop(t *testing.T) {
	d := newStreamingTestDevice(t, 64)
	atomic.StoreInt32(&d.stopRequested, 1)

	err := d.DoRx(func(Sample) int { return 0 })
	assert.NoError(t, err)
}

// assertError is a trivial error used to simulate a transport failure
// without depending on a real USB backend.
type assertError struct{}

func (assertError) Error() string { return "simulated transport error" }

// vim: foldmethod=marker
