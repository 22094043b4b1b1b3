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

package usbtransport

import (
	"fmt"
	"sync"

	"github.com/google/gousb"
)

// Ring keeps a fixed number of bulk IN transfers continuously in flight
// against a sample endpoint, delivering completed buffers to a callback on
// an internal pump goroutine until Cancel is called.
//
// gousb has no raw per-transfer submit/callback API; InEndpoint.NewStream
// already maintains a pool of outstanding transfers and serves their
// payloads through a single io.Reader, so Ring's pump goroutine plays the
// role the reference driver's libusb completion callback would: it loops
// on Read and forwards each chunk to onComplete.
type Ring struct {
	mu sync.Mutex

	transferCount int
	bufferSize    int

	ep     *gousb.InEndpoint
	stream *gousb.ReadStream
	done   chan struct{}
}

// NewRing returns an unallocated Ring.
func NewRing() *Ring {
	return &Ring{}
}

// Allocate records the transfer count and per-transfer buffer size to use
// on the next Prepare. It fails with ErrBusy if the ring is already
// prepared.
func (r *Ring) Allocate(transferCount, bufferSize int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stream != nil {
		return ErrBusy
	}
	if transferCount <= 0 {
		transferCount = DefaultTransferCount
	}
	r.transferCount = transferCount
	r.bufferSize = bufferSize
	return nil
}

// Prepare assigns ep to the ring and submits transferCount buffers of
// bufferSize bytes each, delivering every completed buffer to onComplete
// from an internal goroutine until Cancel is called.
func (r *Ring) Prepare(ep *gousb.InEndpoint, onComplete func(buf []byte, err error)) error {
	r.mu.Lock()
	if r.stream != nil {
		r.mu.Unlock()
		return ErrBusy
	}
	if r.bufferSize == 0 {
		r.mu.Unlock()
		return fmt.Errorf("usbtransport: Prepare called before Allocate")
	}

	stream, err := ep.NewStream(r.bufferSize, r.transferCount)
	if err != nil {
		r.mu.Unlock()
		return fmt.Errorf("usbtransport: failed to start transfer stream: %w", err)
	}

	r.ep = ep
	r.stream = stream
	r.done = make(chan struct{})
	bufferSize := r.bufferSize
	done := r.done
	r.mu.Unlock()

	go pump(stream, bufferSize, done, onComplete)
	return nil
}

func pump(stream *gousb.ReadStream, bufferSize int, done chan struct{}, onComplete func([]byte, error)) {
	buf := make([]byte, bufferSize)
	for {
		n, err := stream.Read(buf)

		select {
		case <-done:
			return
		default:
		}

		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			onComplete(chunk, nil)
		}
		if err != nil {
			onComplete(nil, err)
			return
		}
	}
}

// Cancel requests cancellation of every in-flight transfer by closing the
// stream, and returns any error that closing the stream reports. It is a
// no-op on an unprepared ring.
func (r *Ring) Cancel() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stream == nil {
		return nil
	}

	close(r.done)
	err := r.stream.Close()
	r.stream = nil
	r.ep = nil
	if err != nil {
		return fmt.Errorf("usbtransport: error cancelling transfer stream: %w", err)
	}
	return nil
}

// Free releases the ring's configuration, leaving it unallocated. Callers
// must Cancel a prepared ring before calling Free.
func (r *Ring) Free() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transferCount = 0
	r.bufferSize = 0
	return nil
}

// BufferSize returns the currently configured per-transfer buffer size.
func (r *Ring) BufferSize() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bufferSize
}

// TransferCount returns the currently configured number of in-flight
// transfers.
func (r *Ring) TransferCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transferCount
}

// vim: foldmethod=marker
