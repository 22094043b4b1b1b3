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

// Package usbtransport wraps the gousb bulk-transfer primitives behind the
// allocate/prepare/cancel/free ring contract the streaming controller
// drives, and carries the device's USB identity and default buffer sizes.
package usbtransport

import (
	"fmt"

	"github.com/google/gousb"
)

// VendorID and ProductID identify the device on the USB bus.
const (
	VendorID  = gousb.ID(0x1d50)
	ProductID = gousb.ID(0x60a1)
)

// SampleEndpoint is the bulk IN endpoint the sample stream arrives on.
const SampleEndpoint = 0x81

// Buffer sizes for the two wire formats; SetPacking resizes and
// reallocates the ring between these.
const (
	UnpackedBufferSize = 262144
	PackedBufferSize   = 147456
)

// DefaultTransferCount is the number of bulk transfers kept continuously in
// flight.
const DefaultTransferCount = 16

var (
	// ErrBusy is returned by Allocate/Prepare when the ring already holds
	// live descriptors.
	ErrBusy = fmt.Errorf("usbtransport: ring is already allocated")

	// ErrNotAllocated names the state of a ring that has not been
	// allocated (or has already been freed). Ring's methods do not return
	// it: Cancel on such a ring is a no-op and returns nil.
	ErrNotAllocated = fmt.Errorf("usbtransport: ring is not allocated")
)

// vim: foldmethod=marker
