// {{{ Copyright (c) Paul R. Tagliamonte <paul@k3xec.com>, 2020
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

package debug

import (
	"encoding/binary"

	"go.airspy.dev/sdr"
	"go.airspy.dev/sdr/internal"
)

// BuildInfo contains information about the compiled support inside this
// library.
type BuildInfo struct {
	// SampleFormats will return all known sdr.SampleFormats understood
	// by this compiled version of the library.
	SampleFormats []sdr.SampleFormat

	// HostEndianness will return the detected host ByteOrder.
	HostEndianness binary.ByteOrder

	// Drivers lists the radio drivers that registered themselves at
	// init time. See RegisterRadioDriver.
	Drivers []string
}

// ReadBuildInfo will return information about the internals of the SDR package,
// including implementation details.
func ReadBuildInfo() BuildInfo {
	return BuildInfo{
		SampleFormats: []sdr.SampleFormat{
			sdr.SampleFormatC64,
			sdr.SampleFormatI16,
		},
		HostEndianness: internal.NativeEndian,
		Drivers:        ListRadioDrivers(),
	}
}

// vim: foldmethod=marker
