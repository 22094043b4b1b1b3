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
)

func TestSerialDescriptorFormat(t *testing.T) {
	got := serialDescriptor(0x0123456789ABCDEF)
	assert.Equal(t, "AIRSPY SN:0123456789ABCDEF", got)
}

func TestSerialDescriptorZeroPads(t *testing.T) {
	got := serialDescriptor(0x1)
	assert.Equal(t, "AIRSPY SN:0000000000000001", got)
}

func TestSerialDescriptorSplitsHalves(t *testing.T) {
	got := serialDescriptor(0xFFFFFFFF00000000)
	assert.Equal(t, "AIRSPY SN:FFFFFFFF00000000", got)
}

// vim: foldmethod=marker
