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

// Package dsp implements the wire-packing codec and the fixed-point DSP
// chain (DC blocker, half-band FIR, Q delay line) that turns a raw real
// sample stream centered at Fs/4 into baseband I/Q.
package dsp

import "encoding/binary"

// Unpack decodes a sequence of little-endian 32-bit packed words into
// unsigned 12-bit samples stored as uint16 values, 8 samples per 3 words.
//
// len(src) must be a multiple of 12 bytes and dst must hold at least
// 8*(len(src)/12) entries; both are invariants the transfer ring guarantees
// and a violation is a caller bug, so Unpack panics rather than erroring.
//
// Unpack returns the number of samples written.
func Unpack(dst []uint16, src []byte) int {
	if len(src)%12 != 0 {
		panic("dsp: Unpack: src length is not a multiple of 12 bytes")
	}
	n := len(src) / 12
	if len(dst) < n*8 {
		panic("dsp: Unpack: dst too small")
	}

	for w := 0; w < n; w++ {
		b := src[w*12 : w*12+12]
		word0 := binary.LittleEndian.Uint32(b[0:4])
		word1 := binary.LittleEndian.Uint32(b[4:8])
		word2 := binary.LittleEndian.Uint32(b[8:12])

		out := dst[w*8 : w*8+8]
		out[0] = uint16(word0>>20) & 0xfff
		out[1] = uint16(word0>>8) & 0xfff
		out[2] = uint16(word0&0xff)<<4 | uint16(word1>>28)&0xf
		out[3] = uint16(word1>>16) & 0xfff
		out[4] = uint16(word1>>4) & 0xfff
		out[5] = uint16(word1&0xf)<<8 | uint16(word2>>24)&0xff
		out[6] = uint16(word2>>12) & 0xfff
		out[7] = uint16(word2) & 0xfff
	}
	return n * 8
}

// Pack is the inverse of Unpack, encoding 8·k unsigned 12-bit samples into
// 3·k little-endian 32-bit words using the same bit layout. The device
// never calls this (samples only ever flow host-ward), but it's the
// reference encoder the unpack round-trip property is tested against.
func Pack(dst []byte, src []uint16) int {
	if len(src)%8 != 0 {
		panic("dsp: Pack: src length is not a multiple of 8")
	}
	n := len(src) / 8
	if len(dst) < n*12 {
		panic("dsp: Pack: dst too small")
	}

	for w := 0; w < n; w++ {
		s := src[w*8 : w*8+8]

		word0 := uint32(s[0]&0xfff)<<20 | uint32(s[1]&0xfff)<<8 | uint32(s[2]&0xfff)>>4
		word1 := uint32(s[2]&0xf)<<28 | uint32(s[3]&0xfff)<<16 | uint32(s[4]&0xfff)<<4 | uint32(s[5]&0xfff)>>8
		word2 := uint32(s[5]&0xff)<<24 | uint32(s[6]&0xfff)<<12 | uint32(s[7]&0xfff)

		b := dst[w*12 : w*12+12]
		binary.LittleEndian.PutUint32(b[0:4], word0)
		binary.LittleEndian.PutUint32(b[4:8], word1)
		binary.LittleEndian.PutUint32(b[8:12], word2)
	}
	return n * 12
}

// vim: foldmethod=marker
