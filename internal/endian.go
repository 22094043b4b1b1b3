// Package internal holds small helpers shared across the sdr package tree
// that aren't part of the public API surface.
package internal

import (
	"encoding/binary"
	"unsafe"
)

// NativeEndian is the byte order of the host this binary is running on, as
// detected at init time. It's used at IO boundaries to decide whether a
// byte-for-byte copy can be used, or whether samples need to be byte-swapped
// on the way in or out.
var NativeEndian binary.ByteOrder

func init() {
	var i uint16 = 1
	if *(*byte)(unsafe.Pointer(&i)) == 1 {
		NativeEndian = binary.LittleEndian
	} else {
		NativeEndian = binary.BigEndian
	}
}
