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

import "fmt"

// ErrorKind classifies the failure modes a Device operation can report.
type ErrorKind int

const (
	// KindInvalidParam means the caller violated a precondition: an
	// out-of-range index, length, or enum value.
	KindInvalidParam ErrorKind = iota

	// KindNotFound means no matching device was present on the bus.
	KindNotFound

	// KindBusy means the operation is illegal in the device's current
	// state, e.g. SetPacking while streaming.
	KindBusy

	// KindNoMem means a host-side allocation failed.
	KindNoMem

	// KindTransport means the USB backend reported an error or a short
	// transfer.
	KindTransport

	// KindStreamingStopped means the event pump exited on an unexpected
	// backend error.
	KindStreamingStopped

	// KindOther means an internal invariant was violated; this should
	// never occur in a correct build.
	KindOther
)

// String names an ErrorKind the way board_id_name/error_name name their
// subjects in the wider driver family.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidParam:
		return "invalid_param"
	case KindNotFound:
		return "not_found"
	case KindBusy:
		return "busy"
	case KindNoMem:
		return "no_mem"
	case KindTransport:
		return "transport"
	case KindStreamingStopped:
		return "streaming_stopped"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Error pairs an ErrorKind with the underlying cause, if any.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("airspy: %s: %s: %s", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("airspy: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// ErrorName renders an ErrorKind the way the exported error_name operation
// does: a stable lowercase identifier suitable for logging.
func ErrorName(kind ErrorKind) string {
	return kind.String()
}

// vim: foldmethod=marker
