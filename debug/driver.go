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
	"sort"
	"sync"
)

var (
	driversMu sync.Mutex
	drivers   = map[string]bool{}
)

// RegisterRadioDriver is called by a radio driver's init function to record
// that it's been compiled into this binary. It doesn't do anything beyond
// bookkeeping -- see ListRadioDrivers.
func RegisterRadioDriver(name string) {
	driversMu.Lock()
	defer driversMu.Unlock()
	drivers[name] = true
}

// ListRadioDrivers returns the sorted names of every driver that has called
// RegisterRadioDriver so far.
func ListRadioDrivers() []string {
	driversMu.Lock()
	defer driversMu.Unlock()

	ret := make([]string, 0, len(drivers))
	for name := range drivers {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// vim: foldmethod=marker
