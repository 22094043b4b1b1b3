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

// Command airspy-rx opens an Airspy receiver, tunes it, and writes raw
// interleaved int16 I/Q samples to a file or to stdout.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"

	"hz.tools/rf"

	"go.airspy.dev/sdr"
	"go.airspy.dev/sdr/airspy"
)

func main() {
	var (
		freqFlag    = flag.String("freq", "100M", "center frequency, e.g. 100M, 433.92M, 2400000000")
		sampleRate  = flag.Uint("samplerate", 10_000_000, "sample rate in Hz")
		gain        = flag.Int("linearity-gain", 15, "linearity gain preset index (0-21)")
		packing     = flag.Bool("packing", false, "enable 12-bit packed wire format")
		rfBias      = flag.Bool("bias-tee", false, "enable bias-tee power on the antenna port")
		outPath     = flag.String("out", "-", "output file, or - for stdout")
		serialFlag  = flag.String("serial", "", "open the device with this hex serial number instead of the first found")
	)
	flag.Parse()

	freq, err := parseFrequency(*freqFlag)
	if err != nil {
		log.Fatalf("airspy-rx: %s", err)
	}

	dev, err := openDevice(*serialFlag)
	if err != nil {
		log.Fatalf("airspy-rx: open: %s", err)
	}
	defer dev.Close()

	if err := dev.SetPacking(*packing); err != nil {
		log.Fatalf("airspy-rx: set packing: %s", err)
	}
	if err := dev.SetSampleRate(*sampleRate); err != nil {
		log.Fatalf("airspy-rx: set sample rate: %s", err)
	}
	if err := dev.SetCenterFrequency(freq); err != nil {
		log.Fatalf("airspy-rx: set frequency: %s", err)
	}
	if err := dev.SetLinearityGain(*gain); err != nil {
		log.Fatalf("airspy-rx: set gain: %s", err)
	}
	if err := dev.SetRFBias(*rfBias); err != nil {
		log.Fatalf("airspy-rx: set rf bias: %s", err)
	}

	out, err := openOutput(*outPath)
	if err != nil {
		log.Fatalf("airspy-rx: %s", err)
	}
	defer out.Close()

	reader, err := dev.StartRx()
	if err != nil {
		log.Fatalf("airspy-rx: start rx: %s", err)
	}
	defer reader.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		reader.Close()
	}()

	writer := sdr.ByteWriter(out, binary.LittleEndian, 0, sdr.SampleFormatI16)

	if _, err := sdr.Copy(writer, reader); err != nil && err != io.EOF {
		log.Fatalf("airspy-rx: streaming stopped: %s", err)
	}
}

func openDevice(serial string) (*airspy.Device, error) {
	if serial == "" {
		return airspy.Open()
	}
	sn, err := strconv.ParseUint(serial, 16, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --serial %q: %w", serial, err)
	}
	return airspy.OpenBySerial(sn)
}

func openOutput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

// parseFrequency accepts a bare Hz value or a value with a k/M/G suffix,
// e.g. "433.92M".
func parseFrequency(s string) (rf.Hz, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("empty frequency")
	}
	mult := 1.0
	switch s[len(s)-1] {
	case 'k', 'K':
		mult = 1e3
		s = s[:len(s)-1]
	case 'm', 'M':
		mult = 1e6
		s = s[:len(s)-1]
	case 'g', 'G':
		mult = 1e9
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frequency %q: %w", s, err)
	}
	return rf.Hz(v * mult), nil
}

// vim: foldmethod=marker
