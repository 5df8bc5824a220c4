// Package edid decodes the 128 byte VESA EDID base block that a display
// exposes to describe its identity, timing capabilities and color
// characteristics. The package only interprets bytes the caller already
// has; fetching them over DDC/I2C or from the OS is out of scope, as is
// decoding the content of extension blocks.
package edid

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// BlockSize is the size of the EDID base block and of every extension
// block.
const BlockSize = 128

var edidHeader = []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

var (
	// ErrTruncated reports that fewer than BlockSize bytes were available.
	ErrTruncated = errors.New("edid: truncated data")
	// ErrInvalidHeader reports that the fixed header pattern did not match.
	ErrInvalidHeader = errors.New("edid: invalid header")
	// ErrChecksum reports that the base block does not sum to zero mod 256.
	ErrChecksum = errors.New("edid: checksum mismatch")
)

// EDID is a fully decoded base block. It is assembled once by Decode and
// never mutated afterwards.
type EDID struct {
	Product     ProductInformation
	Version     Version
	Display     DisplayParameters
	Color       ColorCharacteristics
	Timings     Timings
	Descriptors []MonitorDescriptor
	// Number of trailing extension blocks. Their content is not decoded.
	Extensions byte
}

// Parse reads exactly one base block from r and decodes it. Short reads
// and read failures are reported as ErrTruncated.
func Parse(r io.Reader) (*EDID, error) {
	var block [BlockSize]byte
	if _, err := io.ReadFull(r, block[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return Decode(block[:])
}

// Decode decodes the base block at the start of b. Decoding is all or
// nothing: on any error no partial value is returned.
func Decode(b []byte) (*EDID, error) {
	if len(b) < BlockSize {
		return nil, fmt.Errorf("%w: got %d of %d bytes", ErrTruncated, len(b), BlockSize)
	}
	b = b[:BlockSize]
	if !bytes.Equal(b[:8], edidHeader) {
		return nil, ErrInvalidHeader
	}
	if sum := blockSum(b); sum != 0 {
		return nil, fmt.Errorf("%w: block sums to %#02x", ErrChecksum, sum)
	}

	e := &EDID{
		Product: decodeProductInformation(b[8:18]),
		Version: decodeVersion(b[18:20]),
	}
	e.Display = decodeDisplayParameters(b[20:25], e.Version)
	e.Color = decodeColorCharacteristics(b[25:35])
	e.Timings.Established = decodeEstablishedTimings(b[35:38])
	e.Timings.Standard = decodeStandardTimings(b[38:54], e.Version)

	// Four 18 byte blocks, each a detailed timing or a monitor descriptor.
	for i := 0; i < 4; i++ {
		block := b[54+18*i : 72+18*i]
		if block[0] != 0 || block[1] != 0 {
			e.Timings.Detailed = append(e.Timings.Detailed, decodeDetailedTiming(block))
			continue
		}
		desc, timings, points := decodeDescriptorBlock(block, e.Version)
		if desc != nil {
			e.Descriptors = append(e.Descriptors, desc)
		}
		e.Timings.Standard = append(e.Timings.Standard, timings...)
		e.Color.WhitePoints = append(e.Color.WhitePoints, points...)
	}

	e.Extensions = b[126]
	return e, nil
}
