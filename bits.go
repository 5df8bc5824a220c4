package edid

import "strings"

// bits extracts the unsigned value of the field starting at the given bit
// offset (0 = LSB) with the given width.
func bits(v byte, shift, width uint) byte {
	return (v >> shift) & (1<<width - 1)
}

func flag(v byte, bit uint) bool {
	return v&(1<<bit) != 0
}

// split12 reassembles a 12-bit field stored as a low byte plus a high nibble.
func split12(low, highNibble byte) uint16 {
	return uint16(highNibble)<<8 | uint16(low)
}

// fraction scales an n-bit unsigned fixed-point fraction into [0,1).
func fraction(v uint16, n uint) float32 {
	return float32(v) / float32(uint32(1)<<n)
}

// DecodeFiveBitASCII unpacks three 5-bit letters from a 2-byte big-endian
// field. Code 1 is 'A'; out of range codes are passed through as decoded.
func DecodeFiveBitASCII(fivebit *[2]byte) string {
	stringbytes := []byte("   ")
	stringbytes[0] = ((fivebit[0] & 0x7C) >> 2) + 0x40
	stringbytes[1] = ((fivebit[0] & 0x03) << 3) + ((fivebit[1] & 0xE0) >> 5) + 0x40
	stringbytes[2] = (fivebit[1] & 0x1F) + 0x40
	return string(stringbytes)
}

// descriptorText decodes the 13-byte text payload of a monitor descriptor.
// Text is terminated by a line feed and padded with spaces.
func descriptorText(raw []byte) string {
	s := string(raw)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, " ")
}

// MakeEDIDChecksum returns the byte that makes the 128-byte block sum to
// zero modulo 256.
func MakeEDIDChecksum(checkBytes *[128]byte) byte {
	var checkSum byte
	for i := 0; i < 127; i++ {
		checkSum += checkBytes[i]
	}
	return -checkSum
}

func blockSum(block []byte) byte {
	var sum byte
	for i := 0; i < len(block); i++ {
		sum += block[i]
	}
	return sum
}
