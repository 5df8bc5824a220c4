package edid

// ColorCharacteristics are the CIE 1931 chromaticity coordinates of the
// primaries and white point, plus any additional white points declared in
// the monitor descriptors.
type ColorCharacteristics struct {
	Red   ChromaticityCoordinate
	Green ChromaticityCoordinate
	Blue  ChromaticityCoordinate
	White ChromaticityCoordinate
	// Empty unless a 0xFB descriptor is present.
	WhitePoints []WhitePoint
}

// ChromaticityCoordinate is a CIE 1931 (x, y) point.
type ChromaticityCoordinate struct {
	X float32
	Y float32
}

// WhitePoint is an additional white point from a monitor descriptor.
type WhitePoint struct {
	Index byte
	X     float32
	Y     float32
	Gamma float32
}

// decodeColorCharacteristics decodes bytes 25-34 of the base block. The
// first two bytes hold the low 2 bits of each 10-bit coordinate, the
// remaining eight hold the high 8 bits, red x, red y, green x, green y,
// blue x, blue y, white x, white y.
func decodeColorCharacteristics(b []byte) ColorCharacteristics {
	rgLow, bwLow := b[0], b[1]
	return ColorCharacteristics{
		Red: ChromaticityCoordinate{
			X: chromaticity(b[2], bits(rgLow, 6, 2)),
			Y: chromaticity(b[3], bits(rgLow, 4, 2)),
		},
		Green: ChromaticityCoordinate{
			X: chromaticity(b[4], bits(rgLow, 2, 2)),
			Y: chromaticity(b[5], bits(rgLow, 0, 2)),
		},
		Blue: ChromaticityCoordinate{
			X: chromaticity(b[6], bits(bwLow, 6, 2)),
			Y: chromaticity(b[7], bits(bwLow, 4, 2)),
		},
		White: ChromaticityCoordinate{
			X: chromaticity(b[8], bits(bwLow, 2, 2)),
			Y: chromaticity(b[9], bits(bwLow, 0, 2)),
		},
	}
}

// chromaticity rebuilds a 10-bit fixed point coordinate from its high byte
// and low bit pair.
func chromaticity(high, low2 byte) float32 {
	return fraction(uint16(high)<<2|uint16(low2), 10)
}
