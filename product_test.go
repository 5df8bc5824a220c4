package edid_test

import (
	"testing"

	"github.com/dispware/edid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestManufacturerID_RoundTrip packs three letters into the 2 byte 5-bit
// field and decodes them back.
func TestManufacturerID_RoundTrip(t *testing.T) {
	for _, id := range []string{"ABC", "APP", "DEL", "AZZ", "ZZZ"} {
		enc := edid.ManufacturerID(id).Encode()
		assert.Equal(t, id, edid.DecodeFiveBitASCII(&enc))
	}
}

// TestDecodeFiveBitASCII_OutOfRange verifies that codes outside 'A'..'Z'
// are passed through as decoded rather than rejected.
func TestDecodeFiveBitASCII_OutOfRange(t *testing.T) {
	// Codes 4, 0, 6 packed big endian: 00100 00000 00110.
	raw := [2]byte{0x10, 0x06}
	assert.Equal(t, "D@F", edid.DecodeFiveBitASCII(&raw))
}

func TestManufacturerID_VendorName(t *testing.T) {
	assert.Equal(t, "Apple Computer Inc", edid.ManufacturerID("APP").String())
	// Unknown vendors fall back to the raw letters.
	assert.Equal(t, "XXX", edid.ManufacturerID("XXX").String())
}

func TestDecode_ProductInformation(t *testing.T) {
	b := buildBlock(func(b []byte) {
		b[10], b[11] = 0x22, 0xA0 // product code, little endian
		b[12], b[13], b[14], b[15] = 0x78, 0x56, 0x34, 0x12
		b[16] = 4  // week
		b[17] = 23 // 2013
	})
	e, err := edid.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, edid.ManufacturerID("APP"), e.Product.Manufacturer)
	assert.Equal(t, uint16(0xA022), e.Product.ProductCode)
	assert.Equal(t, uint32(0x12345678), e.Product.SerialNumber)
	assert.Equal(t, edid.ManufactureDate{Week: 4, Year: 2013}, e.Product.Manufactured)
}

// TestDecode_ManufactureDateSentinels keeps the week sentinel values
// intact; interpreting them is the caller's concern.
func TestDecode_ManufactureDateSentinels(t *testing.T) {
	tests := []struct {
		name string
		week byte
	}{
		{name: "unspecified week", week: edid.WeekUnspecified},
		{name: "model year", week: edid.WeekModelYear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buildBlock(func(b []byte) {
				b[16] = tt.week
				b[17] = 33
			})
			e, err := edid.Decode(b)
			require.NoError(t, err)
			assert.Equal(t, tt.week, e.Product.Manufactured.Week)
			assert.Equal(t, 2023, e.Product.Manufactured.Year)
		})
	}
}

// TestDecode_FutureVersion checks that unknown versions still decode
// structurally.
func TestDecode_FutureVersion(t *testing.T) {
	b := buildBlock(func(b []byte) {
		b[18], b[19] = 2, 7
	})
	e, err := edid.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, edid.Version{Version: 2, Revision: 7}, e.Version)
}
