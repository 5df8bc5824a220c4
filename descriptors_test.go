package edid_test

import (
	"testing"

	"github.com/dispware/edid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setDescriptor fills descriptor slot i (0-3) with the given tag and
// payload bytes starting at block offset 5.
func setDescriptor(b []byte, i int, tag byte, payload []byte) {
	base := 54 + 18*i
	for j := 0; j < 18; j++ {
		b[base+j] = 0
	}
	b[base+3] = tag
	copy(b[base+5:base+18], payload)
}

func TestDecode_MonitorSerialNumber(t *testing.T) {
	b := buildBlock(func(b []byte) {
		setDescriptor(b, 0, 0xFF, []byte("ABC123\n      "))
	})
	e, err := edid.Decode(b)
	require.NoError(t, err)
	require.Len(t, e.Descriptors, 4)
	assert.Equal(t, edid.MonitorSerialNumber("ABC123"), e.Descriptors[0])
}

// TestDecode_MonitorNamePadding trims the line feed terminator and the
// space padding but nothing else.
func TestDecode_MonitorNamePadding(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    edid.MonitorName
	}{
		{name: "padded", payload: "Color LCD\n   ", want: "Color LCD"},
		{name: "full width", payload: "THIRTEEN CHAR", want: "THIRTEEN CHAR"},
		{name: "inner spaces kept", payload: "A B\n         ", want: "A B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buildBlock(func(b []byte) {
				setDescriptor(b, 0, 0xFC, []byte(tt.payload))
			})
			e, err := edid.Decode(b)
			require.NoError(t, err)
			require.Len(t, e.Descriptors, 4)
			assert.Equal(t, tt.want, e.Descriptors[0])
		})
	}
}

func TestDecode_RangeLimits(t *testing.T) {
	b := buildBlock(func(b []byte) {
		setDescriptor(b, 0, 0xFD, []byte{50, 75, 30, 80, 17, 0x00, 0x0A, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20})
	})
	e, err := edid.Decode(b)
	require.NoError(t, err)
	require.Len(t, e.Descriptors, 4)
	assert.Equal(t, edid.RangeLimits{
		MinVerticalRate:   50,
		MaxVerticalRate:   75,
		MinHorizontalRate: 30000,
		MaxHorizontalRate: 80000,
		MaxPixelClock:     170000000,
		SecondaryTiming:   edid.NoSecondaryTiming{},
	}, e.Descriptors[0])
}

func TestDecode_RangeLimitsGTF(t *testing.T) {
	b := buildBlock(func(b []byte) {
		setDescriptor(b, 0, 0xFD, []byte{56, 76, 31, 94, 23, 0x02, 0x00, 50, 80, 0x28, 0x01, 100, 40})
	})
	e, err := edid.Decode(b)
	require.NoError(t, err)
	require.Len(t, e.Descriptors, 4)
	rl, ok := e.Descriptors[0].(edid.RangeLimits)
	require.True(t, ok)
	assert.Equal(t, edid.GTFSecondaryTiming{
		StartFrequency: 100000,
		C:              40,
		M:              296,
		K:              100,
		J:              20,
	}, rl.SecondaryTiming)
}

// TestDecode_RangeLimitsUnknownSecondary preserves unrecognized secondary
// timing encodings verbatim instead of failing.
func TestDecode_RangeLimitsUnknownSecondary(t *testing.T) {
	b := buildBlock(func(b []byte) {
		setDescriptor(b, 0, 0xFD, []byte{56, 76, 31, 94, 23, 0x99, 1, 2, 3, 4, 5, 6, 7})
	})
	e, err := edid.Decode(b)
	require.NoError(t, err)
	rl, ok := e.Descriptors[0].(edid.RangeLimits)
	require.True(t, ok)
	assert.Equal(t, edid.RawSecondaryTiming{
		Tag:  0x99,
		Data: [7]byte{1, 2, 3, 4, 5, 6, 7},
	}, rl.SecondaryTiming)
}

// TestDecode_AdditionalStandardTimings appends the six pair descriptor to
// the standard timing list without producing a descriptor entry.
func TestDecode_AdditionalStandardTimings(t *testing.T) {
	b := buildBlock(func(b []byte) {
		setDescriptor(b, 0, 0xFA, []byte{49, 0x40, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 129, 0x0F, 0x0A})
	})
	e, err := edid.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, []edid.StandardTiming{
		{HorizontalActive: 640, AspectRatio: edid.AR_4_3, RefreshRate: 60},
		{HorizontalActive: 1280, AspectRatio: edid.AR_16_10, RefreshRate: 75},
	}, e.Timings.Standard)
	require.Len(t, e.Descriptors, 3)
	for _, d := range e.Descriptors {
		assert.Equal(t, edid.UnusedDescriptor{}, d)
	}
}

// TestDecode_WhitePoints appends declared white points to the color
// characteristics; a zero index marks an unused set.
func TestDecode_WhitePoints(t *testing.T) {
	b := buildBlock(func(b []byte) {
		setDescriptor(b, 0, 0xFB, []byte{1, 0x0D, 0x80, 0x40, 120, 0, 0, 0, 0, 0, 0x0A, 0x20, 0x20})
	})
	e, err := edid.Decode(b)
	require.NoError(t, err)
	require.Len(t, e.Color.WhitePoints, 1)
	wp := e.Color.WhitePoints[0]
	assert.Equal(t, byte(1), wp.Index)
	assert.InDelta(t, 515.0/1024.0, wp.X, 0.0005)
	assert.InDelta(t, 257.0/1024.0, wp.Y, 0.0005)
	assert.InDelta(t, 2.2, wp.Gamma, 0.005)
	require.Len(t, e.Descriptors, 3)
}

func TestDecode_ManufacturerDefined(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}
	b := buildBlock(func(b []byte) {
		setDescriptor(b, 2, 0x05, payload)
	})
	e, err := edid.Decode(b)
	require.NoError(t, err)
	require.Len(t, e.Descriptors, 4)
	md, ok := e.Descriptors[2].(edid.ManufacturerDefined)
	require.True(t, ok)
	assert.Equal(t, byte(0x05), md.Tag)
	assert.Equal(t, [13]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}, md.Data)
}

// TestDecode_DescriptorOrderPreserved keeps descriptor entries in block
// order.
func TestDecode_DescriptorOrderPreserved(t *testing.T) {
	b := buildBlock(func(b []byte) {
		setDescriptor(b, 0, 0xFC, []byte("First\n       "))
		setDescriptor(b, 1, 0xFF, []byte("Second\n      "))
	})
	e, err := edid.Decode(b)
	require.NoError(t, err)
	require.Len(t, e.Descriptors, 4)
	assert.Equal(t, edid.MonitorName("First"), e.Descriptors[0])
	assert.Equal(t, edid.MonitorSerialNumber("Second"), e.Descriptors[1])
	assert.Equal(t, edid.UnusedDescriptor{}, e.Descriptors[2])
	assert.Equal(t, edid.UnusedDescriptor{}, e.Descriptors[3])
}
