package edid

// MonitorDescriptor is one decoded 18 byte display descriptor. It is one
// of MonitorName, MonitorSerialNumber, RangeLimits, UnusedDescriptor or
// ManufacturerDefined.
type MonitorDescriptor interface {
	isMonitorDescriptor()
}

// MonitorName is the display product name, tag 0xFC.
type MonitorName string

// MonitorSerialNumber is the serial number string, tag 0xFF.
type MonitorSerialNumber string

// UnusedDescriptor is a dummy descriptor, tag 0x10.
type UnusedDescriptor struct{}

// ManufacturerDefined carries any tag without a defined decoding, with its
// payload preserved verbatim.
type ManufacturerDefined struct {
	Tag  byte
	Data [13]byte
}

// RangeLimits is the monitor range limits descriptor, tag 0xFD.
type RangeLimits struct {
	// Vertical field rate limits in Hz.
	MinVerticalRate byte
	MaxVerticalRate byte
	// Horizontal line rate limits in Hz.
	MinHorizontalRate uint32
	MaxHorizontalRate uint32
	// Maximum pixel clock in Hz.
	MaxPixelClock   uint32
	SecondaryTiming SecondaryTiming
}

func (MonitorName) isMonitorDescriptor() {}
func (MonitorSerialNumber) isMonitorDescriptor() {}
func (UnusedDescriptor) isMonitorDescriptor() {}
func (ManufacturerDefined) isMonitorDescriptor() {}
func (RangeLimits) isMonitorDescriptor() {}

// SecondaryTiming is the secondary timing formula of a range limits
// descriptor, one of NoSecondaryTiming, GTFSecondaryTiming or
// RawSecondaryTiming.
type SecondaryTiming interface {
	isSecondaryTiming()
}

type NoSecondaryTiming struct{}

// GTFSecondaryTiming holds secondary GTF curve parameters.
type GTFSecondaryTiming struct {
	// Horizontal frequency in Hz from which the curve applies.
	StartFrequency uint32
	C              float32
	M              float32
	K              float32
	J              float32
}

// RawSecondaryTiming preserves an unrecognized secondary timing encoding.
type RawSecondaryTiming struct {
	Tag  byte
	Data [7]byte
}

func (NoSecondaryTiming) isSecondaryTiming() {}
func (GTFSecondaryTiming) isSecondaryTiming() {}
func (RawSecondaryTiming) isSecondaryTiming() {}

// Descriptor tags with a defined decoding.
const (
	tagUnused          = 0x10
	tagStandardTimings = 0xFA
	tagWhitePoints     = 0xFB
	tagMonitorName     = 0xFC
	tagRangeLimits     = 0xFD
	tagSerialNumber    = 0xFF
)

// decodeDescriptorBlock decodes one 18 byte monitor descriptor block. The
// returned descriptor is nil for blocks that only feed the standard timing
// or white point lists.
func decodeDescriptorBlock(b []byte, v Version) (MonitorDescriptor, []StandardTiming, []WhitePoint) {
	switch tag := b[3]; tag {
	case tagMonitorName:
		return MonitorName(descriptorText(b[5:18])), nil, nil
	case tagSerialNumber:
		return MonitorSerialNumber(descriptorText(b[5:18])), nil, nil
	case tagRangeLimits:
		return decodeRangeLimits(b), nil, nil
	case tagUnused:
		return UnusedDescriptor{}, nil, nil
	case tagStandardTimings:
		return nil, decodeAdditionalStandardTimings(b, v), nil
	case tagWhitePoints:
		return nil, nil, decodeWhitePoints(b)
	default:
		md := ManufacturerDefined{Tag: tag}
		copy(md.Data[:], b[5:18])
		return md, nil, nil
	}
}

func decodeRangeLimits(b []byte) RangeLimits {
	rl := RangeLimits{
		MinVerticalRate:   b[5],
		MaxVerticalRate:   b[6],
		MinHorizontalRate: uint32(b[7]) * 1000,
		MaxHorizontalRate: uint32(b[8]) * 1000,
		MaxPixelClock:     uint32(b[9]) * 10000000,
	}
	switch b[10] {
	case 0x00:
		// Padded with 0x0A and spaces, not validated.
		rl.SecondaryTiming = NoSecondaryTiming{}
	case 0x02:
		rl.SecondaryTiming = GTFSecondaryTiming{
			StartFrequency: uint32(b[12]) * 2000,
			C:              float32(b[13]) / 2,
			M:              float32(uint16(b[14]) | uint16(b[15])<<8),
			K:              float32(b[16]),
			J:              float32(b[17]) / 2,
		}
	default:
		st := RawSecondaryTiming{Tag: b[10]}
		copy(st.Data[:], b[11:18])
		rl.SecondaryTiming = st
	}
	return rl
}

// decodeAdditionalStandardTimings decodes the six extra standard timing
// pairs of a 0xFA descriptor.
func decodeAdditionalStandardTimings(b []byte, v Version) []StandardTiming {
	var timings []StandardTiming
	for i := 5; i+1 < 17; i += 2 {
		if st, ok := decodeStandardTiming(b[i], b[i+1], v); ok {
			timings = append(timings, st)
		}
	}
	return timings
}

// decodeWhitePoints decodes the two 5 byte white point sets of a 0xFB
// descriptor. A zero index marks an unused set.
func decodeWhitePoints(b []byte) []WhitePoint {
	var points []WhitePoint
	for i := 5; i <= 10; i += 5 {
		if b[i] == 0 {
			continue
		}
		points = append(points, WhitePoint{
			Index: b[i],
			X:     chromaticity(b[i+2], bits(b[i+1], 2, 2)),
			Y:     chromaticity(b[i+3], bits(b[i+1], 0, 2)),
			Gamma: (float32(b[i+4]) + 100) / 100,
		})
	}
	return points
}
