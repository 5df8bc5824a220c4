package edid

import "bytes"

// Timings are the video modes the display accepts.
type Timings struct {
	Established []EstablishedTiming
	Standard    []StandardTiming
	// If DPMSFeatures.PreferredTimingMode is set, the first detailed
	// timing is the preferred mode.
	Detailed []DetailedTiming
}

// EstablishedTiming names one of the legacy modes from the VESA
// established timing bitmask.
type EstablishedTiming byte

const (
	ET_720_400_70 EstablishedTiming = iota + 1
	ET_720_400_88
	ET_640_480_60
	ET_640_480_67
	ET_640_480_72
	ET_640_480_75
	ET_800_600_56
	ET_800_600_60
	ET_800_600_72
	ET_800_600_75
	ET_832_624_75
	ET_1024_768_87I
	ET_1024_768_60
	ET_1024_768_70
	ET_1024_768_75
	ET_1280_1024_75
	ET_1152_870_75
)

var estTimingLookup = map[EstablishedTiming]string{
	ET_720_400_70:   "720x400 @ 70 Hz",
	ET_720_400_88:   "720x400 @ 88 Hz",
	ET_640_480_60:   "640x480 @ 60 Hz",
	ET_640_480_67:   "640x480 @ 67 Hz",
	ET_640_480_72:   "640x480 @ 72 Hz",
	ET_640_480_75:   "640x480 @ 75 Hz",
	ET_800_600_56:   "800x600 @ 56 Hz",
	ET_800_600_60:   "800x600 @ 60 Hz",
	ET_800_600_72:   "800x600 @ 72 Hz",
	ET_800_600_75:   "800x600 @ 75 Hz",
	ET_832_624_75:   "832x624 @ 75 Hz",
	ET_1024_768_87I: "1024x768 @ 87 Hz, interlaced",
	ET_1024_768_60:  "1024x768 @ 60 Hz",
	ET_1024_768_70:  "1024x768 @ 70 Hz",
	ET_1024_768_75:  "1024x768 @ 75 Hz",
	ET_1280_1024_75: "1280x1024 @ 75 Hz",
	ET_1152_870_75:  "1152x870 @ 75 Hz",
}

func (et EstablishedTiming) String() string {
	return estTimingLookup[et]
}

func (et EstablishedTiming) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(et.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

// establishedTimingTable maps (byte, bit) positions of bytes 35-37 to their
// modes, MSB first. Zero entries are manufacturer reserved bits.
var establishedTimingTable = [3][8]EstablishedTiming{
	{ET_720_400_70, ET_720_400_88, ET_640_480_60, ET_640_480_67,
		ET_640_480_72, ET_640_480_75, ET_800_600_56, ET_800_600_60},
	{ET_800_600_72, ET_800_600_75, ET_832_624_75, ET_1024_768_87I,
		ET_1024_768_60, ET_1024_768_70, ET_1024_768_75, ET_1280_1024_75},
	{ET_1152_870_75, 0, 0, 0, 0, 0, 0, 0},
}

func decodeEstablishedTimings(b []byte) []EstablishedTiming {
	var timings []EstablishedTiming
	for i := 0; i < 3; i++ {
		for bit := 7; bit >= 0; bit-- {
			if !flag(b[i], uint(bit)) {
				continue
			}
			if et := establishedTimingTable[i][7-bit]; et != 0 {
				timings = append(timings, et)
			}
		}
	}
	return timings
}

// StandardTiming is a compact mode from which the remaining parameters can
// be derived with the GTF.
type StandardTiming struct {
	HorizontalActive uint16
	AspectRatio      AspectRatio
	RefreshRate      byte
}

// standardTimingUnused marks an unused standard timing slot.
const standardTimingUnused = 0x01

func decodeStandardTimings(b []byte, v Version) []StandardTiming {
	var timings []StandardTiming
	for i := 0; i+1 < len(b); i += 2 {
		if st, ok := decodeStandardTiming(b[i], b[i+1], v); ok {
			timings = append(timings, st)
		}
	}
	return timings
}

func decodeStandardTiming(low, high byte, v Version) (StandardTiming, bool) {
	if low == standardTimingUnused && high == standardTimingUnused {
		return StandardTiming{}, false
	}
	ar := AspectRatio(bits(high, 6, 2))
	if ar == AR_16_10 && !v.atLeast(1, 4) {
		ar = AR_1_1
	}
	return StandardTiming{
		HorizontalActive: (uint16(low) + 31) * 8,
		AspectRatio:      ar,
		RefreshRate:      bits(high, 0, 6) + 60,
	}, true
}

type AspectRatio byte

const (
	AR_16_10 AspectRatio = 0
	AR_4_3   AspectRatio = 1
	AR_5_4   AspectRatio = 2
	AR_16_9  AspectRatio = 3
	// Value 0 before EDID 1.4.
	AR_1_1 AspectRatio = 4
)

var aspectRatioLookup = map[AspectRatio]string{
	AR_16_10: "16:10",
	AR_4_3:   "4:3",
	AR_5_4:   "5:4",
	AR_16_9:  "16:9",
	AR_1_1:   "1:1",
}

func (ar AspectRatio) String() string {
	return aspectRatioLookup[ar]
}

func (ar AspectRatio) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(ar.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

// DetailedTiming is an 18 byte detailed timing descriptor with one mode
// fully specified.
type DetailedTiming struct {
	// Pixel clock in Hz.
	PixelClock           uint32
	HorizontalActive     uint16
	VerticalActive       uint16
	HorizontalBlanking   uint16
	VerticalBlanking     uint16
	HorizontalFrontPorch uint16
	VerticalFrontPorch   uint16
	HorizontalSyncWidth  uint16
	VerticalSyncWidth    uint16
	HorizontalBackPorch  uint16
	VerticalBackPorch    uint16
	ImageSize            ImageSize
	HorizontalBorder     byte
	VerticalBorder       byte
	Interlaced           bool
	Stereo               StereoMode
	Sync                 SyncType
}

func decodeDetailedTiming(b []byte) DetailedTiming {
	d := DetailedTiming{
		PixelClock:           (uint32(b[1])<<8 | uint32(b[0])) * 10000,
		HorizontalActive:     split12(b[2], bits(b[4], 4, 4)),
		HorizontalBlanking:   split12(b[3], bits(b[4], 0, 4)),
		VerticalActive:       split12(b[5], bits(b[7], 4, 4)),
		VerticalBlanking:     split12(b[6], bits(b[7], 0, 4)),
		HorizontalFrontPorch: uint16(bits(b[11], 6, 2))<<8 | uint16(b[8]),
		HorizontalSyncWidth:  uint16(bits(b[11], 4, 2))<<8 | uint16(b[9]),
		VerticalFrontPorch:   uint16(bits(b[11], 2, 2))<<4 | uint16(bits(b[10], 4, 4)),
		VerticalSyncWidth:    uint16(bits(b[11], 0, 2))<<4 | uint16(bits(b[10], 0, 4)),
		HorizontalBorder:     b[15],
		VerticalBorder:       b[16],
		Interlaced:           flag(b[17], 7),
		Stereo:               decodeStereoMode(b[17]),
		Sync:                 decodeSyncType(b[17]),
	}
	d.HorizontalBackPorch = d.HorizontalBlanking - d.HorizontalFrontPorch - d.HorizontalSyncWidth
	d.VerticalBackPorch = d.VerticalBlanking - d.VerticalFrontPorch - d.VerticalSyncWidth
	// Image size fields are in millimetres.
	d.ImageSize = ImageSize{
		Width:  float32(split12(b[12], bits(b[14], 4, 4))) / 10,
		Height: float32(split12(b[13], bits(b[14], 0, 4))) / 10,
	}
	return d
}

// StereoMode is the stereo viewing support of a detailed timing, from bits
// 6, 5 and 0 of the flags byte.
type StereoMode byte

const (
	StereoNone StereoMode = iota
	StereoSequentialRight
	StereoSequentialLeft
	StereoInterleavedRightEven
	StereoInterleavedLeftEven
	StereoFourWayInterleaved
	StereoSideBySideInterleaved
)

var stereoModeLookup = map[StereoMode]string{
	StereoNone:                  "No Stereo",
	StereoSequentialRight:       "Field sequential, right during stereo sync",
	StereoSequentialLeft:        "Field sequential, left during stereo sync",
	StereoInterleavedRightEven:  "2-way interleaved, right image on even lines",
	StereoInterleavedLeftEven:   "2-way interleaved, left image on even lines",
	StereoFourWayInterleaved:    "4-way interleaved",
	StereoSideBySideInterleaved: "Side-by-side interleaved",
}

func (sm StereoMode) String() string {
	return stereoModeLookup[sm]
}

func (sm StereoMode) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(sm.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

func decodeStereoMode(flags byte) StereoMode {
	hi, lo, ext := flag(flags, 6), flag(flags, 5), flag(flags, 0)
	switch {
	case !hi && !lo:
		return StereoNone
	case !hi && !ext:
		return StereoSequentialRight
	case hi && !lo && !ext:
		return StereoSequentialLeft
	case !hi && ext:
		return StereoInterleavedRightEven
	case hi && !lo && ext:
		return StereoInterleavedLeftEven
	case hi && lo && !ext:
		return StereoFourWayInterleaved
	default:
		return StereoSideBySideInterleaved
	}
}

// SyncType is one of AnalogComposite, DigitalComposite or SeparateSync,
// selected by bits 4-3 of the flags byte. The meaning of the low bits
// depends on the variant; polarity exists only where the variant defines
// it.
type SyncType interface {
	isSyncType()
}

// AnalogComposite is composite sync on the green video line, or all three
// lines when SyncOnRGB is set.
type AnalogComposite struct {
	Bipolar   bool
	Serrated  bool
	SyncOnRGB bool
}

// DigitalComposite is a single digital sync signal on the HSync line.
type DigitalComposite struct {
	Serrated bool
	Polarity SyncPolarity
}

// SeparateSync is separate digital HSync and VSync signals.
type SeparateSync struct {
	Horizontal SyncPolarity
	Vertical   SyncPolarity
}

func (AnalogComposite) isSyncType() {}
func (DigitalComposite) isSyncType() {}
func (SeparateSync) isSyncType() {}

func decodeSyncType(flags byte) SyncType {
	switch bits(flags, 3, 2) {
	case 0, 1:
		return AnalogComposite{
			Bipolar:   flag(flags, 3),
			Serrated:  flag(flags, 2),
			SyncOnRGB: flag(flags, 1),
		}
	case 2:
		return DigitalComposite{
			Serrated: flag(flags, 2),
			Polarity: SyncPolarity(flag(flags, 1)),
		}
	default:
		return SeparateSync{
			Vertical:   SyncPolarity(flag(flags, 2)),
			Horizontal: SyncPolarity(flag(flags, 1)),
		}
	}
}

type SyncPolarity bool

const (
	SyncPositive SyncPolarity = true
	SyncNegative SyncPolarity = false
)

var syncPolarityLookup = map[SyncPolarity]string{
	SyncPositive: "Positive",
	SyncNegative: "Negative",
}

func (sp SyncPolarity) String() string {
	return syncPolarityLookup[sp]
}

func (sp SyncPolarity) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(sp.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}
