package edid

import "bytes"

// DisplayParameters are the basic display parameters and features from
// bytes 20-24 of the base block.
type DisplayParameters struct {
	Input    VideoInput
	MaxSize  *MaxSize `json:",omitempty"`
	Gamma    *float32 `json:",omitempty"`
	Features DPMSFeatures
}

func decodeDisplayParameters(b []byte, v Version) DisplayParameters {
	d := DisplayParameters{
		Input:    decodeVideoInput(b[0]),
		MaxSize:  decodeMaxSize(b[1], b[2], v),
		Features: decodeDPMSFeatures(b[4]),
	}
	if b[3] != 0xFF {
		gamma := (float32(b[3]) + 100) / 100
		d.Gamma = &gamma
	}
	return d
}

// VideoInput is either a DigitalInput or an AnalogInput.
type VideoInput interface {
	isVideoInput()
}

// DigitalInput describes a digital input signal.
type DigitalInput struct {
	// Compatible with VESA DFP 1.x.
	DFPCompatible bool
}

// AnalogInput describes an analog input signal and its sync support.
type AnalogInput struct {
	SignalLevel SignalLevel
	// Blank-to-black setup expected.
	SetupExpected bool
	// HSync during VSync.
	SerratedVSync bool
	SyncOnGreen   bool
	CompositeSync bool
	SeparateSync  bool
}

func (DigitalInput) isVideoInput() {}
func (AnalogInput) isVideoInput() {}

// SignalLevel is the white and blank voltage relative to the blank level.
type SignalLevel struct {
	High float32
	Low  float32
}

var signalLevels = [4]SignalLevel{
	{High: 0.700, Low: 0.300},
	{High: 0.714, Low: 0.286},
	{High: 1.000, Low: 0.400},
	{High: 0.700, Low: 0.000},
}

func decodeVideoInput(b byte) VideoInput {
	if flag(b, 7) {
		return DigitalInput{DFPCompatible: flag(b, 0)}
	}
	return AnalogInput{
		SignalLevel:   signalLevels[bits(b, 5, 2)],
		SetupExpected: flag(b, 4),
		SerratedVSync: flag(b, 3),
		SyncOnGreen:   flag(b, 2),
		CompositeSync: flag(b, 1),
		SeparateSync:  flag(b, 0),
	}
}

// MaxSize is the maximum image size, either a physical size in centimetres
// or, on EDID 1.4 and later, an aspect ratio. The two forms are mutually
// exclusive.
type MaxSize struct {
	Image *ImageSize `json:",omitempty"`
	// Width over height; set only for the aspect ratio form.
	AspectRatio float32 `json:",omitempty"`
}

// ImageSize is a size in centimetres.
type ImageSize struct {
	Width  float32
	Height float32
}

func decodeMaxSize(h, v byte, ver Version) *MaxSize {
	switch {
	case h == 0 && v == 0:
		return nil
	case h != 0 && v != 0:
		return &MaxSize{Image: &ImageSize{Width: float32(h), Height: float32(v)}}
	case !ver.atLeast(1, 4):
		// Pre 1.4 has no aspect ratio form; a single zero byte is undefined.
		return nil
	case v == 0:
		// Landscape.
		return &MaxSize{AspectRatio: (float32(h) + 99) / 100}
	default:
		// Portrait.
		return &MaxSize{AspectRatio: 100 / (float32(v) + 99)}
	}
}

// DPMSFeatures is the feature support byte.
type DPMSFeatures struct {
	StandbySupported    bool
	SuspendSupported    bool
	LowPowerSupported   bool
	DisplayType         DisplayType
	DefaultSRGB         bool
	PreferredTimingMode bool
	DefaultGTFSupported bool
}

func decodeDPMSFeatures(b byte) DPMSFeatures {
	return DPMSFeatures{
		StandbySupported:    flag(b, 7),
		SuspendSupported:    flag(b, 6),
		LowPowerSupported:   flag(b, 5),
		DisplayType:         DisplayType(bits(b, 3, 2)),
		DefaultSRGB:         flag(b, 2),
		PreferredTimingMode: flag(b, 1),
		DefaultGTFSupported: flag(b, 0),
	}
}

type DisplayType byte

const (
	Monochrome    DisplayType = 0
	RGBColor      DisplayType = 1
	OtherColor    DisplayType = 2
	UndefinedType DisplayType = 3
)

var displayTypeLookup = map[DisplayType]string{
	Monochrome:    "Monochrome",
	RGBColor:      "RGB Color",
	OtherColor:    "Non-RGB Color",
	UndefinedType: "Undefined",
}

func (d DisplayType) String() string {
	return displayTypeLookup[d]
}

func (d DisplayType) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(d.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}
