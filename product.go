package edid

import "bytes"

// ProductInformation identifies the display and its manufacture.
type ProductInformation struct {
	Manufacturer ManufacturerID
	ProductCode  uint16
	SerialNumber uint32
	Manufactured ManufactureDate
}

func decodeProductInformation(b []byte) ProductInformation {
	var raw [2]byte
	raw[0], raw[1] = b[0], b[1]
	return ProductInformation{
		Manufacturer: ManufacturerID(DecodeFiveBitASCII(&raw)),
		ProductCode:  uint16(b[2]) | uint16(b[3])<<8,
		SerialNumber: uint32(b[4]) | uint32(b[5])<<8 | uint32(b[6])<<16 | uint32(b[7])<<24,
		Manufactured: ManufactureDate{Week: b[8], Year: int(b[9]) + 1990},
	}
}

// ManufacturerID is the three letter PNP vendor code.
type ManufacturerID string

func (s ManufacturerID) String() string {
	if pnp, ok := pnpLookup[string(s)]; ok {
		return pnp
	}
	return string(s)
}

func (s ManufacturerID) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(s.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

func (s ManufacturerID) Encode() [2]byte {
	var retBytes [2]byte
	retBytes[0] = (s[0] - 0x40) << 2
	retBytes[0] = retBytes[0] | (s[1]-0x40)>>3
	retBytes[1] = (s[1] - 0x40) << 5
	retBytes[1] = retBytes[1] | (s[2] - 0x40)
	return retBytes
}

var pnpLookup = map[string]string{
	"AAA": "Avolites Ltd",
	"ACR": "Acer Technologies",
	"APP": "Apple Computer Inc",
	"AUS": "ASUSTek COMPUTER INC",
	"BNQ": "BenQ Corporation",
	"DEL": "Dell Inc.",
	"EIZ": "EIZO",
	"GSM": "Goldstar Company Ltd",
	"HPN": "HP Inc.",
	"HWP": "Hewlett Packard",
	"IVM": "Iiyama North America",
	"LEN": "Lenovo Group Limited",
	"NEC": "NEC Corporation",
	"PHL": "Philips Consumer Electronics Company",
	"SAM": "Samsung Electric Company",
	"SHP": "Sharp Corporation",
	"SNY": "Sony",
	"VSC": "ViewSonic Corporation",
}

// ManufactureDate is the week and year of manufacture. Week 0 means
// unspecified; week 255 means Year is the model year instead.
type ManufactureDate struct {
	Week byte
	Year int
}

const (
	WeekUnspecified byte = 0
	WeekModelYear   byte = 255
)

// Version is the EDID structure version and revision, decoded without
// range validation.
type Version struct {
	Version  byte
	Revision byte
}

func decodeVersion(b []byte) Version {
	return Version{Version: b[0], Revision: b[1]}
}

func (v Version) atLeast(version, revision byte) bool {
	if v.Version != version {
		return v.Version > version
	}
	return v.Revision >= revision
}
