package camera

import (
	"github.com/karaolidis/fujicli-sub000/ptpcodec"
	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// DeviceInfo is the standard PTP DeviceInfo dataset: protocol/vendor identification followed by
// five supported-code vectors and four identity strings.
type DeviceInfo struct {
	StandardVersion           uint16
	VendorExtensionID         uint32
	VendorExtensionVersion    uint16
	VendorExtensionDesc       string
	FunctionalMode            uint16
	OperationsSupported       []uint16
	EventsSupported           []uint16
	DevicePropertiesSupported []uint16
	CaptureFormats            []uint16
	ImageFormats              []uint16
	Manufacturer              string
	Model                     string
	DeviceVersion             string
	SerialNumber              string
}

// DecodeDeviceInfo parses the dataset returned by GetDeviceInfo.
func DecodeDeviceInfo(buf []byte) (DeviceInfo, error) {
	c := ptpcodec.NewCursor(buf)
	var d DeviceInfo
	var err error

	read := func(f func() error) {
		if err == nil {
			err = f()
		}
	}

	read(func() (e error) { d.StandardVersion, e = c.ReadU16(); return })
	read(func() (e error) { d.VendorExtensionID, e = c.ReadU32(); return })
	read(func() (e error) { d.VendorExtensionVersion, e = c.ReadU16(); return })
	read(func() (e error) { d.VendorExtensionDesc, e = c.ReadString(); return })
	read(func() (e error) { d.FunctionalMode, e = c.ReadU16(); return })
	read(func() (e error) { d.OperationsSupported, e = c.ReadVectorU16(); return })
	read(func() (e error) { d.EventsSupported, e = c.ReadVectorU16(); return })
	read(func() (e error) { d.DevicePropertiesSupported, e = c.ReadVectorU16(); return })
	read(func() (e error) { d.CaptureFormats, e = c.ReadVectorU16(); return })
	read(func() (e error) { d.ImageFormats, e = c.ReadVectorU16(); return })
	read(func() (e error) { d.Manufacturer, e = c.ReadString(); return })
	read(func() (e error) { d.Model, e = c.ReadString(); return })
	read(func() (e error) { d.DeviceVersion, e = c.ReadString(); return })
	read(func() (e error) { d.SerialNumber, e = c.ReadString(); return })

	if err != nil {
		return DeviceInfo{}, ptperr.Wrap(ptperr.Malformed, "decoding DeviceInfo", err)
	}
	return d, c.ExpectEnd()
}
