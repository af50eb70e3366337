package camera

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karaolidis/fujicli-sub000/ptpcodec"
)

func encodeDeviceInfo(t *testing.T, d DeviceInfo) []byte {
	t.Helper()
	w := ptpcodec.NewWriter()
	w.WriteU16(d.StandardVersion)
	w.WriteU32(d.VendorExtensionID)
	w.WriteU16(d.VendorExtensionVersion)
	require.NoError(t, w.WriteString(d.VendorExtensionDesc))
	w.WriteU16(d.FunctionalMode)
	w.WriteVectorU16(d.OperationsSupported)
	w.WriteVectorU16(d.EventsSupported)
	w.WriteVectorU16(d.DevicePropertiesSupported)
	w.WriteVectorU16(d.CaptureFormats)
	w.WriteVectorU16(d.ImageFormats)
	require.NoError(t, w.WriteString(d.Manufacturer))
	require.NoError(t, w.WriteString(d.Model))
	require.NoError(t, w.WriteString(d.DeviceVersion))
	require.NoError(t, w.WriteString(d.SerialNumber))
	return w.Bytes()
}

func TestDecodeDeviceInfoRoundTrip(t *testing.T) {
	want := DeviceInfo{
		StandardVersion:           100,
		VendorExtensionID:         0x00000006,
		VendorExtensionVersion:    100,
		VendorExtensionDesc:       "Fujifilm",
		FunctionalMode:            0,
		OperationsSupported:       []uint16{0x1001, 0x1002, 0x9006},
		EventsSupported:           []uint16{0x4002},
		DevicePropertiesSupported: []uint16{0xD18C, 0xD18D},
		CaptureFormats:            []uint16{0x3801},
		ImageFormats:              []uint16{0x3801},
		Manufacturer:              "FUJIFILM",
		Model:                     "X-T5",
		DeviceVersion:             "1.00",
		SerialNumber:              "ABC123",
	}

	got, err := DecodeDeviceInfo(encodeDeviceInfo(t, want))
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDecodeDeviceInfoRejectsTrailingBytes(t *testing.T) {
	buf := encodeDeviceInfo(t, DeviceInfo{})
	buf = append(buf, 0xFF)

	_, err := DecodeDeviceInfo(buf)
	require.Error(t, err)
}

func TestDecodeDeviceInfoRejectsTruncatedInput(t *testing.T) {
	_, err := DecodeDeviceInfo([]byte{0x01})
	require.Error(t, err)
}
