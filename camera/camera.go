// Package camera implements the device-facing facade: the property
// accessors, object-transfer operations, and per-body capability
// dispatch that sit on top of the ptp package's session/transaction
// engine.
package camera

import (
	"time"

	"github.com/karaolidis/fujicli-sub000/camera/profile"
	"github.com/karaolidis/fujicli-sub000/camera/simulation"
	"github.com/karaolidis/fujicli-sub000/fuji"
	"github.com/karaolidis/fujicli-sub000/ptp"
	"github.com/karaolidis/fujicli-sub000/ptpcodec"
	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// Capabilities is the struct-of-optional-function-values a body registers
// with a Camera. A nil field means the connected body doesn't
// support that feature; Camera reports ptperr.Unsupported when a caller
// reaches for it.
type Capabilities struct {
	// ChunkSize overrides ptp.DefaultChunkSize when non-zero (e.g. the
	// X-T5's wider bulk transfers).
	ChunkSize int

	// CustomSettingSlots overrides fuji.AllCustomSettings when non-nil
	// (e.g. the X-S20's four-slot simulation bank).
	CustomSettingSlots func() []fuji.CustomSetting

	ExportBackup  func(*Camera) ([]byte, error)
	ImportBackup  func(*Camera, []byte) error
	GetSimulation func(*Camera, fuji.CustomSetting) (*simulation.Simulation, error)
	SetSimulation func(*Camera, fuji.CustomSetting, *simulation.Simulation) error
	Render        func(*Camera, []byte, func(*profile.ConversionProfile), bool) ([]byte, error)
}

// Camera is the top-level handle a caller drives: one open PTP session
// plus the capability set the connected body declared.
type Camera struct {
	Name string

	session *ptp.Session
	caps    Capabilities
}

// New wraps an already-open session with name and caps. Body tables in
// package bodies are the usual caller.
func New(name string, session *ptp.Session, caps Capabilities) *Camera {
	return &Camera{Name: name, session: session, caps: caps}
}

func unsupported(what string) error {
	return ptperr.Newf(ptperr.Unsupported, "This camera does not support %s yet", what)
}

// CustomSettingSlots lists the simulation slots this body exposes.
func (c *Camera) CustomSettingSlots() []fuji.CustomSetting {
	if c.caps.CustomSettingSlots != nil {
		return c.caps.CustomSettingSlots()
	}
	return fuji.AllCustomSettings
}

// GetInfo decodes the standard PTP DeviceInfo dataset.
func (c *Camera) GetInfo() (DeviceInfo, error) {
	raw, err := c.session.GetDeviceInfo()
	if err != nil {
		return DeviceInfo{}, err
	}
	return DecodeDeviceInfo(raw)
}

// GetUsbMode reads the FujiUsbMode property.
func (c *Camera) GetUsbMode() (fuji.UsbMode, error) {
	return GetProp(c, ptp.PropFujiUsbMode, func(cur *ptpcodec.Cursor) (fuji.UsbMode, error) {
		w, err := cur.ReadU16()
		if err != nil {
			return 0, err
		}
		return fuji.UsbModeFromWire(w)
	})
}

// SetUsbMode writes the FujiUsbMode property.
func (c *Camera) SetUsbMode(v fuji.UsbMode) error {
	return SetProp(c, ptp.PropFujiUsbMode, v, func(v fuji.UsbMode) []byte {
		w := ptpcodec.NewWriter()
		w.WriteU16(uint16(v))
		return w.Bytes()
	})
}

// GetPropRaw returns one property's undecoded wire value.
func (c *Camera) GetPropRaw(code ptp.DevicePropCode) ([]byte, error) {
	return c.session.GetDevicePropValue(code)
}

// SetPropRaw writes one property's wire value verbatim.
func (c *Camera) SetPropRaw(code ptp.DevicePropCode, value []byte) error {
	return c.session.SetDevicePropValue(code, value)
}

// GetProp reads and decodes one property with decode, then asserts the
// wire value was consumed exactly.
func GetProp[T any](c *Camera, code ptp.DevicePropCode, decode func(*ptpcodec.Cursor) (T, error)) (T, error) {
	var zero T
	raw, err := c.GetPropRaw(code)
	if err != nil {
		return zero, err
	}
	cur := ptpcodec.NewCursor(raw)
	v, err := decode(cur)
	if err != nil {
		return zero, err
	}
	if err := cur.ExpectEnd(); err != nil {
		return zero, err
	}
	return v, nil
}

// SetProp encodes v with encode and writes it as one property value.
func SetProp[T any](c *Camera, code ptp.DevicePropCode, v T, encode func(T) []byte) error {
	return c.SetPropRaw(code, encode(v))
}

// GetObjectInfo decodes the ObjectInfo dataset for handle.
func (c *Camera) GetObjectInfo(handle uint32) (ObjectInfo, error) {
	raw, err := c.session.GetObjectInfo(handle)
	if err != nil {
		return ObjectInfo{}, err
	}
	return DecodeObjectInfo(raw)
}

// GetObject returns the raw object payload for handle.
func (c *Camera) GetObject(handle uint32) ([]byte, error) { return c.session.GetObject(handle) }

// DeleteObject deletes handle.
func (c *Camera) DeleteObject(handle uint32, format ptp.ObjectFormat) error {
	return c.session.DeleteObject(handle, format)
}

// GetObjectHandles lists object handles under parent, optionally filtered
// by storage id and format.
func (c *Camera) GetObjectHandles(storageID uint32, format ptp.ObjectFormat, parent uint32) ([]uint32, error) {
	return c.session.GetObjectHandles(storageID, format, parent)
}

// SendObjectInfo stages an ObjectInfo header ahead of SendObject, the
// generic (non-Fuji-vendor-command) transfer path used for backup import.
func (c *Camera) SendObjectInfo(storageID, parent uint32, objectInfo []byte) error {
	return c.session.SendObjectInfo(storageID, parent, objectInfo)
}

// SendObject transfers payload after a matching SendObjectInfo.
func (c *Camera) SendObject(payload []byte) error { return c.session.SendObject(payload) }

// FujiSendObjectInfo stages an ObjectInfo header ahead of FujiSendObject,
// the Fuji vendor command pair used to submit a RAW file for conversion.
func (c *Camera) FujiSendObjectInfo(objectInfo []byte) error {
	return c.session.FujiSendObjectInfo(objectInfo)
}

// FujiSendObject transfers payload after a matching FujiSendObjectInfo.
func (c *Camera) FujiSendObject(payload []byte) error { return c.session.FujiSendObject(payload) }

// ExportBackup retrieves the camera's settings backup blob.
func (c *Camera) ExportBackup() ([]byte, error) {
	if c.caps.ExportBackup == nil {
		return nil, unsupported("backup export")
	}
	return c.caps.ExportBackup(c)
}

// ImportBackup writes a previously-exported settings backup blob back to
// the camera.
func (c *Camera) ImportBackup(data []byte) error {
	if c.caps.ImportBackup == nil {
		return unsupported("backup import")
	}
	return c.caps.ImportBackup(c, data)
}

// GetSimulation reads slot's film-simulation custom setting.
func (c *Camera) GetSimulation(slot fuji.CustomSetting) (*simulation.Simulation, error) {
	if c.caps.GetSimulation == nil {
		return nil, unsupported("reading simulations")
	}
	return c.caps.GetSimulation(c, slot)
}

// SetSimulation overwrites slot's film-simulation custom setting.
func (c *Camera) SetSimulation(slot fuji.CustomSetting, sim *simulation.Simulation) error {
	if c.caps.SetSimulation == nil {
		return unsupported("writing simulations")
	}
	return c.caps.SetSimulation(c, slot, sim)
}

// UpdateSimulation reads slot, applies modify to a clone, and writes the
// result back. On a write failure it restores the original value before
// returning the write error.
func (c *Camera) UpdateSimulation(slot fuji.CustomSetting, modify func(*simulation.Simulation)) error {
	original, err := c.GetSimulation(slot)
	if err != nil {
		return err
	}
	updated := *original
	modify(&updated)
	if err := c.SetSimulation(slot, &updated); err != nil {
		if restoreErr := c.SetSimulation(slot, original); restoreErr != nil {
			return ptperr.Wrap(ptperr.Transport, "restoring simulation after failed update", restoreErr)
		}
		return err
	}
	return nil
}

// Render submits raw for conversion, optionally adjusting its embedded
// profile with modify first, and returns the rendered image bytes in the
// profile's output file type.
func (c *Camera) Render(raw []byte, modify func(*profile.ConversionProfile), draft bool) ([]byte, error) {
	if c.caps.Render == nil {
		return nil, unsupported("rendering")
	}
	return c.caps.Render(c, raw, modify, draft)
}

// renderPollInterval is how often a render poll checks for the rendered
// object to appear.
const renderPollInterval = 100 * time.Millisecond

// PollForRenderedObject polls GetObjectHandles until one handle appears,
// fetches it, deletes it on the device, and returns its payload. Shared by
// every body's Render implementation in package bodies.
func (c *Camera) PollForRenderedObject() ([]byte, error) {
	for {
		handles, err := c.session.GetObjectHandles(^uint32(0), ptp.ObjectFormat(0), 0)
		if err != nil {
			return nil, err
		}
		if len(handles) > 0 {
			handle := handles[0]
			data, err := c.session.GetObject(handle)
			if err != nil {
				return nil, err
			}
			if err := c.session.DeleteObject(handle, ptp.ObjectFormat(0)); err != nil {
				return nil, err
			}
			return data, nil
		}
		time.Sleep(renderPollInterval)
	}
}
