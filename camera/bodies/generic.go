// Package bodies is the capability registry: a static table of supported
// Fujifilm bodies (display name, USB vendor/product id, factory) plus the
// shared capability implementations most bodies wire in unmodified. The
// struct-of-optional-functions dispatch shape is adapted from a
// per-vendor extension table pattern, reworked here to select by
// (vendor, product) instead of by vendor alone, since capability
// presence in the original driver is a per-model choice, not a
// per-generation one.
package bodies

import (
	"github.com/karaolidis/fujicli-sub000/camera"
	"github.com/karaolidis/fujicli-sub000/camera/profile"
	"github.com/karaolidis/fujicli-sub000/camera/simulation"
	"github.com/karaolidis/fujicli-sub000/fuji"
	"github.com/karaolidis/fujicli-sub000/ptp"
	"github.com/karaolidis/fujicli-sub000/ptpcodec"
)

// backupHandle is the fixed object handle the backup blob always occupies.
const backupHandle = 0x0

// genericExportBackup retrieves the settings-backup object at handle 0.
func genericExportBackup(c *camera.Camera) ([]byte, error) {
	if _, err := c.GetObjectInfo(backupHandle); err != nil {
		return nil, err
	}
	return c.GetObject(backupHandle)
}

// genericImportBackup announces and transfers a settings-backup blob via
// the generic (non-Fuji-vendor) SendObjectInfo/SendObject pair.
func genericImportBackup(c *camera.Camera, data []byte) error {
	info, err := camera.BackupObjectInfo(uint32(len(data)))
	if err != nil {
		return err
	}
	if err := c.SendObjectInfo(0, 0, info); err != nil {
		return err
	}
	return c.SendObject(data)
}

// genericGetSimulation reads one custom-setting slot through the
// simulation package's property walk.
func genericGetSimulation(c *camera.Camera, slot fuji.CustomSetting) (*simulation.Simulation, error) {
	return simulation.Get(c, slot)
}

// genericSetSimulation writes one custom-setting slot through the
// simulation package's property walk.
func genericSetSimulation(c *camera.Camera, slot fuji.CustomSetting, sim *simulation.Simulation) error {
	return simulation.Set(c, slot, sim)
}

// genericRender submits raw for conversion: stage the RAF via the Fuji
// vendor SendObjectInfo/SendObject pair, fetch and modify the embedded
// conversion profile, kick off the run, and poll for the rendered object.
func genericRender(c *camera.Camera, raw []byte, modify func(*profile.ConversionProfile), draft bool) ([]byte, error) {
	info, err := camera.RawSubmitObjectInfo(uint32(len(raw)))
	if err != nil {
		return nil, err
	}
	if err := c.FujiSendObjectInfo(info); err != nil {
		return nil, err
	}
	if err := c.FujiSendObject(raw); err != nil {
		return nil, err
	}

	rawProfile, err := c.GetPropRaw(ptp.PropFujiRawConversionProfile)
	if err != nil {
		return nil, err
	}
	prof, err := profile.Decode(rawProfile)
	if err != nil {
		return nil, err
	}
	if modify != nil {
		modify(prof)
	}
	if err := c.SetPropRaw(ptp.PropFujiRawConversionProfile, prof.Encode(nil)); err != nil {
		return nil, err
	}

	run := uint16(0)
	if !draft {
		run = 1
	}
	w := ptpcodec.NewWriter()
	w.WriteU16(run)
	if err := c.SetPropRaw(ptp.PropFujiRawConversionRun, w.Bytes()); err != nil {
		return nil, err
	}

	return c.PollForRenderedObject()
}
