package bodies

import (
	"github.com/google/gousb"

	"github.com/karaolidis/fujicli-sub000/camera"
	"github.com/karaolidis/fujicli-sub000/fuji"
	"github.com/karaolidis/fujicli-sub000/ptp"
	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// Entry is one supported body: display name, USB (vendor, product) id
// pair, and the factory that builds its capability set.
type Entry struct {
	Name    string
	Vendor  gousb.ID
	Product gousb.ID
	NewCaps func() camera.Capabilities
}

func bareCaps() camera.Capabilities { return camera.Capabilities{} }

// x20SimulationSlots truncates the usual seven custom-setting slots to
// the first four, matching the X-S20's on-body simulation bank.
func x20SimulationSlots() []fuji.CustomSetting {
	return append([]fuji.CustomSetting(nil), fuji.AllCustomSettings[:4]...)
}

func backupAndSimulationCaps() camera.Capabilities {
	return camera.Capabilities{
		CustomSettingSlots: x20SimulationSlots,
		ExportBackup:       genericExportBackup,
		ImportBackup:       genericImportBackup,
		GetSimulation:      genericGetSimulation,
		SetSimulation:      genericSetSimulation,
	}
}

// x5ChunkSize is the X-T5's bulk transfer chunk size override.
const x5ChunkSize = 16128 * 1024

func fullCaps() camera.Capabilities {
	return camera.Capabilities{
		ChunkSize:     x5ChunkSize,
		ExportBackup:  genericExportBackup,
		ImportBackup:  genericImportBackup,
		GetSimulation: genericGetSimulation,
		SetSimulation: genericSetSimulation,
		Render:        genericRender,
	}
}

// Table lists every body this driver recognizes. Capability presence
// mirrors the original driver's per-model opt-in almost exactly: every
// body below has an empty capability set except the X-S20 (backup and
// simulation management, no render) and the X-T5 (all three, plus a
// wider bulk chunk size).
var Table = []Entry{
	{Name: "FUJIFILM X-E1", Vendor: ptp.FujifilmVendorID, Product: 0x0283, NewCaps: bareCaps},
	{Name: "FUJIFILM X-M1", Vendor: ptp.FujifilmVendorID, Product: 0x02B6, NewCaps: bareCaps},
	{Name: "FUJIFILM X-T1", Vendor: ptp.FujifilmVendorID, Product: 0x02BF, NewCaps: bareCaps},
	{Name: "FUJIFILM X-T10", Vendor: ptp.FujifilmVendorID, Product: 0x02C8, NewCaps: bareCaps},
	{Name: "FUJIFILM X-E2", Vendor: ptp.FujifilmVendorID, Product: 0x02B5, NewCaps: bareCaps},
	{Name: "FUJIFILM X70", Vendor: ptp.FujifilmVendorID, Product: 0x02BA, NewCaps: bareCaps},
	{Name: "FUJIFILM X-Pro2", Vendor: ptp.FujifilmVendorID, Product: 0x02CB, NewCaps: bareCaps},
	{Name: "FUJIFILM X-T2", Vendor: ptp.FujifilmVendorID, Product: 0x02CD, NewCaps: bareCaps},
	{Name: "FUJIFILM X-T20", Vendor: ptp.FujifilmVendorID, Product: 0x02D4, NewCaps: bareCaps},
	{Name: "FUJIFILM X100F", Vendor: ptp.FujifilmVendorID, Product: 0x02D1, NewCaps: bareCaps},
	{Name: "FUJIFILM X-E3", Vendor: ptp.FujifilmVendorID, Product: 0x02D6, NewCaps: bareCaps},
	{Name: "FUJIFILM X-H1", Vendor: ptp.FujifilmVendorID, Product: 0x02D7, NewCaps: bareCaps},
	{Name: "FUJIFILM X-T3", Vendor: ptp.FujifilmVendorID, Product: 0x02DD, NewCaps: bareCaps},
	{Name: "FUJIFILM X-Pro3", Vendor: ptp.FujifilmVendorID, Product: 0x02E4, NewCaps: bareCaps},
	{Name: "FUJIFILM X100V", Vendor: ptp.FujifilmVendorID, Product: 0x02E5, NewCaps: bareCaps},
	{Name: "FUJIFILM X-T4", Vendor: ptp.FujifilmVendorID, Product: 0x02E6, NewCaps: bareCaps},
	{Name: "FUJIFILM X-E4", Vendor: ptp.FujifilmVendorID, Product: 0x02E8, NewCaps: bareCaps},
	{Name: "FUJIFILM X-S10", Vendor: ptp.FujifilmVendorID, Product: 0x02EA, NewCaps: bareCaps},
	{Name: "FUJIFILM X-H2S", Vendor: ptp.FujifilmVendorID, Product: 0x02F0, NewCaps: bareCaps},
	{Name: "FUJIFILM X-H2", Vendor: ptp.FujifilmVendorID, Product: 0x02F2, NewCaps: bareCaps},
	{Name: "FUJIFILM X-S20", Vendor: ptp.FujifilmVendorID, Product: 0x02F7, NewCaps: backupAndSimulationCaps},
	{Name: "FUJIFILM X-T5", Vendor: ptp.FujifilmVendorID, Product: 0x02FC, NewCaps: fullCaps},
	{Name: "FUJIFILM X100VI", Vendor: ptp.FujifilmVendorID, Product: 0x0305, NewCaps: bareCaps},
}

// Lookup finds the table entry matching a (vendor, product) pair.
func Lookup(vendor, product gousb.ID) (Entry, bool) {
	for _, e := range Table {
		if e.Vendor == vendor && e.Product == product {
			return e, true
		}
	}
	return Entry{}, false
}

// sessionID is the PTP session id this driver opens every session with.
// A single persistent host never needs more than one, so it is always 1.
const sessionID = 1

// Open claims the USB device matching (vendor, product), opens a PTP
// session against it, and returns a Camera configured with that body's
// capability set.
func Open(vendor, product gousb.ID) (*camera.Camera, error) {
	entry, ok := Lookup(vendor, product)
	if !ok {
		return nil, ptperr.Newf(ptperr.Unsupported, "no driver support for USB device %04x:%04x", uint16(vendor), uint16(product))
	}

	transport, err := ptp.OpenUSB(vendor, product)
	if err != nil {
		return nil, err
	}

	caps := entry.NewCaps()
	engine := ptp.NewEngine(transport, caps.ChunkSize, nil)
	session := ptp.NewSession(engine, sessionID)
	if err := session.Open(); err != nil {
		return nil, err
	}

	return camera.New(entry.Name, session, caps), nil
}
