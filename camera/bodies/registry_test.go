package bodies

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karaolidis/fujicli-sub000/fuji"
	"github.com/karaolidis/fujicli-sub000/ptp"
)

func TestTableEntriesAreUnique(t *testing.T) {
	seen := make(map[[2]uint16]string)
	for _, e := range Table {
		key := [2]uint16{uint16(e.Vendor), uint16(e.Product)}
		if existing, ok := seen[key]; ok {
			t.Fatalf("duplicate (vendor, product) %04x:%04x used by both %q and %q", key[0], key[1], existing, e.Name)
		}
		seen[key] = e.Name
		require.Equal(t, ptp.FujifilmVendorID, e.Vendor)
		require.NotEmpty(t, e.Name)
		require.NotNil(t, e.NewCaps)
	}
}

func TestLookupFindsKnownBody(t *testing.T) {
	e, ok := Lookup(ptp.FujifilmVendorID, 0x02FC)
	require.True(t, ok)
	require.Equal(t, "FUJIFILM X-T5", e.Name)
}

func TestLookupMissesUnknownProduct(t *testing.T) {
	_, ok := Lookup(ptp.FujifilmVendorID, 0xFFFF)
	require.False(t, ok)
}

func TestXT5HasFullCapabilitiesAndWidenedChunkSize(t *testing.T) {
	e, ok := Lookup(ptp.FujifilmVendorID, 0x02FC)
	require.True(t, ok)

	caps := e.NewCaps()
	require.Equal(t, x5ChunkSize, caps.ChunkSize)
	require.NotNil(t, caps.ExportBackup)
	require.NotNil(t, caps.ImportBackup)
	require.NotNil(t, caps.GetSimulation)
	require.NotNil(t, caps.SetSimulation)
	require.NotNil(t, caps.Render)
	require.Nil(t, caps.CustomSettingSlots)
}

func TestXS20HasBackupAndSimulationButNoRenderAndTruncatedSlots(t *testing.T) {
	e, ok := Lookup(ptp.FujifilmVendorID, 0x02F7)
	require.True(t, ok)

	caps := e.NewCaps()
	require.Zero(t, caps.ChunkSize)
	require.NotNil(t, caps.ExportBackup)
	require.NotNil(t, caps.ImportBackup)
	require.NotNil(t, caps.GetSimulation)
	require.NotNil(t, caps.SetSimulation)
	require.Nil(t, caps.Render)

	require.NotNil(t, caps.CustomSettingSlots)
	require.Equal(t, []fuji.CustomSetting{fuji.C1, fuji.C2, fuji.C3, fuji.C4}, caps.CustomSettingSlots())
}

func TestMostBodiesHaveBareCapabilities(t *testing.T) {
	e, ok := Lookup(ptp.FujifilmVendorID, 0x02BF) // X-T1
	require.True(t, ok)

	caps := e.NewCaps()
	require.Zero(t, caps.ChunkSize)
	require.Nil(t, caps.CustomSettingSlots)
	require.Nil(t, caps.ExportBackup)
	require.Nil(t, caps.ImportBackup)
	require.Nil(t, caps.GetSimulation)
	require.Nil(t, caps.SetSimulation)
	require.Nil(t, caps.Render)
}

func TestOpenRejectsUnknownDevice(t *testing.T) {
	_, err := Open(ptp.FujifilmVendorID, 0xFFFF)
	require.Error(t, err)
}
