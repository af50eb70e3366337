package camera

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karaolidis/fujicli-sub000/camera/simulation"
	"github.com/karaolidis/fujicli-sub000/fuji"
	"github.com/karaolidis/fujicli-sub000/ptperr"
)

func TestCustomSettingSlotsDefaultsToAllSeven(t *testing.T) {
	c := New("test body", nil, Capabilities{})
	require.Equal(t, fuji.AllCustomSettings, c.CustomSettingSlots())
}

func TestCustomSettingSlotsUsesOverride(t *testing.T) {
	override := func() []fuji.CustomSetting { return []fuji.CustomSetting{fuji.C1, fuji.C2} }
	c := New("test body", nil, Capabilities{CustomSettingSlots: override})
	require.Equal(t, []fuji.CustomSetting{fuji.C1, fuji.C2}, c.CustomSettingSlots())
}

func TestExportBackupUnsupportedWithoutCapability(t *testing.T) {
	c := New("test body", nil, Capabilities{})
	_, err := c.ExportBackup()
	require.Error(t, err)
	require.Equal(t, ptperr.Unsupported, err.(*ptperr.Error).Kind)
}

func TestImportBackupUnsupportedWithoutCapability(t *testing.T) {
	c := New("test body", nil, Capabilities{})
	err := c.ImportBackup([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestRenderUnsupportedWithoutCapability(t *testing.T) {
	c := New("test body", nil, Capabilities{})
	_, err := c.Render([]byte{1, 2, 3}, nil, false)
	require.Error(t, err)
}

func TestGetSimulationDelegatesToCapability(t *testing.T) {
	var gotSlot fuji.CustomSetting
	want := &simulation.Simulation{}
	c := New("test body", nil, Capabilities{
		GetSimulation: func(_ *Camera, slot fuji.CustomSetting) (*simulation.Simulation, error) {
			gotSlot = slot
			return want, nil
		},
	})

	got, err := c.GetSimulation(fuji.C5)
	require.NoError(t, err)
	require.Same(t, want, got)
	require.Equal(t, fuji.C5, gotSlot)
}

func TestUpdateSimulationAppliesModifyThenWrites(t *testing.T) {
	name, err := fuji.NewCustomSettingName("Original")
	require.NoError(t, err)
	original := &simulation.Simulation{Name: name}

	var written *simulation.Simulation
	c := New("test body", nil, Capabilities{
		GetSimulation: func(*Camera, fuji.CustomSetting) (*simulation.Simulation, error) {
			clone := *original
			return &clone, nil
		},
		SetSimulation: func(_ *Camera, _ fuji.CustomSetting, sim *simulation.Simulation) error {
			written = sim
			return nil
		},
	})

	newName, err := fuji.NewCustomSettingName("Updated")
	require.NoError(t, err)
	err = c.UpdateSimulation(fuji.C1, func(s *simulation.Simulation) { s.Name = newName })
	require.NoError(t, err)
	require.NotNil(t, written)
	require.Equal(t, newName, written.Name)
}

func TestUpdateSimulationRestoresOnWriteFailureAndReturnsOriginalError(t *testing.T) {
	name, err := fuji.NewCustomSettingName("Original")
	require.NoError(t, err)
	original := &simulation.Simulation{Name: name}

	writeErr := ptperr.New(ptperr.Transport, "device refused write")
	var restoredTo *simulation.Simulation
	writeCount := 0
	c := New("test body", nil, Capabilities{
		GetSimulation: func(*Camera, fuji.CustomSetting) (*simulation.Simulation, error) {
			clone := *original
			return &clone, nil
		},
		SetSimulation: func(_ *Camera, _ fuji.CustomSetting, sim *simulation.Simulation) error {
			writeCount++
			if writeCount == 1 {
				return writeErr
			}
			restoredTo = sim
			return nil
		},
	})

	err = c.UpdateSimulation(fuji.C1, func(s *simulation.Simulation) { s.Name = fuji.CustomSettingName("Broken") })
	require.ErrorIs(t, err, writeErr)
	require.Equal(t, 2, writeCount)
	require.NotNil(t, restoredTo)
	require.Equal(t, original.Name, restoredTo.Name)
}
