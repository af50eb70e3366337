package profile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karaolidis/fujicli-sub000/camera/simulation"
	"github.com/karaolidis/fujicli-sub000/fuji"
)

func validProfile(t *testing.T) *ConversionProfile {
	t.Helper()

	highlight, err := fuji.NewHighlightTone(0)
	require.NoError(t, err)
	shadow, err := fuji.NewShadowTone(0)
	require.NoError(t, err)
	color, err := fuji.NewColor(0)
	require.NoError(t, err)
	sharpness, err := fuji.NewSharpness(0)
	require.NoError(t, err)
	clarity, err := fuji.NewClarity(0)
	require.NoError(t, err)
	noiseReduction, err := fuji.NewHighISONR(0)
	require.NoError(t, err)
	exposureOffset, err := fuji.ExposureOffsetFromRaw(0)
	require.NoError(t, err)
	monoTemp, err := fuji.NewMonochromaticColorShift(0)
	require.NoError(t, err)
	monoTint, err := fuji.NewMonochromaticColorShift(0)
	require.NoError(t, err)
	wbShiftRed, err := fuji.NewWhiteBalanceShift(0)
	require.NoError(t, err)
	wbShiftBlue, err := fuji.NewWhiteBalanceShift(0)
	require.NoError(t, err)

	return &ConversionProfile{
		FileType:                ptrFileType(t),
		Size:                    fuji.Size7728x5152,
		Quality:                 fuji.QualityFine,
		ExposureOffset:          exposureOffset,
		DynamicRange:            fuji.DR100,
		DynamicRangePriority:    fuji.DRPOff,
		Simulation:              fuji.Provia,
		Grain:                   fuji.GrainOff,
		ColorChromeEffect:       fuji.ColorChromeOff,
		WhiteBalanceAsShot:      fuji.WhiteBalanceAsShotTrue,
		WhiteBalance:            fuji.WBAsShot,
		WhiteBalanceShiftRed:    wbShiftRed,
		WhiteBalanceShiftBlue:   wbShiftBlue,
		Highlight:               highlight,
		Shadow:                  shadow,
		Color:                   color,
		Sharpness:               sharpness,
		NoiseReduction:          noiseReduction,
		LensModulationOptimizer: fuji.LensModulationOptimizerOff,
		ColorSpace:              fuji.SRGB,
		MonochromaticColorTemperature: monoTemp,
		SmoothSkinEffect:              fuji.SmoothSkinOff,
		ColorChromeFXBlue:             fuji.ColorChromeFXBlueOff,
		MonochromaticColorTint:        monoTint,
		Clarity:                       clarity,
		Teleconverter:                 fuji.TeleconverterOff,
	}
}

func ptrFileType(t *testing.T) fuji.FileType {
	t.Helper()
	ft, err := fuji.FileTypeFromWire(uint16(fuji.Jpeg))
	require.NoError(t, err)
	return ft
}

func TestEncodedSizeMatchesEncodeOutput(t *testing.T) {
	p := validProfile(t)
	buf := p.Encode(nil)
	require.Len(t, buf, EncodedSize)
	require.Equal(t, 616, EncodedSize)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := validProfile(t)
	buf := p.Encode(nil)

	got, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestDecodeRejectsWrongPropCount(t *testing.T) {
	p := validProfile(t)
	buf := p.Encode(nil)
	buf[0] = 0x00
	buf[1] = 0x00 // corrupt the leading i16 prop count

	_, err := Decode(buf)
	require.Error(t, err)
}

func TestSetQualityCollapsesPlusRawVariants(t *testing.T) {
	p := validProfile(t)

	p.SetQuality(fuji.QualityFineRaw)
	require.Equal(t, fuji.QualityFine, p.Quality)

	p.SetQuality(fuji.QualityNormalRaw)
	require.Equal(t, fuji.QualityNormal, p.Quality)
}

func TestSetDynamicRangeSplitsHDR800Plus(t *testing.T) {
	p := validProfile(t)

	p.SetDynamicRange(fuji.DR800Plus)
	require.Equal(t, fuji.DR800, p.DynamicRange)
	require.Equal(t, fuji.DRPPlus, p.DynamicRangePriority)

	p.SetDynamicRange(fuji.DR400)
	require.Equal(t, fuji.DR400, p.DynamicRange)
	// Priority from the previous HDR800+ split is left untouched by a
	// plain DynamicRange set, matching the original's field-at-a-time
	// setters.
	require.Equal(t, fuji.DRPPlus, p.DynamicRangePriority)
}

func TestSetWhiteBalanceDerivesAsShotFlag(t *testing.T) {
	p := validProfile(t)

	p.SetWhiteBalance(fuji.WBAsShot)
	require.Equal(t, fuji.WhiteBalanceAsShotTrue, p.WhiteBalanceAsShot)

	p.SetWhiteBalance(fuji.WBTemperature)
	require.Equal(t, fuji.WhiteBalanceAsShotFalse, p.WhiteBalanceAsShot)
}

func TestWhiteBalanceShiftSettersClearAsShot(t *testing.T) {
	p := validProfile(t)
	p.WhiteBalanceAsShot = fuji.WhiteBalanceAsShotTrue

	shift, err := fuji.NewWhiteBalanceShift(3)
	require.NoError(t, err)
	p.SetWhiteBalanceShiftRed(shift)
	require.Equal(t, fuji.WhiteBalanceAsShotFalse, p.WhiteBalanceAsShot)

	p.WhiteBalanceAsShot = fuji.WhiteBalanceAsShotTrue
	p.SetWhiteBalanceShiftBlue(shift)
	require.Equal(t, fuji.WhiteBalanceAsShotFalse, p.WhiteBalanceAsShot)
}

func TestSetWhiteBalanceTemperatureClearsAsShotAndSetsPointer(t *testing.T) {
	p := validProfile(t)
	p.WhiteBalanceAsShot = fuji.WhiteBalanceAsShotTrue

	temp, err := fuji.NewWhiteBalanceTemperature(6500)
	require.NoError(t, err)
	p.SetWhiteBalanceTemperature(temp)

	require.Equal(t, fuji.WhiteBalanceAsShotFalse, p.WhiteBalanceAsShot)
	require.NotNil(t, p.WhiteBalanceTemperature)
	require.Equal(t, temp, *p.WhiteBalanceTemperature)
}

func TestApplySimulationOrdersDynamicRangeBeforePriority(t *testing.T) {
	p := validProfile(t)

	name, err := fuji.NewCustomSettingName("Recipe")
	require.NoError(t, err)
	sim := &simulation.Simulation{
		Name:                 name,
		Size:                 fuji.Size7728x5152,
		Quality:              fuji.QualityFineRaw,
		FilmSimulation:       fuji.Velvia,
		DynamicRange:         fuji.DR800Plus,
		DynamicRangePriority: fuji.DRPOff,
		WhiteBalance:         fuji.WBTemperature,
	}

	p.ApplySimulation(sim)

	// The collapse and HDR800+ split both fire through ApplySimulation's
	// use of the real setters.
	require.Equal(t, fuji.QualityFine, p.Quality)
	require.Equal(t, fuji.DR800, p.DynamicRange)
	// sim.DynamicRangePriority is asserted directly after SetDynamicRange,
	// overriding the Plus the split would otherwise have set.
	require.Equal(t, fuji.DRPOff, p.DynamicRangePriority)
	require.Equal(t, fuji.WhiteBalanceAsShotFalse, p.WhiteBalanceAsShot)
}
