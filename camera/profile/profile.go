// Package profile implements the Fujifilm RAW conversion profile: the
// record a camera consults when rendering a submitted RAW file, keyed by
// the FujiRawConversionProfile device property.
package profile

import (
	"fmt"
	"strings"

	"github.com/karaolidis/fujicli-sub000/camera/simulation"
	"github.com/karaolidis/fujicli-sub000/fuji"
	"github.com/karaolidis/fujicli-sub000/ptpcodec"
	"github.com/karaolidis/fujicli-sub000/ptperr"
)

const (
	expectedNProps   = 29
	expectedMagic    = 0xFF179502
	paddingSize      = 0x1EE
	wireFieldCount   = 28
	encodedFieldSize = wireFieldCount * 4
	// EncodedSize is the fixed byte length of an encoded ConversionProfile:
	// the 504-byte preamble (2 + 8 + 494) plus 28 widened 4-byte fields.
	// The original renderer's try_read_ptp/try_write_ptp always reads and
	// writes white_balance_temperature on the wire even though it surfaces
	// as an absent value at the struct level, so the wire form has 28
	// fields, not 27 (see DESIGN.md).
	EncodedSize = 2 + 8 + paddingSize + encodedFieldSize
)

// ConversionProfile is the 28-field Fujifilm render profile.
type ConversionProfile struct {
	Unknown0 int32

	FileType     fuji.FileType
	Size         fuji.ImageSize
	Quality      fuji.ImageQuality
	ExposureOffset fuji.ExposureOffset

	DynamicRange         fuji.DynamicRange
	DynamicRangePriority fuji.DynamicRangePriority
	Simulation           fuji.FilmSimulation
	Grain                fuji.GrainEffect
	ColorChromeEffect    fuji.ColorChromeEffect

	WhiteBalanceAsShot      fuji.WhiteBalanceAsShot
	WhiteBalance            fuji.WhiteBalance
	WhiteBalanceShiftRed    fuji.WhiteBalanceShift
	WhiteBalanceShiftBlue   fuji.WhiteBalanceShift
	WhiteBalanceTemperature *fuji.WhiteBalanceTemperature

	Highlight fuji.HighlightTone
	Shadow    fuji.ShadowTone
	Color     fuji.Color
	Sharpness fuji.Sharpness

	NoiseReduction          fuji.HighISONR
	LensModulationOptimizer fuji.LensModulationOptimizer
	ColorSpace              fuji.ColorSpace

	MonochromaticColorTemperature fuji.MonochromaticColorShift
	SmoothSkinEffect              fuji.SmoothSkinEffect
	ColorChromeFXBlue             fuji.ColorChromeFXBlue
	MonochromaticColorTint        fuji.MonochromaticColorShift
	Clarity                       fuji.Clarity
	Teleconverter                 fuji.Teleconverter
}

func narrowU32(v uint32, field string) (uint16, error) {
	if v > 0xFFFF {
		return 0, ptperr.Newf(ptperr.InvalidValue, "conversion profile field %s: %d does not fit in 16 bits", field, v)
	}
	return uint16(v), nil
}

func narrowI32(v int32, field string) (int16, error) {
	if v < -0x8000 || v > 0x7FFF {
		return 0, ptperr.Newf(ptperr.InvalidValue, "conversion profile field %s: %d does not fit in 16 bits", field, v)
	}
	return int16(v), nil
}

// Decode parses an encoded ConversionProfile, validating the fixed
// preamble and narrowing each widened field to its declared domain.
func Decode(buf []byte) (*ConversionProfile, error) {
	c := ptpcodec.NewCursor(buf)

	nProps, err := c.ReadI16()
	if err != nil {
		return nil, ptperr.Wrap(ptperr.Malformed, "reading conversion profile header", err)
	}
	if nProps != expectedNProps {
		return nil, ptperr.Newf(ptperr.InvalidValue, "expected %d props, got %d", expectedNProps, nProps)
	}

	magicStr, err := c.ReadExactString(8)
	if err != nil {
		return nil, ptperr.Wrap(ptperr.Malformed, "reading conversion profile magic", err)
	}
	var magic uint32
	if _, err := fmt.Sscanf(strings.ToUpper(magicStr), "%X", &magic); err != nil || magic != expectedMagic {
		return nil, ptperr.Newf(ptperr.InvalidValue, "conversion profile magic %q does not decode to %#X", magicStr, uint32(expectedMagic))
	}

	if _, err := c.ReadBytes(paddingSize); err != nil {
		return nil, ptperr.Wrap(ptperr.Malformed, "reading conversion profile padding", err)
	}

	var p ConversionProfile
	var decodeErr error
	u32field := func(name string) uint16 {
		if decodeErr != nil {
			return 0
		}
		raw, err := c.ReadU32()
		if err != nil {
			decodeErr = err
			return 0
		}
		narrow, err := narrowU32(raw, name)
		if err != nil {
			decodeErr = err
			return 0
		}
		return narrow
	}
	i32field := func(name string) int16 {
		if decodeErr != nil {
			return 0
		}
		raw, err := c.ReadI32()
		if err != nil {
			decodeErr = err
			return 0
		}
		narrow, err := narrowI32(raw, name)
		if err != nil {
			decodeErr = err
			return 0
		}
		return narrow
	}

	unknown0 := int32(0)
	if decodeErr == nil {
		unknown0, decodeErr = c.ReadI32()
	}
	fileType := u32field("file_type")
	size := u32field("size")
	quality := u32field("quality")
	exposureOffset := i32field("exposure_offset")
	dynamicRange := u32field("dynamic_range")
	dynamicRangePriority := u32field("dynamic_range_priority")
	simulation := u32field("simulation")
	grain := u32field("grain")
	colorChromeEffect := u32field("color_chrome_effect")
	whiteBalanceAsShot := u32field("white_balance_as_shot")
	whiteBalance := u32field("white_balance")
	wbShiftRed := i32field("white_balance_shift_red")
	wbShiftBlue := i32field("white_balance_shift_blue")
	wbTemperature := i32field("white_balance_temperature")
	highlight := i32field("highlight")
	shadow := i32field("shadow")
	color := i32field("color")
	sharpness := i32field("sharpness")
	noiseReduction := u32field("noise_reduction")
	lensModulationOptimizer := u32field("lens_modulation_optimizer")
	colorSpace := u32field("color_space")
	monoTemperature := i32field("monochromatic_color_temperature")
	smoothSkinEffect := u32field("smooth_skin_effect")
	colorChromeFXBlue := u32field("color_chrome_fx_blue")
	monoTint := i32field("monochromatic_color_tint")
	clarity := i32field("clarity")
	teleconverter := u32field("teleconverter")

	if decodeErr != nil {
		return nil, ptperr.Wrap(ptperr.Malformed, "reading conversion profile fields", decodeErr)
	}
	if err := c.ExpectEnd(); err != nil {
		return nil, err
	}

	p.Unknown0 = unknown0
	if p.FileType, err = fuji.FileTypeFromWire(fileType); err != nil {
		return nil, err
	}
	if p.Size, err = fuji.ImageSizeFromWire(size); err != nil {
		return nil, err
	}
	if p.Quality, err = fuji.ImageQualityFromWire(quality); err != nil {
		return nil, err
	}
	if p.ExposureOffset, err = fuji.ExposureOffsetFromRaw(exposureOffset); err != nil {
		return nil, err
	}
	if p.DynamicRange, err = fuji.DynamicRangeFromWire(dynamicRange); err != nil {
		return nil, err
	}
	if p.DynamicRangePriority, err = fuji.DynamicRangePriorityFromWire(dynamicRangePriority); err != nil {
		return nil, err
	}
	if p.Simulation, err = fuji.FilmSimulationFromWire(simulation); err != nil {
		return nil, err
	}
	if p.Grain, err = fuji.GrainEffectFromWire(grain); err != nil {
		return nil, err
	}
	if p.ColorChromeEffect, err = fuji.ColorChromeEffectFromWire(colorChromeEffect); err != nil {
		return nil, err
	}
	if p.WhiteBalanceAsShot, err = fuji.WhiteBalanceAsShotFromWire(whiteBalanceAsShot); err != nil {
		return nil, err
	}
	if p.WhiteBalance, err = fuji.WhiteBalanceFromWire(whiteBalance); err != nil {
		return nil, err
	}
	if p.WhiteBalanceShiftRed, err = fuji.WhiteBalanceShiftFromRaw(wbShiftRed); err != nil {
		return nil, err
	}
	if p.WhiteBalanceShiftBlue, err = fuji.WhiteBalanceShiftFromRaw(wbShiftBlue); err != nil {
		return nil, err
	}
	if p.WhiteBalance == fuji.WBTemperature {
		temp, err := fuji.WhiteBalanceTemperatureFromRaw(wbTemperature)
		if err != nil {
			return nil, err
		}
		p.WhiteBalanceTemperature = &temp
	}
	if p.Highlight, err = fuji.HighlightToneFromRaw(highlight); err != nil {
		return nil, err
	}
	if p.Shadow, err = fuji.ShadowToneFromRaw(shadow); err != nil {
		return nil, err
	}
	if p.Color, err = fuji.ColorFromRaw(color); err != nil {
		return nil, err
	}
	if p.Sharpness, err = fuji.SharpnessFromRaw(sharpness); err != nil {
		return nil, err
	}
	if p.NoiseReduction, err = fuji.HighISONRFromRaw(noiseReduction); err != nil {
		return nil, err
	}
	if p.LensModulationOptimizer, err = fuji.LensModulationOptimizerFromWire(lensModulationOptimizer); err != nil {
		return nil, err
	}
	if p.ColorSpace, err = fuji.ColorSpaceFromWire(colorSpace); err != nil {
		return nil, err
	}
	if p.MonochromaticColorTemperature, err = fuji.MonochromaticColorShiftFromRaw(monoTemperature); err != nil {
		return nil, err
	}
	if p.SmoothSkinEffect, err = fuji.SmoothSkinEffectFromWire(smoothSkinEffect); err != nil {
		return nil, err
	}
	if p.ColorChromeFXBlue, err = fuji.ColorChromeFXBlueFromWire(colorChromeFXBlue); err != nil {
		return nil, err
	}
	if p.MonochromaticColorTint, err = fuji.MonochromaticColorShiftFromRaw(monoTint); err != nil {
		return nil, err
	}
	if p.Clarity, err = fuji.ClarityFromRaw(clarity); err != nil {
		return nil, err
	}
	if p.Teleconverter, err = fuji.TeleconverterFromWire(teleconverter); err != nil {
		return nil, err
	}

	return &p, nil
}

// Encode serializes p in the same fixed field order Decode reads. If
// WhiteBalanceAsShot is False but WhiteBalance is AsShot (the user altered
// WB without picking a mode), warnLog is invoked with a diagnostic message
// rather than failing the encode; pass nil to ignore.
func (p *ConversionProfile) Encode(warnLog func(string)) []byte {
	w := ptpcodec.NewWriter()
	w.WriteI16(expectedNProps)
	w.WriteExactString(fmt.Sprintf("%X", uint32(expectedMagic)))
	w.WriteZeros(paddingSize)

	w.WriteI32(p.Unknown0)
	w.WriteU32(uint32(p.FileType))
	w.WriteU32(uint32(p.Size))
	w.WriteU32(uint32(p.Quality))
	w.WriteI32(int32(p.ExposureOffset.Raw()))
	w.WriteU32(uint32(p.DynamicRange))
	w.WriteU32(uint32(p.DynamicRangePriority))
	w.WriteU32(uint32(p.Simulation))
	w.WriteU32(uint32(p.Grain))
	w.WriteU32(uint32(p.ColorChromeEffect))

	if p.WhiteBalanceAsShot == fuji.WhiteBalanceAsShotFalse && p.WhiteBalance == fuji.WBAsShot && warnLog != nil {
		warnLog("white balance has been altered but no explicit white balance mode has been set")
	}
	w.WriteU32(uint32(p.WhiteBalanceAsShot))
	w.WriteU32(uint32(p.WhiteBalance))
	w.WriteI32(int32(p.WhiteBalanceShiftRed.Raw()))
	w.WriteI32(int32(p.WhiteBalanceShiftBlue.Raw()))
	if p.WhiteBalanceTemperature != nil {
		w.WriteI32(int32(p.WhiteBalanceTemperature.Raw()))
	} else {
		w.WriteI32(0)
	}
	w.WriteI32(int32(p.Highlight.Raw()))
	w.WriteI32(int32(p.Shadow.Raw()))
	w.WriteI32(int32(p.Color.Raw()))
	w.WriteI32(int32(p.Sharpness.Raw()))
	w.WriteU32(uint32(p.NoiseReduction.Raw()))
	w.WriteU32(uint32(p.LensModulationOptimizer))
	w.WriteU32(uint32(p.ColorSpace))
	w.WriteI32(int32(p.MonochromaticColorTemperature.Raw()))
	w.WriteU32(uint32(p.SmoothSkinEffect))
	w.WriteU32(uint32(p.ColorChromeFXBlue))
	w.WriteI32(int32(p.MonochromaticColorTint.Raw()))
	w.WriteI32(int32(p.Clarity.Raw()))
	w.WriteU32(uint32(p.Teleconverter))

	return w.Bytes()
}

// SetQuality applies the profile's "no +RAW variants" collapse:
// FineRaw/Fine both store Fine, NormalRaw/Normal both store Normal.
func (p *ConversionProfile) SetQuality(v fuji.ImageQuality) {
	p.Quality = v.CollapseForProfile()
}

// SetDynamicRange applies the HDR800+ split: setting HDR800Plus actually
// stores HDR800 plus DynamicRangePriority = Plus.
func (p *ConversionProfile) SetDynamicRange(v fuji.DynamicRange) {
	if v == fuji.DR800Plus {
		p.DynamicRange = fuji.DR800
		p.DynamicRangePriority = fuji.DRPPlus
		return
	}
	p.DynamicRange = v
}

// SetWhiteBalance sets WhiteBalance and derives WhiteBalanceAsShot from it.
func (p *ConversionProfile) SetWhiteBalance(v fuji.WhiteBalance) {
	if v == fuji.WBAsShot {
		p.WhiteBalanceAsShot = fuji.WhiteBalanceAsShotTrue
	} else {
		p.WhiteBalanceAsShot = fuji.WhiteBalanceAsShotFalse
	}
	p.WhiteBalance = v
}

// SetWhiteBalanceShiftRed sets the red WB shift axis, clearing
// WhiteBalanceAsShot as the device does whenever a shift is edited
// directly.
func (p *ConversionProfile) SetWhiteBalanceShiftRed(v fuji.WhiteBalanceShift) {
	p.WhiteBalanceAsShot = fuji.WhiteBalanceAsShotFalse
	p.WhiteBalanceShiftRed = v
}

// SetWhiteBalanceShiftBlue sets the blue WB shift axis, clearing
// WhiteBalanceAsShot.
func (p *ConversionProfile) SetWhiteBalanceShiftBlue(v fuji.WhiteBalanceShift) {
	p.WhiteBalanceAsShot = fuji.WhiteBalanceAsShotFalse
	p.WhiteBalanceShiftBlue = v
}

// SetWhiteBalanceTemperature sets the Kelvin WB control, clearing
// WhiteBalanceAsShot.
func (p *ConversionProfile) SetWhiteBalanceTemperature(v fuji.WhiteBalanceTemperature) {
	p.WhiteBalanceAsShot = fuji.WhiteBalanceAsShotFalse
	p.WhiteBalanceTemperature = &v
}

// ApplySimulation copies a stored custom-setting bundle onto p, field by
// field, through the same setters a caller would use directly, so the
// cross-field invariants above (quality collapse, HDR800+ split, white
// balance mode derivation) apply exactly as they would to a manual edit.
// The field order matches the original renderer's set_from_simulation.
func (p *ConversionProfile) ApplySimulation(sim *simulation.Simulation) {
	p.Size = sim.Size
	p.SetQuality(sim.Quality)
	p.Simulation = sim.FilmSimulation
	p.MonochromaticColorTemperature = sim.MonochromaticColorTemperature
	p.MonochromaticColorTint = sim.MonochromaticColorTint
	p.Highlight = sim.Highlight
	p.Shadow = sim.Shadow
	p.Color = sim.Color
	p.Sharpness = sim.Sharpness
	p.Clarity = sim.Clarity
	p.SetWhiteBalance(sim.WhiteBalance)
	p.SetWhiteBalanceShiftRed(sim.WhiteBalanceShiftRed)
	p.SetWhiteBalanceShiftBlue(sim.WhiteBalanceShiftBlue)
	p.SetWhiteBalanceTemperature(sim.WhiteBalanceTemperature)
	p.SetDynamicRange(sim.DynamicRange)
	p.DynamicRangePriority = sim.DynamicRangePriority
	p.NoiseReduction = sim.NoiseReduction
	p.Grain = sim.Grain
	p.ColorChromeEffect = sim.ColorChromeEffect
	p.ColorChromeFXBlue = sim.ColorChromeFXBlue
	p.SmoothSkinEffect = sim.SmoothSkinEffect
	p.LensModulationOptimizer = sim.LensModulationOptimizer
	p.ColorSpace = sim.ColorSpace
}
