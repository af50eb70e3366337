// Package simulation implements the film-simulation custom-setting
// record: the 24-property bundle a camera keeps per custom-setting slot,
// and the get/set/update/serialize operations that drive it.
package simulation

import (
	"encoding/json"

	"github.com/karaolidis/fujicli-sub000/fuji"
	"github.com/karaolidis/fujicli-sub000/ptp"
	"github.com/karaolidis/fujicli-sub000/ptpcodec"
	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// PropertyAccessor is the slice of *camera.Camera that Get/Set need. It
// exists so this package doesn't import camera, which imports this
// package back to implement Camera.GetSimulation/SetSimulation.
type PropertyAccessor interface {
	GetPropRaw(code ptp.DevicePropCode) ([]byte, error)
	SetPropRaw(code ptp.DevicePropCode, value []byte) error
}

// Simulation is one custom-setting slot's full film-simulation bundle,
// serialized as camelCase JSON for import/export. It mirrors the original
// renderer's get_simulation/set_simulation, which issue one GET/SET per
// field below, including Name — 24 calls, 24 fields (see DESIGN.md for
// why this count differs from an earlier draft).
type Simulation struct {
	Name    fuji.CustomSettingName `json:"name"`
	Size    fuji.ImageSize         `json:"size"`
	Quality fuji.ImageQuality      `json:"quality"`

	FilmSimulation                fuji.FilmSimulation           `json:"filmSimulation"`
	MonochromaticColorTemperature fuji.MonochromaticColorShift `json:"monochromaticColorTemperature"`
	MonochromaticColorTint        fuji.MonochromaticColorShift `json:"monochromaticColorTint"`

	DynamicRangePriority fuji.DynamicRangePriority `json:"dynamicRangePriority"`
	DynamicRange         fuji.DynamicRange         `json:"dynamicRange"`

	Highlight fuji.HighlightTone `json:"highlight"`
	Shadow    fuji.ShadowTone    `json:"shadow"`
	Color     fuji.Color         `json:"color"`
	Sharpness fuji.Sharpness     `json:"sharpness"`
	Clarity   fuji.Clarity       `json:"clarity"`

	NoiseReduction    fuji.HighISONR    `json:"noiseReduction"`
	Grain             fuji.GrainEffect  `json:"grain"`
	ColorChromeEffect fuji.ColorChromeEffect `json:"colorChromeEffect"`
	ColorChromeFXBlue fuji.ColorChromeFXBlue `json:"colorChromeFXBlue"`
	SmoothSkinEffect  fuji.SmoothSkinEffect  `json:"smoothSkinEffect"`

	WhiteBalance            fuji.WhiteBalance            `json:"whiteBalance"`
	WhiteBalanceShiftRed    fuji.WhiteBalanceShift       `json:"whiteBalanceShiftRed"`
	WhiteBalanceShiftBlue   fuji.WhiteBalanceShift       `json:"whiteBalanceShiftBlue"`
	WhiteBalanceTemperature fuji.WhiteBalanceTemperature `json:"whiteBalanceTemperature"`

	LensModulationOptimizer fuji.LensModulationOptimizer `json:"lensModulationOptimizer"`
	ColorSpace              fuji.ColorSpace               `json:"colorSpace"`
}

func getU16(a PropertyAccessor, code ptp.DevicePropCode) (uint16, error) {
	raw, err := a.GetPropRaw(code)
	if err != nil {
		return 0, err
	}
	cur := ptpcodec.NewCursor(raw)
	v, err := cur.ReadU16()
	if err != nil {
		return 0, err
	}
	return v, cur.ExpectEnd()
}

func getI16(a PropertyAccessor, code ptp.DevicePropCode) (int16, error) {
	raw, err := a.GetPropRaw(code)
	if err != nil {
		return 0, err
	}
	cur := ptpcodec.NewCursor(raw)
	v, err := cur.ReadI16()
	if err != nil {
		return 0, err
	}
	return v, cur.ExpectEnd()
}

func setU16(a PropertyAccessor, code ptp.DevicePropCode, v uint16) error {
	w := ptpcodec.NewWriter()
	w.WriteU16(v)
	return a.SetPropRaw(code, w.Bytes())
}

func setI16(a PropertyAccessor, code ptp.DevicePropCode, v int16) error {
	w := ptpcodec.NewWriter()
	w.WriteI16(v)
	return a.SetPropRaw(code, w.Bytes())
}

// Get reads slot's full simulation bundle: it selects the slot via
// FujiCustomSetting, then issues one GetPropRaw per field below, in the
// order the original renderer's get_simulation reads them.
func Get(a PropertyAccessor, slot fuji.CustomSetting) (*Simulation, error) {
	if err := setU16(a, ptp.PropFujiCustomSetting, uint16(slot)); err != nil {
		return nil, ptperr.Wrap(ptperr.Transport, "selecting custom setting slot", err)
	}

	var sim Simulation
	var err error
	get := func(f func() error) {
		if err == nil {
			err = f()
		}
	}

	get(func() error {
		raw, e := a.GetPropRaw(ptp.PropFujiCustomSettingName)
		if e != nil {
			return e
		}
		cur := ptpcodec.NewCursor(raw)
		s, e := cur.ReadString()
		if e != nil {
			return e
		}
		if e := cur.ExpectEnd(); e != nil {
			return e
		}
		name, e := fuji.NewCustomSettingName(s)
		if e != nil {
			return e
		}
		sim.Name = name
		return nil
	})
	get(func() (e error) {
		w, e := getU16(a, ptp.PropFujiCustomSettingImageSize)
		if e != nil {
			return e
		}
		sim.Size, e = fuji.ImageSizeFromWire(w)
		return e
	})
	get(func() (e error) {
		w, e := getU16(a, ptp.PropFujiCustomSettingImageQuality)
		if e != nil {
			return e
		}
		sim.Quality, e = fuji.ImageQualityFromWire(w)
		return e
	})
	get(func() (e error) {
		w, e := getU16(a, ptp.PropFujiCustomSettingFilmSimulation)
		if e != nil {
			return e
		}
		sim.FilmSimulation, e = fuji.FilmSimulationFromWire(w)
		return e
	})
	get(func() (e error) {
		raw, e := getI16(a, ptp.PropFujiCustomSettingMonochromaticColorTemperature)
		if e != nil {
			return e
		}
		sim.MonochromaticColorTemperature, e = fuji.MonochromaticColorShiftFromRaw(raw)
		return e
	})
	get(func() (e error) {
		raw, e := getI16(a, ptp.PropFujiCustomSettingMonochromaticColorTint)
		if e != nil {
			return e
		}
		sim.MonochromaticColorTint, e = fuji.MonochromaticColorShiftFromRaw(raw)
		return e
	})
	get(func() (e error) {
		w, e := getU16(a, ptp.PropFujiCustomSettingDynamicRangePriority)
		if e != nil {
			return e
		}
		sim.DynamicRangePriority, e = fuji.DynamicRangePriorityFromWire(w)
		return e
	})
	get(func() (e error) {
		w, e := getU16(a, ptp.PropFujiCustomSettingDynamicRange)
		if e != nil {
			return e
		}
		sim.DynamicRange, e = fuji.DynamicRangeFromWire(w)
		return e
	})
	get(func() (e error) {
		raw, e := getI16(a, ptp.PropFujiCustomSettingHighlightTone)
		if e != nil {
			return e
		}
		sim.Highlight, e = fuji.HighlightToneFromRaw(raw)
		return e
	})
	get(func() (e error) {
		raw, e := getI16(a, ptp.PropFujiCustomSettingShadowTone)
		if e != nil {
			return e
		}
		sim.Shadow, e = fuji.ShadowToneFromRaw(raw)
		return e
	})
	get(func() (e error) {
		raw, e := getI16(a, ptp.PropFujiCustomSettingColor)
		if e != nil {
			return e
		}
		sim.Color, e = fuji.ColorFromRaw(raw)
		return e
	})
	get(func() (e error) {
		raw, e := getI16(a, ptp.PropFujiCustomSettingSharpness)
		if e != nil {
			return e
		}
		sim.Sharpness, e = fuji.SharpnessFromRaw(raw)
		return e
	})
	get(func() (e error) {
		raw, e := getI16(a, ptp.PropFujiCustomSettingClarity)
		if e != nil {
			return e
		}
		sim.Clarity, e = fuji.ClarityFromRaw(raw)
		return e
	})
	get(func() (e error) {
		w, e := getU16(a, ptp.PropFujiCustomSettingHighISONR)
		if e != nil {
			return e
		}
		sim.NoiseReduction, e = fuji.HighISONRFromRaw(w)
		return e
	})
	get(func() (e error) {
		w, e := getU16(a, ptp.PropFujiCustomSettingGrainEffect)
		if e != nil {
			return e
		}
		sim.Grain, e = fuji.GrainEffectFromWire(w)
		return e
	})
	get(func() (e error) {
		w, e := getU16(a, ptp.PropFujiCustomSettingColorChromeEffect)
		if e != nil {
			return e
		}
		sim.ColorChromeEffect, e = fuji.ColorChromeEffectFromWire(w)
		return e
	})
	get(func() (e error) {
		w, e := getU16(a, ptp.PropFujiCustomSettingColorChromeFXBlue)
		if e != nil {
			return e
		}
		sim.ColorChromeFXBlue, e = fuji.ColorChromeFXBlueFromWire(w)
		return e
	})
	get(func() (e error) {
		w, e := getU16(a, ptp.PropFujiCustomSettingSmoothSkinEffect)
		if e != nil {
			return e
		}
		sim.SmoothSkinEffect, e = fuji.SmoothSkinEffectFromWire(w)
		return e
	})
	get(func() (e error) {
		w, e := getU16(a, ptp.PropFujiCustomSettingWhiteBalance)
		if e != nil {
			return e
		}
		sim.WhiteBalance, e = fuji.WhiteBalanceFromWire(w)
		return e
	})
	get(func() (e error) {
		raw, e := getI16(a, ptp.PropFujiCustomSettingWhiteBalanceShiftRed)
		if e != nil {
			return e
		}
		sim.WhiteBalanceShiftRed, e = fuji.WhiteBalanceShiftFromRaw(raw)
		return e
	})
	get(func() (e error) {
		raw, e := getI16(a, ptp.PropFujiCustomSettingWhiteBalanceShiftBlue)
		if e != nil {
			return e
		}
		sim.WhiteBalanceShiftBlue, e = fuji.WhiteBalanceShiftFromRaw(raw)
		return e
	})
	get(func() (e error) {
		raw, e := getI16(a, ptp.PropFujiCustomSettingWhiteBalanceTemperature)
		if e != nil {
			return e
		}
		sim.WhiteBalanceTemperature, e = fuji.WhiteBalanceTemperatureFromRaw(raw)
		return e
	})
	get(func() (e error) {
		w, e := getU16(a, ptp.PropFujiCustomSettingLensModulationOptimizer)
		if e != nil {
			return e
		}
		sim.LensModulationOptimizer, e = fuji.LensModulationOptimizerFromWire(w)
		return e
	})
	get(func() (e error) {
		w, e := getU16(a, ptp.PropFujiCustomSettingColorSpace)
		if e != nil {
			return e
		}
		sim.ColorSpace, e = fuji.ColorSpaceFromWire(w)
		return e
	})

	if err != nil {
		return nil, ptperr.Wrap(ptperr.Malformed, "reading simulation", err)
	}
	return &sim, nil
}

// Set writes sim into slot: it selects the slot via FujiCustomSetting,
// then issues one SetPropRaw per field, in the original renderer's
// set_simulation order. The monochromatic color fields are only written
// when sim's film simulation is black and white, matching the original.
func Set(a PropertyAccessor, slot fuji.CustomSetting, sim *Simulation) error {
	if err := setU16(a, ptp.PropFujiCustomSetting, uint16(slot)); err != nil {
		return ptperr.Wrap(ptperr.Transport, "selecting custom setting slot", err)
	}

	var err error
	set := func(f func() error) {
		if err == nil {
			err = f()
		}
	}

	set(func() error {
		w := ptpcodec.NewWriter()
		if e := w.WriteString(string(sim.Name)); e != nil {
			return e
		}
		return a.SetPropRaw(ptp.PropFujiCustomSettingName, w.Bytes())
	})
	set(func() error { return setU16(a, ptp.PropFujiCustomSettingImageSize, uint16(sim.Size)) })
	set(func() error { return setU16(a, ptp.PropFujiCustomSettingImageQuality, uint16(sim.Quality)) })
	set(func() error {
		return setU16(a, ptp.PropFujiCustomSettingFilmSimulation, uint16(sim.FilmSimulation))
	})
	if sim.FilmSimulation.IsBlackAndWhite() {
		set(func() error {
			return setI16(a, ptp.PropFujiCustomSettingMonochromaticColorTemperature, sim.MonochromaticColorTemperature.Raw())
		})
		set(func() error {
			return setI16(a, ptp.PropFujiCustomSettingMonochromaticColorTint, sim.MonochromaticColorTint.Raw())
		})
	}
	set(func() error {
		return setU16(a, ptp.PropFujiCustomSettingDynamicRangePriority, uint16(sim.DynamicRangePriority))
	})
	set(func() error { return setU16(a, ptp.PropFujiCustomSettingDynamicRange, uint16(sim.DynamicRange)) })
	set(func() error { return setI16(a, ptp.PropFujiCustomSettingHighlightTone, sim.Highlight.Raw()) })
	set(func() error { return setI16(a, ptp.PropFujiCustomSettingShadowTone, sim.Shadow.Raw()) })
	set(func() error { return setI16(a, ptp.PropFujiCustomSettingColor, sim.Color.Raw()) })
	set(func() error { return setI16(a, ptp.PropFujiCustomSettingSharpness, sim.Sharpness.Raw()) })
	set(func() error { return setI16(a, ptp.PropFujiCustomSettingClarity, sim.Clarity.Raw()) })
	set(func() error { return setU16(a, ptp.PropFujiCustomSettingHighISONR, sim.NoiseReduction.Raw()) })
	set(func() error { return setU16(a, ptp.PropFujiCustomSettingGrainEffect, uint16(sim.Grain)) })
	set(func() error {
		return setU16(a, ptp.PropFujiCustomSettingColorChromeEffect, uint16(sim.ColorChromeEffect))
	})
	set(func() error {
		return setU16(a, ptp.PropFujiCustomSettingColorChromeFXBlue, uint16(sim.ColorChromeFXBlue))
	})
	set(func() error {
		return setU16(a, ptp.PropFujiCustomSettingSmoothSkinEffect, uint16(sim.SmoothSkinEffect))
	})
	set(func() error { return setU16(a, ptp.PropFujiCustomSettingWhiteBalance, uint16(sim.WhiteBalance)) })
	set(func() error {
		return setI16(a, ptp.PropFujiCustomSettingWhiteBalanceShiftRed, sim.WhiteBalanceShiftRed.Raw())
	})
	set(func() error {
		return setI16(a, ptp.PropFujiCustomSettingWhiteBalanceShiftBlue, sim.WhiteBalanceShiftBlue.Raw())
	})
	set(func() error {
		return setI16(a, ptp.PropFujiCustomSettingWhiteBalanceTemperature, sim.WhiteBalanceTemperature.Raw())
	})
	set(func() error {
		return setU16(a, ptp.PropFujiCustomSettingLensModulationOptimizer, uint16(sim.LensModulationOptimizer))
	})
	set(func() error { return setU16(a, ptp.PropFujiCustomSettingColorSpace, uint16(sim.ColorSpace)) })

	if err != nil {
		return ptperr.Wrap(ptperr.Transport, "writing simulation", err)
	}
	return nil
}

// Serialize renders sim as camelCase JSON.
func Serialize(sim *Simulation) ([]byte, error) {
	return json.Marshal(sim)
}

// Deserialize parses JSON produced by Serialize.
func Deserialize(data []byte) (*Simulation, error) {
	var sim Simulation
	if err := json.Unmarshal(data, &sim); err != nil {
		return nil, err
	}
	return &sim, nil
}
