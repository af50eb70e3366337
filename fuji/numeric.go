package fuji

import (
	"encoding/json"
	"math"

	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// toneKind describes one bounded numeric newtype's domain: external values
// in [Min,Max] must land on a Step boundary and are stored internally as
// external*Scale, which must fit in an int16.
type toneKind struct {
	Name  string
	Min   float64
	Max   float64
	Step  float64
	Scale float64
}

func (k toneKind) validateExternal(v float64) error {
	if v < k.Min-1e-9 || v > k.Max+1e-9 {
		return ptperr.Newf(ptperr.InvalidValue, "%s value %v is out of range [%v,%v]", k.Name, v, k.Min, k.Max)
	}
	steps := (v - k.Min) / k.Step
	if math.Abs(steps-math.Round(steps)) > 1e-6 {
		return ptperr.Newf(ptperr.InvalidValue, "%s value %v is not aligned to step %v", k.Name, v, k.Step)
	}
	return nil
}

func (k toneKind) toRaw(v float64) (int16, error) {
	if err := k.validateExternal(v); err != nil {
		return 0, err
	}
	return int16(math.Round(v * k.Scale)), nil
}

func (k toneKind) fromRaw(raw int16) float64 {
	return float64(raw) / k.Scale
}

func (k toneKind) validateRaw(raw int16) error {
	return k.validateExternal(k.fromRaw(raw))
}

var (
	highlightToneKind = toneKind{Name: "HighlightTone", Min: -2.0, Max: 4.0, Step: 0.5, Scale: 10}
	shadowToneKind    = toneKind{Name: "ShadowTone", Min: -2.0, Max: 4.0, Step: 0.5, Scale: 10}
	colorKind         = toneKind{Name: "Color", Min: -4, Max: 4, Step: 1, Scale: 10}
	sharpnessKind     = toneKind{Name: "Sharpness", Min: -4, Max: 4, Step: 1, Scale: 10}
	clarityKind       = toneKind{Name: "Clarity", Min: -5, Max: 5, Step: 1, Scale: 10}
	wbShiftKind       = toneKind{Name: "WhiteBalanceShift", Min: -9, Max: 9, Step: 1, Scale: 1}
	monoShiftKind     = toneKind{Name: "MonochromaticColorShift", Min: -18, Max: 18, Step: 1, Scale: 10}
)

// HighlightTone is the −2.0..+4.0 step-0.5 tone curve control, internally
// scaled ×10.
type HighlightTone struct{ raw int16 }

func NewHighlightTone(v float64) (HighlightTone, error) {
	raw, err := highlightToneKind.toRaw(v)
	return HighlightTone{raw}, err
}
func HighlightToneFromRaw(raw int16) (HighlightTone, error) {
	if err := highlightToneKind.validateRaw(raw); err != nil {
		return HighlightTone{}, err
	}
	return HighlightTone{raw}, nil
}
func (h HighlightTone) Raw() int16    { return h.raw }
func (h HighlightTone) Float() float64 { return highlightToneKind.fromRaw(h.raw) }

func (h HighlightTone) MarshalJSON() ([]byte, error) { return json.Marshal(h.Float()) }
func (h *HighlightTone) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	got, err := NewHighlightTone(v)
	if err != nil {
		return err
	}
	*h = got
	return nil
}

// ShadowTone is the −2.0..+4.0 step-0.5 shadow tone curve control.
type ShadowTone struct{ raw int16 }

func NewShadowTone(v float64) (ShadowTone, error) {
	raw, err := shadowToneKind.toRaw(v)
	return ShadowTone{raw}, err
}
func ShadowToneFromRaw(raw int16) (ShadowTone, error) {
	if err := shadowToneKind.validateRaw(raw); err != nil {
		return ShadowTone{}, err
	}
	return ShadowTone{raw}, nil
}
func (s ShadowTone) Raw() int16     { return s.raw }
func (s ShadowTone) Float() float64 { return shadowToneKind.fromRaw(s.raw) }

func (s ShadowTone) MarshalJSON() ([]byte, error) { return json.Marshal(s.Float()) }
func (s *ShadowTone) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	got, err := NewShadowTone(v)
	if err != nil {
		return err
	}
	*s = got
	return nil
}

// Color is the −4..+4 integer color (saturation) control.
type Color struct{ raw int16 }

func NewColor(v int) (Color, error) {
	raw, err := colorKind.toRaw(float64(v))
	return Color{raw}, err
}
func ColorFromRaw(raw int16) (Color, error) {
	if err := colorKind.validateRaw(raw); err != nil {
		return Color{}, err
	}
	return Color{raw}, nil
}
func (c Color) Raw() int16 { return c.raw }
func (c Color) Int() int   { return int(colorKind.fromRaw(c.raw)) }

func (c Color) MarshalJSON() ([]byte, error) { return json.Marshal(c.Int()) }
func (c *Color) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	got, err := NewColor(v)
	if err != nil {
		return err
	}
	*c = got
	return nil
}

// Sharpness is the −4..+4 integer sharpness control.
type Sharpness struct{ raw int16 }

func NewSharpness(v int) (Sharpness, error) {
	raw, err := sharpnessKind.toRaw(float64(v))
	return Sharpness{raw}, err
}
func SharpnessFromRaw(raw int16) (Sharpness, error) {
	if err := sharpnessKind.validateRaw(raw); err != nil {
		return Sharpness{}, err
	}
	return Sharpness{raw}, nil
}
func (s Sharpness) Raw() int16 { return s.raw }
func (s Sharpness) Int() int   { return int(sharpnessKind.fromRaw(s.raw)) }

func (s Sharpness) MarshalJSON() ([]byte, error) { return json.Marshal(s.Int()) }
func (s *Sharpness) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	got, err := NewSharpness(v)
	if err != nil {
		return err
	}
	*s = got
	return nil
}

// Clarity is the −5..+5 integer clarity control.
type Clarity struct{ raw int16 }

func NewClarity(v int) (Clarity, error) {
	raw, err := clarityKind.toRaw(float64(v))
	return Clarity{raw}, err
}
func ClarityFromRaw(raw int16) (Clarity, error) {
	if err := clarityKind.validateRaw(raw); err != nil {
		return Clarity{}, err
	}
	return Clarity{raw}, nil
}
func (c Clarity) Raw() int16 { return c.raw }
func (c Clarity) Int() int   { return int(clarityKind.fromRaw(c.raw)) }

func (c Clarity) MarshalJSON() ([]byte, error) { return json.Marshal(c.Int()) }
func (c *Clarity) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	got, err := NewClarity(v)
	if err != nil {
		return err
	}
	*c = got
	return nil
}

// WhiteBalanceShift is the −9..+9 integer red/blue white balance shift
// control (used for both the red and the blue axis).
type WhiteBalanceShift struct{ raw int16 }

func NewWhiteBalanceShift(v int) (WhiteBalanceShift, error) {
	raw, err := wbShiftKind.toRaw(float64(v))
	return WhiteBalanceShift{raw}, err
}
func WhiteBalanceShiftFromRaw(raw int16) (WhiteBalanceShift, error) {
	if err := wbShiftKind.validateRaw(raw); err != nil {
		return WhiteBalanceShift{}, err
	}
	return WhiteBalanceShift{raw}, nil
}
func (w WhiteBalanceShift) Raw() int16 { return w.raw }
func (w WhiteBalanceShift) Int() int   { return int(wbShiftKind.fromRaw(w.raw)) }

func (w WhiteBalanceShift) MarshalJSON() ([]byte, error) { return json.Marshal(w.Int()) }
func (w *WhiteBalanceShift) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	got, err := NewWhiteBalanceShift(v)
	if err != nil {
		return err
	}
	*w = got
	return nil
}

// MonochromaticColorShift is the −18..+18 integer monochromatic color
// (warm/cool tint) shift control.
type MonochromaticColorShift struct{ raw int16 }

func NewMonochromaticColorShift(v int) (MonochromaticColorShift, error) {
	raw, err := monoShiftKind.toRaw(float64(v))
	return MonochromaticColorShift{raw}, err
}
func MonochromaticColorShiftFromRaw(raw int16) (MonochromaticColorShift, error) {
	if err := monoShiftKind.validateRaw(raw); err != nil {
		return MonochromaticColorShift{}, err
	}
	return MonochromaticColorShift{raw}, nil
}
func (m MonochromaticColorShift) Raw() int16 { return m.raw }
func (m MonochromaticColorShift) Int() int   { return int(monoShiftKind.fromRaw(m.raw)) }

func (m MonochromaticColorShift) MarshalJSON() ([]byte, error) { return json.Marshal(m.Int()) }
func (m *MonochromaticColorShift) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	got, err := NewMonochromaticColorShift(v)
	if err != nil {
		return err
	}
	*m = got
	return nil
}

// WhiteBalanceTemperature is the Kelvin color temperature control, valid
// 2500..10000 in steps of 10.
type WhiteBalanceTemperature struct{ raw int16 }

var wbTemperatureKind = toneKind{Name: "WhiteBalanceTemperature", Min: 2500, Max: 10000, Step: 10, Scale: 1}

func NewWhiteBalanceTemperature(v int) (WhiteBalanceTemperature, error) {
	raw, err := wbTemperatureKind.toRaw(float64(v))
	return WhiteBalanceTemperature{raw}, err
}
func WhiteBalanceTemperatureFromRaw(raw int16) (WhiteBalanceTemperature, error) {
	if err := wbTemperatureKind.validateRaw(raw); err != nil {
		return WhiteBalanceTemperature{}, err
	}
	return WhiteBalanceTemperature{raw}, nil
}
func (w WhiteBalanceTemperature) Raw() int16 { return w.raw }
func (w WhiteBalanceTemperature) Int() int   { return int(wbTemperatureKind.fromRaw(w.raw)) }

func (w WhiteBalanceTemperature) MarshalJSON() ([]byte, error) { return json.Marshal(w.Int()) }
func (w *WhiteBalanceTemperature) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	got, err := NewWhiteBalanceTemperature(v)
	if err != nil {
		return err
	}
	*w = got
	return nil
}
