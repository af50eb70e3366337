package fuji

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// ExposureOffset is the exposure-compensation control. Unlike the bounded
// numeric newtypes in numeric.go, its raw wire values are not an even
// multiple of a fixed scale (thirds-of-a-stop steps land on 333/334
// boundaries); each of the 19 legal values is listed explicitly, grounded
// on original_source/src/camera/ptp/hex/fuji.rs's FujiExposureOffset.
type ExposureOffset struct{ raw int16 }

var exposureOffsetTable = []struct {
	Raw   int16
	Float float64
}{
	{3000, 3.0},
	{2667, 2.7},
	{2333, 2.3},
	{2000, 2.0},
	{1667, 1.7},
	{1333, 1.3},
	{1000, 1.0},
	{667, 0.7},
	{333, 0.3},
	{0, 0.0},
	{-333, -0.3},
	{-667, -0.7},
	{-1000, -1.0},
	{-1333, -1.3},
	{-1667, -1.7},
	{-2000, -2.0},
	{-2333, -2.3},
	{-2667, -2.7},
	{-3000, -3.0},
}

// NewExposureOffset rounds v to the nearest tenth of a stop and accepts it
// only if that rounded value is one of the legal discrete values; any other
// value is rejected rather than snapped to its nearest neighbour.
func NewExposureOffset(v float64) (ExposureOffset, error) {
	rounded := math.Round(v*10) / 10
	for _, e := range exposureOffsetTable {
		if rounded == e.Float {
			return ExposureOffset{e.Raw}, nil
		}
	}
	return ExposureOffset{}, ptperr.Newf(ptperr.InvalidValue, "%v is not a valid ExposureOffset", v)
}

func ExposureOffsetFromRaw(raw int16) (ExposureOffset, error) {
	for _, e := range exposureOffsetTable {
		if e.Raw == raw {
			return ExposureOffset{raw}, nil
		}
	}
	return ExposureOffset{}, ptperr.Newf(ptperr.InvalidValue, "%d is not a valid ExposureOffset", raw)
}

func (e ExposureOffset) Raw() int16 { return e.raw }

func (e ExposureOffset) Float() float64 {
	for _, entry := range exposureOffsetTable {
		if entry.Raw == e.raw {
			return entry.Float
		}
	}
	return 0
}

func (e ExposureOffset) String() string { return fmt.Sprintf("%g", e.Float()) }

func (e ExposureOffset) MarshalJSON() ([]byte, error) { return json.Marshal(e.Float()) }
func (e *ExposureOffset) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	got, err := NewExposureOffset(v)
	if err != nil {
		return err
	}
	*e = got
	return nil
}

// HighISONR is the high-ISO noise-reduction control. Its wire
// discriminants are non-monotonic with respect to display order, grounded
// on original_source/src/camera/ptp/hex/fuji.rs's FujiHighISONR.
type HighISONR struct{ raw uint16 }

var highISONRTable = []struct {
	Raw uint16
	Int int
}{
	{0x5000, 4},
	{0x6000, 3},
	{0x0, 2},
	{0x1000, 1},
	{0x2000, 0},
	{0x3000, -1},
	{0x4000, -2},
	{0x7000, -3},
	{0x8000, -4},
}

func NewHighISONR(v int) (HighISONR, error) {
	for _, e := range highISONRTable {
		if e.Int == v {
			return HighISONR{e.Raw}, nil
		}
	}
	return HighISONR{}, ptperr.Newf(ptperr.InvalidValue, "%d is out of range for HighISONR", v)
}

func HighISONRFromRaw(raw uint16) (HighISONR, error) {
	for _, e := range highISONRTable {
		if e.Raw == raw {
			return HighISONR{raw}, nil
		}
	}
	return HighISONR{}, ptperr.Newf(ptperr.InvalidValue, "%#x is not a valid HighISONR", raw)
}

func (h HighISONR) Raw() uint16 { return h.raw }

func (h HighISONR) Int() int {
	for _, e := range highISONRTable {
		if e.Raw == h.raw {
			return e.Int
		}
	}
	return 0
}

func (h HighISONR) String() string {
	v := h.Int()
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}

func (h HighISONR) MarshalJSON() ([]byte, error) { return json.Marshal(h.Int()) }
func (h *HighISONR) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	got, err := NewHighISONR(v)
	if err != nil {
		return err
	}
	*h = got
	return nil
}
