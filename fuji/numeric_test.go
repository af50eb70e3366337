package fuji

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHighlightToneBounds(t *testing.T) {
	v, err := NewHighlightTone(4.0)
	require.NoError(t, err)
	require.Equal(t, int16(40), v.Raw())

	_, err = NewHighlightTone(4.5)
	require.Error(t, err)

	_, err = NewHighlightTone(-2.5)
	require.Error(t, err)
}

func TestHighlightToneRejectsOffStepValue(t *testing.T) {
	_, err := NewHighlightTone(0.3)
	require.Error(t, err)
}

func TestHighlightToneFromRawRoundTrip(t *testing.T) {
	v, err := NewHighlightTone(1.5)
	require.NoError(t, err)

	got, err := HighlightToneFromRaw(v.Raw())
	require.NoError(t, err)
	require.Equal(t, v, got)
	require.InDelta(t, 1.5, got.Float(), 1e-9)
}

func TestColorIntegerBounds(t *testing.T) {
	_, err := NewColor(4)
	require.NoError(t, err)
	_, err = NewColor(-4)
	require.NoError(t, err)
	_, err = NewColor(5)
	require.Error(t, err)
}

func TestWhiteBalanceShiftBounds(t *testing.T) {
	_, err := NewWhiteBalanceShift(9)
	require.NoError(t, err)
	_, err = NewWhiteBalanceShift(-9)
	require.NoError(t, err)
	_, err = NewWhiteBalanceShift(10)
	require.Error(t, err)
}

func TestWhiteBalanceTemperatureBoundsAndStep(t *testing.T) {
	v, err := NewWhiteBalanceTemperature(5500)
	require.NoError(t, err)
	require.Equal(t, int16(5500), v.Raw())

	_, err = NewWhiteBalanceTemperature(2000)
	require.Error(t, err)

	_, err = NewWhiteBalanceTemperature(5505)
	require.Error(t, err)
}

func TestMonochromaticColorShiftBounds(t *testing.T) {
	_, err := NewMonochromaticColorShift(18)
	require.NoError(t, err)
	_, err = NewMonochromaticColorShift(-18)
	require.NoError(t, err)
	_, err = NewMonochromaticColorShift(19)
	require.Error(t, err)
}

func TestHighlightToneJSONRoundTrip(t *testing.T) {
	v, err := NewHighlightTone(1.5)
	require.NoError(t, err)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, "1.5", string(data))

	var got HighlightTone
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, v, got)
}

func TestColorJSONRoundTrip(t *testing.T) {
	v, err := NewColor(-3)
	require.NoError(t, err)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, "-3", string(data))

	var got Color
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, v, got)
}

func TestWhiteBalanceTemperatureJSONRejectsOutOfRange(t *testing.T) {
	var got WhiteBalanceTemperature
	err := json.Unmarshal([]byte("100"), &got)
	require.Error(t, err)
}
