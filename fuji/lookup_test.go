package fuji

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExposureOffsetMapsStopsToRawValues(t *testing.T) {
	v, err := NewExposureOffset(0.0)
	require.NoError(t, err)
	require.Equal(t, int16(0), v.Raw())

	v, err = NewExposureOffset(1.7)
	require.NoError(t, err)
	require.Equal(t, int16(1667), v.Raw())
}

func TestExposureOffsetRejectsOutOfRange(t *testing.T) {
	_, err := NewExposureOffset(5.0)
	require.Error(t, err)
}

func TestExposureOffsetFromRawRejectsUnlistedValue(t *testing.T) {
	_, err := ExposureOffsetFromRaw(1)
	require.Error(t, err)
}

func TestExposureOffsetStringFormatsAsStops(t *testing.T) {
	v, err := ExposureOffsetFromRaw(-1000)
	require.NoError(t, err)
	require.Equal(t, "-1", v.String())
}

func TestHighISONRNonMonotonicWireMapping(t *testing.T) {
	v, err := NewHighISONR(4)
	require.NoError(t, err)
	require.Equal(t, uint16(0x5000), v.Raw())

	v, err = NewHighISONR(-4)
	require.NoError(t, err)
	require.Equal(t, uint16(0x8000), v.Raw())
}

func TestHighISONRFromRawRejectsUnknownDiscriminant(t *testing.T) {
	_, err := HighISONRFromRaw(0x9999)
	require.Error(t, err)
}

func TestHighISONRIntRoundTrip(t *testing.T) {
	for _, want := range []int{-4, -3, -2, -1, 0, 1, 2, 3, 4} {
		v, err := NewHighISONR(want)
		require.NoError(t, err)
		require.Equal(t, want, v.Int())
	}
}

func TestExposureOffsetJSONRoundTrip(t *testing.T) {
	v, err := NewExposureOffset(1.7)
	require.NoError(t, err)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, "1.7", string(data))

	var got ExposureOffset
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, v, got)
}

func TestHighISONRJSONRoundTrip(t *testing.T) {
	v, err := NewHighISONR(-3)
	require.NoError(t, err)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, "-3", string(data))

	var got HighISONR
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, v, got)
}
