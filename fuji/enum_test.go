package fuji

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImageQualityParseAcceptsAliasesCaseInsensitively(t *testing.T) {
	v, err := ParseImageQuality("FINE")
	require.NoError(t, err)
	require.Equal(t, QualityFine, v)

	v, err = ParseImageQuality("fine-raw")
	require.NoError(t, err)
	require.Equal(t, QualityFineRaw, v)
}

func TestImageQualityParseRejectsUnknownValue(t *testing.T) {
	_, err := ParseImageQuality("bogus")
	require.Error(t, err)
}

func TestImageQualityParseSuggestsCloseMatch(t *testing.T) {
	_, err := ParseImageQuality("fien")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Did you mean")
}

func TestImageQualityCollapseForProfile(t *testing.T) {
	require.Equal(t, QualityFine, QualityFineRaw.CollapseForProfile())
	require.Equal(t, QualityNormal, QualityNormalRaw.CollapseForProfile())
	require.Equal(t, QualityFine, QualityFine.CollapseForProfile())
	require.Equal(t, QualityRaw, QualityRaw.CollapseForProfile())
}

func TestDynamicRangeFromWireRejectsHDR800Plus(t *testing.T) {
	_, err := DynamicRangeFromWire(uint16(DR800Plus))
	require.Error(t, err)
}

func TestDynamicRangeFromWireAcceptsPlainValues(t *testing.T) {
	v, err := DynamicRangeFromWire(uint16(DR400))
	require.NoError(t, err)
	require.Equal(t, DR400, v)
}

func TestGrainEffectFromWireAcceptsOffAlternates(t *testing.T) {
	for _, w := range []uint16{0x01, 0x06, 0x07} {
		v, err := GrainEffectFromWire(w)
		require.NoError(t, err)
		require.Equal(t, GrainOff, v)
	}
}

func TestFilmSimulationIsBlackAndWhite(t *testing.T) {
	for _, v := range []FilmSimulation{Monochrome, MonochromeYe, MonochromeR, MonochromeG, AcrosSTD, AcrosYe, AcrosR, AcrosG} {
		require.True(t, v.IsBlackAndWhite(), "%v should be black and white", v)
	}
	for _, v := range []FilmSimulation{Provia, Velvia, Astia, ClassicChrome, Eterna} {
		require.False(t, v.IsBlackAndWhite(), "%v should not be black and white", v)
	}
}

func TestWhiteBalanceAsShotFromWireRejectsZero(t *testing.T) {
	_, err := WhiteBalanceAsShotFromWire(0)
	require.Error(t, err)
}

func TestBoolToWhiteBalanceAsShotRoundTrip(t *testing.T) {
	require.Equal(t, WhiteBalanceAsShotTrue, BoolToWhiteBalanceAsShot(true))
	require.Equal(t, WhiteBalanceAsShotFalse, BoolToWhiteBalanceAsShot(false))
	require.True(t, WhiteBalanceAsShotTrue.Bool())
	require.False(t, WhiteBalanceAsShotFalse.Bool())
}

func TestCustomSettingNameRejectsTooLong(t *testing.T) {
	_, err := NewCustomSettingName("012345678901234567890123456")
	require.Error(t, err)
}

func TestCustomSettingNameAcceptsMaxLength(t *testing.T) {
	s := ""
	for i := 0; i < MaxCustomSettingNameLen; i++ {
		s += "a"
	}
	name, err := NewCustomSettingName(s)
	require.NoError(t, err)
	require.Equal(t, s, string(name))
}
