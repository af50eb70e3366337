package ptpcodec

import (
	"strings"
	"testing"

	"github.com/karaolidis/fujicli-sub000/ptperr"
	"github.com/stretchr/testify/require"
)

func TestScalarRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteU8(0xAB)
	w.WriteI8(-5)
	w.WriteU16(0xBEEF)
	w.WriteI16(-1234)
	w.WriteU32(0xDEADBEEF)
	w.WriteI32(-123456)
	w.WriteU64(0x0102030405060708)
	w.WriteI64(-1)

	c := NewCursor(w.Bytes())
	u8, err := c.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), u8)

	i8, err := c.ReadI8()
	require.NoError(t, err)
	require.Equal(t, int8(-5), i8)

	u16, err := c.ReadU16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), u16)

	i16, err := c.ReadI16()
	require.NoError(t, err)
	require.Equal(t, int16(-1234), i16)

	u32, err := c.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u32)

	i32, err := c.ReadI32()
	require.NoError(t, err)
	require.Equal(t, int32(-123456), i32)

	u64, err := c.ReadU64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), u64)

	i64, err := c.ReadI64()
	require.NoError(t, err)
	require.Equal(t, int64(-1), i64)

	require.NoError(t, c.ExpectEnd())
}

func TestExpectEndRejectsResidue(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	_, err := c.ReadU8()
	require.NoError(t, err)
	err = c.ExpectEnd()
	require.Error(t, err)
	var pe *ptperr.Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ptperr.Malformed, pe.Kind)
}

func TestUnexpectedEOFNeverPanics(t *testing.T) {
	c := NewCursor([]byte{0x01})
	_, err := c.ReadU32()
	require.Error(t, err)
	var pe *ptperr.Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ptperr.Malformed, pe.Kind)
}

func TestVectorRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteVectorU32([]uint32{1, 2, 3})

	c := NewCursor(w.Bytes())
	v, err := c.ReadVectorU32()
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 2, 3}, v)
	require.NoError(t, c.ExpectEnd())
}

func TestEmptyVectorRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteVectorU32(nil)

	c := NewCursor(w.Bytes())
	v, err := c.ReadVectorU32()
	require.NoError(t, err)
	require.Empty(t, v)
}

// TestStringRoundTrip exercises "string round-trip" property for
// s in {"", "A", a 25-char string}.
func TestStringRoundTrip(t *testing.T) {
	cases := []string{"", "A", strings.Repeat("x", 25)}
	for _, s := range cases {
		w := NewWriter()
		require.NoError(t, w.WriteString(s))
		b := w.Bytes()

		if s == "" {
			require.Equal(t, []byte{0}, b)
		} else {
			require.Equal(t, byte(len(s)+1), b[0])
			require.Equal(t, 1+2*(len(s)+1), len(b))
			require.Zero(t, b[len(b)-2])
			require.Zero(t, b[len(b)-1])
		}

		c := NewCursor(b)
		decoded, err := c.ReadString()
		require.NoError(t, err)
		require.Equal(t, s, decoded)
		require.NoError(t, c.ExpectEnd())
	}
}

func TestStringTooLongToEncode(t *testing.T) {
	w := NewWriter()
	err := w.WriteString(strings.Repeat("x", 255))
	require.Error(t, err)
}

func TestStringMissingTerminatorIsMalformed(t *testing.T) {
	// N=2 implies one data unit plus a terminator; supply a non-zero
	// "terminator" to trigger the malformed path.
	c := NewCursor([]byte{2, 'A', 0, 1, 0})
	_, err := c.ReadString()
	require.Error(t, err)
	var pe *ptperr.Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ptperr.Malformed, pe.Kind)
}

func TestInvalidUTF16IsMalformed(t *testing.T) {
	// A lone high surrogate (0xD800) with no following low surrogate.
	c := NewCursor([]byte{2, 0x00, 0xD8, 0, 0})
	_, err := c.ReadString()
	require.Error(t, err)
}

func TestExactStringRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteExactString("FF179502")
	c := NewCursor(w.Bytes())
	s, err := c.ReadExactString(8)
	require.NoError(t, err)
	require.Equal(t, "FF179502", s)
	require.NoError(t, c.ExpectEnd())
}
