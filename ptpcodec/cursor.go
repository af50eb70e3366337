// Package ptpcodec implements the little-endian binary codec shared by
// every PTP and Fujifilm record in this module: fixed-width integers,
// length-prefixed vectors, the PTP UTF-16 string form, and the raw
// ExactString form used only by the conversion profile magic.
//
// The composition facility stays deliberately thin: callers build records
// field by field against Cursor/Writer rather than relying on struct-tag
// reflection, the same way this module's own packet types each hand-list
// their fields even though a shared marshal helper backs the repetitive
// byte work.
package ptpcodec

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// Cursor reads little-endian values from a fixed byte slice, tracking
// position so callers can assert "no residual bytes" after a top-level
// decode.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps buf for reading. The cursor does not copy buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Len returns the number of unread bytes remaining.
func (c *Cursor) Len() int {
	return len(c.buf) - c.pos
}

func (c *Cursor) need(n int) error {
	if c.Len() < n {
		return ptperr.New(ptperr.Malformed, "unexpected EOF")
	}
	return nil
}

// ExpectEnd asserts no bytes remain cursor end check.
func (c *Cursor) ExpectEnd() error {
	if c.Len() != 0 {
		return ptperr.Newf(ptperr.Malformed, "%d residual byte(s) after decode", c.Len())
	}
	return nil
}

func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

func (c *Cursor) ReadU64() (uint64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(c.buf[c.pos:])
	c.pos += 8
	return v, nil
}

func (c *Cursor) ReadI64() (int64, error) {
	v, err := c.ReadU64()
	return int64(v), err
}

// ReadBytes consumes exactly n raw bytes, advancing the cursor. Used by
// fixed-size padding fields (e.g. the conversion profile's 494-byte pad).
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadExactString reads n raw ASCII bytes with no length prefix and no
// terminator; n is supplied by the surrounding record.
func (c *Cursor) ReadExactString(n int) (string, error) {
	b, err := c.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func readVector[T any](c *Cursor, readElem func(*Cursor) (T, error)) ([]T, error) {
	n, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := uint32(0); i < n; i++ {
		v, err := readElem(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (c *Cursor) ReadVectorU8() ([]uint8, error)   { return readVector(c, (*Cursor).ReadU8) }
func (c *Cursor) ReadVectorU16() ([]uint16, error) { return readVector(c, (*Cursor).ReadU16) }
func (c *Cursor) ReadVectorU32() ([]uint32, error) { return readVector(c, (*Cursor).ReadU32) }
func (c *Cursor) ReadVectorU64() ([]uint64, error) { return readVector(c, (*Cursor).ReadU64) }

// ReadString reads the PTP length-prefixed UTF-16 string form: a u8
// count N; N=0 means empty; otherwise (N-1) UTF-16LE code units followed
// by one zero u16 terminator.
func (c *Cursor) ReadString() (string, error) {
	n, err := c.ReadU8()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	units := make([]uint16, 0, int(n)-1)
	for i := 0; i < int(n)-1; i++ {
		u, err := c.ReadU16()
		if err != nil {
			return "", err
		}
		units = append(units, u)
	}
	term, err := c.ReadU16()
	if err != nil {
		return "", err
	}
	if term != 0 {
		return "", ptperr.New(ptperr.Malformed, "string missing null terminator")
	}
	if err := validUTF16(units); err != nil {
		return "", err
	}
	return string(utf16.Decode(units)), nil
}

func validUTF16(units []uint16) error {
	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		switch {
		case utf16.IsSurrogate(r):
			dec := utf16.DecodeRune(r, 0)
			if i+1 < len(units) {
				dec = utf16.DecodeRune(r, rune(units[i+1]))
			}
			if dec == utf8.RuneError {
				return ptperr.New(ptperr.Malformed, "invalid UTF-16 surrogate pair")
			}
			i++
		}
	}
	return nil
}
