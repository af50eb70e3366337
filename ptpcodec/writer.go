package ptpcodec

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// Writer accumulates little-endian bytes for one encoded record.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated encoding.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) WriteU8(v uint8) { w.buf = append(w.buf, v) }
func (w *Writer) WriteI8(v int8)  { w.WriteU8(uint8(v)) }

func (w *Writer) WriteU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}
func (w *Writer) WriteI16(v int16) { w.WriteU16(uint16(v)) }

func (w *Writer) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}
func (w *Writer) WriteI32(v int32) { w.WriteU32(uint32(v)) }

func (w *Writer) WriteU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}
func (w *Writer) WriteI64(v int64) { w.WriteU64(uint64(v)) }

// WriteBytes appends raw bytes verbatim, used for fixed-size padding.
func (w *Writer) WriteBytes(b []byte) { w.buf = append(w.buf, b...) }

// WriteZeros appends n zero bytes.
func (w *Writer) WriteZeros(n int) {
	w.buf = append(w.buf, make([]byte, n)...)
}

// WriteExactString appends s verbatim with no length prefix or
// terminator, used only for the conversion profile magic.
func (w *Writer) WriteExactString(s string) { w.buf = append(w.buf, []byte(s)...) }

func writeVector[T any](w *Writer, v []T, writeElem func(*Writer, T)) {
	w.WriteU32(uint32(len(v)))
	for _, e := range v {
		writeElem(w, e)
	}
}

func (w *Writer) WriteVectorU8(v []uint8)   { writeVector(w, v, (*Writer).WriteU8) }
func (w *Writer) WriteVectorU16(v []uint16) { writeVector(w, v, (*Writer).WriteU16) }
func (w *Writer) WriteVectorU32(v []uint32) { writeVector(w, v, (*Writer).WriteU32) }
func (w *Writer) WriteVectorU64(v []uint64) { writeVector(w, v, (*Writer).WriteU64) }

// WriteString encodes s in the PTP length-prefixed UTF-16 form. Returns
// an error if the wire count byte would overflow a u8.
func (w *Writer) WriteString(s string) error {
	if s == "" {
		w.WriteU8(0)
		return nil
	}
	units := utf16.Encode([]rune(s))
	n := len(units) + 1
	if n > 255 {
		return ptperr.Newf(ptperr.InvalidValue, "string %q too long to encode (%d units)", s, len(units))
	}
	w.WriteU8(uint8(n))
	for _, u := range units {
		w.WriteU16(u)
	}
	w.WriteU16(0)
	return nil
}
