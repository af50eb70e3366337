package ptp

import (
	"github.com/karaolidis/fujicli-sub000/ptpcodec"
	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// containerHeaderSize is the fixed 12-byte PTP container header: a
// 4-byte little-endian total length, a 2-byte container type, a 2-byte
// code, and a 4-byte transaction id.
const containerHeaderSize = 12

// container is one PTP bulk-transfer frame.
type container struct {
	Type          ContainerType
	Code          uint16
	TransactionID uint32
	Payload       []byte
}

func encodeContainer(c container) []byte {
	w := ptpcodec.NewWriter()
	w.WriteU32(uint32(containerHeaderSize + len(c.Payload)))
	w.WriteU16(uint16(c.Type))
	w.WriteU16(c.Code)
	w.WriteU32(c.TransactionID)
	w.WriteBytes(c.Payload)
	return w.Bytes()
}

func decodeContainerHeader(buf []byte) (container, error) {
	c := ptpcodec.NewCursor(buf)
	length, err := c.ReadU32()
	if err != nil {
		return container{}, ptperr.Wrap(ptperr.Malformed, "reading container length", err)
	}
	typ, err := c.ReadU16()
	if err != nil {
		return container{}, ptperr.Wrap(ptperr.Malformed, "reading container type", err)
	}
	code, err := c.ReadU16()
	if err != nil {
		return container{}, ptperr.Wrap(ptperr.Malformed, "reading container code", err)
	}
	txn, err := c.ReadU32()
	if err != nil {
		return container{}, ptperr.Wrap(ptperr.Malformed, "reading transaction id", err)
	}
	if int(length) < containerHeaderSize {
		return container{}, ptperr.Newf(ptperr.Malformed, "container length %d shorter than header", length)
	}
	payload, err := c.ReadBytes(len(buf) - containerHeaderSize)
	if err != nil {
		return container{}, ptperr.Wrap(ptperr.Malformed, "reading container payload", err)
	}
	return container{Type: ContainerType(typ), Code: code, TransactionID: txn, Payload: payload}, nil
}

// paramsToPayload encodes up to five operation parameters, the fixed-size
// argument list carried in a PTP Command container.
func paramsToPayload(params []uint32) []byte {
	w := ptpcodec.NewWriter()
	for _, p := range params {
		w.WriteU32(p)
	}
	return w.Bytes()
}
