package ptp

import (
	"fmt"
	"log"

	"github.com/karaolidis/fujicli-sub000/ptpcodec"
	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// DefaultChunkSize is the bulk transfer chunk size used when a body has no
// capability override. 1 MiB matches what most Fujifilm
// bodies accept in a single bulk write/read.
const DefaultChunkSize = 1 << 20

// readBufSize is the stack-sized buffer used to pull one chunk off the
// wire before the container's declared length is known.
const readBufSize = 8 << 10

// Transport is the raw USB bulk-transfer surface the engine drives. A
// gousb-backed implementation lives in transport.go; tests substitute an
// in-memory responder.
type Transport interface {
	WriteBulk(p []byte) (int, error)
	ReadBulk(p []byte) (int, error)
}

// Engine drives one PTP session's request/response state machine over a
// Transport: framing, chunked I/O, and transaction-id bookkeeping. It is
// not safe for concurrent use — one session, one in-flight transaction
// per handle.
type Engine struct {
	transport Transport
	chunkSize int
	log       *log.Logger

	nextTransactionID uint32
}

// NewEngine builds an Engine over transport. chunkSize <= 0 selects
// DefaultChunkSize. A nil logger discards engine diagnostics.
func NewEngine(transport Transport, chunkSize int, logger *log.Logger) *Engine {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if logger == nil {
		logger = log.New(discardWriter{}, "", 0)
	}
	return &Engine{transport: transport, chunkSize: chunkSize, log: logger}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// Result is everything a completed transaction yielded: the data phase
// payload (if any) and the response's own parameter list.
type Result struct {
	Data           []byte
	ResponseParams []uint32
}

// Send runs one full command/data/response transaction: it writes the
// Command container (and, if dataOut is non-nil, a Data container), then
// reads containers until a terminal Response arrives. Unexpected
// container types are logged and skipped; a transaction-id mismatch is
// logged and the container is still handled as part of this transaction,
// matching the reference client's tolerant behavior. Any Response other
// than Ok is reported as a *ptperr.Error of kind Response.
func (e *Engine) Send(code CommandCode, params []uint32, dataOut []byte) (Result, error) {
	txn := e.nextTransactionID
	e.nextTransactionID++

	if err := e.writeContainer(container{Type: ContainerCommand, Code: uint16(code), TransactionID: txn, Payload: paramsToPayload(params)}); err != nil {
		return Result{}, ptperr.Wrap(ptperr.Transport, "writing command container", err)
	}

	if dataOut != nil {
		if err := e.writeContainer(container{Type: ContainerData, Code: uint16(code), TransactionID: txn, Payload: dataOut}); err != nil {
			return Result{}, ptperr.Wrap(ptperr.Transport, "writing data container", err)
		}
	}

	var data []byte
	for {
		c, err := e.readContainer()
		if err != nil {
			return Result{}, ptperr.Wrap(ptperr.Transport, "reading container", err)
		}

		e.log.Printf("[DEBUG] ptp: read container type=%s code=%#04x txn=%d len=%d", c.Type, c.Code, c.TransactionID, len(c.Payload))

		if c.TransactionID != txn {
			e.log.Printf("[WARN] ptp: transaction id mismatch: got %d, want %d", c.TransactionID, txn)
		}

		switch c.Type {
		case ContainerData:
			data = append(data, c.Payload...)
		case ContainerEvent:
			e.log.Printf("[WARN] ptp: unexpected event container (code %#04x) mid-transaction, ignoring", c.Code)
		case ContainerResponse:
			resp := ResponseCode(c.Code)
			respParams := decodeParams(c.Payload)
			if resp != RespOk {
				return Result{}, (&ptperr.Error{Kind: ptperr.Response, Msg: fmt.Sprintf("device returned %s", resp)}).WithCode(uint16(resp))
			}
			return Result{Data: data, ResponseParams: respParams}, nil
		default:
			e.log.Printf("[WARN] ptp: unexpected container type %s, ignoring", c.Type)
		}
	}
}

func decodeParams(payload []byte) []uint32 {
	c := ptpcodec.NewCursor(payload)
	var params []uint32
	for c.Len() >= 4 {
		v, err := c.ReadU32()
		if err != nil {
			break
		}
		params = append(params, v)
	}
	return params
}

// writeContainer splits the encoded container across chunkSize-bounded
// bulk writes, matching the reference client's chunking (the first chunk
// carries min(len(payload), chunkSize-headerSize) payload bytes so the
// 12-byte header and first slice of payload share one USB transfer).
func (e *Engine) writeContainer(c container) error {
	buf := encodeContainer(c)
	for len(buf) > 0 {
		n := len(buf)
		if n > e.chunkSize {
			n = e.chunkSize
		}
		if _, err := e.transport.WriteBulk(buf[:n]); err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}

// readContainer reads one container's header to learn its declared
// length, then reads the remaining bytes in chunkSize-bounded pieces.
func (e *Engine) readContainer() (container, error) {
	first := make([]byte, readBufSize)
	n, err := e.transport.ReadBulk(first)
	if err != nil {
		return container{}, err
	}
	if n < containerHeaderSize {
		return container{}, ptperr.Newf(ptperr.Malformed, "short container read: %d bytes", n)
	}
	buf := first[:n]

	declaredU32, err := ptpcodec.NewCursor(buf[:4]).ReadU32()
	if err != nil {
		return container{}, ptperr.Wrap(ptperr.Malformed, "reading container length", err)
	}
	declared := int(declaredU32)
	for len(buf) < declared {
		chunk := make([]byte, e.chunkSize)
		m, err := e.transport.ReadBulk(chunk)
		if err != nil {
			return container{}, err
		}
		if m == 0 {
			break
		}
		buf = append(buf, chunk[:m]...)
	}

	return decodeContainerHeader(buf)
}
