package ptp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mockTransport is an in-memory Transport: WriteBulk records what the
// engine sent, ReadBulk serves a queue of pre-scripted response frames.
// Adapted from a TCP socket responder to an in-process bulk-transfer
// double.
type mockTransport struct {
	writes [][]byte
	reads  [][]byte
}

func (m *mockTransport) WriteBulk(p []byte) (int, error) {
	cp := append([]byte(nil), p...)
	m.writes = append(m.writes, cp)
	return len(p), nil
}

func (m *mockTransport) ReadBulk(p []byte) (int, error) {
	if len(m.reads) == 0 {
		return 0, errNoMoreReads
	}
	next := m.reads[0]
	m.reads = m.reads[1:]
	n := copy(p, next)
	return n, nil
}

var errNoMoreReads = &mockError{"mock transport exhausted"}

type mockError struct{ msg string }

func (e *mockError) Error() string { return e.msg }

func responseFrame(code ResponseCode, txn uint32, payload []byte) []byte {
	return encodeContainer(container{Type: ContainerResponse, Code: uint16(code), TransactionID: txn, Payload: payload})
}

func dataFrame(code uint16, txn uint32, payload []byte) []byte {
	return encodeContainer(container{Type: ContainerData, Code: code, TransactionID: txn, Payload: payload})
}

// TestOpenSessionEndToEnd exercises literal "open session"
// scenario: a Command with no data phase followed immediately by an Ok
// response.
func TestOpenSessionEndToEnd(t *testing.T) {
	transport := &mockTransport{reads: [][]byte{responseFrame(RespOk, 0, nil)}}
	engine := NewEngine(transport, 0, nil)
	session := NewSession(engine, 1)

	require.NoError(t, session.Open())
	require.Len(t, transport.writes, 1)

	header := decodeHeaderForTest(t, transport.writes[0])
	require.Equal(t, ContainerCommand, header.Type)
	require.Equal(t, uint16(OpOpenSession), header.Code)
	require.Equal(t, uint32(0), header.TransactionID)
}

func TestDataPhaseIsCollectedBeforeResponse(t *testing.T) {
	transport := &mockTransport{reads: [][]byte{
		dataFrame(uint16(OpGetDeviceInfo), 0, []byte("hello")),
		responseFrame(RespOk, 0, nil),
	}}
	engine := NewEngine(transport, 0, nil)

	res, err := engine.Send(OpGetDeviceInfo, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), res.Data)
}

func TestNonOkResponseIsReportedAsError(t *testing.T) {
	transport := &mockTransport{reads: [][]byte{responseFrame(RespDeviceBusy, 0, nil)}}
	engine := NewEngine(transport, 0, nil)

	_, err := engine.Send(OpGetDeviceInfo, nil, nil)
	require.Error(t, err)
}

// TestTransactionIDMismatchIsTolerated exercises "warn and
// continue on bad transaction id" property: a response carrying the wrong
// transaction id is still accepted rather than aborting the transfer.
func TestTransactionIDMismatchIsTolerated(t *testing.T) {
	transport := &mockTransport{reads: [][]byte{responseFrame(RespOk, 99, nil)}}
	engine := NewEngine(transport, 0, nil)

	_, err := engine.Send(OpGetDeviceInfo, nil, nil)
	require.NoError(t, err)
}

// TestUnexpectedEventIsIgnored exercises "ignore stray events
// mid-transaction" property.
func TestUnexpectedEventIsIgnored(t *testing.T) {
	transport := &mockTransport{reads: [][]byte{
		encodeContainer(container{Type: ContainerEvent, Code: 0x4001, TransactionID: 0}),
		responseFrame(RespOk, 0, nil),
	}}
	engine := NewEngine(transport, 0, nil)

	_, err := engine.Send(OpGetDeviceInfo, nil, nil)
	require.NoError(t, err)
}

// TestTransactionIDIncrementsRegardlessOfOutcome exercises
// "transaction id always advances" property, even after an error.
func TestTransactionIDIncrementsRegardlessOfOutcome(t *testing.T) {
	transport := &mockTransport{reads: [][]byte{
		responseFrame(RespDeviceBusy, 0, nil),
		responseFrame(RespOk, 1, nil),
	}}
	engine := NewEngine(transport, 0, nil)

	_, err := engine.Send(OpGetDeviceInfo, nil, nil)
	require.Error(t, err)

	_, err = engine.Send(OpGetDeviceInfo, nil, nil)
	require.NoError(t, err)

	header := decodeHeaderForTest(t, transport.writes[1])
	require.Equal(t, uint32(1), header.TransactionID)
}

// TestChunkedWriteSpansMultipleBulkTransfers exercises
// "chunking" property: a payload larger than chunkSize is split across
// several WriteBulk calls.
func TestChunkedWriteSpansMultipleBulkTransfers(t *testing.T) {
	transport := &mockTransport{reads: [][]byte{responseFrame(RespOk, 0, nil)}}
	engine := NewEngine(transport, 16, nil)

	payload := make([]byte, 100)
	_, err := engine.Send(OpSetDevicePropValue, []uint32{1}, payload)
	require.NoError(t, err)
	require.Greater(t, len(transport.writes), 1)
	for _, w := range transport.writes {
		require.LessOrEqual(t, len(w), 16)
	}
}

func decodeHeaderForTest(t *testing.T, buf []byte) container {
	t.Helper()
	c, err := decodeContainerHeader(buf)
	require.NoError(t, err)
	return c
}
