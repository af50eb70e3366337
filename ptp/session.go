package ptp

import (
	"github.com/karaolidis/fujicli-sub000/ptpcodec"
	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// Session wraps an Engine with the standard PTP operations, plus the
// Fujifilm object-submission pair, that every camera command builds on.
type Session struct {
	engine    *Engine
	sessionID uint32
	open      bool
}

func NewSession(engine *Engine, sessionID uint32) *Session {
	return &Session{engine: engine, sessionID: sessionID}
}

// Open issues OpenSession. One session per handle; calling Open twice
// without an intervening Close is a caller error.
func (s *Session) Open() error {
	if s.open {
		return ptperr.New(ptperr.InvalidValue, "session already open")
	}
	if _, err := s.engine.Send(OpOpenSession, []uint32{s.sessionID}, nil); err != nil {
		return err
	}
	s.open = true
	return nil
}

// Close issues CloseSession. The session is marked closed even when the
// device answers with an error (for example because it has already dropped
// the session); that error is still returned.
func (s *Session) Close() error {
	if !s.open {
		return nil
	}
	_, err := s.engine.Send(OpCloseSession, nil, nil)
	s.open = false
	return err
}

// GetDeviceInfo returns the raw DeviceInfo dataset; callers
// decode it with ptpcodec directly since its shape is standard PTP, not
// Fujifilm-specific.
func (s *Session) GetDeviceInfo() ([]byte, error) {
	res, err := s.engine.Send(OpGetDeviceInfo, nil, nil)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetDevicePropValue reads one property's raw wire value.
func (s *Session) GetDevicePropValue(code DevicePropCode) ([]byte, error) {
	res, err := s.engine.Send(OpGetDevicePropValue, []uint32{uint32(code)}, nil)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// SetDevicePropValue writes one property's raw wire value.
func (s *Session) SetDevicePropValue(code DevicePropCode, value []byte) error {
	_, err := s.engine.Send(OpSetDevicePropValue, []uint32{uint32(code)}, value)
	return err
}

// GetObjectHandles lists object handles, optionally filtered by storage
// id and object format (0 means "don't care" for each, per standard PTP).
func (s *Session) GetObjectHandles(storageID uint32, format ObjectFormat, parent uint32) ([]uint32, error) {
	res, err := s.engine.Send(OpGetObjectHandles, []uint32{storageID, uint32(format), parent}, nil)
	if err != nil {
		return nil, err
	}
	handles, err := ptpcodec.NewCursor(res.Data).ReadVectorU32()
	if err != nil {
		return nil, ptperr.Wrap(ptperr.Malformed, "decoding object handle list", err)
	}
	return handles, nil
}

// GetObjectInfo returns the raw ObjectInfo dataset for handle.
func (s *Session) GetObjectInfo(handle uint32) ([]byte, error) {
	res, err := s.engine.Send(OpGetObjectInfo, []uint32{handle}, nil)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetObject returns the raw object payload for handle.
func (s *Session) GetObject(handle uint32) ([]byte, error) {
	res, err := s.engine.Send(OpGetObject, []uint32{handle}, nil)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// DeleteObject deletes handle (0xFFFFFFFF deletes every object, per
// standard PTP).
func (s *Session) DeleteObject(handle uint32, format ObjectFormat) error {
	_, err := s.engine.Send(OpDeleteObject, []uint32{handle, uint32(format)}, nil)
	return err
}

// SendObjectInfo announces an upcoming SendObject with its ObjectInfo
// dataset, used for both standard transfers and the Fujifilm backup
// import path.
func (s *Session) SendObjectInfo(storageID, parent uint32, objectInfo []byte) error {
	_, err := s.engine.Send(OpSendObjectInfo, []uint32{storageID, parent}, objectInfo)
	return err
}

// SendObject transfers the object payload announced by the preceding
// SendObjectInfo.
func (s *Session) SendObject(payload []byte) error {
	_, err := s.engine.Send(OpSendObject, []uint32{0}, payload)
	return err
}

// FujiSendObjectInfo/FujiSendObject are the vendor-extension pair used to
// submit a RAW conversion job.
func (s *Session) FujiSendObjectInfo(objectInfo []byte) error {
	_, err := s.engine.Send(OpFujiSendObjectInfo, []uint32{0, 0, 0}, objectInfo)
	return err
}

func (s *Session) FujiSendObject(payload []byte) error {
	_, err := s.engine.Send(OpFujiSendObject, nil, payload)
	return err
}
