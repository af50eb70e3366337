package camera

import (
	"github.com/karaolidis/fujicli-sub000/ptp"
	"github.com/karaolidis/fujicli-sub000/ptpcodec"
	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// ObjectInfo is the fixed-layout PTP ObjectInfo dataset:
// storage/format/protection/size header, thumbnail metadata, image
// dimensions, parent/association linkage, and four length-prefixed
// strings. Fields the caller doesn't set are zero-valued, matching the
// reference client's default-then-override construction.
type ObjectInfo struct {
	StorageID           uint32
	ObjectFormat        ptp.ObjectFormat
	ProtectionStatus    uint16
	CompressedSize      uint32
	ThumbFormat         uint16
	ThumbCompressedSize uint32
	ThumbWidth          uint32
	ThumbHeight         uint32
	ImageWidth          uint32
	ImageHeight         uint32
	ImageBitDepth       uint32
	ParentObject        uint32
	AssociationType     uint16
	AssociationDesc     uint32
	SequenceNumber      uint32
	Filename            string
	DateCreated         string
	DateModified        string
	Keywords            string
}

// Encode serializes the dataset in field-declaration order.
func (o ObjectInfo) Encode() ([]byte, error) {
	w := ptpcodec.NewWriter()
	w.WriteU32(o.StorageID)
	w.WriteU16(uint16(o.ObjectFormat))
	w.WriteU16(o.ProtectionStatus)
	w.WriteU32(o.CompressedSize)
	w.WriteU16(o.ThumbFormat)
	w.WriteU32(o.ThumbCompressedSize)
	w.WriteU32(o.ThumbWidth)
	w.WriteU32(o.ThumbHeight)
	w.WriteU32(o.ImageWidth)
	w.WriteU32(o.ImageHeight)
	w.WriteU32(o.ImageBitDepth)
	w.WriteU32(o.ParentObject)
	w.WriteU16(o.AssociationType)
	w.WriteU32(o.AssociationDesc)
	w.WriteU32(o.SequenceNumber)
	for _, s := range []string{o.Filename, o.DateCreated, o.DateModified, o.Keywords} {
		if err := w.WriteString(s); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// DecodeObjectInfo parses a dataset returned by GetObjectInfo.
func DecodeObjectInfo(buf []byte) (ObjectInfo, error) {
	c := ptpcodec.NewCursor(buf)
	var o ObjectInfo
	var err error

	read := func(f func() error) {
		if err == nil {
			err = f()
		}
	}

	read(func() (e error) { o.StorageID, e = c.ReadU32(); return })
	var format uint16
	read(func() (e error) { format, e = c.ReadU16(); return })
	o.ObjectFormat = ptp.ObjectFormat(format)
	read(func() (e error) { o.ProtectionStatus, e = c.ReadU16(); return })
	read(func() (e error) { o.CompressedSize, e = c.ReadU32(); return })
	read(func() (e error) { o.ThumbFormat, e = c.ReadU16(); return })
	read(func() (e error) { o.ThumbCompressedSize, e = c.ReadU32(); return })
	read(func() (e error) { o.ThumbWidth, e = c.ReadU32(); return })
	read(func() (e error) { o.ThumbHeight, e = c.ReadU32(); return })
	read(func() (e error) { o.ImageWidth, e = c.ReadU32(); return })
	read(func() (e error) { o.ImageHeight, e = c.ReadU32(); return })
	read(func() (e error) { o.ImageBitDepth, e = c.ReadU32(); return })
	read(func() (e error) { o.ParentObject, e = c.ReadU32(); return })
	read(func() (e error) { o.AssociationType, e = c.ReadU16(); return })
	read(func() (e error) { o.AssociationDesc, e = c.ReadU32(); return })
	read(func() (e error) { o.SequenceNumber, e = c.ReadU32(); return })
	read(func() (e error) { o.Filename, e = c.ReadString(); return })
	read(func() (e error) { o.DateCreated, e = c.ReadString(); return })
	read(func() (e error) { o.DateModified, e = c.ReadString(); return })
	read(func() (e error) { o.Keywords, e = c.ReadString(); return })

	if err != nil {
		return ObjectInfo{}, ptperr.Wrap(ptperr.Malformed, "decoding ObjectInfo", err)
	}
	return o, c.ExpectEnd()
}

// backupImportPaddingSize is the fixed trailing zero-padding length a
// Fujifilm backup-import ObjectInfo carries after its encoded fields.
const backupImportPaddingSize = 1020

// BackupObjectInfo builds the ObjectInfo payload used to announce a
// backup-blob import: a FujiBackup-format ObjectInfo of the given size,
// followed by 1020 zero padding bytes.
func BackupObjectInfo(size uint32) ([]byte, error) {
	info := ObjectInfo{ObjectFormat: ptp.FormatFujiBackup, CompressedSize: size}
	buf, err := info.Encode()
	if err != nil {
		return nil, err
	}
	return append(buf, make([]byte, backupImportPaddingSize)...), nil
}

// rawSubmitFilename is the literal filename the camera requires for a RAW
// conversion submission.
const rawSubmitFilename = "FUP_FILE.dat"

// RawSubmitObjectInfo builds the ObjectInfo payload used to submit a RAW
// file for conversion.
func RawSubmitObjectInfo(size uint32) ([]byte, error) {
	info := ObjectInfo{ObjectFormat: ptp.FormatFujiRAF, CompressedSize: size, Filename: rawSubmitFilename}
	return info.Encode()
}
