// Package ptp implements the PTP container framing, USB bulk transport,
// and session/transaction engine used to talk to a Fujifilm camera body.
package ptp

import "fmt"

// ContainerType identifies the four kinds of PTP container a bulk
// transfer carries.
type ContainerType uint16

const (
	ContainerCommand  ContainerType = 1
	ContainerData     ContainerType = 2
	ContainerResponse ContainerType = 3
	ContainerEvent    ContainerType = 4
)

func (t ContainerType) String() string {
	switch t {
	case ContainerCommand:
		return "Command"
	case ContainerData:
		return "Data"
	case ContainerResponse:
		return "Response"
	case ContainerEvent:
		return "Event"
	default:
		return fmt.Sprintf("ContainerType(%d)", uint16(t))
	}
}

// CommandCode is an operation request code, standard PTP plus the two
// Fujifilm vendor extensions used for RAW conversion submission.
type CommandCode uint16

const (
	OpGetDeviceInfo       CommandCode = 0x1001
	OpOpenSession         CommandCode = 0x1002
	OpCloseSession        CommandCode = 0x1003
	OpGetObjectHandles    CommandCode = 0x1007
	OpGetObjectInfo       CommandCode = 0x1008
	OpGetObject           CommandCode = 0x1009
	OpDeleteObject        CommandCode = 0x100B
	OpSendObjectInfo      CommandCode = 0x100C
	OpSendObject          CommandCode = 0x100D
	OpGetDevicePropValue  CommandCode = 0x1015
	OpSetDevicePropValue  CommandCode = 0x1016
	OpFujiSendObjectInfo  CommandCode = 0x900C
	OpFujiSendObject      CommandCode = 0x900D
)

// ResponseCode is the status a device returns to terminate a transaction.
type ResponseCode uint16

const (
	RespUndefined                              ResponseCode = 0x2000
	RespOk                                     ResponseCode = 0x2001
	RespGeneralError                           ResponseCode = 0x2002
	RespSessionNotOpen                         ResponseCode = 0x2003
	RespInvalidTransactionID                   ResponseCode = 0x2004
	RespOperationNotSupported                  ResponseCode = 0x2005
	RespParameterNotSupported                  ResponseCode = 0x2006
	RespIncompleteTransfer                     ResponseCode = 0x2007
	RespInvalidStorageID                       ResponseCode = 0x2008
	RespInvalidObjectHandle                    ResponseCode = 0x2009
	RespDevicePropNotSupported                 ResponseCode = 0x200A
	RespInvalidObjectFormatCode                ResponseCode = 0x200B
	RespStoreFull                              ResponseCode = 0x200C
	RespObjectWriteProtected                   ResponseCode = 0x200D
	RespStoreReadOnly                          ResponseCode = 0x200E
	RespAccessDenied                           ResponseCode = 0x200F
	RespNoThumbnailPresent                     ResponseCode = 0x2010
	RespSelfTestFailed                         ResponseCode = 0x2011
	RespPartialDeletion                        ResponseCode = 0x2012
	RespStoreNotAvailable                      ResponseCode = 0x2013
	RespSpecificationByFormatUnsupported       ResponseCode = 0x2014
	RespNoValidObjectInfo                      ResponseCode = 0x2015
	RespInvalidCodeFormat                      ResponseCode = 0x2016
	RespUnknownVendorCode                      ResponseCode = 0x2017
	RespCaptureAlreadyTerminated                ResponseCode = 0x2018
	RespDeviceBusy                              ResponseCode = 0x2019
	RespInvalidParentObject                     ResponseCode = 0x201A
	RespInvalidDevicePropFormat                 ResponseCode = 0x201B
	RespInvalidDevicePropValue                  ResponseCode = 0x201C
	RespInvalidParameter                        ResponseCode = 0x201D
	RespSessionAlreadyOpen                      ResponseCode = 0x201E
	RespTransactionCancelled                    ResponseCode = 0x201F
	RespSpecificationOfDestinationUnsupported   ResponseCode = 0x2020
)

var responseCodeNames = map[ResponseCode]string{
	RespUndefined:                            "Undefined",
	RespOk:                                   "Ok",
	RespGeneralError:                         "GeneralError",
	RespSessionNotOpen:                       "SessionNotOpen",
	RespInvalidTransactionID:                 "InvalidTransactionID",
	RespOperationNotSupported:                "OperationNotSupported",
	RespParameterNotSupported:                "ParameterNotSupported",
	RespIncompleteTransfer:                   "IncompleteTransfer",
	RespInvalidStorageID:                     "InvalidStorageID",
	RespInvalidObjectHandle:                  "InvalidObjectHandle",
	RespDevicePropNotSupported:               "DevicePropNotSupported",
	RespInvalidObjectFormatCode:              "InvalidObjectFormatCode",
	RespStoreFull:                            "StoreFull",
	RespObjectWriteProtected:                 "ObjectWriteProtected",
	RespStoreReadOnly:                        "StoreReadOnly",
	RespAccessDenied:                         "AccessDenied",
	RespNoThumbnailPresent:                   "NoThumbnailPresent",
	RespSelfTestFailed:                       "SelfTestFailed",
	RespPartialDeletion:                      "PartialDeletion",
	RespStoreNotAvailable:                    "StoreNotAvailable",
	RespSpecificationByFormatUnsupported:     "SpecificationByFormatUnsupported",
	RespNoValidObjectInfo:                    "NoValidObjectInfo",
	RespInvalidCodeFormat:                    "InvalidCodeFormat",
	RespUnknownVendorCode:                    "UnknownVendorCode",
	RespCaptureAlreadyTerminated:              "CaptureAlreadyTerminated",
	RespDeviceBusy:                            "DeviceBusy",
	RespInvalidParentObject:                   "InvalidParentObject",
	RespInvalidDevicePropFormat:               "InvalidDevicePropFormat",
	RespInvalidDevicePropValue:                "InvalidDevicePropValue",
	RespInvalidParameter:                      "InvalidParameter",
	RespSessionAlreadyOpen:                    "SessionAlreadyOpen",
	RespTransactionCancelled:                  "TransactionCancelled",
	RespSpecificationOfDestinationUnsupported: "SpecificationOfDestinationUnsupported",
}

func (r ResponseCode) String() string {
	if s, ok := responseCodeNames[r]; ok {
		return s
	}
	return fmt.Sprintf("ResponseCode(%#04x)", uint16(r))
}

// DevicePropCode is a vendor device-property identifier, standard USB
// mode plus the Fujifilm custom-setting property family.
type DevicePropCode uint32

const (
	PropFujiUsbMode                                     DevicePropCode = 0xD16E
	PropFujiRawConversionRun                            DevicePropCode = 0xD183
	PropFujiRawConversionProfile                        DevicePropCode = 0xD185
	PropFujiCustomSetting                               DevicePropCode = 0xD18C
	PropFujiCustomSettingName                           DevicePropCode = 0xD18D
	PropFujiCustomSettingImageSize                       DevicePropCode = 0xD18E
	PropFujiCustomSettingImageQuality                    DevicePropCode = 0xD18F
	PropFujiCustomSettingDynamicRange                    DevicePropCode = 0xD190
	PropFujiCustomSettingDynamicRangePriority            DevicePropCode = 0xD191
	PropFujiCustomSettingFilmSimulation                  DevicePropCode = 0xD192
	PropFujiCustomSettingMonochromaticColorTemperature   DevicePropCode = 0xD193
	PropFujiCustomSettingMonochromaticColorTint          DevicePropCode = 0xD194
	PropFujiCustomSettingGrainEffect                     DevicePropCode = 0xD195
	PropFujiCustomSettingColorChromeEffect               DevicePropCode = 0xD196
	PropFujiCustomSettingColorChromeFXBlue               DevicePropCode = 0xD197
	PropFujiCustomSettingSmoothSkinEffect                DevicePropCode = 0xD198
	PropFujiCustomSettingWhiteBalance                    DevicePropCode = 0xD199
	PropFujiCustomSettingWhiteBalanceShiftRed            DevicePropCode = 0xD19A
	PropFujiCustomSettingWhiteBalanceShiftBlue           DevicePropCode = 0xD19B
	PropFujiCustomSettingWhiteBalanceTemperature         DevicePropCode = 0xD19C
	PropFujiCustomSettingHighlightTone                   DevicePropCode = 0xD19D
	PropFujiCustomSettingShadowTone                      DevicePropCode = 0xD19E
	PropFujiCustomSettingColor                           DevicePropCode = 0xD19F
	PropFujiCustomSettingSharpness                       DevicePropCode = 0xD1A0
	PropFujiCustomSettingHighISONR                       DevicePropCode = 0xD1A1
	PropFujiCustomSettingClarity                         DevicePropCode = 0xD1A2
	PropFujiCustomSettingLensModulationOptimizer         DevicePropCode = 0xD1A3
	PropFujiCustomSettingColorSpace                      DevicePropCode = 0xD1A4
	PropFujiBatteryInfo2                                 DevicePropCode = 0xD36B
)

// ObjectFormat is a PTP object format code.
type ObjectFormat uint16

const (
	FormatNone       ObjectFormat = 0x0
	FormatFujiBackup ObjectFormat = 0x5000
	FormatFujiRAF    ObjectFormat = 0xF802
)
