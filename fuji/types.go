package fuji

import "github.com/karaolidis/fujicli-sub000/ptperr"

// Every enumeration below stores its discriminant in the narrowest width
// the device uses internally; the conversion profile codec
// (camera/profile) widens it to/from the 32-bit wire form its fixed-size
// fields use. Discriminants, display strings, parse aliases and numeric
// alternates are grounded field-for-field on
// original_source/src/camera/ptp/hex/fuji.rs.

// FileType is the rendered output container format.
type FileType uint16

const (
	Jpeg   FileType = 0x7
	Heif   FileType = 0x12
	Tiff8  FileType = 0x9
	Tiff16 FileType = 0xb
)

var fileTypeTable = []enumEntry[FileType]{
	{Jpeg, "JPEG", []string{"jpeg", "jpg"}, nil},
	{Heif, "HEIF", []string{"heif"}, nil},
	{Tiff8, "TIFF 8-bit", []string{"tiff8", "tiff8bit"}, nil},
	{Tiff16, "TIFF 16-bit", []string{"tiff16", "tiff16bit"}, nil},
}

func (v FileType) String() string            { return enumDisplay("FileType", fileTypeTable, v) }
func ParseFileType(s string) (FileType, error) { return enumParse("FileType", fileTypeTable, s) }
func FileTypeFromWire(w uint16) (FileType, error) {
	return enumDecode("FileType", fileTypeTable, FileType(w))
}

// CustomSetting identifies one of the seven on-camera custom-setting slots.
type CustomSetting uint16

const (
	C1 CustomSetting = 0x1
	C2 CustomSetting = 0x2
	C3 CustomSetting = 0x3
	C4 CustomSetting = 0x4
	C5 CustomSetting = 0x5
	C6 CustomSetting = 0x6
	C7 CustomSetting = 0x7
)

var customSettingTable = []enumEntry[CustomSetting]{
	{C1, "C1", []string{"c1", "1"}, nil},
	{C2, "C2", []string{"c2", "2"}, nil},
	{C3, "C3", []string{"c3", "3"}, nil},
	{C4, "C4", []string{"c4", "4"}, nil},
	{C5, "C5", []string{"c5", "5"}, nil},
	{C6, "C6", []string{"c6", "6"}, nil},
	{C7, "C7", []string{"c7", "7"}, nil},
}

func (v CustomSetting) String() string { return enumDisplay("CustomSetting", customSettingTable, v) }
func ParseCustomSetting(s string) (CustomSetting, error) {
	return enumParse("CustomSetting", customSettingTable, s)
}
func CustomSettingFromWire(w uint16) (CustomSetting, error) {
	return enumDecode("CustomSetting", customSettingTable, CustomSetting(w))
}

// AllCustomSettings lists every slot in ascending order.
var AllCustomSettings = []CustomSetting{C1, C2, C3, C4, C5, C6, C7}

// ImageSize is the capture resolution in pixels.
type ImageSize uint16

const (
	Size7728x5152 ImageSize = 0x7
	Size7728x4344 ImageSize = 0x8
	Size5152x5152 ImageSize = 0x9
	Size6864x5152 ImageSize = 0xe
	Size6432x5152 ImageSize = 0x10
	Size5472x3648 ImageSize = 0x4
	Size5472x3080 ImageSize = 0x5
	Size3648x3648 ImageSize = 0x6
	Size4864x3648 ImageSize = 0x12
	Size4560x3648 ImageSize = 0x14
	Size3888x2592 ImageSize = 0x1
	Size3888x2184 ImageSize = 0x2
	Size2592x2592 ImageSize = 0x3
	Size3456x2592 ImageSize = 0xa
	Size3264x2592 ImageSize = 0xc
)

var imageSizeTable = []enumEntry[ImageSize]{
	{Size7728x5152, "7728x5152", []string{"7728x5152"}, nil},
	{Size7728x4344, "7728x4344", []string{"7728x4344"}, nil},
	{Size5152x5152, "5152x5152", []string{"5152x5152"}, nil},
	{Size6864x5152, "6864x5152", []string{"6864x5152"}, nil},
	{Size6432x5152, "6432x5152", []string{"6432x5152"}, nil},
	{Size5472x3648, "5472x3648", []string{"5472x3648"}, nil},
	{Size5472x3080, "5472x3080", []string{"5472x3080"}, nil},
	{Size3648x3648, "3648x3648", []string{"3648x3648"}, nil},
	{Size4864x3648, "4864x3648", []string{"4864x3648"}, nil},
	{Size4560x3648, "4560x3648", []string{"4560x3648"}, nil},
	{Size3888x2592, "3888x2592", []string{"3888x2592"}, nil},
	{Size3888x2184, "3888x2184", []string{"3888x2184"}, nil},
	{Size2592x2592, "2592x2592", []string{"2592x2592"}, nil},
	{Size3456x2592, "3456x2592", []string{"3456x2592"}, nil},
	{Size3264x2592, "3264x2592", []string{"3264x2592"}, nil},
}

func (v ImageSize) String() string            { return enumDisplay("ImageSize", imageSizeTable, v) }
func ParseImageSize(s string) (ImageSize, error) { return enumParse("ImageSize", imageSizeTable, s) }
func ImageSizeFromWire(w uint16) (ImageSize, error) {
	return enumDecode("ImageSize", imageSizeTable, ImageSize(w))
}

// ImageQuality is the capture compression/RAW setting. The conversion
// profile cannot hold "+RAW" variants;
// CollapseForProfile implements that reduction.
type ImageQuality uint16

const (
	QualityFineRaw   ImageQuality = 0x4
	QualityFine      ImageQuality = 0x2
	QualityNormalRaw ImageQuality = 0x5
	QualityNormal    ImageQuality = 0x3
	QualityRaw       ImageQuality = 0x1
)

var imageQualityTable = []enumEntry[ImageQuality]{
	{QualityFineRaw, "Fine + RAW", []string{"fineraw"}, nil},
	{QualityFine, "Fine", []string{"fine"}, nil},
	{QualityNormalRaw, "Normal + RAW", []string{"normalraw"}, nil},
	{QualityNormal, "Normal", []string{"normal"}, nil},
	{QualityRaw, "RAW", []string{"raw"}, nil},
}

func (v ImageQuality) String() string { return enumDisplay("ImageQuality", imageQualityTable, v) }
func ParseImageQuality(s string) (ImageQuality, error) {
	return enumParse("ImageQuality", imageQualityTable, s)
}
func ImageQualityFromWire(w uint16) (ImageQuality, error) {
	return enumDecode("ImageQuality", imageQualityTable, ImageQuality(w))
}

// CollapseForProfile implements ImageQuality quirk: the
// conversion profile cannot hold "+RAW" variants.
func (v ImageQuality) CollapseForProfile() ImageQuality {
	switch v {
	case QualityFineRaw:
		return QualityFine
	case QualityNormalRaw:
		return QualityNormal
	default:
		return v
	}
}

// DynamicRange is the highlight/shadow dynamic-range expansion setting.
// HDR800Plus is UX-only: the wire
// protocol never carries 0x640 directly.
type DynamicRange uint16

const (
	DRAuto       DynamicRange = 0xffff
	DR100        DynamicRange = 0x64
	DR200        DynamicRange = 0xc8
	DR400        DynamicRange = 0x190
	DR800        DynamicRange = 0x320
	DR800Plus    DynamicRange = 0x640
)

var dynamicRangeTable = []enumEntry[DynamicRange]{
	{DRAuto, "Auto", []string{"auto", "hdrauto", "drauto"}, nil},
	{DR100, "HDR100", []string{"100", "hdr100", "dr100"}, nil},
	{DR200, "HDR200", []string{"200", "hdr200", "dr200"}, nil},
	{DR400, "HDR400", []string{"400", "hdr400", "dr400"}, nil},
	{DR800, "HDR800", []string{"800", "hdr800", "dr800"}, nil},
	{DR800Plus, "HDR800+", []string{"800+", "800plus", "hdr800+", "hdr800plus", "dr800+", "dr800plus"}, nil},
}

func (v DynamicRange) String() string { return enumDisplay("DynamicRange", dynamicRangeTable, v) }
func ParseDynamicRange(s string) (DynamicRange, error) {
	return enumParse("DynamicRange", dynamicRangeTable, s)
}

// DynamicRangeFromWire decodes only the values the wire protocol actually
// carries: DR800Plus is excluded, since no device emits 0x640 (it is
// represented on the wire as DR800 + DynamicRangePriority Plus).
func DynamicRangeFromWire(w uint16) (DynamicRange, error) {
	if DynamicRange(w) == DR800Plus {
		return 0, errInvalidWire("DynamicRange", w)
	}
	return enumDecode("DynamicRange", dynamicRangeTable, DynamicRange(w))
}

// DynamicRangePriority is the secondary DR control used to represent
// HDR800+ on the wire (dynamic_range=HDR800, priority=Plus).
type DynamicRangePriority uint16

const (
	DRPAuto   DynamicRangePriority = 0x8000
	DRPPlus   DynamicRangePriority = 0x3
	DRPStrong DynamicRangePriority = 0x2
	DRPWeak   DynamicRangePriority = 0x1
	DRPOff    DynamicRangePriority = 0x0
)

var dynamicRangePriorityTable = []enumEntry[DynamicRangePriority]{
	{DRPAuto, "Auto", []string{"auto", "drpauto"}, nil},
	{DRPPlus, "Plus", []string{"plus"}, nil},
	{DRPStrong, "Strong", []string{"strong", "drpstrong"}, nil},
	{DRPWeak, "Weak", []string{"weak", "drpweak"}, nil},
	{DRPOff, "Off", []string{"off", "drpoff"}, nil},
}

func (v DynamicRangePriority) String() string {
	return enumDisplay("DynamicRangePriority", dynamicRangePriorityTable, v)
}
func ParseDynamicRangePriority(s string) (DynamicRangePriority, error) {
	return enumParse("DynamicRangePriority", dynamicRangePriorityTable, s)
}
func DynamicRangePriorityFromWire(w uint16) (DynamicRangePriority, error) {
	return enumDecode("DynamicRangePriority", dynamicRangePriorityTable, DynamicRangePriority(w))
}

// FilmSimulation is the core color/tone rendering algorithm.
type FilmSimulation uint16

const (
	Provia              FilmSimulation = 0x1
	Velvia              FilmSimulation = 0x2
	Astia               FilmSimulation = 0x3
	PRONegHi            FilmSimulation = 0x4
	PRONegStd           FilmSimulation = 0x5
	Monochrome          FilmSimulation = 0x6
	MonochromeYe        FilmSimulation = 0x7
	MonochromeR         FilmSimulation = 0x8
	MonochromeG         FilmSimulation = 0x9
	Sepia               FilmSimulation = 0xa
	ClassicChrome       FilmSimulation = 0xb
	AcrosSTD            FilmSimulation = 0xc
	AcrosYe             FilmSimulation = 0xd
	AcrosR              FilmSimulation = 0xe
	AcrosG              FilmSimulation = 0xf
	Eterna              FilmSimulation = 0x10
	ClassicNegative     FilmSimulation = 0x11
	EternaBleachBypass  FilmSimulation = 0x12
	NostalgicNegative   FilmSimulation = 0x13
	RealaAce            FilmSimulation = 0x14
)

var filmSimulationTable = []enumEntry[FilmSimulation]{
	{Provia, "Provia", []string{"provia"}, nil},
	{Velvia, "Velvia", []string{"velvia"}, nil},
	{Astia, "Astia", []string{"astia"}, nil},
	{PRONegHi, "PRO Neg. Hi", []string{"proneghi", "proneghigh"}, nil},
	{PRONegStd, "PRO Neg. Std", []string{"pronegstd", "pronegstandard"}, nil},
	{Monochrome, "Monochrome", []string{"mono", "monochrome"}, nil},
	{MonochromeYe, "Monochrome + Ye", []string{"monoy", "monoye", "monoyellow", "monochromey", "monochromeye", "monochromeyellow"}, nil},
	{MonochromeR, "Monochrome + R", []string{"monor", "monored", "monochromer", "monochromered"}, nil},
	{MonochromeG, "Monochrome + G", []string{"monog", "monogreen", "monochromeg", "monochromegreen"}, nil},
	{Sepia, "Sepia", []string{"sepia"}, nil},
	{ClassicChrome, "Classic Chrome", []string{"classicchrome"}, nil},
	{AcrosSTD, "Acros", []string{"acros"}, nil},
	{AcrosYe, "Acros + Ye", []string{"acrosy", "acrosye", "acrosyellow"}, nil},
	{AcrosR, "Acros + R", []string{"acrossr", "acrossred"}, nil},
	{AcrosG, "Acros + G", []string{"acrossg", "acrossgreen"}, nil},
	{Eterna, "Eterna", []string{"eterna"}, nil},
	{ClassicNegative, "Classic Negative", []string{"classicneg", "classicnegative"}, nil},
	{EternaBleachBypass, "Eterna Bleach Bypass", []string{"eternabb", "eternableach", "eternableachbypass"}, nil},
	{NostalgicNegative, "Nostalgic Negative", []string{"nostalgicneg", "nostalgicnegative"}, nil},
	{RealaAce, "Reala Ace", []string{"realaace"}, nil},
}

func (v FilmSimulation) String() string {
	return enumDisplay("FilmSimulation", filmSimulationTable, v)
}
func ParseFilmSimulation(s string) (FilmSimulation, error) {
	return enumParse("FilmSimulation", filmSimulationTable, s)
}
func FilmSimulationFromWire(w uint16) (FilmSimulation, error) {
	return enumDecode("FilmSimulation", filmSimulationTable, FilmSimulation(w))
}

// IsBlackAndWhite reports whether this simulation is one of the
// monochrome/Acros family, the gate for the simulation record's
// monochromatic-color field pair.
func (v FilmSimulation) IsBlackAndWhite() bool {
	switch v {
	case Monochrome, MonochromeYe, MonochromeR, MonochromeG, AcrosSTD, AcrosYe, AcrosR, AcrosG:
		return true
	default:
		return false
	}
}

// GrainEffect is the simulated film-grain intensity/size control.
// GrainOff tolerates 0x06 and 0x07 as synonyms on decode — an
// unexplained device quirk preserved
type GrainEffect uint16

const (
	GrainStrongLarge GrainEffect = 0x5
	GrainWeakLarge   GrainEffect = 0x4
	GrainStrongSmall GrainEffect = 0x3
	GrainWeakSmall   GrainEffect = 0x2
	GrainOff         GrainEffect = 0x1
)

var grainEffectTable = []enumEntry[GrainEffect]{
	{GrainStrongLarge, "Strong Large", []string{"stronglarge", "largestrong"}, nil},
	{GrainWeakLarge, "Weak Large", []string{"weaklarge", "largeweak"}, nil},
	{GrainStrongSmall, "Strong Small", []string{"strongsmall", "smallstrong"}, nil},
	{GrainWeakSmall, "Weak Small", []string{"weaksmall", "smallweak"}, nil},
	{GrainOff, "Off", []string{"off"}, []GrainEffect{0x6, 0x7}},
}

func (v GrainEffect) String() string { return enumDisplay("GrainEffect", grainEffectTable, v) }
func ParseGrainEffect(s string) (GrainEffect, error) {
	return enumParse("GrainEffect", grainEffectTable, s)
}
func GrainEffectFromWire(w uint16) (GrainEffect, error) {
	return enumDecode("GrainEffect", grainEffectTable, GrainEffect(w))
}

// ColorChromeEffect, ColorChromeFXBlue and SmoothSkinEffect all share the
// same Off/Weak/Strong shape but are declared as distinct types since
// they apply to different device properties.

// ColorChromeEffect is the color-density-boost control.
type ColorChromeEffect uint16

const (
	ColorChromeStrong ColorChromeEffect = 0x3
	ColorChromeWeak   ColorChromeEffect = 0x2
	ColorChromeOff    ColorChromeEffect = 0x1
)

var colorChromeEffectTable = []enumEntry[ColorChromeEffect]{
	{ColorChromeStrong, "Strong", []string{"strong"}, nil},
	{ColorChromeWeak, "Weak", []string{"weak"}, nil},
	{ColorChromeOff, "Off", []string{"off"}, nil},
}

func (v ColorChromeEffect) String() string {
	return enumDisplay("ColorChromeEffect", colorChromeEffectTable, v)
}
func ParseColorChromeEffect(s string) (ColorChromeEffect, error) {
	return enumParse("ColorChromeEffect", colorChromeEffectTable, s)
}
func ColorChromeEffectFromWire(w uint16) (ColorChromeEffect, error) {
	return enumDecode("ColorChromeEffect", colorChromeEffectTable, ColorChromeEffect(w))
}

// ColorChromeFXBlue is the blue-channel color-chrome control.
type ColorChromeFXBlue uint16

const (
	ColorChromeFXBlueStrong ColorChromeFXBlue = 0x3
	ColorChromeFXBlueWeak   ColorChromeFXBlue = 0x2
	ColorChromeFXBlueOff    ColorChromeFXBlue = 0x1
)

var colorChromeFXBlueTable = []enumEntry[ColorChromeFXBlue]{
	{ColorChromeFXBlueStrong, "Strong", []string{"strong"}, nil},
	{ColorChromeFXBlueWeak, "Weak", []string{"weak"}, nil},
	{ColorChromeFXBlueOff, "Off", []string{"off"}, nil},
}

func (v ColorChromeFXBlue) String() string {
	return enumDisplay("ColorChromeFXBlue", colorChromeFXBlueTable, v)
}
func ParseColorChromeFXBlue(s string) (ColorChromeFXBlue, error) {
	return enumParse("ColorChromeFXBlue", colorChromeFXBlueTable, s)
}
func ColorChromeFXBlueFromWire(w uint16) (ColorChromeFXBlue, error) {
	return enumDecode("ColorChromeFXBlue", colorChromeFXBlueTable, ColorChromeFXBlue(w))
}

// SmoothSkinEffect is the skin-smoothing control.
type SmoothSkinEffect uint16

const (
	SmoothSkinStrong SmoothSkinEffect = 0x3
	SmoothSkinWeak   SmoothSkinEffect = 0x2
	SmoothSkinOff    SmoothSkinEffect = 0x1
)

var smoothSkinEffectTable = []enumEntry[SmoothSkinEffect]{
	{SmoothSkinStrong, "Strong", []string{"strong"}, nil},
	{SmoothSkinWeak, "Weak", []string{"weak"}, nil},
	{SmoothSkinOff, "Off", []string{"off"}, nil},
}

func (v SmoothSkinEffect) String() string {
	return enumDisplay("SmoothSkinEffect", smoothSkinEffectTable, v)
}
func ParseSmoothSkinEffect(s string) (SmoothSkinEffect, error) {
	return enumParse("SmoothSkinEffect", smoothSkinEffectTable, s)
}
func SmoothSkinEffectFromWire(w uint16) (SmoothSkinEffect, error) {
	return enumDecode("SmoothSkinEffect", smoothSkinEffectTable, SmoothSkinEffect(w))
}

// WhiteBalance is the color-temperature/preset control. AsShot mirrors the
// as-imported value and drives WhiteBalanceAsShot on profile apply.
type WhiteBalance uint16

const (
	WBAsShot            WhiteBalance = 0x0
	WBWhitePriority     WhiteBalance = 0x8020
	WBAuto              WhiteBalance = 0x2
	WBAmbiencePriority  WhiteBalance = 0x8021
	WBCustom1           WhiteBalance = 0x8008
	WBCustom2           WhiteBalance = 0x8009
	WBCustom3           WhiteBalance = 0x800A
	WBTemperature       WhiteBalance = 0x8007
	WBDaylight          WhiteBalance = 0x4
	WBShade             WhiteBalance = 0x8006
	WBFluorescent1      WhiteBalance = 0x8001
	WBFluorescent2      WhiteBalance = 0x8002
	WBFluorescent3      WhiteBalance = 0x8003
	WBIncandescent      WhiteBalance = 0x6
	WBUnderwater        WhiteBalance = 0x8
)

var whiteBalanceTable = []enumEntry[WhiteBalance]{
	{WBAsShot, "As Shot", []string{"asshot", "original"}, nil},
	{WBWhitePriority, "White Priority", []string{"whitepriority", "white"}, nil},
	{WBAuto, "Auto", []string{"auto"}, nil},
	{WBAmbiencePriority, "Ambience Priority", []string{"ambiencepriority", "ambience", "ambient"}, nil},
	{WBCustom1, "Custom 1", []string{"custom1", "c1"}, nil},
	{WBCustom2, "Custom 2", []string{"custom2", "c2"}, nil},
	{WBCustom3, "Custom 3", []string{"custom3", "c3"}, nil},
	{WBTemperature, "Temperature", []string{"temperature", "k", "kelvin"}, nil},
	{WBDaylight, "Daylight", []string{"daylight", "sunny"}, nil},
	{WBShade, "Shade", []string{"shade", "cloudy"}, nil},
	{WBFluorescent1, "Fluorescent 1", []string{"fluorescent1"}, nil},
	{WBFluorescent2, "Fluorescent 2", []string{"fluorescent2"}, nil},
	{WBFluorescent3, "Fluorescent 3", []string{"fluorescent3"}, nil},
	{WBIncandescent, "Incandescent", []string{"incandescent", "tungsten"}, nil},
	{WBUnderwater, "Underwater", []string{"underwater"}, nil},
}

func (v WhiteBalance) String() string { return enumDisplay("WhiteBalance", whiteBalanceTable, v) }
func ParseWhiteBalance(s string) (WhiteBalance, error) {
	return enumParse("WhiteBalance", whiteBalanceTable, s)
}
func WhiteBalanceFromWire(w uint16) (WhiteBalance, error) {
	return enumDecode("WhiteBalance", whiteBalanceTable, WhiteBalance(w))
}

// ColorSpace is the output color gamut.
type ColorSpace uint16

const (
	SRGB     ColorSpace = 0x2
	AdobeRGB ColorSpace = 0x1
)

var colorSpaceTable = []enumEntry[ColorSpace]{
	{SRGB, "sRGB", []string{"s", "srgb"}, nil},
	{AdobeRGB, "Adobe RGB", []string{"adobe", "adobergb"}, nil},
}

func (v ColorSpace) String() string            { return enumDisplay("ColorSpace", colorSpaceTable, v) }
func ParseColorSpace(s string) (ColorSpace, error) { return enumParse("ColorSpace", colorSpaceTable, s) }
func ColorSpaceFromWire(w uint16) (ColorSpace, error) {
	return enumDecode("ColorSpace", colorSpaceTable, ColorSpace(w))
}

// UsbMode is the camera's advertised USB connection mode.
type UsbMode uint16

const (
	UsbModeRawConversion UsbMode = 0x6
)

var usbModeTable = []enumEntry[UsbMode]{
	{UsbModeRawConversion, "Raw Conversion", []string{"raw", "rawconversion"}, nil},
}

func (v UsbMode) String() string          { return enumDisplay("UsbMode", usbModeTable, v) }
func ParseUsbMode(s string) (UsbMode, error) { return enumParse("UsbMode", usbModeTable, s) }
func UsbModeFromWire(w uint16) (UsbMode, error) {
	return enumDecode("UsbMode", usbModeTable, UsbMode(w))
}

// WhiteBalanceAsShot is the bool-like "WB was left at as-shot" flag. Wire
// values follow the device's convention of True=0x1, False=0x2 (not the
// 0/1 a Go reader might expect).
type WhiteBalanceAsShot uint16

const (
	WhiteBalanceAsShotTrue  WhiteBalanceAsShot = 0x1
	WhiteBalanceAsShotFalse WhiteBalanceAsShot = 0x2
)

func (v WhiteBalanceAsShot) Bool() bool { return v == WhiteBalanceAsShotTrue }
func BoolToWhiteBalanceAsShot(b bool) WhiteBalanceAsShot {
	if b {
		return WhiteBalanceAsShotTrue
	}
	return WhiteBalanceAsShotFalse
}
func WhiteBalanceAsShotFromWire(w uint16) (WhiteBalanceAsShot, error) {
	switch WhiteBalanceAsShot(w) {
	case WhiteBalanceAsShotTrue, WhiteBalanceAsShotFalse:
		return WhiteBalanceAsShot(w), nil
	default:
		return 0, errInvalidWire("WhiteBalanceAsShot", w)
	}
}

// LensModulationOptimizer is the bool-like diffraction/aberration
// correction toggle. Wire values follow On=0x1, Off=0x2.
type LensModulationOptimizer uint16

const (
	LensModulationOptimizerOn  LensModulationOptimizer = 0x1
	LensModulationOptimizerOff LensModulationOptimizer = 0x2
)

func (v LensModulationOptimizer) Bool() bool { return v == LensModulationOptimizerOn }
func BoolToLensModulationOptimizer(b bool) LensModulationOptimizer {
	if b {
		return LensModulationOptimizerOn
	}
	return LensModulationOptimizerOff
}
func LensModulationOptimizerFromWire(w uint16) (LensModulationOptimizer, error) {
	switch LensModulationOptimizer(w) {
	case LensModulationOptimizerOn, LensModulationOptimizerOff:
		return LensModulationOptimizer(w), nil
	default:
		return 0, errInvalidWire("LensModulationOptimizer", w)
	}
}

// Teleconverter is the bool-like digital teleconverter toggle. Wire
// values follow On=0x1, Off=0x2.
type Teleconverter uint16

const (
	TeleconverterOn  Teleconverter = 0x1
	TeleconverterOff Teleconverter = 0x2
)

func (v Teleconverter) Bool() bool { return v == TeleconverterOn }
func BoolToTeleconverter(b bool) Teleconverter {
	if b {
		return TeleconverterOn
	}
	return TeleconverterOff
}
func TeleconverterFromWire(w uint16) (Teleconverter, error) {
	switch Teleconverter(w) {
	case TeleconverterOn, TeleconverterOff:
		return Teleconverter(w), nil
	default:
		return 0, errInvalidWire("Teleconverter", w)
	}
}

// CustomSettingName is the user-facing label for one custom-setting slot,
// capped at MaxCustomSettingNameLen characters.
type CustomSettingName string

const MaxCustomSettingNameLen = 25

func NewCustomSettingName(s string) (CustomSettingName, error) {
	if len(s) > MaxCustomSettingNameLen {
		return "", errTooLong(s, MaxCustomSettingNameLen)
	}
	return CustomSettingName(s), nil
}

func errInvalidWire(typeName string, w uint16) error {
	return ptperr.Newf(ptperr.InvalidValue, "%d is not a valid %s", w, typeName)
}

func errTooLong(s string, max int) error {
	return ptperr.Newf(ptperr.InvalidValue, "custom setting name %q exceeds %d characters", s, max)
}
