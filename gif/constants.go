package gif

// Signature and versions.
const (
	Signature = "GIF"
	Version87 = "87a"
	Version89 = "89a"
)

// Block introducers at the top level of the block stream.
const (
	IntroExtension       byte = 0x21 // Extension introducer ('!')
	IntroImageDescriptor byte = 0x2C // Image separator (',')
	IntroTrailer         byte = 0x3B // Trailer (';')
)

// Extension labels following IntroExtension.
const (
	LabelPlainText      byte = 0x01 // Plain Text Extension
	LabelGraphicControl byte = 0xF9 // Graphic Control Extension
	LabelComment        byte = 0xFE // Comment Extension
	LabelApplication    byte = 0xFF // Application Extension
)

// Fixed record sizes, introducer and label included where present.
const (
	headerSize          = 6  // "GIF" + version
	screenEnd           = 13 // header + 7-byte logical screen descriptor
	graphicControlSize  = 8  // 21 F9 size flags ... terminator
	imageDescriptorSize = 10 // 2C left top width height flags
	plainTextHeaderSize = 15 // 21 01 0C + 12 bytes metadata
	applicationHeader   = 14 // 21 FF 0B + 8-byte id + 3-byte auth code
	commentHeader       = 2  // 21 FE

	plainTextBlockSize   = 0x0C
	applicationBlockSize = 0x0B
	graphicControlBlock  = 0x04
)

// Logical screen descriptor packed fields.
const (
	fGlobalColorTable = 1 << 7
	fColorResolution  = 7 << 4
	fScreenSorted     = 1 << 3
	fColorTableSize   = 7
)

// Image descriptor packed fields.
const (
	ifLocalColorTable     = 1 << 7
	ifInterlace           = 1 << 6
	ifSorted              = 1 << 5
	ifLocalColorTableSize = 7
)

// Graphic control packed fields as laid out in GIF89a.
const (
	gcTransparent    = 1 << 0
	gcUserInput      = 1 << 1
	gcDisposalMethod = 7 << 2
)

// Graphic control packed fields in the default (compatibility) layout.
const (
	gcCompatTransparent    = 1 << 2
	gcCompatDisposalMethod = 7 << 4
)

// Disposal methods.
const (
	DisposalUnspecified uint8 = 0 // decoder chooses
	DisposalNone        uint8 = 1 // leave the frame in place
	DisposalBackground  uint8 = 2 // restore to background color
	DisposalPrevious    uint8 = 3 // restore to previous content
)

// Block names used in errors and logs.
const (
	blockHeader          = "header"
	blockScreen          = "logical screen descriptor"
	blockGlobalTable     = "global color table"
	blockLocalTable      = "local color table"
	blockGraphicControl  = "graphic control extension"
	blockImageDescriptor = "image descriptor"
	blockImageData       = "image data"
	blockComment         = "comment extension"
	blockPlainText       = "plain text extension"
	blockApplication     = "application extension"
)
