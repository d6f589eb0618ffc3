package gif

import (
	"time"

	"go.uber.org/zap"
)

// Document is the result of demultiplexing a GIF block stream.
// It is built in a single forward pass and not modified afterwards.
type Document struct {
	Version          string // "87a" or "89a"
	Screen           ScreenDescriptor
	GlobalColorTable ColorTable // nil when the screen has no global table
	Frames           []Frame
	Comments         []string
	PlainTexts       []PlainText

	// Diagnostics lists the bytes skipped while scanning for blocks.
	Diagnostics []Diagnostic

	// Terminated is true when the trailer was reached. A buffer that runs out
	// between blocks still yields a Document, with Terminated false.
	Terminated bool
}

// ScreenDescriptor is the logical screen descriptor that follows the header.
type ScreenDescriptor struct {
	Width               uint16
	Height              uint16
	HasGlobalColorTable bool
	// ColorCount is 2^(N+1) for the 3-bit size field N when
	// HasGlobalColorTable is set, else 0.
	ColorCount          uint32

	// ColorResolution is the raw 3-bit field: bits per primary color minus one.
	ColorResolution  uint8
	Sorted           bool
	BackgroundIndex  uint8
	PixelAspectRatio uint8
}

// RGB is a single color table entry.
type RGB struct {
	R, G, B uint8
}

// ColorTable is an ordered run of RGB entries.
type ColorTable []RGB

// GraphicControl holds a Graphic Control Extension. It applies to the next
// image in the stream.
type GraphicControl struct {
	DisposalMethod   uint8
	UserInput        bool
	Transparent      bool
	TransparentIndex uint8
	Delay            uint16 // hundredths of a second
}

// DelayDuration returns Delay as a time.Duration.
func (g GraphicControl) DelayDuration() time.Duration {
	return time.Duration(g.Delay) * 10 * time.Millisecond
}

// ImageDescriptor is the fixed record that starts every image.
type ImageDescriptor struct {
	Left   uint16
	Top    uint16
	Width  uint16
	Height uint16

	LocalColorTable bool
	Interlaced      bool
	Sorted          bool
	// LocalColorTableSize is the 3-bit size field, 0 when LocalColorTable
	// is unset.
	LocalColorTableSize uint8
}

// LocalColorCount returns the number of entries in the local color table, or
// 0 when the image has none.
func (d ImageDescriptor) LocalColorCount() int {
	if !d.LocalColorTable {
		return 0
	}
	return 1 << (d.LocalColorTableSize + 1)
}

// ImageData is an image's table-based data, still LZW-compressed.
type ImageData struct {
	LZWMinCodeSize uint8
	Data           []byte // concatenated sub-block payloads
}

// Frame is one image in the stream together with the graphic control that
// preceded it, if any.
type Frame struct {
	Control         *GraphicControl
	Descriptor      ImageDescriptor
	LocalColorTable ColorTable
	Image           ImageData
}

// Palette returns the color table that applies to the frame: its local table
// if it has one, else the document's global table.
func (f *Frame) Palette(doc *Document) ColorTable {
	if f.LocalColorTable != nil {
		return f.LocalColorTable
	}
	if doc == nil {
		return nil
	}
	return doc.GlobalColorTable
}

// PlainText holds a Plain Text Extension.
type PlainText struct {
	Left            uint16
	Top             uint16
	GridWidth       uint16
	GridHeight      uint16
	CellWidth       uint8
	CellHeight      uint8
	ForegroundIndex uint8
	BackgroundIndex uint8
	Text            string
}

// Application holds an Application Extension. Applications are not kept in
// the Document; see Options.OnApplication.
type Application struct {
	Identifier string // 8 bytes, e.g. "NETSCAPE"
	AuthCode   string // 3 bytes, e.g. "2.0"
	Data       []byte
}

// Diagnostic records a byte the dispatcher skipped.
type Diagnostic struct {
	Offset int
	Block  Block
}

// Options configures parsing. The zero value matches Parse.
type Options struct {
	// Logger receives block traces and diagnostics. Defaults to the package
	// logger.
	Logger *zap.Logger

	// OnApplication is called for every Application Extension.
	OnApplication func(Application)

	// KeepLocalColorTables records local color tables on frames even when a
	// global color table exists. By default they are read and dropped.
	KeepLocalColorTables bool

	// StandardGraphicControl reads Graphic Control Extensions with the
	// GIF89a field order and bit layout instead of the compatibility layout.
	StandardGraphicControl bool
}
