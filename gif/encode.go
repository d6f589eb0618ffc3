package gif

import (
	"math/bits"

	"golang.org/x/text/encoding/charmap"

	"github.com/wippyai/gif-demux/gif/internal/binary"
)

// Encode writes the document back out as a GIF block stream.
//
// Comments and plain texts are written ahead of the frames, since the
// Document does not record where they sat relative to images. Graphic
// control records use the GIF89a layout; parse the output with
// Options.StandardGraphicControl to read them back unchanged.
func (doc *Document) Encode() []byte {
	w := binary.NewWriter()

	version := doc.Version
	if version != Version87 {
		version = Version89
	}
	w.WriteString(Signature)
	w.WriteString(version)

	writeScreen(w, doc.Screen, doc.GlobalColorTable)
	if len(doc.GlobalColorTable) > 0 {
		writeColorTable(w, doc.GlobalColorTable)
	}

	for _, c := range doc.Comments {
		w.Byte(IntroExtension)
		w.Byte(LabelComment)
		w.WriteSubBlocks(encodeText(c))
	}

	for _, pt := range doc.PlainTexts {
		writePlainText(w, pt)
	}

	for i := range doc.Frames {
		writeFrame(w, &doc.Frames[i])
	}

	w.Byte(IntroTrailer)
	return w.Bytes()
}

func writeScreen(w *binary.Writer, sd ScreenDescriptor, table ColorTable) {
	w.WriteU16LE(sd.Width)
	w.WriteU16LE(sd.Height)

	flags := (sd.ColorResolution & 7) << 4
	if sd.Sorted {
		flags |= fScreenSorted
	}
	if len(table) > 0 {
		flags |= fGlobalColorTable | tableSizeField(len(table))
	}
	w.Byte(flags)
	w.Byte(sd.BackgroundIndex)
	w.Byte(sd.PixelAspectRatio)
}

// tableSizeField returns the 3-bit size field N such that 2^(N+1) >= n.
func tableSizeField(n int) byte {
	if n <= 2 {
		return 0
	}
	size := bits.Len(uint(n-1)) - 1
	if size > 7 {
		size = 7
	}
	return byte(size)
}

// writeColorTable writes table padded with black entries up to the next
// power of two the size field can express.
func writeColorTable(w *binary.Writer, table ColorTable) {
	count := 1 << (tableSizeField(len(table)) + 1)
	for i := 0; i < count; i++ {
		var c RGB
		if i < len(table) {
			c = table[i]
		}
		w.Byte(c.R)
		w.Byte(c.G)
		w.Byte(c.B)
	}
}

func writePlainText(w *binary.Writer, pt PlainText) {
	w.Byte(IntroExtension)
	w.Byte(LabelPlainText)
	w.Byte(plainTextBlockSize)
	w.WriteU16LE(pt.Left)
	w.WriteU16LE(pt.Top)
	w.WriteU16LE(pt.GridWidth)
	w.WriteU16LE(pt.GridHeight)
	w.Byte(pt.CellWidth)
	w.Byte(pt.CellHeight)
	w.Byte(pt.ForegroundIndex)
	w.Byte(pt.BackgroundIndex)
	w.WriteSubBlocks(encodeText(pt.Text))
}

func writeFrame(w *binary.Writer, f *Frame) {
	if gc := f.Control; gc != nil {
		flags := (gc.DisposalMethod & 7) << 2
		if gc.UserInput {
			flags |= gcUserInput
		}
		if gc.Transparent {
			flags |= gcTransparent
		}
		w.Byte(IntroExtension)
		w.Byte(LabelGraphicControl)
		w.Byte(graphicControlBlock)
		w.Byte(flags)
		w.WriteU16LE(gc.Delay)
		w.Byte(gc.TransparentIndex)
		w.Byte(0)
	}

	d := f.Descriptor
	w.Byte(IntroImageDescriptor)
	w.WriteU16LE(d.Left)
	w.WriteU16LE(d.Top)
	w.WriteU16LE(d.Width)
	w.WriteU16LE(d.Height)

	var flags byte
	if d.Interlaced {
		flags |= ifInterlace
	}
	if d.Sorted {
		flags |= ifSorted
	}
	if len(f.LocalColorTable) > 0 {
		flags |= ifLocalColorTable | tableSizeField(len(f.LocalColorTable))
	}
	w.Byte(flags)
	if len(f.LocalColorTable) > 0 {
		writeColorTable(w, f.LocalColorTable)
	}

	w.Byte(f.Image.LZWMinCodeSize)
	w.WriteSubBlocks(f.Image.Data)
}

// encodeText is the inverse of decodeText. Characters outside Latin-1 are
// replaced.
func encodeText(s string) []byte {
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		out := make([]byte, 0, len(s))
		for _, r := range s {
			if enc, ok := charmap.ISO8859_1.EncodeRune(r); ok {
				out = append(out, enc)
			} else {
				out = append(out, '?')
			}
		}
		return out
	}
	return b
}
