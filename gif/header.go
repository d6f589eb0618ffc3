package gif

import (
	"github.com/wippyai/gif-demux/errors"
	"github.com/wippyai/gif-demux/gif/internal/binary"
)

// checkSignature validates the 6-byte header and returns the version.
func checkSignature(c *binary.Cursor) (string, error) {
	sig, err := c.ReadFixed(0, headerSize)
	if err != nil {
		n := min(c.Len(), headerSize)
		head, _ := c.ReadFixed(0, n)
		return "", errors.Format(head)
	}
	if string(sig[:3]) != Signature {
		return "", errors.Format(sig)
	}
	switch v := string(sig[3:]); v {
	case Version87, Version89:
		return v, nil
	default:
		return "", errors.Format(sig)
	}
}

// IsGIF reports whether data starts with a GIF87a or GIF89a signature.
func IsGIF(data []byte) bool {
	_, err := checkSignature(binary.NewCursor(data))
	return err == nil
}

// readScreenDescriptor decodes the logical screen descriptor at offset 6.
// The next record starts at offset 13.
func readScreenDescriptor(c *binary.Cursor) (ScreenDescriptor, error) {
	b, err := c.ReadFixed(headerSize, screenEnd-headerSize)
	if err != nil {
		return ScreenDescriptor{}, errors.InBlock(err, blockScreen)
	}

	flags := b[4]
	sd := ScreenDescriptor{
		Width:               uint16(b[0]) | uint16(b[1])<<8,
		Height:              uint16(b[2]) | uint16(b[3])<<8,
		HasGlobalColorTable: flags&fGlobalColorTable != 0,
		ColorResolution:     (flags & fColorResolution) >> 4,
		Sorted:              flags&fScreenSorted != 0,
		BackgroundIndex:     b[5],
		PixelAspectRatio:    b[6],
	}
	if sd.HasGlobalColorTable {
		sd.ColorCount = 1 << ((flags & fColorTableSize) + 1)
	}
	return sd, nil
}

// readColorTable reads count RGB triples at off and returns the table and
// the number of bytes consumed.
func readColorTable(c *binary.Cursor, off, count int) (ColorTable, int, error) {
	b, err := c.ReadFixed(off, count*3)
	if err != nil {
		return nil, 0, err
	}
	table := make(ColorTable, count)
	for i := range table {
		table[i] = RGB{R: b[i*3], G: b[i*3+1], B: b[i*3+2]}
	}
	return table, count * 3, nil
}

// readImageDescriptor decodes the 10-byte image descriptor at off.
func readImageDescriptor(c *binary.Cursor, off int) (ImageDescriptor, int, error) {
	b, err := c.ReadFixed(off, imageDescriptorSize)
	if err != nil {
		return ImageDescriptor{}, 0, errors.InBlock(err, blockImageDescriptor)
	}
	if b[0] != IntroImageDescriptor {
		return ImageDescriptor{}, 0, errors.MalformedBlock(blockImageDescriptor, off, IntroImageDescriptor, b[0])
	}

	flags := b[9]
	d := ImageDescriptor{
		Left:            uint16(b[1]) | uint16(b[2])<<8,
		Top:             uint16(b[3]) | uint16(b[4])<<8,
		Width:           uint16(b[5]) | uint16(b[6])<<8,
		Height:          uint16(b[7]) | uint16(b[8])<<8,
		LocalColorTable: flags&ifLocalColorTable != 0,
		Interlaced:      flags&ifInterlace != 0,
		Sorted:          flags&ifSorted != 0,
	}
	if d.LocalColorTable {
		d.LocalColorTableSize = flags & ifLocalColorTableSize
	}
	return d, imageDescriptorSize, nil
}

// readImageData decodes the LZW minimum code size byte and the sub-block
// chain after it.
func readImageData(c *binary.Cursor, off int) (ImageData, int, error) {
	codeSize, err := c.ReadUint8(off)
	if err != nil {
		return ImageData{}, 0, errors.InBlock(err, blockImageData)
	}
	data, n, err := c.ReadSubBlocks(off + 1)
	if err != nil {
		return ImageData{}, 0, errors.InBlock(err, blockImageData)
	}
	return ImageData{LZWMinCodeSize: codeSize, Data: data}, 1 + n, nil
}
