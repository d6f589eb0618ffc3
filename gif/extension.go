package gif

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/wippyai/gif-demux/errors"
	"github.com/wippyai/gif-demux/gif/internal/binary"
)

// checkIntroducer validates the 0x21 introducer and label at off.
func checkIntroducer(c *binary.Cursor, off int, label byte, block string) error {
	b, err := c.ReadFixed(off, 2)
	if err != nil {
		return errors.InBlock(err, block)
	}
	if b[0] != IntroExtension {
		return errors.MalformedBlock(block, off, IntroExtension, b[0])
	}
	if b[1] != label {
		return errors.MalformedBlock(block, off+1, label, b[1])
	}
	return nil
}

// readGraphicControl decodes the fixed 8-byte Graphic Control Extension at off.
func readGraphicControl(c *binary.Cursor, off int, standard bool) (GraphicControl, int, error) {
	if err := checkIntroducer(c, off, LabelGraphicControl, blockGraphicControl); err != nil {
		return GraphicControl{}, 0, err
	}
	b, err := c.ReadFixed(off, graphicControlSize)
	if err != nil {
		return GraphicControl{}, 0, errors.InBlock(err, blockGraphicControl)
	}

	flags := b[3]
	if standard {
		return GraphicControl{
			DisposalMethod:   (flags & gcDisposalMethod) >> 2,
			UserInput:        flags&gcUserInput != 0,
			Transparent:      flags&gcTransparent != 0,
			Delay:            uint16(b[4]) | uint16(b[5])<<8,
			TransparentIndex: b[6],
		}, graphicControlSize, nil
	}
	return GraphicControl{
		DisposalMethod:   (flags & gcCompatDisposalMethod) >> 4,
		Transparent:      flags&gcCompatTransparent != 0,
		TransparentIndex: b[4],
		Delay:            uint16(b[5]) | uint16(b[6])<<8,
	}, graphicControlSize, nil
}

// readComment decodes a Comment Extension at off.
func readComment(c *binary.Cursor, off int) (string, int, error) {
	if err := checkIntroducer(c, off, LabelComment, blockComment); err != nil {
		return "", 0, err
	}
	data, n, err := c.ReadSubBlocks(off + commentHeader)
	if err != nil {
		return "", 0, errors.InBlock(err, blockComment)
	}
	return decodeText(data), commentHeader + n, nil
}

// readPlainText decodes a Plain Text Extension at off.
func readPlainText(c *binary.Cursor, off int) (PlainText, int, error) {
	if err := checkIntroducer(c, off, LabelPlainText, blockPlainText); err != nil {
		return PlainText{}, 0, err
	}
	b, err := c.ReadFixed(off, plainTextHeaderSize)
	if err != nil {
		return PlainText{}, 0, errors.InBlock(err, blockPlainText)
	}
	if b[2] != plainTextBlockSize {
		return PlainText{}, 0, errors.New(errors.KindMalformedBlock).
			Block(blockPlainText).
			Offset(off + 2).
			Value(b[2]).
			Detail("block size %d, want %d", b[2], plainTextBlockSize).
			Build()
	}

	m := b[3:]
	pt := PlainText{
		Left:            uint16(m[0]) | uint16(m[1])<<8,
		Top:             uint16(m[2]) | uint16(m[3])<<8,
		GridWidth:       uint16(m[4]) | uint16(m[5])<<8,
		GridHeight:      uint16(m[6]) | uint16(m[7])<<8,
		CellWidth:       m[8],
		CellHeight:      m[9],
		ForegroundIndex: m[10],
		BackgroundIndex: m[11],
	}

	data, n, err := c.ReadSubBlocks(off + plainTextHeaderSize)
	if err != nil {
		return PlainText{}, 0, errors.InBlock(err, blockPlainText)
	}
	pt.Text = decodeText(data)
	return pt, plainTextHeaderSize + n, nil
}

// readApplication decodes an Application Extension at off.
func readApplication(c *binary.Cursor, off int) (Application, int, error) {
	if err := checkIntroducer(c, off, LabelApplication, blockApplication); err != nil {
		return Application{}, 0, err
	}
	size, err := c.ReadUint8(off + 2)
	if err != nil {
		return Application{}, 0, errors.InBlock(err, blockApplication)
	}
	if size != applicationBlockSize {
		return Application{}, 0, errors.New(errors.KindMalformedBlock).
			Block(blockApplication).
			Offset(off + 2).
			Value(size).
			Detail("block size %d, want %d", size, applicationBlockSize).
			Build()
	}
	b, err := c.ReadFixed(off, applicationHeader)
	if err != nil {
		return Application{}, 0, errors.InBlock(err, blockApplication)
	}

	data, n, err := c.ReadSubBlocks(off + applicationHeader)
	if err != nil {
		return Application{}, 0, errors.InBlock(err, blockApplication)
	}
	return Application{
		Identifier: string(b[3:11]),
		AuthCode:   string(b[11:14]),
		Data:       data,
	}, applicationHeader + n, nil
}

// decodeText maps sub-block bytes to a string one Latin-1 character per byte.
func decodeText(b []byte) string {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}
