package gif

import (
	"fmt"

	"github.com/wippyai/gif-demux/gif/internal/binary"
)

// BlockKind identifies what the dispatcher found at a position in the block
// stream.
type BlockKind uint8

const (
	BlockUnknownByte BlockKind = iota
	BlockUnknownExtension
	BlockTrailer
	BlockGraphicControl
	BlockImageDescriptor
	BlockComment
	BlockPlainText
	BlockApplication
)

func (k BlockKind) String() string {
	switch k {
	case BlockUnknownByte:
		return "unknown byte"
	case BlockUnknownExtension:
		return "unknown extension"
	case BlockTrailer:
		return "trailer"
	case BlockGraphicControl:
		return blockGraphicControl
	case BlockImageDescriptor:
		return blockImageDescriptor
	case BlockComment:
		return blockComment
	case BlockPlainText:
		return blockPlainText
	case BlockApplication:
		return blockApplication
	default:
		return fmt.Sprintf("BlockKind(%d)", uint8(k))
	}
}

// Block is a classified position in the block stream. Value is the
// offending byte for the unknown kinds: the label of an unknown extension, or
// the introducer itself when no label follows it.
type Block struct {
	Kind  BlockKind
	Value byte
}

func (b Block) String() string {
	switch b.Kind {
	case BlockUnknownByte, BlockUnknownExtension:
		return fmt.Sprintf("%s 0x%02x", b.Kind, b.Value)
	default:
		return b.Kind.String()
	}
}

// classify inspects the introducer (and label) at off. off must be inside
// the buffer.
func classify(c *binary.Cursor, off int) Block {
	intro, err := c.Peek(off)
	if err != nil {
		return Block{Kind: BlockUnknownByte}
	}

	switch intro {
	case IntroTrailer:
		return Block{Kind: BlockTrailer}
	case IntroImageDescriptor:
		return Block{Kind: BlockImageDescriptor}
	case IntroExtension:
		label, err := c.Peek(off + 1)
		if err != nil {
			return Block{Kind: BlockUnknownExtension, Value: intro}
		}
		switch label {
		case LabelGraphicControl:
			return Block{Kind: BlockGraphicControl}
		case LabelComment:
			return Block{Kind: BlockComment}
		case LabelPlainText:
			return Block{Kind: BlockPlainText}
		case LabelApplication:
			return Block{Kind: BlockApplication}
		default:
			return Block{Kind: BlockUnknownExtension, Value: label}
		}
	default:
		return Block{Kind: BlockUnknownByte, Value: intro}
	}
}
