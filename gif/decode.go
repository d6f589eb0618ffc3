package gif

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/gif-demux/errors"
	"github.com/wippyai/gif-demux/gif/internal/binary"
)

// Parse demultiplexes a complete GIF file held in data.
func Parse(data []byte) (*Document, error) {
	return ParseWithOptions(data, Options{})
}

// Read reads r to EOF and parses the result.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read gif: %w", err)
	}
	return Parse(data)
}

// ParseWithOptions demultiplexes data with the given options.
//
// Structural failures (bad signature, truncated records, malformed
// extension headers) abort the parse and return a *errors.Error. Unknown
// bytes between blocks are skipped and recorded in Document.Diagnostics.
func ParseWithOptions(data []byte, opts Options) (*Document, error) {
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	if log == nil {
		log = zap.NewNop()
	}

	c := binary.NewCursor(data)

	version, err := checkSignature(c)
	if err != nil {
		return nil, err
	}
	screen, err := readScreenDescriptor(c)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Version: version,
		Screen:  screen,
	}

	pos := screenEnd
	if screen.HasGlobalColorTable {
		table, n, err := readColorTable(c, pos, int(screen.ColorCount))
		if err != nil {
			return nil, errors.InBlock(err, blockGlobalTable)
		}
		doc.GlobalColorTable = table
		pos += n
	}

	log.Debug("screen",
		zap.String("version", version),
		zap.Uint16("width", screen.Width),
		zap.Uint16("height", screen.Height),
		zap.Uint32("colors", screen.ColorCount))

	d := &dispatcher{
		c:    c,
		s:    binary.NewStream(c, pos),
		doc:  doc,
		opts: opts,
		log:  log,
	}
	if err := d.run(); err != nil {
		return nil, err
	}
	return doc, nil
}

// dispatchState is the dispatcher's pairing state: either scanning, or
// holding a Graphic Control Extension that has not reached an image yet.
type dispatchState interface {
	isDispatchState()
}

type scanning struct{}

type pendingControl struct {
	control GraphicControl
}

func (scanning) isDispatchState()       {}
func (pendingControl) isDispatchState() {}

// dispatcher walks the block stream after the global color table.
type dispatcher struct {
	c     *binary.Cursor
	s     *binary.Stream
	doc   *Document
	opts  Options
	log   *zap.Logger
	state dispatchState
}

func (d *dispatcher) run() error {
	d.state = scanning{}

	for !d.s.Done() {
		pos := d.s.Position()
		block := classify(d.c, pos)

		d.log.Debug("block", zap.Stringer("kind", block.Kind), zap.Int("offset", pos))

		var (
			n   int
			err error
		)
		switch block.Kind {
		case BlockTrailer:
			d.doc.Terminated = true
			d.log.Debug("trailer",
				zap.Int("offset", pos),
				zap.Int("frames", len(d.doc.Frames)),
				zap.Int("comments", len(d.doc.Comments)),
				zap.Int("plain_texts", len(d.doc.PlainTexts)))
			return nil

		case BlockGraphicControl:
			var gc GraphicControl
			gc, n, err = readGraphicControl(d.c, pos, d.opts.StandardGraphicControl)
			if err == nil {
				d.state = pendingControl{control: gc}
			}

		case BlockImageDescriptor:
			n, err = d.frame(pos)

		case BlockComment:
			var text string
			text, n, err = readComment(d.c, pos)
			if err == nil {
				d.doc.Comments = append(d.doc.Comments, text)
			}

		case BlockPlainText:
			var pt PlainText
			pt, n, err = readPlainText(d.c, pos)
			if err == nil {
				d.doc.PlainTexts = append(d.doc.PlainTexts, pt)
			}

		case BlockApplication:
			var app Application
			app, n, err = readApplication(d.c, pos)
			if err == nil {
				d.log.Debug("application extension",
					zap.String("identifier", app.Identifier),
					zap.String("auth_code", app.AuthCode),
					zap.Int("data_len", len(app.Data)))
				if d.opts.OnApplication != nil {
					d.opts.OnApplication(app)
				}
			}

		case BlockUnknownExtension, BlockUnknownByte:
			d.skip(pos, block)
			n = 1

		default:
			return fmt.Errorf("gif: unhandled block kind %s", block.Kind)
		}

		if err != nil {
			return err
		}
		d.s.Advance(n)
	}

	d.log.Debug("buffer exhausted without trailer", zap.Int("frames", len(d.doc.Frames)))
	return nil
}

// frame decodes an image descriptor, its local color table and image data
// at pos, attaches any pending graphic control and appends the frame.
func (d *dispatcher) frame(pos int) (int, error) {
	desc, n, err := readImageDescriptor(d.c, pos)
	if err != nil {
		return 0, err
	}
	off := pos + n

	var local ColorTable
	if desc.LocalColorTable {
		local, n, err = readColorTable(d.c, off, desc.LocalColorCount())
		if err != nil {
			return 0, errors.InBlock(err, blockLocalTable)
		}
		off += n
	}

	img, n, err := readImageData(d.c, off)
	if err != nil {
		return 0, err
	}
	off += n

	f := Frame{
		Descriptor: desc,
		Image:      img,
	}
	if p, ok := d.state.(pendingControl); ok {
		gc := p.control
		f.Control = &gc
	}
	d.state = scanning{}

	// Local tables are dropped when a global table exists unless asked for.
	if d.doc.GlobalColorTable == nil || d.opts.KeepLocalColorTables {
		f.LocalColorTable = local
	}

	d.doc.Frames = append(d.doc.Frames, f)
	return off - pos, nil
}

func (d *dispatcher) skip(pos int, block Block) {
	d.log.Warn("skipping unrecognized byte",
		zap.Stringer("block", block),
		zap.Int("offset", pos))
	d.doc.Diagnostics = append(d.doc.Diagnostics, Diagnostic{Offset: pos, Block: block})
}
