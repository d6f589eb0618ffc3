// Package gif demultiplexes the GIF block stream.
//
// The parser walks a complete in-memory GIF file from the signature to the
// trailer and returns a Document describing the logical screen, the global
// and local color tables, each frame's graphic control and image descriptor,
// the raw LZW-compressed image data, and any comment or plain-text records.
// Image data is never decompressed.
//
// # Parsing
//
//	data, _ := os.ReadFile("anim.gif")
//	doc, err := gif.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range doc.Frames {
//	    fmt.Println(f.Descriptor.Width, f.Descriptor.Height, len(f.Image.Data))
//	}
//
// Parse with options:
//
//	doc, err := gif.ParseWithOptions(data, gif.Options{
//	    Logger:                 zapLogger,
//	    StandardGraphicControl: true,
//	    OnApplication: func(app gif.Application) {
//	        fmt.Println(app.Identifier, app.AuthCode)
//	    },
//	})
//
// # Block Stream
//
// After the header, logical screen descriptor and optional global color
// table, the dispatcher classifies the byte at the current position:
//
//	0x21 0xF9  graphic control   held until the next image
//	0x2C       image descriptor  becomes a Frame
//	0x21 0xFE  comment           appended to Document.Comments
//	0x21 0x01  plain text        appended to Document.PlainTexts
//	0x21 0xFF  application       passed to Options.OnApplication
//	0x3B       trailer           stops the walk
//
// Any other byte, including an extension introducer with an unknown label,
// is skipped one byte at a time and recorded in Document.Diagnostics. A
// buffer that ends between blocks still yields a Document with Terminated
// set to false.
//
// A graphic control applies to the next image only. A second graphic control
// before that image replaces the first. Comments, plain texts and
// application extensions in between leave it pending.
//
// # Color Tables
//
// Local color tables are always read, but by default they are kept on the
// Frame only when the document has no global color table. Set
// Options.KeepLocalColorTables to keep them regardless. Frame.Palette
// returns the table that applies to a frame.
//
// # Errors
//
// Structural failures return a *errors.Error from the errors package:
//
//	errors.KindFormat          signature is not GIF87a or GIF89a
//	errors.KindTruncated       a record runs past the end of the buffer
//	errors.KindMalformedBlock  an introducer, label or size constant is wrong
//
// No partial Document is returned on error.
//
// # Encoding
//
// Document.Encode writes a GIF block stream back out, which is how the tests
// build their inputs:
//
//	doc := &gif.Document{Frames: []gif.Frame{...}}
//	data := doc.Encode()
package gif
