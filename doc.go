// Package gifdemux splits GIF files into their block-level parts.
//
// The module reads a complete GIF87a or GIF89a file and returns its logical
// screen, color tables, frames with their graphic controls, comments and
// plain-text records, with image data left LZW-compressed.
//
// # Architecture Overview
//
// The module is organized into a few packages with distinct responsibilities:
//
//	gifdemux/            Module documentation
//	├── gif/             Parser, block dispatcher and encoder
//	│   └── internal/
//	│       └── binary/  Bounds-checked cursor and sub-block reader/writer
//	├── errors/          Structured error types for debugging
//	└── cmd/gifinfo/     Inspection tool with an interactive frame browser
//
// # Quick Start
//
//	data, err := os.ReadFile("anim.gif")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := gif.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i, f := range doc.Frames {
//	    fmt.Println(i, f.Descriptor.Width, f.Descriptor.Height, len(f.Image.Data))
//	}
//
// # Errors
//
// Parse fails with a *errors.Error when the signature is wrong, a record runs
// past the end of the input or a fixed block header does not match. For
// truncated input, Missing reports how many bytes would have been needed:
//
//	var e *errors.Error
//	if stderrors.As(err, &e) && e.Kind == errors.KindTruncated {
//	    fmt.Printf("%s is %d bytes short\n", e.Block, e.Missing())
//	}
//
// # Thread Safety
//
// Parse keeps no shared state and may be called from any number of
// goroutines. The returned Document is not modified afterwards. The package
// logger should be set with gif.SetLogger before parsing starts.
//
// # Logging
//
// Block traces are written at debug level and skipped bytes at warn level
// through go.uber.org/zap. The default logger discards everything.
package gifdemux
