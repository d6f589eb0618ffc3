// Package errors provides structured error types for the GIF parser.
//
// Errors are categorized by Kind. The Error type carries the block being
// decoded, the absolute buffer offset and, for truncations, the size of the
// read that did not fit.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.KindMalformedBlock).
//		Block("application extension").
//		Offset(42).
//		Detail("block size %d, want 11", size).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(off, 768, len(buf))
//	err := errors.MalformedBlock("comment extension", off, 0xFE, label)
//
// All errors implement the standard error interface and support errors.Is/As:
//
//	if errors.Is(err, errors.ErrTruncated) {
//	    var e *errors.Error
//	    stderrors.As(err, &e)
//	    fmt.Println(e.Missing())
//	}
package errors
