package output

import "io"

// flushIfPossible flushes w when the underlying writer buffers, such as a
// bufio.Writer wrapping a file sink.
func flushIfPossible(w io.Writer) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
