package streamx

import (
	"errors"
	"fmt"
	"io"
)

// ErrEmptyBuffer is returned when a copy or read is given no buffer space.
var ErrEmptyBuffer = errors.New("empty buffer")

// CopyBuffer copies src to dst through buf until src is exhausted and
// returns the number of bytes copied. Unlike io.CopyBuffer it always uses
// buf, even when src or dst implement WriterTo/ReaderFrom, so callers
// control the chunk size seen by dst.
func CopyBuffer(dst io.Writer, src io.Reader, buf []byte) (int64, error) {
	if len(buf) == 0 {
		return 0, fmt.Errorf("copy: %w", ErrEmptyBuffer)
	}
	var total int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			total += int64(w)
			if werr != nil {
				return total, fmt.Errorf("copy: write: %w", werr)
			}
			if w != n {
				return total, fmt.Errorf("copy: %w", io.ErrShortWrite)
			}
		}
		if rerr == io.EOF {
			return total, nil
		}
		if rerr != nil {
			return total, fmt.Errorf("copy: read: %w", rerr)
		}
	}
}

// SafeRead reads into buf until it is full or r is exhausted. Reaching the
// end of r early is not an error; the short count says how much arrived.
func SafeRead(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return n, nil
	}
	return n, err
}
