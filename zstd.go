package heredity

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// newZStandardReader streams zstd compressed data. Closing the returned
// reader releases the decoder's goroutines.
func newZStandardReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}
