package heredity

import (
	"bufio"
	"bytes"
	"io"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
)

// Compression indicates how (and whether) a pedigree file is compressed
type Compression uint32

const (
	CompressionDisabled Compression = iota
	CompressionGZIP
	CompressionZStandard
)

var (
	magicGZIP      = []byte{0x1f, 0x8b}
	magicZStandard = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

func (c Compression) String() string {
	switch c {
	case CompressionDisabled:
		return "CompressionDisabled"
	case CompressionGZIP:
		return "CompressionGZIP"
	case CompressionZStandard:
		return "CompressionZStandard"

	default:
		return "Illegal selection"
	}
}

// sniffCompression identifies the compression from the leading magic bytes
// without consuming them.
func sniffCompression(br *bufio.Reader) Compression {
	head, _ := br.Peek(len(magicZStandard))
	switch {
	case bytes.HasPrefix(head, magicGZIP):
		return CompressionGZIP
	case bytes.HasPrefix(head, magicZStandard):
		return CompressionZStandard
	}
	return CompressionDisabled
}

// Decompress wraps r so that reads yield plain text whether r is plain,
// gzip or zstd compressed.
func Decompress(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)

	switch comp := sniffCompression(br); comp {
	case CompressionGZIP:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, comp, pfx.Err(err)
		}
		return gz, comp, nil
	case CompressionZStandard:
		zr, err := newZStandardReader(br)
		if err != nil {
			return nil, comp, pfx.Err(err)
		}
		return zr, comp, nil
	default:
		return io.NopCloser(br), comp, nil
	}
}
