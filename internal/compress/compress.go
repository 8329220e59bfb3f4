// Package compress implements compressed log file support.
package compress

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

//go:generate go run github.com/dmarkham/enumer -transform snake_upper -type Method -output method_enum.go

// Method is compression codec.
type Method byte

const (
	None Method = iota
	LZ4
	ZSTD
)

// MethodOf returns Method by file name extension.
func MethodOf(name string) Method {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".lz4":
		return LZ4
	case ".zst", ".zstd":
		return ZSTD
	default:
		return None
	}
}

type zstdReader struct {
	*zstd.Decoder
}

func (z zstdReader) Close() error {
	z.Decoder.Close()
	return nil
}

// NewReader returns decompressing reader of r.
//
// Closing returned reader does not close r.
func NewReader(r io.Reader, m Method) (io.ReadCloser, error) {
	switch m {
	case None:
		return io.NopCloser(r), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case ZSTD:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "zstd")
		}
		return zstdReader{Decoder: d}, nil
	default:
		return nil, errors.Errorf("compression %s not implemented", m)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewWriter returns compressing writer to w.
//
// Close must be called to flush compressed data. Closing returned writer
// does not close w.
func NewWriter(w io.Writer, m Method) (io.WriteCloser, error) {
	switch m {
	case None:
		return nopWriteCloser{Writer: w}, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	case ZSTD:
		e, err := zstd.NewWriter(w)
		if err != nil {
			return nil, errors.Wrap(err, "zstd")
		}
		return e, nil
	default:
		return nil, errors.Errorf("compression %s not implemented", m)
	}
}
