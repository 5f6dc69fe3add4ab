package b64file

import (
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/dsnet/compress/bzip2"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
)

const (
	BROTLI = iota
	NONE // do not compress
	ZLIB
	GZIP
	BZIP2
	LZ4
	XZ
)

var CompressTypes = map[string]int{
	"brotli": BROTLI,
	"br":     BROTLI,
	"none":   NONE,
	"zlib":   ZLIB,
	"gzip":   GZIP,
	"bzip2":  BZIP2,
	"bz2":    BZIP2,
	"lz4":    LZ4,
	"xz":     XZ,
}

var compressTypeNames = map[int]string{
	BROTLI: "brotli",
	NONE:   "none",
	ZLIB:   "zlib",
	GZIP:   "gzip",
	BZIP2:  "bzip2",
	LZ4:    "lz4",
	XZ:     "xz",
}

func CompressTypeName(compressType int) string {
	name, ok := compressTypeNames[compressType]
	if !ok {
		return fmt.Sprintf("unknown(%d)", compressType)
	}
	return name
}

type noneWriter struct {
	dst io.Writer
}

func (w noneWriter) Write(p []byte) (int, error) {
	return w.dst.Write(p)
}

func (w noneWriter) Close() error {
	return nil
}

func newCompressWriter(compressType int, w io.Writer) (io.WriteCloser, error) {
	switch compressType {
	case NONE:
		return noneWriter{dst: w}, nil
	case ZLIB:
		return zlib.NewWriter(w), nil
	case GZIP:
		return gzip.NewWriter(w), nil
	case BZIP2:
		return bzip2.NewWriter(w, nil)
	case LZ4:
		return lz4.NewWriter(w), nil
	case XZ:
		return xz.NewWriter(w)
	case BROTLI:
		fallthrough
	default:
		return brotli.NewWriter(w), nil
	}
}

func newDecompressReader(compressType int, src io.Reader) (io.ReadCloser, error) {
	switch compressType {
	case NONE:
		return io.NopCloser(src), nil
	case ZLIB:
		return zlib.NewReader(src)
	case GZIP:
		return gzip.NewReader(src)
	case BZIP2:
		return bzip2.NewReader(src, nil)
	case LZ4:
		return io.NopCloser(lz4.NewReader(src)), nil
	case XZ:
		r, err := xz.NewReader(src)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(r), nil
	case BROTLI:
		fallthrough
	default:
		return io.NopCloser(brotli.NewReader(src)), nil
	}
}
