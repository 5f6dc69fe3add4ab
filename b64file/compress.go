package b64file

import (
	"bytes"
	"io"
	"sync"
)

// bufPool reuses compression buffers across files so that packaging a
// large tree does not allocate one buffer per file.
var bufPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// Compress compresses data with the given compression type.
// NONE returns the input unchanged.
func Compress(data []byte, compressType int) ([]byte, error) {
	if compressType == NONE {
		return data, nil
	}
	buf := bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufPool.Put(buf)

	w, err := newCompressWriter(compressType, buf)
	if err != nil {
		return nil, err
	}
	if _, err = w.Write(data); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}
	// the buffer goes back to the pool, so hand out a copy
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Decompress reverses Compress for the given compression type.
func Decompress(data []byte, compressType int) ([]byte, error) {
	r, err := newDecompressReader(compressType, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = r.Close()
	}()
	return io.ReadAll(r)
}
