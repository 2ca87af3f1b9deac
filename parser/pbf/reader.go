package pbf

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Reader reads raw elements from a PBF stream. Blobs are read and decoded
// one at a time while iterating. A Reader is single-pass; open a new one to
// scan again.
type Reader struct {
	r       *countingReader
	closer  io.Closer
	header  *Header
	pending []Element
	err     error
}

// Open opens a PBF file. Returns a *FileUnavailableError if the file can
// not be read.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileUnavailableError{Path: path, Err: err}
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &FileUnavailableError{Path: path, Err: err}
	}
	if fi.IsDir() {
		f.Close()
		return nil, &FileUnavailableError{Path: path, Err: errors.New("is a directory")}
	}
	r := NewReader(bufio.NewReaderSize(f, 64*1024))
	r.closer = f
	return r, nil
}

// NewReader returns a Reader for a PBF stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: &countingReader{r: r}}
}

// Header returns the last OSMHeader read, or nil.
func (r *Reader) Header() *Header {
	return r.header
}

// Next returns the next element. It returns io.EOF after the last element
// and a *DecodeError if the stream is corrupt. Errors are sticky.
func (r *Reader) Next() (Element, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			return Element{}, r.err
		}
		r.err = r.readBlob()
	}
	elem := r.pending[0]
	r.pending[0] = Element{}
	r.pending = r.pending[1:]
	return elem, nil
}

// ForEach calls fn for all elements till the end of the stream. Dense node
// blocks are expanded and fn is called with one KindDenseNode element for
// each member. Iteration stops at the first error from the stream or fn.
func (r *Reader) ForEach(fn func(Element) error) error {
	for {
		elem, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if elem.Kind != KindDenseNodes {
			if err := fn(elem); err != nil {
				return err
			}
			continue
		}
		for {
			nd, ok := elem.DenseNodes.Next()
			if !ok {
				break
			}
			if err := fn(Element{Kind: KindDenseNode, DenseNode: &nd}); err != nil {
				return err
			}
		}
	}
}

// Close closes the underlying file if the reader was created with Open.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

func (r *Reader) readBlob() error {
	offset := r.r.n
	header, err := nextBlobHeader(r.r)
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return &DecodeError{Offset: offset, Err: err}
	}
	data, err := readBlobData(r.r, header)
	if err != nil {
		return &DecodeError{Offset: offset, Err: err}
	}

	switch header.GetType() {
	case blobTypeHeader:
		raw, err := decodeRawBlob(data)
		if err != nil {
			return &DecodeError{Offset: offset, Err: err}
		}
		h, err := decodeHeaderBlock(raw)
		if err != nil {
			return &DecodeError{Offset: offset, Err: err}
		}
		r.header = h
	case blobTypeData:
		raw, err := decodeRawBlob(data)
		if err != nil {
			return &DecodeError{Offset: offset, Err: err}
		}
		elems, err := decodePrimitiveBlock(raw)
		if err != nil {
			return &DecodeError{Offset: offset, Err: err}
		}
		r.pending = elems
	default:
		// unknown blob types are skipped, but still reported
		r.pending = []Element{{Kind: KindOther, Other: &Other{Type: header.GetType()}}}
	}
	return nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
