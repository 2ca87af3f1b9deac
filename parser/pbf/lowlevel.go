package pbf

import (
	"bytes"
	structs "encoding/binary"
	"io"
	"sync"
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"

	"github.com/omniscale/pbfserve/parser/pbf/internal/osmpbf"
)

const (
	maxBlobHeaderSize = 64 * 1024
	maxBlobSize       = 32 * 1024 * 1024
)

const (
	blobTypeHeader = "OSMHeader"
	blobTypeData   = "OSMData"
)

var supportedFeatures = map[string]bool{
	"OsmSchema-V0.6":        true,
	"DenseNodes":            true,
	"HistoricalInformation": true,
}

func nextBlobHeader(r io.Reader) (*osmpbf.BlobHeader, error) {
	var size int32
	err := structs.Read(r, structs.BigEndian, &size)
	if err == io.EOF {
		return nil, err
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading blob header size")
	}
	if size < 0 || size > maxBlobHeaderSize {
		return nil, errors.Errorf("blob header size %d out of range", size)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, errors.Wrap(noEOF(err), "reading blob header")
	}

	header := &osmpbf.BlobHeader{}
	if err := proto.Unmarshal(data, header); err != nil {
		return nil, errors.Wrap(err, "unmarshaling blob header")
	}
	if header.GetType() == "" {
		return nil, errors.New("blob header without type")
	}
	if header.GetDatasize() < 0 || header.GetDatasize() > maxBlobSize {
		return nil, errors.Errorf("blob size %d out of range", header.GetDatasize())
	}
	return header, nil
}

func readBlobData(r io.Reader, header *osmpbf.BlobHeader) ([]byte, error) {
	data := make([]byte, header.GetDatasize())
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, errors.Wrapf(noEOF(err), "reading %s blob", header.GetType())
	}
	return data, nil
}

// noEOF turns a clean EOF in the middle of a blob into an unexpected one.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// decodeRawBlob decodes a Blob message and returns the uncompressed
// content, either a HeaderBlock or a PrimitiveBlock. Compressed content
// must match raw_size exactly.
func decodeRawBlob(data []byte) ([]byte, error) {
	blob := &osmpbf.Blob{}
	if err := proto.Unmarshal(data, blob); err != nil {
		return nil, errors.Wrap(err, "unmarshaling blob")
	}

	if raw := blob.GetRaw(); raw != nil {
		return raw, nil
	}
	rawSize := blob.GetRawSize()
	if rawSize < 0 || rawSize > maxBlobSize {
		return nil, errors.Errorf("blob raw size %d out of range", rawSize)
	}

	switch {
	case blob.GetZlibData() != nil:
		return uncompressZlib(blob.GetZlibData(), rawSize)
	case blob.GetLz4Data() != nil:
		raw := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(blob.GetLz4Data(), raw)
		if err != nil {
			return nil, errors.Wrap(err, "uncompressing lz4 data")
		}
		if n != int(rawSize) {
			return nil, errors.Errorf("uncompressing lz4 data: got %d bytes instead of %d", n, rawSize)
		}
		return raw, nil
	case blob.GetZstdData() != nil:
		dec, err := zstdDecoder()
		if err != nil {
			return nil, errors.Wrap(err, "initializing zstd decoder")
		}
		raw, err := dec.DecodeAll(blob.GetZstdData(), make([]byte, 0, rawSize))
		if err != nil {
			return nil, errors.Wrap(err, "uncompressing zstd data")
		}
		if len(raw) != int(rawSize) {
			return nil, errors.Errorf("uncompressing zstd data: got %d bytes instead of %d", len(raw), rawSize)
		}
		return raw, nil
	case blob.GetLzmaData() != nil:
		return nil, errors.New("lzma compressed blobs are not supported")
	case blob.GetOBSOLETEBzip2Data() != nil:
		return nil, errors.New("bzip2 compressed blobs are not supported")
	}
	return nil, errors.New("blob without data")
}

// uncompressZlib reads exactly rawSize bytes. The stream has to end there,
// which also verifies its checksum.
func uncompressZlib(data []byte, rawSize int32) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "start uncompressing zlib data")
	}
	raw := make([]byte, rawSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		r.Close()
		return nil, errors.Wrap(noEOF(err), "uncompressing zlib data")
	}
	var extra [1]byte
	_, err = io.ReadFull(r, extra[:])
	switch {
	case err == nil:
		r.Close()
		return nil, errors.Errorf("uncompressing zlib data: got more than %d bytes", rawSize)
	case err != io.EOF:
		r.Close()
		return nil, errors.Wrap(err, "uncompressing zlib data")
	}
	if err := r.Close(); err != nil {
		return nil, errors.Wrap(err, "uncompressing zlib data")
	}
	return raw, nil
}

var (
	zstdOnce sync.Once
	zstdDec  *zstd.Decoder
	zstdErr  error
)

// zstdDecoder returns a shared decoder. DecodeAll is safe for concurrent use.
func zstdDecoder() (*zstd.Decoder, error) {
	zstdOnce.Do(func() {
		zstdDec, zstdErr = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxBlobSize))
	})
	return zstdDec, zstdErr
}

// Header contains the information of an OSMHeader block.
type Header struct {
	BBox             *BBox
	RequiredFeatures []string
	OptionalFeatures []string
	WritingProgram   string
	Source           string

	// Time is zero if the file carries no replication timestamp.
	Time     time.Time
	Sequence int64
	BaseURL  string
}

// BBox is the bounding box of the extract in degrees.
type BBox struct {
	Left, Right, Top, Bottom float64
}

func decodeHeaderBlock(data []byte) (*Header, error) {
	block := &osmpbf.HeaderBlock{}
	if err := proto.Unmarshal(data, block); err != nil {
		return nil, errors.Wrap(err, "unmarshaling header block")
	}

	for _, feature := range block.GetRequiredFeatures() {
		if !supportedFeatures[feature] {
			return nil, errors.Errorf("cannot parse file, feature %s not supported", feature)
		}
	}

	header := &Header{
		RequiredFeatures: block.GetRequiredFeatures(),
		OptionalFeatures: block.GetOptionalFeatures(),
		WritingProgram:   block.GetWritingprogram(),
		Source:           block.GetSource(),
		Sequence:         block.GetOsmosisReplicationSequenceNumber(),
		BaseURL:          block.GetOsmosisReplicationBaseUrl(),
	}
	if ts := block.GetOsmosisReplicationTimestamp(); ts != 0 {
		// keep Time zero if timestamp is 0
		header.Time = time.Unix(ts, 0)
	}
	if bbox := block.GetBbox(); bbox != nil {
		header.BBox = &BBox{
			Left:   coordScale * float64(bbox.GetLeft()),
			Right:  coordScale * float64(bbox.GetRight()),
			Top:    coordScale * float64(bbox.GetTop()),
			Bottom: coordScale * float64(bbox.GetBottom()),
		}
	}
	return header, nil
}
