// Package pbftest writes small OSM PBF files for tests.
package pbftest

import (
	"bytes"
	structs "encoding/binary"
	"io"
	"math"
	"os"

	"github.com/gogo/protobuf/proto"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"

	"github.com/omniscale/pbfserve/parser/pbf/internal/osmpbf"
)

type Compression int

const (
	None Compression = iota
	Zlib
	LZ4
	Zstd
)

type Tag struct {
	Key, Val string
}

// Info is written as the metadata of plain nodes, ways and relations. Nil
// fields are not written. User may contain invalid UTF-8.
type Info struct {
	Version   *int32
	Timestamp *int64
	Changeset *int64
	Uid       *int32
	User      *string
	Visible   *bool
}

type Node struct {
	ID   int64
	Lat  float64
	Long float64
	Tags []Tag
	Info *Info
}

type Way struct {
	ID   int64
	Tags []Tag
	Refs []int64
	Info *Info
}

type Member struct {
	ID   int64
	Type int32
	Role string
}

type Relation struct {
	ID      int64
	Tags    []Tag
	Members []Member
	Info    *Info
}

// Block is written as one OSMData blob. Each non-empty element list is
// stored in its own primitive group, in field order.
type Block struct {
	Nodes      []Node
	DenseNodes []Node
	Ways       []Way
	Relations  []Relation
	Changesets []int64

	// Granularity defaults to 100 and DateGranularity to 1000.
	Granularity     int32
	DateGranularity int32
	// LatOffset and LonOffset are in nanodegrees.
	LatOffset int64
	LonOffset int64
}

// Blob is written verbatim with the given blob type.
type Blob struct {
	Type string
	Data []byte
}

type File struct {
	// RequiredFeatures defaults to OsmSchema-V0.6 and DenseNodes.
	RequiredFeatures []string
	NoHeader         bool
	// ReplicationTime and ReplicationSequence are written when not zero.
	ReplicationTime     int64
	ReplicationSequence int64
	Compression         Compression
	Blocks              []Block
	// Blobs are written after all blocks.
	Blobs []Blob
}

func Int32(v int32) *int32    { return &v }
func Int64(v int64) *int64    { return &v }
func String(v string) *string { return &v }
func Bool(v bool) *bool       { return &v }

// Bytes returns the encoded file.
func (f *File) Bytes() ([]byte, error) {
	buf := bytes.Buffer{}
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the encoded file to path.
func (f *File) WriteFile(path string) error {
	data, err := f.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (f *File) Write(w io.Writer) error {
	if !f.NoHeader {
		features := f.RequiredFeatures
		if features == nil {
			features = []string{"OsmSchema-V0.6", "DenseNodes"}
		}
		header := &osmpbf.HeaderBlock{
			RequiredFeatures: features,
			Writingprogram:   proto.String("pbftest"),
		}
		if f.ReplicationTime != 0 {
			header.OsmosisReplicationTimestamp = proto.Int64(f.ReplicationTime)
		}
		if f.ReplicationSequence != 0 {
			header.OsmosisReplicationSequenceNumber = proto.Int64(f.ReplicationSequence)
		}
		raw, err := proto.Marshal(header)
		if err != nil {
			return errors.Wrap(err, "marshaling header block")
		}
		if err := writeBlob(w, "OSMHeader", raw, f.Compression); err != nil {
			return err
		}
	}
	for i := range f.Blocks {
		raw, err := proto.Marshal(f.Blocks[i].primitiveBlock())
		if err != nil {
			return errors.Wrap(err, "marshaling primitive block")
		}
		if err := writeBlob(w, "OSMData", raw, f.Compression); err != nil {
			return err
		}
	}
	for _, blob := range f.Blobs {
		if err := writeBlob(w, blob.Type, blob.Data, None); err != nil {
			return err
		}
	}
	return nil
}

func writeBlob(w io.Writer, typ string, raw []byte, compression Compression) error {
	data, err := compress(raw, compression)
	if err != nil {
		return err
	}
	blob := &osmpbf.Blob{}
	switch {
	case data == nil:
		blob.Raw = raw
		if blob.Raw == nil {
			blob.Raw = []byte{}
		}
	case compression == Zlib:
		blob.RawSize = proto.Int32(int32(len(raw)))
		blob.ZlibData = data
	case compression == LZ4:
		blob.RawSize = proto.Int32(int32(len(raw)))
		blob.Lz4Data = data
	case compression == Zstd:
		blob.RawSize = proto.Int32(int32(len(raw)))
		blob.ZstdData = data
	}
	return WriteRawBlob(w, typ, blob)
}

// WriteRawBlob writes blob with a blob header of type typ. Tests use it to
// write blobs the File options can not express.
func WriteRawBlob(w io.Writer, typ string, blob *osmpbf.Blob) error {
	blobData, err := proto.Marshal(blob)
	if err != nil {
		return errors.Wrap(err, "marshaling blob")
	}
	header, err := proto.Marshal(&osmpbf.BlobHeader{
		Type:     proto.String(typ),
		Datasize: proto.Int32(int32(len(blobData))),
	})
	if err != nil {
		return errors.Wrap(err, "marshaling blob header")
	}

	if err := structs.Write(w, structs.BigEndian, int32(len(header))); err != nil {
		return err
	}
	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err = w.Write(blobData)
	return err
}

// compress returns nil if the data should be stored raw.
func compress(raw []byte, compression Compression) ([]byte, error) {
	switch compression {
	case Zlib:
		buf := bytes.Buffer{}
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(raw); err != nil {
			return nil, errors.Wrap(err, "zlib")
		}
		if err := zw.Close(); err != nil {
			return nil, errors.Wrap(err, "zlib")
		}
		return buf.Bytes(), nil
	case LZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, dst, nil)
		if err != nil {
			return nil, errors.Wrap(err, "lz4")
		}
		if n == 0 {
			// incompressible
			return nil, nil
		}
		return dst[:n], nil
	case Zstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, errors.Wrap(err, "zstd")
		}
		defer enc.Close()
		return enc.EncodeAll(raw, nil), nil
	}
	return nil, nil
}

type stringTable struct {
	strings [][]byte
	index   map[string]uint32
}

func newStringTable() *stringTable {
	return &stringTable{
		strings: [][]byte{{}},
		index:   map[string]uint32{"": 0},
	}
}

func (st *stringTable) add(s string) uint32 {
	if i, ok := st.index[s]; ok {
		return i
	}
	st.strings = append(st.strings, []byte(s))
	i := uint32(len(st.strings) - 1)
	st.index[s] = i
	return i
}

func (b *Block) primitiveBlock() *osmpbf.PrimitiveBlock {
	granularity := int64(b.Granularity)
	if granularity == 0 {
		granularity = 100
	}
	latCoord := func(deg float64) int64 {
		return int64(math.Round((deg*1e9 - float64(b.LatOffset)) / float64(granularity)))
	}
	longCoord := func(deg float64) int64 {
		return int64(math.Round((deg*1e9 - float64(b.LonOffset)) / float64(granularity)))
	}

	st := newStringTable()
	block := &osmpbf.PrimitiveBlock{}

	if len(b.Nodes) > 0 {
		group := &osmpbf.PrimitiveGroup{}
		for _, nd := range b.Nodes {
			keys, vals := tagIndices(st, nd.Tags)
			group.Nodes = append(group.Nodes, &osmpbf.Node{
				Id:   proto.Int64(nd.ID),
				Keys: keys,
				Vals: vals,
				Info: encodeInfo(st, nd.Info),
				Lat:  proto.Int64(latCoord(nd.Lat)),
				Lon:  proto.Int64(longCoord(nd.Long)),
			})
		}
		block.Primitivegroup = append(block.Primitivegroup, group)
	}

	if len(b.DenseNodes) > 0 {
		dense := &osmpbf.DenseNodes{}
		var lastID, lastLat, lastLong int64
		hasTags := false
		for _, nd := range b.DenseNodes {
			if len(nd.Tags) > 0 {
				hasTags = true
			}
		}
		for _, nd := range b.DenseNodes {
			lat, long := latCoord(nd.Lat), longCoord(nd.Long)
			dense.Id = append(dense.Id, nd.ID-lastID)
			dense.Lat = append(dense.Lat, lat-lastLat)
			dense.Lon = append(dense.Lon, long-lastLong)
			lastID, lastLat, lastLong = nd.ID, lat, long
			if hasTags {
				for _, tag := range nd.Tags {
					dense.KeysVals = append(dense.KeysVals, int32(st.add(tag.Key)), int32(st.add(tag.Val)))
				}
				dense.KeysVals = append(dense.KeysVals, 0)
			}
		}
		block.Primitivegroup = append(block.Primitivegroup, &osmpbf.PrimitiveGroup{Dense: dense})
	}

	if len(b.Ways) > 0 {
		group := &osmpbf.PrimitiveGroup{}
		for _, way := range b.Ways {
			keys, vals := tagIndices(st, way.Tags)
			refs := make([]int64, len(way.Refs))
			var last int64
			for i, ref := range way.Refs {
				refs[i] = ref - last
				last = ref
			}
			group.Ways = append(group.Ways, &osmpbf.Way{
				Id:   proto.Int64(way.ID),
				Keys: keys,
				Vals: vals,
				Info: encodeInfo(st, way.Info),
				Refs: refs,
			})
		}
		block.Primitivegroup = append(block.Primitivegroup, group)
	}

	if len(b.Relations) > 0 {
		group := &osmpbf.PrimitiveGroup{}
		for _, rel := range b.Relations {
			keys, vals := tagIndices(st, rel.Tags)
			msg := &osmpbf.Relation{
				Id:   proto.Int64(rel.ID),
				Keys: keys,
				Vals: vals,
				Info: encodeInfo(st, rel.Info),
			}
			var last int64
			for _, m := range rel.Members {
				msg.RolesSid = append(msg.RolesSid, int32(st.add(m.Role)))
				msg.Memids = append(msg.Memids, m.ID-last)
				msg.Types = append(msg.Types, osmpbf.Relation_MemberType(m.Type))
				last = m.ID
			}
			group.Relations = append(group.Relations, msg)
		}
		block.Primitivegroup = append(block.Primitivegroup, group)
	}

	if len(b.Changesets) > 0 {
		group := &osmpbf.PrimitiveGroup{}
		for _, id := range b.Changesets {
			group.Changesets = append(group.Changesets, &osmpbf.ChangeSet{Id: proto.Int64(id)})
		}
		block.Primitivegroup = append(block.Primitivegroup, group)
	}

	block.Stringtable = &osmpbf.StringTable{S: st.strings}
	if b.Granularity != 0 {
		block.Granularity = proto.Int32(b.Granularity)
	}
	if b.DateGranularity != 0 {
		block.DateGranularity = proto.Int32(b.DateGranularity)
	}
	if b.LatOffset != 0 {
		block.LatOffset = proto.Int64(b.LatOffset)
	}
	if b.LonOffset != 0 {
		block.LonOffset = proto.Int64(b.LonOffset)
	}
	return block
}

func tagIndices(st *stringTable, tags []Tag) (keys, vals []uint32) {
	for _, tag := range tags {
		keys = append(keys, st.add(tag.Key))
		vals = append(vals, st.add(tag.Val))
	}
	return keys, vals
}

func encodeInfo(st *stringTable, info *Info) *osmpbf.Info {
	if info == nil {
		return nil
	}
	msg := &osmpbf.Info{
		Version:   info.Version,
		Timestamp: info.Timestamp,
		Changeset: info.Changeset,
		Uid:       info.Uid,
		Visible:   info.Visible,
	}
	if info.User != nil {
		msg.UserSid = proto.Uint32(st.add(*info.User))
	}
	return msg
}
