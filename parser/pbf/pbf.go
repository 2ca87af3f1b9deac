package pbf

import (
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"

	"github.com/omniscale/pbfserve/parser/pbf/internal/osmpbf"
)

const coordScale = 0.000000001

type primitiveBlock struct {
	strings         StringTable
	granularity     int64
	latOffset       int64
	lonOffset       int64
	dateGranularity int64
}

func (b *primitiveBlock) lat(v int64) float64 {
	return coordScale * float64(b.latOffset+b.granularity*v)
}

func (b *primitiveBlock) long(v int64) float64 {
	return coordScale * float64(b.lonOffset+b.granularity*v)
}

// decodePrimitiveBlock decodes an OSMData blob into raw elements. Groups
// are returned in file order.
func decodePrimitiveBlock(data []byte) ([]Element, error) {
	pb := &osmpbf.PrimitiveBlock{}
	if err := proto.Unmarshal(data, pb); err != nil {
		return nil, errors.Wrap(err, "unmarshaling primitive block")
	}

	block := &primitiveBlock{
		strings:         StringTable(pb.GetStringtable().GetS()),
		granularity:     int64(pb.GetGranularity()),
		latOffset:       pb.GetLatOffset(),
		lonOffset:       pb.GetLonOffset(),
		dateGranularity: int64(pb.GetDateGranularity()),
	}

	var elems []Element
	for i, group := range pb.GetPrimitivegroup() {
		var err error
		elems, err = block.decodeGroup(group, elems)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding primitive group %d", i)
		}
	}
	return elems, nil
}

// decodeGroup appends the elements of a group. A group holds only one
// kind of element in valid files.
func (b *primitiveBlock) decodeGroup(group *osmpbf.PrimitiveGroup, elems []Element) ([]Element, error) {
	for _, n := range group.GetNodes() {
		nd, err := b.readNode(n)
		if err != nil {
			return nil, errors.Wrap(err, "decoding node")
		}
		elems = append(elems, Element{Kind: KindNode, Node: nd})
	}
	if group.GetDense() != nil {
		dense, err := b.readDenseNodes(group.GetDense())
		if err != nil {
			return nil, errors.Wrap(err, "decoding dense nodes")
		}
		elems = append(elems, Element{Kind: KindDenseNodes, DenseNodes: dense})
	}
	for _, w := range group.GetWays() {
		way, err := b.readWay(w)
		if err != nil {
			return nil, errors.Wrap(err, "decoding way")
		}
		elems = append(elems, Element{Kind: KindWay, Way: way})
	}
	for _, r := range group.GetRelations() {
		rel, err := b.readRelation(r)
		if err != nil {
			return nil, errors.Wrap(err, "decoding relation")
		}
		elems = append(elems, Element{Kind: KindRelation, Relation: rel})
	}
	for _, c := range group.GetChangesets() {
		elems = append(elems, Element{Kind: KindOther, Other: &Other{Type: "changeset", ID: c.GetId()}})
	}
	return elems, nil
}

// readInfo copies the fields present in info. Timestamps are converted to
// milliseconds.
func (b *primitiveBlock) readInfo(info *osmpbf.Info) *Info {
	if info == nil {
		return nil
	}
	result := &Info{
		Version:   info.Version,
		Changeset: info.Changeset,
		Uid:       info.Uid,
		UserSid:   info.UserSid,
		Visible:   info.Visible,
	}
	if info.Timestamp != nil {
		ts := info.GetTimestamp() * b.dateGranularity
		result.MilliTimestamp = &ts
	}
	return result
}

func checkKeysVals(keys, vals []uint32) error {
	if len(keys) != len(vals) {
		return errors.Errorf("%d keys but %d values", len(keys), len(vals))
	}
	return nil
}

func (b *primitiveBlock) readNode(n *osmpbf.Node) (*Node, error) {
	if err := checkKeysVals(n.GetKeys(), n.GetVals()); err != nil {
		return nil, err
	}
	return &Node{
		ID:      n.GetId(),
		Lat:     b.lat(n.GetLat()),
		Long:    b.long(n.GetLon()),
		Keys:    n.GetKeys(),
		Vals:    n.GetVals(),
		Info:    b.readInfo(n.GetInfo()),
		Strings: b.strings,
	}, nil
}

func (b *primitiveBlock) readDenseNodes(dn *osmpbf.DenseNodes) (*DenseNodes, error) {
	ids, lats, longs := dn.GetId(), dn.GetLat(), dn.GetLon()
	if len(lats) != len(ids) || len(longs) != len(ids) {
		return nil, errors.Errorf("%d ids but %d lats and %d lons",
			len(ids), len(lats), len(longs))
	}
	// DenseInfo is not used
	return &DenseNodes{
		block:    b,
		ids:      ids,
		lats:     lats,
		longs:    longs,
		keysVals: dn.GetKeysVals(),
	}, nil
}

func (b *primitiveBlock) readWay(w *osmpbf.Way) (*Way, error) {
	if err := checkKeysVals(w.GetKeys(), w.GetVals()); err != nil {
		return nil, err
	}
	// lat/lon of LocationsOnWays files are ignored
	return &Way{
		ID:      w.GetId(),
		Keys:    w.GetKeys(),
		Vals:    w.GetVals(),
		Refs:    parseDeltaRefs(w.GetRefs()),
		Info:    b.readInfo(w.GetInfo()),
		Strings: b.strings,
	}, nil
}

func parseDeltaRefs(refs []int64) []int64 {
	result := make([]int64, len(refs))
	var lastRef int64

	for i, refDelta := range refs {
		lastRef += refDelta
		result[i] = lastRef
	}
	return result
}

func (b *primitiveBlock) readRelation(r *osmpbf.Relation) (*Relation, error) {
	if err := checkKeysVals(r.GetKeys(), r.GetVals()); err != nil {
		return nil, err
	}
	roles, memids, types := r.GetRolesSid(), r.GetMemids(), r.GetTypes()
	if len(roles) != len(memids) || len(types) != len(memids) {
		return nil, errors.Errorf("%d member ids but %d roles and %d types",
			len(memids), len(roles), len(types))
	}

	rel := &Relation{
		ID:      r.GetId(),
		Keys:    r.GetKeys(),
		Vals:    r.GetVals(),
		Info:    b.readInfo(r.GetInfo()),
		Strings: b.strings,
		Members: make([]Member, len(memids)),
	}
	var lastID int64
	for i := range memids {
		lastID += memids[i]
		rel.Members[i] = Member{
			ID:      lastID,
			Type:    MemberType(types[i]),
			RoleSid: roles[i],
		}
	}
	return rel, nil
}
