package pbf

import "fmt"

// Kind identifies the type of a raw element.
type Kind int

const (
	KindNode Kind = iota
	// KindDenseNodes is a block of densely encoded nodes. Its members are
	// available through Element.DenseNodes.
	KindDenseNodes
	// KindDenseNode is a single member of a dense block, as passed to the
	// ForEach callback.
	KindDenseNode
	KindWay
	KindRelation
	// KindOther covers changesets and blobs of unknown types.
	KindOther
)

var kindNames = [...]string{
	KindNode:       "node",
	KindDenseNodes: "dense_nodes",
	KindDenseNode:  "dense_node",
	KindWay:        "way",
	KindRelation:   "relation",
	KindOther:      "other",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Element is a tagged raw element. Only the field matching Kind is set.
type Element struct {
	Kind       Kind
	Node       *Node
	DenseNodes *DenseNodes
	DenseNode  *DenseNode
	Way        *Way
	Relation   *Relation
	Other      *Other
}

// StringTable contains the raw strings of a primitive block. Index 0 is
// reserved and always empty.
type StringTable [][]byte

// Bytes returns the raw string at idx. ok is false for indices outside of
// the table.
func (st StringTable) Bytes(idx int64) (b []byte, ok bool) {
	if idx < 0 || idx >= int64(len(st)) {
		return nil, false
	}
	return st[idx], true
}

// Info contains the optional metadata of an element. Nil fields were not
// present in the source.
type Info struct {
	Version *int32
	// MilliTimestamp is the timestamp multiplied with the block's date
	// granularity.
	MilliTimestamp *int64
	Changeset      *int64
	Uid            *int32
	UserSid        *uint32
	Visible        *bool
}

type Node struct {
	ID      int64
	Lat     float64
	Long    float64
	Keys    []uint32
	Vals    []uint32
	Info    *Info
	Strings StringTable
}

// DenseNode is a single node from a dense block. KeysVals contains the
// alternating key and value string indices of this node.
type DenseNode struct {
	ID       int64
	Lat      float64
	Long     float64
	KeysVals []int32
	Strings  StringTable
}

type Way struct {
	ID   int64
	Keys []uint32
	Vals []uint32
	// Refs are the delta decoded node IDs in source order.
	Refs    []int64
	Info    *Info
	Strings StringTable
}

type MemberType int

const (
	NodeMember MemberType = iota
	WayMember
	RelationMember
)

type Member struct {
	ID      int64
	Type    MemberType
	RoleSid int32
}

type Relation struct {
	ID      int64
	Keys    []uint32
	Vals    []uint32
	Members []Member
	Info    *Info
	Strings StringTable
}

// Other is a record the reader does not decode any further. Type is
// "changeset" for changesets or the blob type for unknown blobs.
type Other struct {
	Type string
	ID   int64
}
