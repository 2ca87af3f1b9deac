package element

import (
	"fmt"

	"github.com/omniscale/go-osm"
)

// Tags is the key=value collection of an entity. Keys are unique.
type Tags = osm.Tags

type Kind int

const (
	NODE Kind = iota
	WAY
)

func (k Kind) String() string {
	switch k {
	case NODE:
		return "node"
	case WAY:
		return "way"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entity is a normalized, serializable OSM object.
type Entity interface {
	Kind() Kind
	ID() int64
}

// Info contains the optional revision metadata of an entity. Each pointer
// field is independently optional and serializes as null when absent.
type Info struct {
	Version        *int32  `json:"version"`
	MilliTimestamp *int64  `json:"milli_timestamp"`
	Changeset      *int64  `json:"changeset"`
	Uid            *int32  `json:"uid"`
	User           *string `json:"user"`
	Visible        bool    `json:"visible"`
	Deleted        bool    `json:"deleted"`
}

type Node struct {
	Id   int64   `json:"id"`
	Tags Tags    `json:"tags"`
	Lat  float64 `json:"lat"`
	Long float64 `json:"lon"`
	// Info is nil for nodes from dense blocks.
	Info *Info `json:"info"`
}

func (n *Node) Kind() Kind { return NODE }
func (n *Node) ID() int64  { return n.Id }

type Way struct {
	Id   int64 `json:"id"`
	Tags Tags  `json:"tags"`
	Info *Info `json:"info"`
	// Refs is the ordered list of node IDs as stored in the source.
	Refs []int64 `json:"refs"`
}

func (w *Way) Kind() Kind { return WAY }
func (w *Way) ID() int64  { return w.Id }
