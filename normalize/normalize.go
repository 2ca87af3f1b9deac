// Package normalize converts raw PBF elements into entities.
//
// Strings are resolved through the block's string table and must be valid
// UTF-8. A string that can not be resolved is omitted from the entity:
// a user name becomes nil and a tag with a bad key or value is dropped.
// Normalization never fails.
package normalize

import (
	"unicode/utf8"

	"github.com/omniscale/pbfserve/element"
	"github.com/omniscale/pbfserve/parser/pbf"
)

// Entity returns the entity for a raw element. ok is false for element
// kinds that are not served: relations, other records and dense blocks,
// whose members are normalized one by one.
func Entity(e pbf.Element) (entity element.Entity, ok bool) {
	switch e.Kind {
	case pbf.KindNode:
		nd := Node(e.Node)
		return &nd, true
	case pbf.KindDenseNode:
		nd := DenseNode(e.DenseNode)
		return &nd, true
	case pbf.KindWay:
		way := Way(e.Way)
		return &way, true
	case pbf.KindDenseNodes, pbf.KindRelation, pbf.KindOther:
		return nil, false
	}
	return nil, false
}

// Node converts a plain node. Info is always set.
func Node(nd *pbf.Node) element.Node {
	return element.Node{
		Id:   nd.ID,
		Tags: tags(nd.Strings, nd.Keys, nd.Vals),
		Lat:  nd.Lat,
		Long: nd.Long,
		Info: info(nd.Strings, nd.Info),
	}
}

// DenseNode converts a member of a dense block. Dense blocks carry no per
// node metadata that is decoded, Info is always nil.
func DenseNode(nd *pbf.DenseNode) element.Node {
	t := element.Tags{}
	for i := 0; i+1 < len(nd.KeysVals); i += 2 {
		k, ok := text(nd.Strings, int64(nd.KeysVals[i]))
		if !ok {
			continue
		}
		v, ok := text(nd.Strings, int64(nd.KeysVals[i+1]))
		if !ok {
			continue
		}
		t[k] = v
	}
	return element.Node{
		Id:   nd.ID,
		Tags: t,
		Lat:  nd.Lat,
		Long: nd.Long,
	}
}

// Way converts a way. Refs keep the source order and Info is always set.
func Way(w *pbf.Way) element.Way {
	refs := make([]int64, len(w.Refs))
	copy(refs, w.Refs)
	return element.Way{
		Id:   w.ID,
		Tags: tags(w.Strings, w.Keys, w.Vals),
		Info: info(w.Strings, w.Info),
		Refs: refs,
	}
}

func tags(st pbf.StringTable, keys, vals []uint32) element.Tags {
	t := make(element.Tags, len(keys))
	for i := range keys {
		if i >= len(vals) {
			break
		}
		k, ok := text(st, int64(keys[i]))
		if !ok {
			continue
		}
		v, ok := text(st, int64(vals[i]))
		if !ok {
			continue
		}
		t[k] = v
	}
	return t
}

// info converts the metadata of an element. Elements without metadata get
// an Info with all optional fields unset.
func info(st pbf.StringTable, raw *pbf.Info) *element.Info {
	result := &element.Info{Visible: true}
	if raw == nil {
		return result
	}
	result.Version = raw.Version
	result.MilliTimestamp = raw.MilliTimestamp
	result.Changeset = raw.Changeset
	result.Uid = raw.Uid
	if raw.UserSid != nil {
		if user, ok := text(st, int64(*raw.UserSid)); ok {
			result.User = &user
		}
	}
	if raw.Visible != nil {
		result.Visible = *raw.Visible
	}
	result.Deleted = !result.Visible
	return result
}

func text(st pbf.StringTable, idx int64) (string, bool) {
	b, ok := st.Bytes(idx)
	if !ok || !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}
