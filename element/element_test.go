package element

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeJSON(t *testing.T) {
	n := Node{Id: 1, Tags: Tags{}, Lat: 52.5, Long: 13.4}
	b, err := json.Marshal(&n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"tags":{},"lat":52.5,"lon":13.4,"info":null}`, string(b))
}

func TestInfoJSON(t *testing.T) {
	version := int32(3)
	uid := int32(42)
	w := Way{
		Id:   7,
		Tags: Tags{"highway": "residential"},
		Info: &Info{Version: &version, Uid: &uid, Visible: true},
		Refs: []int64{5, 3, 5, 9},
	}
	b, err := json.Marshal(&w)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 7,
		"tags": {"highway": "residential"},
		"info": {
			"version": 3,
			"milli_timestamp": null,
			"changeset": null,
			"uid": 42,
			"user": null,
			"visible": true,
			"deleted": false
		},
		"refs": [5, 3, 5, 9]
	}`, string(b))
}

func TestEntity(t *testing.T) {
	var e Entity = &Way{Id: 3}
	assert.Equal(t, WAY, e.Kind())
	assert.Equal(t, int64(3), e.ID())

	e = &Node{Id: 4}
	assert.Equal(t, NODE, e.Kind())
	assert.Equal(t, "node", e.Kind().String())
}
