package pbf

// DenseNodes iterates over the members of a dense node block. IDs and
// coordinates are delta decoded while iterating.
type DenseNodes struct {
	block    *primitiveBlock
	ids      []int64
	lats     []int64
	longs    []int64
	keysVals []int32

	pos       int
	keyValPos int
	lastID    int64
	lastLat   int64
	lastLong  int64
}

// Len returns the number of nodes in the block.
func (dn *DenseNodes) Len() int {
	return len(dn.ids)
}

// Next returns the next node of the block. ok is false after the last node.
func (dn *DenseNodes) Next() (nd DenseNode, ok bool) {
	if dn.pos >= len(dn.ids) {
		return DenseNode{}, false
	}
	i := dn.pos
	dn.pos++

	dn.lastID += dn.ids[i]
	dn.lastLat += dn.lats[i]
	dn.lastLong += dn.longs[i]

	nd = DenseNode{
		ID:      dn.lastID,
		Lat:     dn.block.lat(dn.lastLat),
		Long:    dn.block.long(dn.lastLong),
		Strings: dn.block.strings,
	}
	nd.KeysVals = dn.nextKeysVals()
	return nd, true
}

// nextKeysVals returns the key/value indices up to the next 0 delimiter.
// keys_vals is empty if no node in the block has tags.
func (dn *DenseNodes) nextKeysVals() []int32 {
	start := dn.keyValPos
	for dn.keyValPos < len(dn.keysVals) {
		if dn.keysVals[dn.keyValPos] == 0 {
			kv := dn.keysVals[start:dn.keyValPos]
			dn.keyValPos++
			return kv
		}
		// a key without value at the end of keys_vals is dropped
		if dn.keyValPos+1 >= len(dn.keysVals) {
			kv := dn.keysVals[start:dn.keyValPos]
			dn.keyValPos = len(dn.keysVals)
			return kv
		}
		dn.keyValPos += 2
	}
	return dn.keysVals[start:dn.keyValPos]
}
