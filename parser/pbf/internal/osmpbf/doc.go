// Package osmpbf contains the message types of the OSM PBF format as
// defined in fileformat.proto and osmformat.proto.
package osmpbf

//go:generate protoc --gogo_out=. fileformat.proto osmformat.proto
