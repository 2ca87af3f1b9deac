package stats

import (
	"fmt"
	"time"

	"github.com/omniscale/pbfserve/parser/pbf"
)

// ScanCounter counts the elements of a single scan. It is not safe for
// concurrent use, each scan has its own counter.
type ScanCounter struct {
	start      time.Time
	stop       time.Time
	Nodes      int64
	DenseNodes int64
	Ways       int64
	Relations  int64
	Others     int64
}

func NewScanCounter() *ScanCounter {
	return &ScanCounter{start: time.Now()}
}

func (c *ScanCounter) Add(kind pbf.Kind) {
	switch kind {
	case pbf.KindNode:
		c.Nodes++
	case pbf.KindDenseNode:
		c.DenseNodes++
	case pbf.KindWay:
		c.Ways++
	case pbf.KindRelation:
		c.Relations++
	case pbf.KindOther:
		c.Others++
	}
}

// Stop marks the end of the scan.
func (c *ScanCounter) Stop() {
	if c.stop.IsZero() {
		c.stop = time.Now()
	}
}

func (c *ScanCounter) Duration() time.Duration {
	if c.stop.IsZero() {
		return time.Since(c.start)
	}
	return c.stop.Sub(c.start)
}

func (c *ScanCounter) Total() int64 {
	return c.Nodes + c.DenseNodes + c.Ways + c.Relations + c.Others
}

// Rps returns the number of elements per second.
func (c *ScanCounter) Rps() float64 {
	secs := c.Duration().Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(c.Total()) / secs
}

func (c *ScanCounter) String() string {
	return fmt.Sprintf("Nodes: %d Dense nodes: %d Ways: %d Relations: %d Other: %d in %s (%.0f/s)",
		c.Nodes,
		c.DenseNodes,
		c.Ways,
		c.Relations,
		c.Others,
		c.Duration().Round(time.Millisecond),
		c.Rps(),
	)
}
