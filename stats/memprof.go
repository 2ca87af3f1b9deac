package stats

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
)

// MemProfiler writes a heap profile to dir every interval till ctx is done.
func MemProfiler(ctx context.Context, dir string, interval time.Duration) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return errors.Wrap(err, "creating memprofile dir")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		filename := filepath.Join(dir, fmt.Sprintf("memprof-%03d.pprof", i))
		if err := writeHeapProfile(filename); err != nil {
			return err
		}
	}
}

func writeHeapProfile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "creating heap profile")
	}
	defer f.Close()
	return errors.Wrap(pprof.WriteHeapProfile(f), "writing heap profile")
}
