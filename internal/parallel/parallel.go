// Package parallel provides band-based parallel scheduling for pixel
// work.
//
// A frame is divided into horizontal bands of rows that can be computed
// independently and in parallel: the scaling kernel reads only the
// immutable source image, so bands share no mutable state and need no
// synchronization beyond completion. Bands also serve as the
// cancellation granularity; a band either runs to completion or is
// never started.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// ForEachBand splits [0, height) into bands of at most bandHeight rows
// and invokes fn(y0, y1) for each band across a pool of worker
// goroutines. If workers is 0 or negative, GOMAXPROCS is used; a single
// worker runs the bands inline without spawning goroutines.
//
// The context is checked before each band is claimed. On cancellation,
// remaining bands are discarded and ctx.Err() is returned; bands already
// started run to completion.
func ForEachBand(ctx context.Context, height, workers, bandHeight int, fn func(y0, y1 int)) error {
	if height <= 0 {
		return nil
	}
	if bandHeight <= 0 {
		bandHeight = 1
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	bands := (height + bandHeight - 1) / bandHeight
	if workers > bands {
		workers = bands
	}

	if workers == 1 {
		for b := 0; b < bands; b++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			runBand(b, height, bandHeight, fn)
		}
		return nil
	}

	// Workers claim bands from a shared counter. This balances load
	// when some bands are slower (busier neighborhoods) than others.
	var next atomic.Int64
	var wg sync.WaitGroup

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				b := int(next.Add(1) - 1)
				if b >= bands {
					return
				}
				runBand(b, height, bandHeight, fn)
			}
		}()
	}
	wg.Wait()

	return ctx.Err()
}

// runBand invokes fn for band b, clipping the last band to the frame
// height.
func runBand(b, height, bandHeight int, fn func(y0, y1 int)) {
	y0 := b * bandHeight
	y1 := y0 + bandHeight
	if y1 > height {
		y1 = height
	}
	fn(y0, y1)
}
