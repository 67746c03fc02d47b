package parallel

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestForEachBand_CoversAllRows(t *testing.T) {
	tests := []struct {
		name       string
		height     int
		workers    int
		bandHeight int
	}{
		{"single worker", 100, 1, 32},
		{"many workers", 100, 8, 32},
		{"band larger than frame", 10, 4, 64},
		{"band of one row", 7, 3, 1},
		{"more workers than bands", 33, 16, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mu sync.Mutex
			covered := make([]int, tt.height)

			err := ForEachBand(context.Background(), tt.height, tt.workers, tt.bandHeight, func(y0, y1 int) {
				mu.Lock()
				defer mu.Unlock()
				for y := y0; y < y1; y++ {
					covered[y]++
				}
			})
			if err != nil {
				t.Fatalf("ForEachBand() error = %v", err)
			}

			for y, c := range covered {
				if c != 1 {
					t.Errorf("row %d covered %d times, want exactly once", y, c)
				}
			}
		})
	}
}

func TestForEachBand_ZeroHeight(t *testing.T) {
	called := false
	err := ForEachBand(context.Background(), 0, 4, 32, func(y0, y1 int) {
		called = true
	})
	if err != nil {
		t.Fatalf("ForEachBand() error = %v", err)
	}
	if called {
		t.Error("fn called for zero-height frame")
	}
}

func TestForEachBand_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := ForEachBand(ctx, 100, 1, 32, func(y0, y1 int) {
		called = true
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("ForEachBand() error = %v, want context.Canceled", err)
	}
	if called {
		t.Error("fn called after cancellation")
	}
}

func TestForEachBand_CancelMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	bands := 0
	err := ForEachBand(ctx, 1000, 1, 10, func(y0, y1 int) {
		bands++
		if bands == 3 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("ForEachBand() error = %v, want context.Canceled", err)
	}
	if bands != 3 {
		t.Errorf("ran %d bands after cancellation, want 3", bands)
	}
}
