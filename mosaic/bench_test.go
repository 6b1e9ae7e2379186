package mosaic_test

import (
	"testing"

	"github.com/katalvlaran/mosaic/mosaic"
	"github.com/katalvlaran/mosaic/tile"
)

// BenchmarkReconstruct measures the full pipeline on the 9-tile sample.
func BenchmarkReconstruct(b *testing.B) {
	s, err := tile.NewSet(loadSample(b))
	if err != nil {
		b.Fatalf("setup NewSet failed: %v", err)
	}
	opts := mosaic.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mosaic.Reconstruct(s, opts); err != nil {
			b.Fatal(err)
		}
	}
}
