package hillclimb_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/hillclimb"
)

// wideMap extends the sample map to the right with low terrain so
// ScenicPath has many candidates.
func wideMap(width int) string {
	rows := strings.Split(strings.TrimSpace(sample), "\n")
	var b strings.Builder
	for r, row := range rows {
		b.WriteString(row)
		for c := len(row); c < width; c++ {
			if r == 0 && c%7 == 0 {
				b.WriteByte('a')
				continue
			}
			b.WriteByte(byte('a' + c%3))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// BenchmarkScenicPath compares worker counts on a wide map.
func BenchmarkScenicPath(b *testing.B) {
	g, err := heightmap.Parse(wideMap(400))
	if err != nil {
		b.Fatal(err)
	}
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			s, err := hillclimb.New(g, hillclimb.WithWorkers(workers))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = s.ScenicPath(context.Background())
			}
		})
	}
}
