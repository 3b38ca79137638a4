package heightmap_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// synthMap builds an n×n map cycling through the alphabet with S and E in
// opposite corners.
func synthMap(n int) string {
	var b strings.Builder
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			switch {
			case row == 0 && col == 0:
				b.WriteByte('S')
			case row == n-1 && col == n-1:
				b.WriteByte('E')
			default:
				b.WriteByte(byte('a' + (row+col)%26))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// BenchmarkParse measures parsing a 200×200 map.
func BenchmarkParse(b *testing.B) {
	text := synthMap(200)
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = heightmap.Parse(text)
	}
}

// BenchmarkSuccessors measures neighbour expansion over every square.
func BenchmarkSuccessors(b *testing.B) {
	g, err := heightmap.Parse(synthMap(200))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for row := 0; row < g.Rows(); row++ {
			for col := 0; col < g.Cols(); col++ {
				_ = g.Successors(heightmap.Pos(row, col), nil)
			}
		}
	}
}
