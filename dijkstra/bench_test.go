package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/shortest/builder"
	"github.com/katalvlaran/shortest/dijkstra"
)

func BenchmarkRun(b *testing.B) {
	for _, size := range []struct{ n, degree int }{
		{1_000, 4},
		{10_000, 8},
		{50_000, 8},
	} {
		b.Run(fmt.Sprintf("V=%d/deg=%d", size.n, size.degree), func(b *testing.B) {
			edges, err := builder.Random(size.n, size.degree, builder.WithSeed(1), builder.WithChain())
			if err != nil {
				b.Fatal(err)
			}
			adj, err := builder.Adjacency(size.n, edges)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err = dijkstra.Run(adj); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
