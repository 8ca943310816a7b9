// SPDX-License-Identifier: MIT
package martins_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/RonaldPonguillo/mumoro/martins"
)

func BenchmarkSearch(b *testing.B) {
	for _, size := range []int{50, 200} {
		g := randomGraph(b, 11, size, size*5)
		target := fmt.Sprintf("V%d", size-1)
		b.Run(fmt.Sprintf("n=%d/target", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, err := martins.Search(g,
					martins.Source("V0"),
					martins.Target(target),
					martins.WithObjectives(martins.Attribute(0), martins.Attribute(1)),
				)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(fmt.Sprintf("n=%d/all", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := martins.Search(g,
					martins.Source("V0"),
					martins.WithObjectives(martins.Attribute(0), martins.Attribute(1)),
				); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSearchMany(b *testing.B) {
	g := randomGraph(b, 5, 200, 1000)
	queries := make([]martins.Query, 16)
	for i := range queries {
		queries[i] = martins.Query{Source: fmt.Sprintf("V%d", i), Target: fmt.Sprintf("V%d", 199-i)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := martins.SearchMany(context.Background(), g, queries,
			martins.WithObjectives(martins.Attribute(0), martins.Attribute(1)),
		); err != nil {
			b.Fatal(err)
		}
	}
}
