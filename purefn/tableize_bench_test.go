package purefn_test

import (
	"testing"

	"github.com/on-the-ground/memo_ive_go/pure"
	"github.com/on-the-ground/memo_ive_go/purefn"
	"github.com/on-the-ground/memo_ive_go/store"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkTableizedFib20(b *testing.B) {
	var tableFib func(int) int
	tableFib = purefn.TableizeI1O1(func(n int) int {
		if n <= 1 {
			return n
		}
		return tableFib(n-1) + tableFib(n-2)
	})

	for i := 0; i < b.N; i++ {
		_ = tableFib(20)
	}
}

func BenchmarkTableizedFib20_MemDB(b *testing.B) {
	var tableFib func(int) int
	tableFib = purefn.TableizeI1O1(func(n int) int {
		if n <= 1 {
			return n
		}
		return tableFib(n-1) + tableFib(n-2)
	}, pure.WithBackend(store.BackendMemDB))

	for i := 0; i < b.N; i++ {
		_ = tableFib(20)
	}
}

// pair packs two strings into one comparable key.
type pair struct {
	A, B string
}

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveLevenshtein("kitten", "sitting")
	}
}

func BenchmarkTableizedLevenshtein(b *testing.B) {
	var lev func(pair) int
	lev = purefn.TableizeI1O1(func(p pair) int {
		if len(p.A) == 0 {
			return len(p.B)
		}
		if len(p.B) == 0 {
			return len(p.A)
		}
		if p.A[0] == p.B[0] {
			return lev(pair{p.A[1:], p.B[1:]})
		}
		return 1 + min(
			lev(pair{p.A[1:], p.B}),
			lev(pair{p.A, p.B[1:]}),
			lev(pair{p.A[1:], p.B[1:]}),
		)
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lev(pair{"kitten", "sitting"})
	}
}

// Same input every time: the single slot always hits.
func BenchmarkLastRepeated(b *testing.B) {
	fn := purefn.LastI1O1(func(color string) string { return "Swatch render: " + color })
	for i := 0; i < b.N; i++ {
		_ = fn("red")
	}
}

// Alternating inputs: the single slot never hits.
func BenchmarkLastAlternating(b *testing.B) {
	colors := [2]string{"red", "blue"}
	fn := purefn.LastI1O1(func(color string) string { return "Swatch render: " + color })
	for i := 0; i < b.N; i++ {
		_ = fn(colors[i%2])
	}
}
