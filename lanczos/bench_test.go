package lanczos_test

import (
	"testing"

	"github.com/katalvlaran/krylov/lanczos"
	"github.com/katalvlaran/krylov/ortho"
)

// benchmarkExpand drives a fresh factorization to dimension k over the
// n×n path Laplacian using the given strategy, once per loop iteration.
func benchmarkExpand(b *testing.B, n, k int, opts ...lanczos.Option) {
	it, err := lanczos.NewIterator(lanczos.MatrixOperator(laplacian(n)), e1(n), opts...)
	if err != nil {
		b.Fatalf("NewIterator failed: %v", err)
	}

	var f *lanczos.Factorization
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if f == nil {
			f, err = it.Initialize()
		} else {
			err = it.InitializeInto(f)
		}
		if err != nil {
			b.Fatalf("initialize failed: %v", err)
		}
		for f.Len() < k {
			if err = it.Expand(f); err != nil {
				b.Fatalf("expand failed at dimension %d: %v", f.Len(), err)
			}
		}
	}
}

// BenchmarkExpand_MGS benchmarks the bare single-pass recurrence.
func BenchmarkExpand_MGS(b *testing.B) {
	benchmarkExpand(b, 400, 50, lanczos.WithStrategy(ortho.ModifiedGS{}))
}

// BenchmarkExpand_MGS_Window benchmarks the single-pass recurrence with
// the two-vector sliding window (no retention).
func BenchmarkExpand_MGS_Window(b *testing.B) {
	benchmarkExpand(b, 400, 50,
		lanczos.WithStrategy(ortho.ModifiedGS{}), lanczos.WithoutRetention())
}

// BenchmarkExpand_MGS2 benchmarks the default twice-applied strategy.
func BenchmarkExpand_MGS2(b *testing.B) {
	benchmarkExpand(b, 400, 50, lanczos.WithStrategy(ortho.ModifiedGS2{}))
}

// BenchmarkExpand_MGSIR benchmarks the iteratively-refined strategy.
func BenchmarkExpand_MGSIR(b *testing.B) {
	benchmarkExpand(b, 400, 50,
		lanczos.WithStrategy(ortho.NewModifiedGSIR(ortho.DefaultEta)))
}
