package recvec_test

import (
	"testing"

	"github.com/katalvlaran/froipin/recvec"
)

// BenchmarkRecVec_AppendRow measures amortized row growth.
func BenchmarkRecVec_AppendRow(b *testing.B) {
	rv := recvec.New[int](8, -1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rv.AppendRow()
	}
}

// BenchmarkRecVec_GetSet measures hot-path cell access.
func BenchmarkRecVec_GetSet(b *testing.B) {
	rv := recvec.New[int](8, -1)
	rv.AppendRows(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := i & 1023
		rv.Set(r, i&7, i)
		_ = rv.Get(r, i&7)
	}
}

// BenchmarkBitRecVec_GetSet measures packed flag access.
func BenchmarkBitRecVec_GetSet(b *testing.B) {
	bv := recvec.NewBit(8)
	bv.AppendRows(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := i & 1023
		bv.Set(r, i&7, i&1 == 0)
		_ = bv.Get(r, i&7)
	}
}
