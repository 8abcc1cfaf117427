package wide

import (
	"fmt"
	"math/big"
	"testing"
)

var (
	BenchUintResult   Uint
	BenchIntResult    int
	BenchBoolResult   bool
	BenchStringResult string
	BenchBigResult    *big.Int
	BenchUint64Result uint64
)

const benchOperands = 1024

type benchPairs struct {
	a, b []Uint
}

func newBenchPairs(bits uint) benchPairs {
	p := benchPairs{
		a: make([]Uint, benchOperands),
		b: make([]Uint, benchOperands),
	}
	for i := 0; i < benchOperands; i++ {
		p.a[i] = Rand(bits, globalRNG)
		p.b[i] = Rand(bits, globalRNG)
		if p.b[i].IsZero() {
			p.b[i] = uw(bits, 1)
		}
	}
	return p
}

func BenchmarkUintAdd(b *testing.B) {
	for _, bits := range []uint{64, 256, 1000, MaxBits} {
		p := newBenchPairs(bits)
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x := p.a[i%benchOperands]
				BenchUintResult = x.Add(p.b[i%benchOperands])
			}
		})
	}
}

func BenchmarkUintSub(b *testing.B) {
	p := newBenchPairs(256)
	for i := 0; i < b.N; i++ {
		BenchUintResult = p.a[i%benchOperands].Sub(p.b[i%benchOperands])
	}
}

func BenchmarkUintInc(b *testing.B) {
	p := newBenchPairs(256)
	for i := 0; i < b.N; i++ {
		BenchUintResult = p.a[i%benchOperands].Inc()
	}
}

func BenchmarkUintMul(b *testing.B) {
	for _, bits := range []uint{64, 256, 1000, MaxBits} {
		p := newBenchPairs(bits)
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchUintResult = p.a[i%benchOperands].Mul(p.b[i%benchOperands])
			}
		})
	}
}

func BenchmarkUintQuoRem(b *testing.B) {
	for _, tc := range []struct {
		name string
		u    Uint
		by   Uint
	}{
		{"smallbysmall", uw(256, maxUint64), uw(256, 7)},
		{"largebysmall", Max(256), uw(256, 7)},
		{"largebylarge", Max(256), us(256, "0x123456789 12345678 91234567 89123456")},
		{"largebyhuge", Max(256), Max(256).Rsh(1)},
	} {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchUintResult, _ = tc.u.QuoRem(tc.by)
			}
		})
	}
}

func BenchmarkUintCmp(b *testing.B) {
	p := newBenchPairs(256)
	for i := 0; i < b.N; i++ {
		BenchIntResult = p.a[i%benchOperands].Cmp(p.b[i%benchOperands])
	}
}

func BenchmarkUintLsh(b *testing.B) {
	for _, tc := range []struct {
		name string
		u    Uint
		by   uint
	}{
		{"sub1word", Max(256), 15},
		{"wordmultiple", Max(256), 128},
		{"ragged", Max(256), 137},
	} {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchUintResult = tc.u.Lsh(tc.by)
			}
		})
	}
}

func BenchmarkUintString(b *testing.B) {
	for _, tc := range []Uint{uw(256, 7), uw(256, maxUint64), Max(256)} {
		b.Run(tc.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = tc.String()
			}
		})
	}
}

func BenchmarkUintFromString(b *testing.B) {
	s := Max(256).String()
	for i := 0; i < b.N; i++ {
		BenchUintResult, _ = FromString(256, s, 10)
	}
}

func BenchmarkUintAsBigInt(b *testing.B) {
	u := us(256, "0x 98765432 10fedcba 98765432 10fedcba 98765432 10fedcba 98765432")
	for i := 0; i < b.N; i++ {
		BenchBigResult = u.AsBigInt()
	}
}

// Baselines to keep the limb kernels honest.

func BenchmarkBaselineUint64Mul(b *testing.B) {
	x, y := globalRNG.Uint64(), globalRNG.Uint64()
	for i := 0; i < b.N; i++ {
		BenchUint64Result = x * y
	}
}

func BenchmarkBaselineBigIntMul(b *testing.B) {
	p := newBenchPairs(256)
	xb := make([]*big.Int, benchOperands)
	yb := make([]*big.Int, benchOperands)
	for i := range xb {
		xb[i], yb[i] = p.a[i].AsBigInt(), p.b[i].AsBigInt()
	}
	mod := wrapBig(256)
	z := new(big.Int)
	for i := 0; i < b.N; i++ {
		z.Mul(xb[i%benchOperands], yb[i%benchOperands])
		z.Mod(z, mod)
	}
	BenchBigResult = z
}

func BenchmarkBaselineBigIntQuoRem(b *testing.B) {
	u, by := Max(256).AsBigInt(), bigs("0x12345678912345678912345678912345")
	q, r := new(big.Int), new(big.Int)
	for i := 0; i < b.N; i++ {
		q.QuoRem(u, by, r)
	}
	BenchBigResult = q
}
