package wide

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestUint256RoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		u := Rand(256, globalRNG)
		v, exact := FromUint256(256, u.AsUint256())
		require.True(t, exact)
		require.True(t, u.Equal(v), "round trip %s != %s", u, v)
	}
}

func TestUint256FromClamps(t *testing.T) {
	full := new(uint256.Int).SetAllOne()

	v, exact := FromUint256(256, full)
	require.True(t, exact)
	require.True(t, v.Equal(Max(256)))

	// Too wide for 100 bits: saturate, exact false.
	v, exact = FromUint256(100, full)
	require.False(t, exact)
	require.True(t, v.Equal(Max(100)))

	// Fits exactly in 100 bits:
	small := uint256.NewInt(12345)
	v, exact = FromUint256(100, small)
	require.True(t, exact)
	require.Equal(t, "12345", v.String())

	// A 300-bit Uint holds any uint256 exactly:
	v, exact = FromUint256(300, full)
	require.True(t, exact)
	require.Equal(t, Max(256).String(), v.String())
}

func TestUint256AsTruncates(t *testing.T) {
	// Bits above 256 are dropped on the way out.
	u := Max(300)
	require.True(t, u.AsUint256().Eq(new(uint256.Int).SetAllOne()))

	narrow := uw(100, 42)
	require.Equal(t, "42", narrow.AsUint256().Dec())
}

func TestUint256ArithAgrees(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, b := Rand(256, globalRNG), Rand(256, globalRNG)
		av, bv := a.AsUint256(), b.AsUint256()

		require.Equal(t, new(uint256.Int).Add(av, bv).Dec(), a.Add(b).String())
		require.Equal(t, new(uint256.Int).Sub(av, bv).Dec(), a.Sub(b).String())
		require.Equal(t, new(uint256.Int).Mul(av, bv).Dec(), a.Mul(b).String())
		if !b.IsZero() {
			require.Equal(t, new(uint256.Int).Div(av, bv).Dec(), a.Quo(b).String())
			require.Equal(t, new(uint256.Int).Mod(av, bv).Dec(), a.Rem(b).String())
		}
	}
}
