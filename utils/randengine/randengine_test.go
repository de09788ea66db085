package randengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/randengine"
)

func TestSameSeedSameSequence(t *testing.T) {
	e1 := randengine.New(42)
	e2 := randengine.New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, e1.Uint64(), e2.Uint64())
	}

	e3 := randengine.New(42)
	e4 := randengine.New(43)
	same := true
	for i := 0; i < 100; i++ {
		if e3.Uint64() != e4.Uint64() {
			same = false
			break
		}
	}
	assert.False(t, same)
}

func TestDiscreteDistributionBounds(t *testing.T) {
	e := randengine.New(1)
	weight := []float64{0.6, 0.25, 0.15}
	counts := make([]int, len(weight))
	for i := 0; i < 10000; i++ {
		idx := e.DiscreteDistribution(weight)
		require.GreaterOrEqual(t, idx, int32(0))
		require.Less(t, idx, int32(len(weight)))
		counts[idx]++
	}
	// every kind should come up under these weights
	for i, n := range counts {
		assert.Positive(t, n, "index %d never drawn", i)
	}
	assert.Greater(t, counts[0], counts[1])
	assert.Greater(t, counts[1], counts[2])
}

func TestDiscreteDistributionZeroWeight(t *testing.T) {
	e := randengine.New(1)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, int32(1), e.DiscreteDistribution([]float64{0, 1, 0}))
	}
}

func TestUniformFloat64Range(t *testing.T) {
	e := randengine.New(7)
	for i := 0; i < 1000; i++ {
		v := e.UniformFloat64(2.0, 2.6)
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 2.6)
	}
}
