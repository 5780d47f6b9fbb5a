package staticvector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVecMetrics(t *testing.T) {
	v := New[int](8)

	// Initial state
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 8, v.Free())
	assert.Equal(t, 0.0, v.Utilization())

	require.NoError(t, v.ExtendFromSlice(1, 2, 3, 4, 5, 6))
	assert.Equal(t, 2, v.Free())
	assert.InDelta(t, 0.75, v.Utilization(), 1e-9)

	metrics := v.Metrics()
	assert.Equal(t, VecMetrics{Len: 6, Capacity: 8, Free: 2, Utilization: 0.75}, metrics)
}

func TestVecMetricsFull(t *testing.T) {
	v := WithLen[int](4, 4)
	assert.Equal(t, 0, v.Free())
	assert.Equal(t, 1.0, v.Utilization())
}

func TestVecMetricsAfterClear(t *testing.T) {
	v := OfCap(4, 1, 2, 3)
	v.Clear()

	assert.Equal(t, 4, v.Free())
	assert.Equal(t, 0.0, v.Utilization())
	// Capacity survives Clear
	assert.Equal(t, 4, v.Metrics().Capacity)
}

func TestVecMetricsAfterRelease(t *testing.T) {
	v := OfCap(4, 1, 2)
	v.Release()

	assert.Equal(t, VecMetrics{}, v.Metrics())
	assert.Equal(t, 0.0, v.Utilization())
}

func TestUtilizationZeroValue(t *testing.T) {
	var v Vec[int]
	assert.Equal(t, 0.0, v.Utilization())
	assert.Equal(t, 0, v.Free())
}

func BenchmarkMetrics(b *testing.B) {
	v := WithLen[int](1024, 512)

	b.Run("Utilization", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Utilization()
		}
	})

	b.Run("Metrics", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Metrics()
		}
	})
}
