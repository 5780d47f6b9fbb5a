package staticvector

// Free returns the number of unused slots.
func (v *Vec[T]) Free() int {
	return v.Cap() - v.length
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity, which includes after Release.
func (v *Vec[T]) Utilization() float64 {
	capacity := v.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.length) / float64(capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vec[T]) Metrics() VecMetrics {
	return VecMetrics{
		Len:         v.Len(),
		Capacity:    v.Cap(),
		Free:        v.Free(),
		Utilization: v.Utilization(),
	}
}

// VecMetrics contains statistical information about a vector.
type VecMetrics struct {
	Len         int     // Live elements
	Capacity    int     // Fixed slot count
	Free        int     // Unused slots
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
}
