package vec

import "unsafe"

// MemBytes returns the size in bytes of the vector's current storage
// block, including the raw slots beyond Len().
func (v *Vector[T]) MemBytes() int {
	var zero T
	return v.buf.Cap() * int(unsafe.Sizeof(zero))
}

// Utilization returns the ratio of live elements to storage capacity
// (0.0 to 1.0). Returns 0.0 for a vector with no storage.
func (v *Vector[T]) Utilization() float64 {
	c := v.buf.Cap()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Growths returns the number of reallocations this vector has performed
// since construction.
func (v *Vector[T]) Growths() int {
	return v.growths
}

// Stats returns a snapshot of vector statistics.
func (v *Vector[T]) Stats() Stats {
	var zero T
	return Stats{
		Len:         v.size,
		Cap:         v.buf.Cap(),
		ElemSize:    int(unsafe.Sizeof(zero)),
		MemBytes:    v.MemBytes(),
		Utilization: v.Utilization(),
		Growths:     v.growths,
	}
}

// Stats contains statistical information about a vector.
type Stats struct {
	Len         int     // Live elements
	Cap         int     // Element slots in the current storage
	ElemSize    int     // Size of one element in bytes
	MemBytes    int     // Total storage size in bytes
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
	Growths     int     // Reallocations since construction
}
