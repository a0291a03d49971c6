package vec

import (
	"fmt"
	"iter"
)

// Vector is a growable contiguous container. It owns one RawBuffer plus a
// count of live elements: slots [0, Len()) hold constructed elements,
// slots [Len(), Cap()) are raw storage. Not goroutine-safe.
//
// The zero Vector is an empty vector with a trivial element lifecycle,
// ready to use.
type Vector[T any] struct {
	buf     RawBuffer[T]
	size    int
	lc      Lifecycle[T]
	growths int // reallocations performed by this vector
}

// New creates an empty vector with a trivial element lifecycle.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithLifecycle creates an empty vector whose elements are managed
// through lc.
func NewWithLifecycle[T any](lc Lifecycle[T]) *Vector[T] {
	return &Vector[T]{lc: lc}
}

// NewSized creates a vector of n default-constructed elements.
// Panics if n is negative.
func NewSized[T any](n int) (*Vector[T], error) {
	return NewSizedWithLifecycle(n, Lifecycle[T]{})
}

// NewSizedWithLifecycle creates a vector of n elements built by lc.New.
// If construction of any element fails, every element constructed so far
// is destroyed, the storage is released, and the error is returned.
func NewSizedWithLifecycle[T any](n int, lc Lifecycle[T]) (*Vector[T], error) {
	if n < 0 {
		panic("vec: negative size")
	}
	v := &Vector[T]{buf: NewRawBuffer[T](n), lc: lc}
	for i := 0; i < n; i++ {
		x, err := v.lc.construct()
		if err != nil {
			for j := i - 1; j >= 0; j-- {
				v.lc.destroy(v.buf.At(j))
			}
			v.buf.Release()
			return nil, fmt.Errorf("vec: sized construction: %w", err)
		}
		*v.buf.At(i) = x
	}
	v.size = n
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of elements the current storage can hold before
// the vector must reallocate.
func (v *Vector[T]) Cap() int {
	return v.buf.Cap()
}

// At returns the address of element i. The address stays valid until the
// next reallocation or shifting mutation. Panics if i is out of
// [0, Len()).
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return v.buf.At(i)
}

// Items returns the live elements as a contiguous slice view into the
// vector's storage. Writes through the view are writes to the vector.
// Any growth or shifting mutation invalidates the view.
func (v *Vector[T]) Items() []T {
	if v.size == 0 {
		return nil
	}
	return v.buf.Slice(0, v.size)
}

// All returns an iterator over (index, element address) pairs, front to
// back. Mutating the vector during iteration invalidates it.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.At(i)) {
				return
			}
		}
	}
}

// Clone returns an independent duplicate of the vector, with storage
// sized to Len(). Elements are duplicated via the lifecycle's Clone hook;
// a non-copyable type is relocated by Move instead, which empties the
// clone's source slots of their values. If duplication of any element
// fails, everything built so far is torn down and the error is returned;
// v is unchanged.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{buf: NewRawBuffer[T](v.size), lc: v.lc}
	if err := v.relocateRange(&out.buf, 0, 0, v.size, v.lc.NoCopy); err != nil {
		out.buf.Release()
		return nil, fmt.Errorf("vec: clone: %w", err)
	}
	out.size = v.size
	return out, nil
}

// Move transfers the vector's storage and elements to a new vector in
// O(1). v is left empty with zero capacity. No element-level work occurs.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{buf: v.buf.Move(), size: v.size, lc: v.lc}
	v.size = 0
	return out
}

// CopyFrom copy-assigns the contents of rhs over v.
//
// When rhs does not fit in v's current storage, a full temporary copy of
// rhs is built first and exchanged with v, so failure leaves v unchanged.
// Otherwise elements are copy-assigned over the overlapping prefix and
// the tail is copy-constructed or destroyed as needed; v's length is
// updated only after every fallible step has succeeded.
//
// Both vectors are expected to manage their elements with the same
// lifecycle.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v.lc.NoCopy {
		panic("vec: copy of non-copyable element type")
	}
	if v == rhs {
		return nil
	}
	if rhs.size > v.buf.Cap() {
		tmp, err := rhs.Clone()
		if err != nil {
			return fmt.Errorf("vec: copy assign: %w", err)
		}
		v.Swap(tmp)
		tmp.Destroy()
		return nil
	}
	if rhs.size >= v.size {
		for i := 0; i < v.size; i++ {
			if err := v.lc.set(v.buf.At(i), rhs.buf.At(i)); err != nil {
				return fmt.Errorf("vec: copy assign: %w", err)
			}
		}
		for i := v.size; i < rhs.size; i++ {
			x, err := v.lc.clone(rhs.buf.At(i))
			if err != nil {
				for j := i - 1; j >= v.size; j-- {
					v.lc.destroy(v.buf.At(j))
				}
				return fmt.Errorf("vec: copy assign: %w", err)
			}
			*v.buf.At(i) = x
		}
	} else {
		for i := 0; i < rhs.size; i++ {
			if err := v.lc.set(v.buf.At(i), rhs.buf.At(i)); err != nil {
				return fmt.Errorf("vec: copy assign: %w", err)
			}
		}
		v.destroyRange(rhs.size, v.size)
	}
	v.size = rhs.size
	return nil
}

// TakeFrom move-assigns rhs into v by exchanging storage and length in
// O(1). rhs ends up holding what v held before. No element-level work
// occurs.
func (v *Vector[T]) TakeFrom(rhs *Vector[T]) {
	v.Swap(rhs)
}

// Swap exchanges the full contents of v and other in O(1). The element
// lifecycles travel with the elements they manage. No element is
// constructed, destroyed, copied, or moved.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.lc, other.lc = other.lc, v.lc
}

// Clear destroys all live elements but keeps the storage for reuse.
func (v *Vector[T]) Clear() {
	v.destroyRange(0, v.size)
	v.size = 0
}

// Destroy destroys all live elements and releases the storage. The
// vector remains usable afterwards as an empty vector with zero
// capacity.
func (v *Vector[T]) Destroy() {
	v.destroyRange(0, v.size)
	v.size = 0
	v.buf.Release()
}

func (v *Vector[T]) destroyRange(i, j int) {
	for k := i; k < j; k++ {
		v.lc.destroy(v.buf.At(k))
	}
}

// relocateRange constructs duplicates-or-relocations of the live elements
// [srcOff, srcOff+n) into dst at [dstOff, dstOff+n). On failure at any
// element, the elements already constructed in dst by this call are
// destroyed in reverse order and the error is returned; when byMove is
// false the source elements are untouched.
func (v *Vector[T]) relocateRange(dst *RawBuffer[T], dstOff, srcOff, n int, byMove bool) error {
	for i := 0; i < n; i++ {
		src := v.buf.At(srcOff + i)
		var x T
		var err error
		if byMove {
			x, err = v.lc.move(src)
		} else {
			x, err = v.lc.clone(src)
		}
		if err != nil {
			for j := i - 1; j >= 0; j-- {
				v.lc.destroy(dst.At(dstOff + j))
			}
			return err
		}
		*dst.At(dstOff + i) = x
	}
	return nil
}
