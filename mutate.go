package vec

import "fmt"

// Reserve guarantees storage for at least n elements. It is a no-op when
// n does not exceed the current capacity; otherwise it allocates a block
// of exactly n slots, relocates the live elements into it, destroys the
// old elements, and adopts the new block. If relocation of any element
// fails, the new block is torn down and released and the original
// storage and elements are untouched.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.buf.Cap() {
		return nil
	}
	nb := NewRawBuffer[T](n)
	if err := v.relocateRange(&nb, 0, 0, v.size, v.lc.relocateByMove()); err != nil {
		nb.Release()
		return fmt.Errorf("vec: reserve: %w", err)
	}
	v.adopt(&nb)
	return nil
}

// Resize grows or shrinks the vector to exactly n elements. Growth
// reserves storage and default-constructs the new tail; if construction
// of any new element fails, the elements added so far are destroyed and
// the length is unchanged (though a reallocation may have happened).
// Shrinking destroys the excess tail. Panics if n is negative.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vec: negative size")
	}
	switch {
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			x, err := v.lc.construct()
			if err != nil {
				for j := i - 1; j >= v.size; j-- {
					v.lc.destroy(v.buf.At(j))
				}
				return fmt.Errorf("vec: resize: %w", err)
			}
			*v.buf.At(i) = x
		}
		v.size = n
	case n < v.size:
		v.destroyRange(n, v.size)
		v.size = n
	}
	return nil
}

// PushBack appends a copy of x. Amortized O(1); when the vector is full
// its capacity doubles (from a base of 1).
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.appendElem(func() (T, error) { return v.lc.clone(&x) })
	if err != nil {
		return fmt.Errorf("vec: push back: %w", err)
	}
	return nil
}

// PushBackMove appends the value relocated out of *x, leaving *x
// moved-from.
func (v *Vector[T]) PushBackMove(x *T) error {
	_, err := v.appendElem(func() (T, error) { return v.lc.move(x) })
	if err != nil {
		return fmt.Errorf("vec: push back: %w", err)
	}
	return nil
}

// EmplaceBack appends an element constructed by ctor directly in its
// destination slot and returns its address. A nil ctor
// default-constructs. The address stays valid until the next
// reallocation or shifting mutation.
func (v *Vector[T]) EmplaceBack(ctor Ctor[T]) (*T, error) {
	p, err := v.appendElem(v.ctorOrDefault(ctor))
	if err != nil {
		return nil, fmt.Errorf("vec: emplace back: %w", err)
	}
	return p, nil
}

// PopBack destroys the last element. Panics if the vector is empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.lc.destroy(v.buf.At(v.size - 1))
	v.size--
}

// Insert inserts a copy of x before position i, shifting [i, Len()) one
// slot right. i may equal Len(), which appends. Panics if i is out of
// [0, Len()].
func (v *Vector[T]) Insert(i int, x T) error {
	_, err := v.emplaceAt(i, func() (T, error) { return v.lc.clone(&x) })
	if err != nil {
		return fmt.Errorf("vec: insert: %w", err)
	}
	return nil
}

// InsertMove inserts the value relocated out of *x before position i,
// leaving *x moved-from.
func (v *Vector[T]) InsertMove(i int, x *T) error {
	_, err := v.emplaceAt(i, func() (T, error) { return v.lc.move(x) })
	if err != nil {
		return fmt.Errorf("vec: insert: %w", err)
	}
	return nil
}

// Emplace constructs an element from ctor before position i and returns
// its address. A nil ctor default-constructs.
//
// When the vector is full this reallocates: the new element is
// constructed directly at its slot in the new block, the prefix and
// suffix are relocated around it, and only then are the old elements
// destroyed and the block adopted. Failure at any step rolls all the way
// back to the original storage, so the vector is observably unchanged.
//
// Without reallocation the element is built as a temporary first (so
// ctor may safely read the vector's own elements), the last element is
// moved into the one-past-end slot, [i, Len()-1) shifts right, and the
// temporary is move-assigned into slot i.
func (v *Vector[T]) Emplace(i int, ctor Ctor[T]) (*T, error) {
	p, err := v.emplaceAt(i, v.ctorOrDefault(ctor))
	if err != nil {
		return nil, fmt.Errorf("vec: emplace: %w", err)
	}
	return p, nil
}

// Erase removes the element at position i, shifting [i+1, Len()) one
// slot left and destroying the vacated last slot. After return, index i
// names the element that followed the erased one. Panics if i is out of
// [0, Len()).
func (v *Vector[T]) Erase(i int) {
	if i < 0 || i >= v.size {
		panic("vec: erase position out of range")
	}
	for j := i; j < v.size-1; j++ {
		v.lc.shift(v.buf.At(j), v.buf.At(j+1))
	}
	v.lc.destroy(v.buf.At(v.size - 1))
	v.size--
}

func (v *Vector[T]) ctorOrDefault(ctor Ctor[T]) Ctor[T] {
	if ctor == nil {
		return v.lc.construct
	}
	return ctor
}

// grownCap is the doubling growth policy with base case 1.
func (v *Vector[T]) grownCap() int {
	if c := v.buf.Cap(); c > 0 {
		return c * 2
	}
	return 1
}

// adopt destroys the old elements, swaps in the fully relocated new
// block, and releases the old one.
func (v *Vector[T]) adopt(nb *RawBuffer[T]) {
	v.destroyRange(0, v.size)
	v.buf.Swap(nb)
	nb.Release()
	v.growths++
}

// appendElem constructs one element at index Len(), growing first if the
// vector is full. On the growth path the new element is constructed into
// the new block before the existing elements are relocated; failure at
// any step leaves the vector unchanged.
func (v *Vector[T]) appendElem(build Ctor[T]) (*T, error) {
	if v.size == v.buf.Cap() {
		nb := NewRawBuffer[T](v.grownCap())
		x, err := build()
		if err != nil {
			nb.Release()
			return nil, err
		}
		*nb.At(v.size) = x
		if err := v.relocateRange(&nb, 0, 0, v.size, v.lc.relocateByMove()); err != nil {
			v.lc.destroy(nb.At(v.size))
			nb.Release()
			return nil, err
		}
		v.adopt(&nb)
	} else {
		x, err := build()
		if err != nil {
			return nil, err
		}
		*v.buf.At(v.size) = x
	}
	v.size++
	return v.buf.At(v.size - 1), nil
}

// emplaceAt constructs one element before position i.
func (v *Vector[T]) emplaceAt(i int, build Ctor[T]) (*T, error) {
	if i < 0 || i > v.size {
		panic("vec: insert position out of range")
	}
	if i == v.size {
		return v.appendElem(build)
	}

	if v.size == v.buf.Cap() {
		// Growth path: build the new element at its final slot, then
		// relocate the neighbors around it. Any failure rolls back to
		// the original storage.
		nb := NewRawBuffer[T](v.grownCap())
		x, err := build()
		if err != nil {
			nb.Release()
			return nil, err
		}
		*nb.At(i) = x
		byMove := v.lc.relocateByMove()
		if err := v.relocateRange(&nb, 0, 0, i, byMove); err != nil {
			v.lc.destroy(nb.At(i))
			nb.Release()
			return nil, err
		}
		if err := v.relocateRange(&nb, i+1, i, v.size-i, byMove); err != nil {
			for j := i; j >= 0; j-- {
				v.lc.destroy(nb.At(j))
			}
			nb.Release()
			return nil, err
		}
		v.adopt(&nb)
		v.size++
		return v.buf.At(i), nil
	}

	// In-place path: the temporary guards against build reading slots
	// that are about to shift.
	tmp, err := build()
	if err != nil {
		return nil, err
	}
	x, err := v.lc.move(v.buf.At(v.size - 1))
	if err != nil {
		v.lc.destroy(&tmp)
		return nil, err
	}
	*v.buf.At(v.size) = x
	for j := v.size - 1; j > i; j-- {
		v.lc.shift(v.buf.At(j), v.buf.At(j-1))
	}
	v.lc.shift(v.buf.At(i), &tmp)
	v.lc.destroy(&tmp)
	v.size++
	return v.buf.At(i), nil
}
