package vec

// RawBuffer owns one contiguous block of storage sized for a fixed number
// of elements. It hands out addresses into the block but has no notion of
// which slots hold live elements; constructing and destroying elements is
// entirely the caller's business. Ownership of the block is exclusive:
// transfer it with Move or Swap, never by copying the struct.
type RawBuffer[T any] struct {
	mem []T // backing block; nil iff capacity is 0
}

// NewRawBuffer allocates a block sized for exactly n elements.
// A capacity of 0 yields an empty buffer with no block.
// Panics if n is negative.
//
// The block is a single typed allocation. Allocating an untyped byte
// block and reinterpreting it would hide any pointers stored in the
// elements from the garbage collector.
func NewRawBuffer[T any](n int) RawBuffer[T] {
	if n < 0 {
		panic("vec: negative buffer capacity")
	}
	if n == 0 {
		return RawBuffer[T]{}
	}
	return RawBuffer[T]{mem: make([]T, n)}
}

// Cap returns the number of element slots the block holds.
func (b *RawBuffer[T]) Cap() int {
	return len(b.mem)
}

// At returns the address of slot i. The slot may hold a live element or
// raw storage; the buffer does not know which. Panics if i is out of
// [0, Cap()).
func (b *RawBuffer[T]) At(i int) *T {
	if i < 0 || i >= len(b.mem) {
		panic("vec: buffer index out of range")
	}
	return &b.mem[i]
}

// Slice returns the slots [i, j) as a contiguous slice into the block.
// j may equal Cap(). The returned slice shares the block's storage.
func (b *RawBuffer[T]) Slice(i, j int) []T {
	if i < 0 || j < i || j > len(b.mem) {
		panic("vec: buffer range out of range")
	}
	return b.mem[i:j:j]
}

// Swap exchanges the blocks of b and other in O(1). Element data is
// never touched.
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.mem, other.mem = other.mem, b.mem
}

// Move transfers ownership of the block to the returned buffer, leaving
// b empty (no block, capacity 0).
func (b *RawBuffer[T]) Move() RawBuffer[T] {
	m := b.mem
	b.mem = nil
	return RawBuffer[T]{mem: m}
}

// Release drops the block so the collector can reclaim it. No element
// destructors run; destroying live elements first is the caller's
// responsibility. No-op on an empty buffer.
func (b *RawBuffer[T]) Release() {
	b.mem = nil
}
