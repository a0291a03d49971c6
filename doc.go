// Package vec implements a growable contiguous container (a hand-built
// dynamic array) for Go.
//
// # Overview
//
// A Vector stores its elements in one contiguous block and manages that
// block itself instead of leaning on append. It splits the problem into
// two pieces:
//
//   - RawBuffer: owns one fixed-capacity storage block and nothing else.
//     It hands out slot addresses but never constructs or destroys
//     elements.
//   - Vector: owns one RawBuffer plus a count of live elements, and with
//     them the growth policy, all positional mutation, and every element
//     lifetime.
//
// This split is what makes the failure behavior tractable: storage
// acquisition is always separate from element construction, so every
// operation can acquire first, construct second, and unwind cleanly when
// a construction step fails.
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Destroy()
//
//	for i := 0; i < 5; i++ {
//		v.PushBack(i)
//	}
//	v.Insert(2, 99)  // [0 1 99 2 3 4]
//	v.Erase(2)       // [0 1 2 3 4]
//
//	for i, p := range v.All() {
//		fmt.Println(i, *p)
//	}
//
// # Growth
//
// Capacity doubles whenever the vector is full, from a base of 1, so n
// appends cost O(n) total relocation work. Reserve(n) allocates exactly
// n slots up front. Capacity never shrinks. Any reallocation, and any
// shifting mutation (Insert, Emplace, Erase), invalidates addresses and
// Items() views obtained earlier.
//
// # Element Lifecycles
//
// By default elements are plain Go values: copied bitwise, destroyed by
// zeroing. Types that need real construction, duplication, relocation,
// or finalization — including operations that can fail — declare those
// capabilities in a Lifecycle passed to NewWithLifecycle:
//
//	lc := vec.Lifecycle[Conn]{
//		Clone:   func(c *Conn) (Conn, error) { return c.Dup() },
//		Destroy: func(c *Conn) { c.Close() },
//	}
//	v := vec.NewWithLifecycle(lc)
//
// During a reallocation the vector moves elements into the new block
// only when moving is declared non-failing (MoveSafe) or the type is not
// copyable; otherwise it copies them. Copying keeps the originals
// intact, so if duplication fails partway the vector tears down the new
// block and rolls back to the old one untouched.
//
// # Error Handling
//
// Failures raised by lifecycle hooks are returned as errors after the
// operation restores its invariants; the strong operations (sized
// construction, Clone, Reserve, the growth paths of the append and
// insert family, and reallocating CopyFrom) leave the vector observably
// unchanged on failure. Caller misuse — out-of-range indexes, PopBack on
// an empty vector, negative sizes — panics with a "vec:" message.
//
// # Thread Safety
//
// Vector is not goroutine-safe. Concurrent reads are fine as long as no
// goroutine mutates; mutation requires external locking.
//
// # Metrics
//
// Stats() returns a snapshot of the vector's storage accounting:
//
//	s := v.Stats()
//	fmt.Printf("utilization: %.2f%%\n", s.Utilization*100)
//	fmt.Printf("storage: %d bytes, %d reallocations\n", s.MemBytes, s.Growths)
package vec
