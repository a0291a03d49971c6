package vec

// Ctor builds one element value. It is the emplace-style hook: EmplaceBack
// and Emplace construct the element directly in its destination slot from
// whatever a Ctor returns.
type Ctor[T any] func() (T, error)

// Lifecycle describes the capability set of an element type: how to
// default-construct, duplicate, relocate, overwrite, and finalize a value.
// Every field is optional; a nil hook means the trivial bitwise behavior,
// which never fails. The zero Lifecycle therefore describes an ordinary
// Go value type.
//
// Types whose hooks can fail get the documented rollback behavior: a
// failed hook propagates its error out of the vector operation after the
// operation has restored its invariants.
type Lifecycle[T any] struct {
	// New default-constructs a value. nil means the zero value.
	New Ctor[T]

	// Clone duplicates *src without modifying it. nil means a bitwise
	// copy. Must not be set together with NoCopy.
	Clone func(src *T) (T, error)

	// Move relocates *src into the returned value, leaving *src in a
	// destructible moved-from state. nil means a bitwise take that
	// zeroes *src. Set MoveSafe when Move cannot fail.
	Move func(src *T) (T, error)

	// Set copy-assigns *src over the live element *dst. nil means a
	// bitwise copy.
	Set func(dst, src *T) error

	// Shift move-assigns *src over the live element *dst, leaving *src
	// moved-from. Must not fail; it is used for the in-place shifting
	// done by Insert and Erase. nil means a bitwise take.
	Shift func(dst, src *T)

	// Destroy finalizes a live element. Must not fail. nil means no-op.
	// It also runs on moved-from values (a bitwise move leaves the zero
	// value behind) and must tolerate them. The vector zeroes the slot
	// afterwards so stale bit-copies do not retain heap objects.
	Destroy func(p *T)

	// MoveSafe declares that Move is guaranteed never to fail. Bitwise
	// moves (Move == nil) are always treated as safe.
	MoveSafe bool

	// NoCopy declares that the type cannot be duplicated. Operations
	// that require Clone or Set panic for such types, and relocation
	// always moves.
	NoCopy bool
}

func (lc *Lifecycle[T]) construct() (T, error) {
	if lc.New != nil {
		return lc.New()
	}
	var zero T
	return zero, nil
}

func (lc *Lifecycle[T]) clone(src *T) (T, error) {
	if lc.NoCopy {
		panic("vec: copy of non-copyable element type")
	}
	if lc.Clone != nil {
		return lc.Clone(src)
	}
	return *src, nil
}

func (lc *Lifecycle[T]) move(src *T) (T, error) {
	if lc.Move != nil {
		return lc.Move(src)
	}
	x := *src
	var zero T
	*src = zero
	return x, nil
}

func (lc *Lifecycle[T]) set(dst, src *T) error {
	if lc.NoCopy {
		panic("vec: copy of non-copyable element type")
	}
	if lc.Set != nil {
		return lc.Set(dst, src)
	}
	*dst = *src
	return nil
}

func (lc *Lifecycle[T]) shift(dst, src *T) {
	if lc.Shift != nil {
		lc.Shift(dst, src)
		return
	}
	*dst = *src
	var zero T
	*src = zero
}

func (lc *Lifecycle[T]) destroy(p *T) {
	if lc.Destroy != nil {
		lc.Destroy(p)
	}
	var zero T
	*p = zero
}

// moveWontFail reports whether relocating by Move is guaranteed to succeed.
func (lc *Lifecycle[T]) moveWontFail() bool {
	return lc.MoveSafe || lc.Move == nil
}

// relocateByMove decides how elements travel into new storage during a
// reallocation: move when moving cannot fail, or when the type cannot be
// copied at all; otherwise copy. Copying keeps the original elements
// intact, so a failure partway through leaves the old storage fully
// valid and the operation can roll back to it.
func (lc *Lifecycle[T]) relocateByMove() bool {
	return lc.moveWontFail() || lc.NoCopy
}
