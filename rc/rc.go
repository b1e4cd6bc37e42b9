// Package rc implements a shared, reference counted cell with run-time
// checked borrow access.
//
// A value is placed into a cell with New and is reachable through any
// number of cloned handles. Access goes through Borrow (shared) or
// BorrowMut (exclusive); overlapping conflicting borrows are a
// programming error and panic instead of corrupting the value. The
// value is freed when the last handle is released, or when the sole
// remaining handle unwraps it back into an owned value.
//
// Cells are not safe for concurrent use. The counts are plain ints and
// the whole discipline assumes a single goroutine drives all handles.
package rc

// live counts cells that have been allocated but not yet freed.
var live int

// Live returns the number of values currently alive.
// Intended for leak checks in tests.
func Live() int {
	return live
}

// Ref is a handle to a shared value.
//
// The zero Ref refers to no value; IsNil reports this. All other
// methods panic on a zero or freed Ref.
type Ref[T any] struct {
	b *box[T]
}

type box[T any] struct {
	value T
	refs  int
	// borrows is the number of shared borrows,
	// or -1 while exclusively borrowed.
	borrows int
}

// New places v into a fresh cell and returns the first handle to it.
func New[T any](v T) Ref[T] {
	live++
	return Ref[T]{b: &box[T]{value: v, refs: 1}}
}

// IsNil reports whether r refers to no value.
func (r Ref[T]) IsNil() bool {
	return r.b == nil
}

// Refs returns the number of handles sharing the value.
func (r Ref[T]) Refs() int {
	r.must()
	return r.b.refs
}

// Clone returns a new handle to the same value.
func (r Ref[T]) Clone() Ref[T] {
	r.must()
	r.b.refs++
	return r
}

// Release drops this handle. Releasing the last handle frees the value.
// Releasing while the value is borrowed panics.
func (r Ref[T]) Release() {
	r.must()
	if r.b.refs == 1 && r.b.borrows != 0 {
		panic("rc: release of a borrowed value")
	}
	r.b.refs--
	if r.b.refs == 0 {
		r.b.free()
	}
}

// Borrow returns a shared view of the value together with a release
// function. Multiple shared borrows may be live at once. Borrow panics
// if the value is currently exclusively borrowed. The release function
// is idempotent and must be called before any exclusive borrow.
func (r Ref[T]) Borrow() (*T, func()) {
	r.must()
	if r.b.borrows < 0 {
		panic("rc: already exclusively borrowed")
	}
	r.b.borrows++

	released := false
	return &r.b.value, func() {
		if !released {
			released = true
			r.b.borrows--
		}
	}
}

// BorrowMut returns an exclusive view of the value together with a
// release function. BorrowMut panics if any borrow of the value is
// live. The release function is idempotent.
func (r Ref[T]) BorrowMut() (*T, func()) {
	r.must()
	if r.b.borrows != 0 {
		panic("rc: already borrowed")
	}
	r.b.borrows = -1

	released := false
	return &r.b.value, func() {
		if !released {
			released = true
			r.b.borrows = 0
		}
	}
}

// Unwrap moves the value out of the cell and frees it, asserting that r
// is the sole handle. Any other surviving handle or live borrow is an
// internal consistency fault and panics.
func (r Ref[T]) Unwrap() T {
	r.must()
	if r.b.refs != 1 {
		panic("rc: unwrap of a shared value")
	}
	if r.b.borrows != 0 {
		panic("rc: unwrap of a borrowed value")
	}
	v := r.b.value
	r.b.refs = 0
	r.b.free()
	return v
}

func (r Ref[T]) must() {
	if r.b == nil {
		panic("rc: use of nil ref")
	}
	if r.b.refs <= 0 {
		panic("rc: use of freed ref")
	}
}

func (b *box[T]) free() {
	var zero T
	b.value = zero
	live--
}
