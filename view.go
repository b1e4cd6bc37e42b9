package deque

// A View is a scoped shared view of an element. It keeps a shared
// borrow of the element's node until closed; closing is idempotent.
// Views returned with ok == false are empty and must not be read.
type View[T any] struct {
	elem    *T
	release func()
}

// Value returns a copy of the element.
func (v View[T]) Value() T {
	return *v.elem
}

// Close releases the borrow. It always returns nil.
func (v View[T]) Close() error {
	if v.release != nil {
		v.release()
	}
	return nil
}

// A MutView is a scoped exclusive view of an element. While it is
// open, no other view of the same node may be taken and the node
// cannot be popped.
type MutView[T any] struct {
	elem    *T
	release func()
}

// Value returns a copy of the element.
func (v MutView[T]) Value() T {
	return *v.elem
}

// Set replaces the element.
func (v MutView[T]) Set(elem T) {
	*v.elem = elem
}

// Close releases the borrow. It always returns nil.
func (v MutView[T]) Close() error {
	if v.release != nil {
		v.release()
	}
	return nil
}
