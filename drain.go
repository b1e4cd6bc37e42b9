package deque

// Drain moves the list into a draining iterator, leaving l empty.
func (l *List[T]) Drain() *Drain[T] {
	d := &Drain[T]{list: *l}
	*l = List[T]{}
	return d
}

// Drain consumes a list from either end. The two directions pull from
// the same list, so together they yield each element exactly once and
// both report false once the list is exhausted.
type Drain[T any] struct {
	list List[T]
}

// Next removes and returns the front element,
// or a zero value and false if the iterator is exhausted.
func (d *Drain[T]) Next() (T, bool) {
	return d.list.PopFront()
}

// NextBack removes and returns the back element,
// or a zero value and false if the iterator is exhausted.
func (d *Drain[T]) NextBack() (T, bool) {
	return d.list.PopBack()
}

// Len returns the number of elements remaining.
func (d *Drain[T]) Len() int {
	return d.list.Len()
}
