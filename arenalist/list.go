// Package arenalist implements a singly linked FIFO list with O(1)
// append whose nodes live in a slice arena.
//
// Links are indices into the arena instead of pointers, so tracking
// the tail for fast appends needs no pointer into the middle of the
// chain: a popped slot goes onto an internal free list and can never
// be dereferenced again until the arena itself hands it back out.
//
// Lists are not safe for concurrent use.
package arenalist

// Slots are 1-based indices into the arena so that the zero List is
// ready to use: link value 0 means "no node".
const none = 0

type node[V any] struct {
	value V
	next  int
}

// List is a singly linked FIFO list backed by a node arena.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	arena []node[V]
	head  int
	tail  int
	free  int
	len   int
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Cap returns the number of nodes the arena can hold without growing.
func (l *List[V]) Cap() int {
	return cap(l.arena)
}

// PushBack inserts a value at the back of list l.
func (l *List[V]) PushBack(v V) {
	s := l.alloc(v)

	if l.tail != none {
		l.node(l.tail).next = s
	} else {
		l.head = s
	}

	l.tail = s
	l.len++
}

// PopFront removes and returns the front element,
// or a zero value and false if the list is empty.
func (l *List[V]) PopFront() (v V, ok bool) {
	if l.head == none {
		return v, false
	}

	s := l.head
	n := l.node(s)
	v = n.value

	l.head = n.next
	if l.head == none {
		l.tail = none
	}

	l.freeSlot(s)
	l.len--

	return v, true
}

// Front returns the front element without removing it,
// or a zero value and false if the list is empty.
func (l *List[V]) Front() (v V, ok bool) {
	if l.head == none {
		return v, false
	}
	return l.node(l.head).value, true
}

// Do calls function f on each element of the list, in list order.
// If f returns false, Do stops the iteration.
// The pointer is valid only during the call. f must not change l.
func (l *List[V]) Do(f func(v *V) bool) {
	for s := l.head; s != none; {
		n := l.node(s)
		if !f(&n.value) {
			return
		}
		s = n.next
	}
}

// Clear removes all elements, keeping the arena for reuse.
func (l *List[V]) Clear() {
	l.arena = l.arena[:0]
	l.head = none
	l.tail = none
	l.free = none
	l.len = 0
}

func (l *List[V]) node(slot int) *node[V] {
	return &l.arena[slot-1]
}

// alloc takes a slot off the free list or grows the arena.
func (l *List[V]) alloc(v V) int {
	if s := l.free; s != none {
		n := l.node(s)
		l.free = n.next
		n.value = v
		n.next = none
		return s
	}

	l.arena = append(l.arena, node[V]{value: v, next: none})
	return len(l.arena)
}

func (l *List[V]) freeSlot(s int) {
	n := l.node(s)

	var zero V
	n.value = zero

	n.next = l.free
	l.free = s
}
