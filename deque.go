// Package deque implements a doubly linked deque whose nodes are shared
// between both neighbors through reference counted, borrow-checked
// handles (package rc).
//
// Every interior node is held by its predecessor, its successor and
// possibly a list anchor at the same time, so links form reference
// cycles. The list is the only code that rewires links: each pop
// severs the back-link into the outgoing node before extracting its
// element, so at rest no cycle survives and every node is freed the
// moment its last handle is dropped.
//
// Lists are not safe for concurrent use.
package deque

import "github.com/mgnsk/deque/rc"

// node holds one element and the links to its neighbors.
// Nodes are created by PushFront/PushBack only and never rewire themselves.
type node[T any] struct {
	elem T
	prev rc.Ref[node[T]]
	next rc.Ref[node[T]]
}

// List is a doubly linked deque.
//
// The zero value is a ready to use empty list. A list holding elements
// must be released with Clear (or drained) to free its nodes.
type List[T any] struct {
	head rc.Ref[node[T]]
	tail rc.Ref[node[T]]
	len  int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// PushFront inserts a value at the front of list l.
func (l *List[T]) PushFront(elem T) {
	newHead := rc.New(node[T]{elem: elem})

	if oldHead, ok := take(&l.head); ok {
		n, done := oldHead.BorrowMut()
		n.prev = newHead.Clone()
		done()

		n, done = newHead.BorrowMut()
		n.next = oldHead
		done()

		l.head = newHead
	} else {
		// Empty list, the new node is both ends.
		l.tail = newHead.Clone()
		l.head = newHead
	}

	l.len++
}

// PushBack inserts a value at the back of list l.
func (l *List[T]) PushBack(elem T) {
	newTail := rc.New(node[T]{elem: elem})

	if oldTail, ok := take(&l.tail); ok {
		n, done := oldTail.BorrowMut()
		n.next = newTail.Clone()
		done()

		n, done = newTail.BorrowMut()
		n.prev = oldTail
		done()

		l.tail = newTail
	} else {
		l.head = newTail.Clone()
		l.tail = newTail
	}

	l.len++
}

// PopFront removes and returns the front element,
// or a zero value and false if the list is empty.
func (l *List[T]) PopFront() (elem T, ok bool) {
	oldHead, ok := take(&l.head)
	if !ok {
		return elem, false
	}

	n, done := oldHead.BorrowMut()
	newHead, hasNext := take(&n.next)
	done()

	if hasNext {
		// Sever the back-link so the old head is no longer
		// reachable from its successor.
		n, done := newHead.BorrowMut()
		back, _ := take(&n.prev)
		done()
		back.Release()

		l.head = newHead
	} else {
		// Popped the sole node, the tail anchor must go too.
		back, _ := take(&l.tail)
		back.Release()
	}

	l.len--

	// Every other handle is gone by now; Unwrap asserts that.
	return oldHead.Unwrap().elem, true
}

// PopBack removes and returns the back element,
// or a zero value and false if the list is empty.
func (l *List[T]) PopBack() (elem T, ok bool) {
	oldTail, ok := take(&l.tail)
	if !ok {
		return elem, false
	}

	n, done := oldTail.BorrowMut()
	newTail, hasPrev := take(&n.prev)
	done()

	if hasPrev {
		n, done := newTail.BorrowMut()
		fwd, _ := take(&n.next)
		done()
		fwd.Release()

		l.tail = newTail
	} else {
		fwd, _ := take(&l.head)
		fwd.Release()
	}

	l.len--

	return oldTail.Unwrap().elem, true
}

// PeekFront returns a shared view of the front element or false if the
// list is empty. The view holds a borrow of the front node until closed.
func (l *List[T]) PeekFront() (View[T], bool) {
	if l.head.IsNil() {
		return View[T]{}, false
	}

	n, done := l.head.Borrow()
	return View[T]{elem: &n.elem, release: done}, true
}

// PeekBack returns a shared view of the back element or false if the
// list is empty.
func (l *List[T]) PeekBack() (View[T], bool) {
	if l.tail.IsNil() {
		return View[T]{}, false
	}

	n, done := l.tail.Borrow()
	return View[T]{elem: &n.elem, release: done}, true
}

// PeekFrontMut returns an exclusive view of the front element or false
// if the list is empty. No other view of the same node may be live.
func (l *List[T]) PeekFrontMut() (MutView[T], bool) {
	if l.head.IsNil() {
		return MutView[T]{}, false
	}

	n, done := l.head.BorrowMut()
	return MutView[T]{elem: &n.elem, release: done}, true
}

// PeekBackMut returns an exclusive view of the back element or false
// if the list is empty.
func (l *List[T]) PeekBackMut() (MutView[T], bool) {
	if l.tail.IsNil() {
		return MutView[T]{}, false
	}

	n, done := l.tail.BorrowMut()
	return MutView[T]{elem: &n.elem, release: done}, true
}

// Clear pops from the front until the list is empty.
//
// Teardown stays a flat loop: each pop severs the outgoing node's links
// before freeing it, so releasing a node never cascades into its
// neighbor regardless of list length.
func (l *List[T]) Clear() {
	for {
		if _, ok := l.PopFront(); !ok {
			return
		}
	}
}

// take clears a link, returning the handle it held.
func take[T any](r *rc.Ref[T]) (rc.Ref[T], bool) {
	old := *r
	*r = rc.Ref[T]{}
	return old, !old.IsNil()
}
