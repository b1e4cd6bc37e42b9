package main

import (
	"fmt"

	"github.com/mgnsk/deque"
)

func main() {
	l := deque.New[string]()
	defer l.Clear()

	l.PushBack("b")
	l.PushFront("a")
	l.PushBack("c")

	// Scoped views borrow the node until closed.
	if front, ok := l.PeekFrontMut(); ok {
		front.Set(front.Value() + "!")
		front.Close()
	}

	// Draining consumes the list from either end.
	d := l.Drain()
	for {
		v, ok := d.Next()
		if !ok {
			break
		}
		fmt.Println(v)
	}
}
