// Package ring implements a growable double-ended queue on top of a
// circular slice.
//
// The search strategies use a Buffer as a FIFO queue (PushEnd, PopStart)
// for breadth-first order and as a LIFO stack (PushEnd, PopEnd) for
// depth-first order.
package ring

import "math/bits"

// Buffer holds a slice-backed ring buffer. Elements
// can be added at the end and removed from either
// the start or the end.
//
// Elements are indexed from zero (the start)
// to Len()-1 (the end).
//
// The zero value is an empty buffer ready to use.
type Buffer[T any] struct {
	// buf holds the backing slice. Its length
	// is always zero or a power of two.
	buf []T

	// head holds the index in buf of the start element.
	head int

	// n holds the number of elements in the buffer.
	n int
}

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int {
	return b.n
}

// PushEnd adds x to the end of the buffer.
func (b *Buffer[T]) PushEnd(x T) {
	b.grow(b.n + 1)
	b.buf[b.index(b.n)] = x
	b.n++
}

// PopStart removes and returns the element at the start
// of the buffer. It panics if the buffer is empty.
func (b *Buffer[T]) PopStart() T {
	if b.n == 0 {
		panic("ring.Buffer.PopStart called on empty buffer")
	}
	x := b.buf[b.head]
	b.buf[b.head] = *new(T)
	b.head = b.index(1)
	b.n--
	return x
}

// PopEnd removes and returns the element at the end
// of the buffer. It panics if the buffer is empty.
func (b *Buffer[T]) PopEnd() T {
	if b.n == 0 {
		panic("ring.Buffer.PopEnd called on empty buffer")
	}
	i := b.index(b.n - 1)
	x := b.buf[i]
	b.buf[i] = *new(T)
	b.n--
	return x
}

// index returns the position in buf of the i'th element.
// The mask works because len(b.buf) is a power of two.
func (b *Buffer[T]) index(i int) int {
	return (b.head + i) & (len(b.buf) - 1)
}

// grow ensures the buffer can hold at least n elements,
// unrolling the contents to the start of a new slice if
// it has to reallocate.
func (b *Buffer[T]) grow(n int) {
	if n <= len(b.buf) {
		return
	}
	newCap := 1
	if n > 1 {
		newCap = 1 << bits.Len(uint(n-1))
	}
	buf := make([]T, newCap)
	if b.n > 0 {
		if end := b.head + b.n; end <= len(b.buf) {
			copy(buf, b.buf[b.head:end])
		} else {
			k := copy(buf, b.buf[b.head:])
			copy(buf[k:], b.buf[:b.n-k])
		}
	}
	b.buf = buf
	b.head = 0
}
