package split

import "math/bits"

// ring is a FIFO buffer over a circular array. It holds elements that have
// been read from the shared source cursor but not yet requested by their
// destination sub-sequence.
type ring[T any] struct {
	buf  []T // backing array, length is a power of two
	head int // index of the oldest element
	size int // number of buffered elements
	mask int // len(buf) - 1, for fast modulo: idx & mask
}

func newRing[T any]() *ring[T] {
	const capacity = 8
	return &ring[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

// grow doubles the backing array (rounded up to a power of two) and
// unwraps the elements to the front.
func (r *ring[T]) grow() {
	capacity := 1 << uint(bits.Len(uint(r.size)))
	buf := make([]T, capacity)
	if r.head+r.size <= len(r.buf) {
		copy(buf, r.buf[r.head:r.head+r.size])
	} else {
		n := copy(buf, r.buf[r.head:])
		copy(buf[n:], r.buf[:(r.head+r.size)&r.mask])
	}
	r.buf = buf
	r.head = 0
	r.mask = capacity - 1
}

func (r *ring[T]) enqueue(value T) {
	if r.size == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.size)&r.mask] = value
	r.size++
}

func (r *ring[T]) dequeue() (value T, ok bool) {
	if r.size == 0 {
		return value, false
	}
	value = r.buf[r.head]
	var zero T
	r.buf[r.head] = zero // release the reference
	r.head = (r.head + 1) & r.mask
	r.size--
	return value, true
}

func (r *ring[T]) len() int {
	return r.size
}
