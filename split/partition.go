package split

import "iter"

// Partition splits seq into the elements that satisfy predicate and those
// that do not, preserving source order on both sides. The source is read
// once: pulling from one side advances it until an element for that side
// turns up, queuing everything destined for the other side in the interim.
// The predicate is evaluated exactly once per source element.
//
// Both sequences are resumable: breaking out of a range and ranging again
// continues where iteration left off. stop releases the source; call it
// when abandoning the sequences before draining them both.
//
// The two sequences share unsynchronized state and must be consumed from a
// single goroutine.
func Partition[T any](seq iter.Seq[T], predicate func(T) bool) (matched, unmatched iter.Seq[T], stop func()) {
	if predicate == nil {
		panic("split.Partition: predicate cannot be nil")
	}

	next, stop := iter.Pull(seq)
	hits, misses := newRing[T](), newRing[T]()

	side := func(own, other *ring[T], want bool) iter.Seq[T] {
		return func(yield func(T) bool) {
			for {
				if v, ok := own.dequeue(); ok {
					if !yield(v) {
						return
					}
					continue
				}
				v, ok := next()
				if !ok {
					return
				}
				if predicate(v) != want {
					other.enqueue(v)
					continue
				}
				if !yield(v) {
					return
				}
			}
		}
	}

	return side(hits, misses, true), side(misses, hits, false), stop
}
