package split

import "iter"

// GroupBy partitions seq by key: every element lands in the group of its
// key, however far apart equal keys appear in the source. This differs from
// run-length grouping, which opens a fresh group at every key change.
//
// The result pairs each distinct key, in order of first appearance, with a
// lazy sub-sequence of that key's elements in source order. A key appears
// exactly once, and only after the source has yielded an element with it.
// All sub-sequences draw from one shared cursor: reading a group advances
// the source until an element of that group turns up, queuing elements of
// other keys under theirs. Groups may be consumed in any order; a group
// that is never drained keeps its buffered elements.
//
// The key function is evaluated exactly once per source element. stop
// releases the source when iteration is abandoned early.
//
// Everything returned shares unsynchronized state and must be consumed
// from a single goroutine.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) (iter.Seq2[K, iter.Seq[T]], func()) {
	if key == nil {
		panic("split.GroupBy: key function cannot be nil")
	}

	next, stop := iter.Pull(seq)
	var (
		buffers = make(map[K]*ring[T])
		fresh   []K // keys seen but not yet yielded by the outer sequence
		done    bool
	)

	// advance reads one source element and queues it under its key.
	advance := func() {
		v, ok := next()
		if !ok {
			done = true
			return
		}
		k := key(v)
		buf, seen := buffers[k]
		if !seen {
			buf = newRing[T]()
			buffers[k] = buf
			fresh = append(fresh, k)
		}
		buf.enqueue(v)
	}

	group := func(buf *ring[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for {
				if v, ok := buf.dequeue(); ok {
					if !yield(v) {
						return
					}
					continue
				}
				if done {
					return
				}
				advance()
			}
		}
	}

	groups := func(yield func(K, iter.Seq[T]) bool) {
		for {
			if len(fresh) > 0 {
				k := fresh[0]
				fresh = fresh[1:]
				if !yield(k, group(buffers[k])) {
					return
				}
				continue
			}
			if done {
				return
			}
			advance()
		}
	}

	return groups, stop
}

// Group is GroupBy with the identity key: one group per distinct element
// value, holding all its occurrences.
func Group[T comparable](seq iter.Seq[T]) (iter.Seq2[T, iter.Seq[T]], func()) {
	return GroupBy(seq, func(v T) T { return v })
}
