package split

import "iter"

// Split breaks seq into sub-sequences delimited by elements equal to sep.
// It is SplitFunc with an equality test; see there for the exact policy.
func Split[T comparable](seq iter.Seq[T], sep T) (iter.Seq[iter.Seq[T]], func()) {
	return SplitFunc(seq, func(v T) bool { return v == sep })
}

// SplitFunc breaks seq into sub-sequences delimited by elements matching
// isSep. Separator elements are dropped; every maximal separator-free run
// becomes one part, so n separator matches always yield n+1 parts:
// adjacent separators enclose an empty part, and a separator at the start
// or end of the source contributes a leading or trailing empty part. An
// empty source yields a single empty part.
//
// Parts draw from one shared cursor and may be consumed in any order;
// elements read while looking for a later part are queued under their own
// part until requested. stop releases the source when iteration is
// abandoned early.
//
// Everything returned shares unsynchronized state and must be consumed
// from a single goroutine.
func SplitFunc[T any](seq iter.Seq[T], isSep func(T) bool) (iter.Seq[iter.Seq[T]], func()) {
	if isSep == nil {
		panic("split.SplitFunc: separator predicate cannot be nil")
	}

	type part struct {
		buf  *ring[T]
		done bool // no further source elements belong to this part
	}

	next, stop := iter.Pull(seq)
	var (
		parts     = []*part{{buf: newRing[T]()}}
		fill      = 0 // index of the part receiving source elements
		emit      = 0 // index of the next part for the outer sequence
		exhausted bool
	)

	// advance reads one source element: a separator seals the current part
	// and opens the next, anything else queues under the current part.
	advance := func() {
		v, ok := next()
		if !ok {
			exhausted = true
			parts[fill].done = true
			return
		}
		if isSep(v) {
			parts[fill].done = true
			parts = append(parts, &part{buf: newRing[T]()})
			fill++
			return
		}
		parts[fill].buf.enqueue(v)
	}

	view := func(p *part) iter.Seq[T] {
		return func(yield func(T) bool) {
			for {
				if v, ok := p.buf.dequeue(); ok {
					if !yield(v) {
						return
					}
					continue
				}
				if p.done {
					return
				}
				advance()
			}
		}
	}

	outer := func(yield func(iter.Seq[T]) bool) {
		for {
			if emit < len(parts) {
				p := parts[emit]
				emit++
				if !yield(view(p)) {
					return
				}
				continue
			}
			if exhausted {
				return
			}
			advance()
		}
	}

	return outer, stop
}
