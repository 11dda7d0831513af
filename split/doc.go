/*
Package split provides lazy partitioning of Go 1.23+ iterators (iter.Seq).

It covers four ways of breaking a sequence apart:

  - [Chop]: consecutive fixed-size chunks.
  - [Partition]: a two-way split by predicate, preserving order on both sides.
  - [GroupBy]: a full partition by key — one group per distinct key for the
    whole traversal, not run-length grouping of adjacent elements.
  - [Split] / [SplitFunc]: sub-sequences delimited by separator elements,
    with empty parts kept (n separators always yield n+1 parts).

# Laziness

Every function reads its source exactly once and only on demand. Partition,
GroupBy and Split hand out several sub-sequences backed by one shared cursor:
reading from one sub-sequence advances the source just far enough, queuing
elements that belong to the others. Sub-sequences may therefore be consumed
in any order, at the cost of buffering whatever has been read but not yet
requested. A group that is never drained keeps its buffer for the lifetime
of the traversal.

The shared cursor and its buffers are not synchronized: consume the outputs
from a single goroutine.
*/
package split
