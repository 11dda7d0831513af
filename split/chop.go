package split

import (
	"fmt"
	"iter"
)

// ErrChunkSize is returned by Chop when the chunk size is less than 1.
var ErrChunkSize = fmt.Errorf("split: chunk size must be at least 1")

type chopConfig[T any] struct {
	truncate bool
	fill     *T
}

type ChopOption[T any] func(*chopConfig[T])

// WithTruncate discards a final chunk shorter than the chunk size instead
// of yielding it.
func WithTruncate[T any]() ChopOption[T] {
	return func(cfg *chopConfig[T]) {
		cfg.truncate = true
	}
}

// WithFill pads a final chunk shorter than the chunk size with fill values
// up to the full size. WithTruncate takes precedence if both are given.
func WithFill[T any](fill T) ChopOption[T] {
	return func(cfg *chopConfig[T]) {
		cfg.fill = &fill
	}
}

// Chop slices seq into consecutive chunks of n elements, yielded as they
// fill. By default the final chunk may be shorter; see [WithTruncate] and
// [WithFill]. Concatenating the chunks (before truncation or padding)
// reproduces seq. An empty source yields no chunks.
//
// The source is consumed lazily, one chunk ahead of the consumer at most.
// Chop returns [ErrChunkSize] if n < 1.
func Chop[T any](seq iter.Seq[T], n int, opts ...ChopOption[T]) (iter.Seq[[]T], error) {
	if n < 1 {
		return nil, ErrChunkSize
	}
	var cfg chopConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(yield func([]T) bool) {
		chunk := make([]T, 0, n)
		for v := range seq {
			chunk = append(chunk, v)
			if len(chunk) == n {
				if !yield(chunk) {
					return
				}
				chunk = make([]T, 0, n)
			}
		}
		if len(chunk) == 0 || cfg.truncate {
			return
		}
		if cfg.fill != nil {
			for len(chunk) < n {
				chunk = append(chunk, *cfg.fill)
			}
		}
		yield(chunk)
	}, nil
}
