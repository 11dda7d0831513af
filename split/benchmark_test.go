package split_test

import (
	"slices"
	"strconv"
	"testing"

	"seqsplit/split"
)

func BenchmarkChop(b *testing.B) {
	input := ints(100_000)
	for _, size := range []int{8, 256} {
		b.Run("Size"+strconv.Itoa(size), func(b *testing.B) {
			for b.Loop() {
				chunks, _ := split.Chop(slices.Values(input), size)
				for range chunks {
				}
			}
		})
	}
}

func BenchmarkPartition(b *testing.B) {
	input := ints(100_000)
	for b.Loop() {
		matched, unmatched, stop := split.Partition(slices.Values(input), odd)
		for range matched {
		}
		for range unmatched {
		}
		stop()
	}
}

func BenchmarkGroupBy(b *testing.B) {
	input := ints(100_000)
	for b.Loop() {
		groups, stop := split.GroupBy(slices.Values(input), func(x int) int { return x % 16 })
		for _, group := range groups {
			for range group {
			}
		}
		stop()
	}
}

func BenchmarkSplit(b *testing.B) {
	input := ints(100_000)
	for b.Loop() {
		parts, stop := split.SplitFunc(slices.Values(input), func(x int) bool { return x%100 == 0 })
		for part := range parts {
			for range part {
			}
		}
		stop()
	}
}
