// Package chunk splits ordered work into bounded consecutive chunks.
package chunk

// Size computes the chunk size for spreading count items over at most pool
// parallel writers, floored at minSize so small inputs do not fan out into
// many tiny round-trips. With this size, Split produces at most pool chunks.
func Size(count, pool, minSize int) int {
	if pool <= 0 {
		panic("chunk: pool must be positive")
	}

	size := (count + pool - 1) / pool
	if size < minSize {
		size = minSize
	}
	return size
}

// Split partitions items into consecutive chunks of at most size elements.
// The last chunk may be smaller. The input slice is not copied; chunks alias
// its backing array.
func Split[T any](items []T, size int) [][]T {
	if size <= 0 {
		panic("chunk: size must be positive")
	}

	if len(items) == 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for size < len(items) {
		chunks = append(chunks, items[:size])
		items = items[size:]
	}
	return append(chunks, items)
}
