package pure_utils

// Chunk splits src into consecutive slices of at most size elements, in order.
// The final chunk may be shorter. A non-positive size panics: callers always
// chunk by a store-imposed constant.
func Chunk[T any](src []T, size int) [][]T {
	if size <= 0 {
		panic("pure_utils.Chunk: size must be positive")
	}
	if len(src) == 0 {
		return nil
	}
	chunks := make([][]T, 0, (len(src)+size-1)/size)
	for size < len(src) {
		chunks = append(chunks, src[:size:size])
		src = src[size:]
	}
	return append(chunks, src)
}
