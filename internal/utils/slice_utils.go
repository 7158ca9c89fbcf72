// Package utils
package utils

func Map[T any, R any](src []T, mapper func(element T) R) []R {
	result := make([]R, 0, len(src))
	for _, v := range src {
		result = append(result, mapper(v))
	}
	return result
}

func ReverseForEach[T any](src []T, callback func(index int, element T)) {
	for i := len(src) - 1; i >= 0; i-- {
		callback(i, src[i])
	}
}

// Unique keeps the first occurrence of every value, preserving order
func Unique[T comparable](src []T) []T {
	seen := make(map[T]struct{}, len(src))
	result := make([]T, 0, len(src))
	for _, v := range src {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
