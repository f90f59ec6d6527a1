package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// RemoveAt deletes the element at i in place, preserving order.
func RemoveAt[T any](slice []T, i int) []T {
	return append(slice[:i], slice[i+1:]...)
}
