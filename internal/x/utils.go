package x

func Contains[V comparable](slice []V, item V) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// Intersects reports whether a and b share at least one element.
func Intersects[V comparable](a []V, b []V) bool {
	for _, v := range a {
		if Contains(b, v) {
			return true
		}
	}
	return false
}
