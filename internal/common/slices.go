package common

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Find returns a pointer to the first element matching pred, or nil.
func Find[S ~[]E, E any](s S, pred func(*E) bool) *E {
	for i := range s {
		if pred(&s[i]) {
			return &s[i]
		}
	}

	return nil
}
