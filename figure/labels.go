package figure

import "fmt"

// Letters returns n consecutive subplot letters starting at start.
// Letters beyond 'Z' (or 'z') are an error.
func Letters(start rune, n int) ([]string, error) {
	var last rune
	switch {
	case start >= 'A' && start <= 'Z':
		last = 'Z'
	case start >= 'a' && start <= 'z':
		last = 'z'
	default:
		return nil, fmt.Errorf("subplot letters must start at a letter, got %q", start)
	}
	if n > 0 && start+rune(n-1) > last {
		return nil, fmt.Errorf("%d subplot letters starting at %q run past %q", n, start, last)
	}
	letters := make([]string, 0, max(n, 0))
	for i := 0; i < n; i++ {
		letters = append(letters, string(start+rune(i)))
	}
	return letters, nil
}
