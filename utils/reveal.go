package utils

// Progressive reveal: the public gallery and menu fetch the full filtered
// set and show a growing prefix of it. The window after n "load more" steps
// with initial c and increment k is min(c+n*k, total); changing the filter
// resets the window to c.

const (
	GalleryRevealInitial    = 6
	HighlightsRevealInitial = 3
	RevealStep              = 3
)

// RevealWindow clamps a requested visible count to [initial, total].
// A request below the initial count (or unset/zero) yields the initial
// window, never less.
func RevealWindow(requested, initial, total int) int {
	if requested < initial {
		requested = initial
	}
	if requested > total {
		return total
	}
	return requested
}

// RevealAfter computes the window after n load-more steps.
func RevealAfter(initial, step, n, total int) int {
	return RevealWindow(initial+n*step, initial, total)
}
