package paging

// SizeOptions are the rows-per-page choices offered to the user
var SizeOptions = []int{5, 10, 12, 25, 50, 100}

// StepSize moves delta positions through SizeOptions from current.
// A size that is not an option snaps to the nearest option in the
// direction of travel. The result stays within the option list.
func StepSize(current, delta int) int {
	idx := -1
	for i, s := range SizeOptions {
		if s == current {
			idx = i
			break
		}
	}

	if idx < 0 {
		// snap: first option above (growing) or below (shrinking) current
		switch {
		case delta > 0:
			for i, s := range SizeOptions {
				if s > current {
					idx = i
					delta--
					break
				}
			}
			if idx < 0 {
				return SizeOptions[len(SizeOptions)-1]
			}
		case delta < 0:
			for i := len(SizeOptions) - 1; i >= 0; i-- {
				if SizeOptions[i] < current {
					idx = i
					delta++
					break
				}
			}
			if idx < 0 {
				return SizeOptions[0]
			}
		default:
			return current
		}
	}

	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(SizeOptions) {
		idx = len(SizeOptions) - 1
	}
	return SizeOptions[idx]
}
