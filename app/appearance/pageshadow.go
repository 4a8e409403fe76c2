package appearance

// DefaultPageWidth is the single-page width used when a caller does not know
// the rendered page size.
const DefaultPageWidth = 400

// ShadowWidth returns the width of the page-turn shadow. The cover and the
// last page are shown alone; every other index is a two-page spread.
func ShadowWidth(current, total int, pageWidth float64) float64 {
	if pageWidth <= 0 {
		pageWidth = DefaultPageWidth
	}
	if isSinglePage(current, total) {
		return pageWidth
	}
	return pageWidth * 2
}

// ShadowOffset returns the horizontal anchor of the page-turn shadow as a
// percentage of the book width. A lone page sits on the right half when its
// index is even and on the left half when it is odd.
func ShadowOffset(current, total int) float64 {
	if current == 0 {
		return 75
	}
	if current == total-1 {
		if current%2 == 0 {
			return 75
		}
		return 25
	}
	return 50
}

func isSinglePage(current, total int) bool {
	return current == 0 || current == total-1
}
