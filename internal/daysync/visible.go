package daysync

// Section is the vertical extent of one day's section relative to the top of
// the viewport.
type Section struct {
	Top    float64
	Bottom float64
}

// Centre band of the viewport, as fractions of its height.
const (
	bandTop    = 0.40
	bandBottom = 0.50
)

// VisibleIndex returns the first section that overlaps the centre band of a
// viewport of the given height.
func VisibleIndex(sections []Section, viewportHeight float64) (int, bool) {
	if viewportHeight <= 0 {
		return 0, false
	}
	top := viewportHeight * bandTop
	bottom := viewportHeight * bandBottom
	for i, sec := range sections {
		if sec.Bottom > top && sec.Top < bottom {
			return i, true
		}
	}
	return 0, false
}
