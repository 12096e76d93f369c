package showcase

// Viewport breakpoints, in pixels, for the featured-works rail.
const (
	featuredWideWidth   = 1152
	featuredMediumWidth = 768
)

// SelectFeaturedCount returns how many featured entries fit a viewport of the
// given width. Callers recompute on resize rather than fixing the count at
// initial load.
func SelectFeaturedCount(viewportWidth int) int {
	switch {
	case viewportWidth > featuredWideWidth:
		return 8
	case viewportWidth > featuredMediumWidth:
		return 6
	default:
		return 4
	}
}

// FeaturedSlice returns a copy of the first SelectFeaturedCount(viewportWidth)
// entries. The source slice is never mutated.
func FeaturedSlice(contents []*Content, viewportWidth int) []*Content {
	n := SelectFeaturedCount(viewportWidth)
	if n > len(contents) {
		n = len(contents)
	}
	out := make([]*Content, n)
	copy(out, contents[:n])
	return out
}
