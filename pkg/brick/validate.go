package brick

import "fmt"

// Validate checks a regular brick. studs_y >= studs_x is enforced so each
// footprint generates exactly once.
func (s Regular) Validate() error {
	if s.StudsX < 1 || s.StudsY < 1 || s.Plates < 1 {
		return fmt.Errorf("%w: %dx%dx%d", ErrDimensions, s.StudsX, s.StudsY, s.Plates)
	}
	if s.StudsY < s.StudsX {
		return fmt.Errorf("%w: got %dx%d", ErrStudOrder, s.StudsX, s.StudsY)
	}
	return nil
}

// Validate checks a corner brick. Both limbs need at least one stud in
// each direction.
func (s Corner) Validate() error {
	if s.LeftLength < 1 || s.LeftWidth < 1 || s.BottomLength < 1 || s.BottomHeight < 1 || s.Plates < 1 {
		return fmt.Errorf("%w: corner left %dx%d bottom %dx%d height %d",
			ErrDimensions, s.LeftLength, s.LeftWidth, s.BottomLength, s.BottomHeight, s.Plates)
	}
	if s.LeftLength < s.BottomHeight {
		return fmt.Errorf("%w: left limb (%d) shorter than bottom limb width (%d)",
			ErrDimensions, s.LeftLength, s.BottomHeight)
	}
	return nil
}

// Validate checks a holed brick. The smallest useful part is a 1x1 hole
// with one stud of wall on every side.
func (s Holed) Validate() error {
	if s.HoleX < 1 || s.HoleY < 1 || s.SideX < 1 || s.SideY < 1 || s.Plates < 1 {
		return fmt.Errorf("%w: holed side %dx%d hole %dx%d height %d",
			ErrDimensions, s.SideX, s.SideY, s.HoleX, s.HoleY, s.Plates)
	}
	return nil
}

// Validate checks a pocket. Walls are one stud thick, so anything under
// 3x3 has no cavity left.
func (s Pocket) Validate() error {
	if s.InnerHeight < 1 || s.FloorHeight < 1 {
		return fmt.Errorf("%w: pocket inner %d floor %d", ErrDimensions, s.InnerHeight, s.FloorHeight)
	}
	if s.StudsX < 3 || s.StudsY < 3 {
		return fmt.Errorf("%w: got %dx%d", ErrPocketTooSmall, s.StudsX, s.StudsY)
	}
	return nil
}

// Validate checks a slope brick. The studded top must keep at least one
// column and leave at least one column for the slope.
func (s Slope) Validate() error {
	if s.StudsX < 2 || s.StudsY < 1 || s.Plates < 1 {
		return fmt.Errorf("%w: slope %dx%dx%d", ErrDimensions, s.StudsX, s.StudsY, s.Plates)
	}
	if s.TopStuds < 1 || s.TopStuds >= s.StudsX {
		return fmt.Errorf("%w: top %d of %d", ErrSlopeTop, s.TopStuds, s.StudsX)
	}
	return nil
}
