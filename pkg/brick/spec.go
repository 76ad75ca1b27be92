package brick

import "fmt"

// Spec describes one brick variant to generate. Implementations carry the
// stud-count parameters; the Builder turns a spec into solid geometry.
type Spec interface {
	// Name returns the export file stem, derived from the parameters.
	Name() string
	// Variant returns the family name ("regular", "corner", ...).
	Variant() string
	// Validate checks the parameters against the family's constraints.
	Validate() error
	// OverallMM returns the overall width, length and height in mm,
	// studs included.
	OverallMM(sys System) (w, l, h float64)
}

// heightClass names a part by its height in plates: one plate is a plate,
// two a plick, multiples of three are bricks.
func heightClass(plates int) string {
	switch {
	case plates == 1:
		return "plate"
	case plates == 2:
		return "plick"
	case plates%3 == 0:
		switch plates {
		case 3:
			return "brick"
		case 6:
			return "doublebrick"
		case 9:
			return "triplebrick"
		case 12:
			return "quadruplebrick"
		default:
			return "xbrick"
		}
	default:
		return "xplate"
	}
}

// ---------------------------------------------------------------------------
// Regular
// ---------------------------------------------------------------------------

// Regular is a rectangular brick or plate: a hollow hull, a full grid of
// studs on top and anti-stud rings underneath.
type Regular struct {
	StudsX int // width in studs; must not exceed StudsY
	StudsY int // length in studs
	Plates int // height in plate units (3 = standard brick)
}

func (s Regular) Variant() string { return "regular" }

func (s Regular) Name() string {
	return fmt.Sprintf("%s_%dx%dx%d", heightClass(s.Plates), s.StudsX, s.StudsY, s.Plates)
}

func (s Regular) OverallMM(sys System) (w, l, h float64) {
	return sys.StudsToMM(s.StudsX), sys.StudsToMM(s.StudsY),
		float64(s.Plates)*sys.PlateHeight + sys.StudHeight
}

// ---------------------------------------------------------------------------
// Corner
// ---------------------------------------------------------------------------

// Corner is an L-shaped brick. The left limb runs along Y and the bottom
// limb along X; the corner cell belongs to the left limb.
type Corner struct {
	LeftLength   int // left limb length in studs (along Y)
	LeftWidth    int // left limb width in studs (along X)
	BottomLength int // bottom limb length in studs (along X, excluding corner)
	BottomHeight int // bottom limb width in studs (along Y)
	Plates       int
}

func (s Corner) Variant() string { return "corner" }

func (s Corner) Name() string {
	return fmt.Sprintf("cornerbrick_left_%dx%d_bottom_%dx%d_height_%d",
		s.LeftLength, s.LeftWidth, s.BottomLength, s.BottomHeight, s.Plates)
}

func (s Corner) OverallMM(sys System) (w, l, h float64) {
	return sys.StudsToMM(s.LeftWidth + s.BottomLength), sys.StudsToMM(s.LeftLength),
		float64(s.Plates)*sys.PlateHeight + sys.StudHeight
}

// ---------------------------------------------------------------------------
// Holed
// ---------------------------------------------------------------------------

// Holed is a rectangular brick with a walled rectangular hole through it.
// The overall footprint is the hole plus the side on both ends of each axis.
type Holed struct {
	HoleX  int // hole width in studs
	HoleY  int // hole length in studs
	SideX  int // solid side width in studs
	SideY  int // solid side length in studs
	Plates int
}

func (s Holed) Variant() string { return "holed" }

func (s Holed) studs() (x, y int) {
	return s.HoleX + 2*s.SideX, s.HoleY + 2*s.SideY
}

func (s Holed) Name() string {
	return fmt.Sprintf("holed%s_%dx%d__hole_%dx%d__height_%d",
		heightClass(s.Plates), s.SideX, s.SideY, s.HoleX, s.HoleY, s.Plates)
}

func (s Holed) OverallMM(sys System) (w, l, h float64) {
	sx, sy := s.studs()
	return sys.StudsToMM(sx), sys.StudsToMM(sy),
		float64(s.Plates)*sys.PlateHeight + sys.StudHeight
}

// ---------------------------------------------------------------------------
// Pocket
// ---------------------------------------------------------------------------

// Pocket is an open box: one-stud-thick walls around a cavity, studs on the
// rim and, optionally, on the cavity floor.
type Pocket struct {
	StudsX      int // outer width in studs (minimum 3)
	StudsY      int // outer length in studs (minimum 3)
	InnerHeight int // cavity depth in plate units
	FloorHeight int // floor thickness in plate units
	FloorStuds  bool
}

func (s Pocket) Variant() string { return "pocket" }

func (s Pocket) Name() string {
	inner := fmt.Sprintf("_inner_%d", s.InnerHeight)
	if s.FloorStuds {
		inner += "_inner_studs_"
	}
	return fmt.Sprintf("pocket__size_%dx%d%s_floor_%d", s.StudsX, s.StudsY, inner, s.FloorHeight)
}

func (s Pocket) OverallMM(sys System) (w, l, h float64) {
	return sys.StudsToMM(s.StudsX), sys.StudsToMM(s.StudsY),
		float64(s.InnerHeight+s.FloorHeight)*sys.PlateHeight + sys.StudHeight
}

// ---------------------------------------------------------------------------
// Slope
// ---------------------------------------------------------------------------

// Slope is a regular brick with a sloped roof: studs survive only over the
// TopStuds columns, the rest of the top is cut down to the slope.
type Slope struct {
	StudsX   int // bottom width in studs
	StudsY   int // length in studs
	Plates   int
	TopStuds int // studded width remaining at the top
}

func (s Slope) Variant() string { return "slope" }

func (s Slope) Name() string {
	return fmt.Sprintf("slope_%dx%dx%d_top_%d", s.StudsX, s.StudsY, s.Plates, s.TopStuds)
}

func (s Slope) OverallMM(sys System) (w, l, h float64) {
	return sys.StudsToMM(s.StudsX), sys.StudsToMM(s.StudsY),
		float64(s.Plates)*sys.PlateHeight + sys.StudHeight
}

// ---------------------------------------------------------------------------
// Series
// ---------------------------------------------------------------------------

// Series is a sweep over regular bricks of fixed width and height, with the
// length running from the width up to MaxStudsY. It is not buildable
// itself; Expand turns it into the individual Regular specs.
type Series struct {
	StudsX    int
	MaxStudsY int
	Plates    int
}

// Validate checks the sweep bounds.
func (s Series) Validate() error {
	if s.StudsX < 1 || s.Plates < 1 {
		return fmt.Errorf("%w: series %dx(max %d)x%d", ErrDimensions, s.StudsX, s.MaxStudsY, s.Plates)
	}
	if s.MaxStudsY < s.StudsX {
		return fmt.Errorf("%w: series max length %d < width %d", ErrStudOrder, s.MaxStudsY, s.StudsX)
	}
	return nil
}

// Expand returns one Regular spec per length from StudsX to MaxStudsY.
func (s Series) Expand() []Regular {
	var specs []Regular
	for y := s.StudsX; y <= s.MaxStudsY; y++ {
		specs = append(specs, Regular{StudsX: s.StudsX, StudsY: y, Plates: s.Plates})
	}
	return specs
}
