// Package brick models Lego- and Duplo-compatible bricks and builds their
// solid geometry through an abstract CAD kernel. Dimensions follow the
// measurements proven out on 3D-printed parts rather than the official
// molded sizes, so printed bricks actually clutch.
package brick

// System holds the physical dimensions of a brick system. All values in mm.
type System struct {
	Name string

	// Studs on top.
	StudRadius  float64 // official Lego is 2.400
	StudSpacing float64 // center-to-center
	StudHeight  float64 // official Lego is 1.600

	// StudRingWall is non-zero for systems whose studs are hollow rings
	// (Duplo scale). Zero means solid studs.
	StudRingWall  float64
	StudRingRound float64 // edge rounding on hollow stud rings

	// Body.
	PlateHeight   float64 // one plate unit of height
	UnitWidth     float64 // width of one stud cell
	Gap           float64 // widening added per extra stud
	WallThickness float64
	TopThickness  float64 // the ceiling is thinner than the walls

	// Underside anti-stud rings.
	RingOuterRadius float64
	RingInnerRadius float64

	// Slope bricks.
	SlopeStartHeight float64
	RoofThickness    float64
}

// Lego is the standard brick system.
var Lego = System{
	Name:             "lego",
	StudRadius:       2.475,
	StudSpacing:      8.000,
	StudHeight:       1.700,
	PlateHeight:      3.200,
	UnitWidth:        7.800,
	Gap:              0.200,
	WallThickness:    1.500,
	TopThickness:     1.000,
	RingOuterRadius:  3.250,
	RingInnerRadius:  2.500,
	SlopeStartHeight: 1.600,
	RoofThickness:    1.000,
}

// Duplo is the big-brick system. Studs are hollow filleted rings and every
// body dimension is roughly doubled.
var Duplo = System{
	Name:             "duplo",
	StudRadius:       4.950, // official is 4.800
	StudSpacing:      16.000,
	StudHeight:       3.400, // official is 3.200
	StudRingWall:     2.000,
	StudRingRound:    0.300,
	PlateHeight:      9.600,
	UnitWidth:        15.800,
	Gap:              0.200,
	WallThickness:    3.000,
	TopThickness:     2.000,
	RingOuterRadius:  6.500,
	RingInnerRadius:  5.000,
	SlopeStartHeight: 3.200,
	RoofThickness:    2.000,
}

// SystemByName returns the system with the given name, or ok=false.
func SystemByName(name string) (System, bool) {
	switch name {
	case "lego":
		return Lego, true
	case "duplo":
		return Duplo, true
	}
	return System{}, false
}

// StudsToMM converts a stud count to mm along one axis.
// One stud is one unit width; every extra stud adds a unit plus one gap.
func (s System) StudsToMM(studs int) float64 {
	return float64(studs)*s.UnitWidth + float64(studs-1)*s.Gap
}
