package brick

import (
	"fmt"

	"github.com/dvriend/brickforge/pkg/kernel"
)

// Builder turns brick specs into solid geometry through a kernel.
// A builder is bound to one dimension system; it holds no other state and
// is safe for reuse across bricks.
type Builder struct {
	k   kernel.Kernel
	sys System
}

// NewBuilder returns a builder for the given kernel and dimension system.
func NewBuilder(k kernel.Kernel, sys System) *Builder {
	return &Builder{k: k, sys: sys}
}

// System returns the dimension system the builder is bound to.
func (b *Builder) System() System { return b.sys }

// Build validates the spec and constructs its solid.
func (b *Builder) Build(spec Spec) (kernel.Solid, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	switch s := spec.(type) {
	case Regular:
		return b.buildRegular(s), nil
	case Corner:
		return b.buildCorner(s), nil
	case Holed:
		return b.buildHoled(s), nil
	case Pocket:
		return b.buildPocket(s), nil
	case Slope:
		return b.buildSlope(s), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownSpec, spec)
	}
}

// hull builds the hollow body: the full outer box minus an inner box inset
// by one wall thickness on each side, keeping the ceiling.
func (b *Builder) hull(width, length, height float64) kernel.Solid {
	sys := b.sys
	outer := b.k.Box(width, length, height)
	inner := b.k.Box(width-2*sys.WallThickness, length-2*sys.WallThickness, height-sys.TopThickness)
	inner = b.k.Translate(inner, sys.WallThickness, sys.WallThickness, 0)
	return b.k.Difference(outer, inner)
}

// stud builds one stud for grid cell (i, j), standing on top of the body
// at z=top. Solid cylinder for Lego scale, hollow filleted ring for Duplo.
func (b *Builder) stud(i, j int, top float64) kernel.Solid {
	sys := b.sys
	var s kernel.Solid
	if sys.StudRingWall > 0 {
		outer := b.k.Cylinder(sys.StudHeight, sys.StudRadius, sys.StudRingRound)
		// Oversize the core cut so the ring opens cleanly at both ends.
		core := b.k.Cylinder(sys.StudHeight+2*sys.StudRingRound, sys.StudRadius-sys.StudRingWall, 0)
		core = b.k.Translate(core, 0, 0, -sys.StudRingRound)
		s = b.k.Difference(outer, core)
	} else {
		s = b.k.Cylinder(sys.StudHeight, sys.StudRadius, 0)
	}
	x := float64(i+1)*sys.StudSpacing - sys.StudSpacing/2 - sys.Gap/2
	y := float64(j+1)*sys.StudSpacing - sys.StudSpacing/2 - sys.Gap/2
	return b.k.Translate(s, x, y, top)
}

// ring builds one underside anti-stud ring at interior intersection (i, j).
// Rings hang from the ceiling down to the bottom face.
func (b *Builder) ring(i, j int, height float64) kernel.Solid {
	sys := b.sys
	h := height - sys.TopThickness
	outer := b.k.Cylinder(h, sys.RingOuterRadius, 0)
	inner := b.k.Cylinder(h, sys.RingInnerRadius, 0)
	ring := b.k.Difference(outer, inner)
	x := (sys.UnitWidth+sys.Gap)*float64(i+1) - sys.Gap/2
	y := (sys.UnitWidth+sys.Gap)*float64(j+1) - sys.Gap/2
	return b.k.Translate(ring, x, y, 0)
}

// buildRegular assembles a rectangular brick or plate: hull, a full stud
// grid on top and a ring under every interior stud intersection.
func (b *Builder) buildRegular(s Regular) kernel.Solid {
	sys := b.sys
	width := sys.StudsToMM(s.StudsX)
	length := sys.StudsToMM(s.StudsY)
	height := float64(s.Plates) * sys.PlateHeight

	solid := b.hull(width, length, height)
	for i := 0; i < s.StudsX; i++ {
		for j := 0; j < s.StudsY; j++ {
			solid = b.k.Union(solid, b.stud(i, j, height))
		}
	}
	for i := 0; i < s.StudsX-1; i++ {
		for j := 0; j < s.StudsY-1; j++ {
			solid = b.k.Union(solid, b.ring(i, j, height))
		}
	}
	return solid
}

// buildCorner assembles an L-shaped brick. The outer shape is the union of
// the two limb boxes; the cavity is the union of both inset boxes. Studs
// and rings are placed wherever either limb covers the grid cell.
func (b *Builder) buildCorner(s Corner) kernel.Solid {
	sys := b.sys
	height := float64(s.Plates) * sys.PlateHeight
	wall := sys.WallThickness

	// Left limb spans the corner; the bottom limb includes it.
	leftW := sys.StudsToMM(s.LeftWidth)
	leftL := sys.StudsToMM(s.LeftLength)
	bottomL := sys.StudsToMM(s.BottomLength + s.LeftWidth)
	bottomH := sys.StudsToMM(s.BottomHeight)

	outer := b.k.Union(
		b.k.Box(leftW, leftL, height),
		b.k.Box(bottomL, bottomH, height),
	)
	innerLeft := b.k.Translate(
		b.k.Box(leftW-2*wall, leftL-2*wall, height-sys.TopThickness), wall, wall, 0)
	innerBottom := b.k.Translate(
		b.k.Box(bottomL-2*wall, bottomH-2*wall, height-sys.TopThickness), wall, wall, 0)
	solid := b.k.Difference(outer, b.k.Union(innerLeft, innerBottom))

	inL := func(i, j int) bool { return i < s.LeftWidth || j < s.BottomHeight }
	for i := 0; i < s.LeftWidth+s.BottomLength; i++ {
		for j := 0; j < s.LeftLength; j++ {
			if inL(i, j) {
				solid = b.k.Union(solid, b.stud(i, j, height))
			}
		}
	}
	for i := 0; i < s.LeftWidth+s.BottomLength-1; i++ {
		for j := 0; j < s.LeftLength-1; j++ {
			if i < s.LeftWidth-1 || j < s.BottomHeight-1 {
				solid = b.k.Union(solid, b.ring(i, j, height))
			}
		}
	}
	return solid
}

// buildHoled assembles a brick with a rectangular walled hole through it.
// The hole column is cut out of the hull, then its walls (the hole box
// minus an inset box, open at the top) are fused back in.
func (b *Builder) buildHoled(s Holed) kernel.Solid {
	sys := b.sys
	studsX, studsY := s.studs()
	height := float64(s.Plates) * sys.PlateHeight
	wall := sys.WallThickness

	solid := b.hull(sys.StudsToMM(studsX), sys.StudsToMM(studsY), height)

	holeW := sys.StudsToMM(s.HoleX)
	holeL := sys.StudsToMM(s.HoleY)
	offX := sys.StudsToMM(s.SideX) + sys.Gap
	offY := sys.StudsToMM(s.SideY) + sys.Gap

	outerHole := b.k.Translate(b.k.Box(holeW, holeL, height), offX, offY, 0)
	solid = b.k.Difference(solid, outerHole)

	// Full-height core: the hole has walls but no roof.
	core := b.k.Box(holeW-2*wall, holeL-2*wall, height)
	core = b.k.Translate(core, offX+wall+sys.Gap, offY+wall+sys.Gap, 0)
	walls := b.k.Difference(outerHole, core)
	solid = b.k.Union(solid, walls)

	outside := func(v, side, hole int) bool { return v < side || v >= side+hole }
	for i := 0; i < studsX; i++ {
		for j := 0; j < studsY; j++ {
			if outside(i, s.SideX, s.HoleX) || outside(j, s.SideY, s.HoleY) {
				solid = b.k.Union(solid, b.stud(i, j, height))
			}
		}
	}
	for i := 0; i < studsX-1; i++ {
		for j := 0; j < studsY-1; j++ {
			if (i < s.SideX-1 || i >= s.SideX+s.HoleX) || (j < s.SideY-1 || j >= s.SideY+s.HoleY) {
				solid = b.k.Union(solid, b.ring(i, j, height))
			}
		}
	}
	return solid
}

// buildPocket assembles an open box. The cavity starts above the floor and
// leaves one-stud walls; studs go on the rim and optionally on the floor.
// Pockets have no underside rings.
func (b *Builder) buildPocket(s Pocket) kernel.Solid {
	sys := b.sys
	floorH := float64(s.FloorHeight) * sys.PlateHeight
	innerH := float64(s.InnerHeight) * sys.PlateHeight
	height := floorH + innerH

	outer := b.k.Box(sys.StudsToMM(s.StudsX), sys.StudsToMM(s.StudsY), height)
	wallMM := sys.UnitWidth + sys.Gap
	cavity := b.k.Box(sys.StudsToMM(s.StudsX-2), sys.StudsToMM(s.StudsY-2), innerH)
	cavity = b.k.Translate(cavity, wallMM, wallMM, floorH)
	solid := b.k.Difference(outer, cavity)

	for i := 0; i < s.StudsX; i++ {
		for j := 0; j < s.StudsY; j++ {
			onRim := i == 0 || i == s.StudsX-1 || j == 0 || j == s.StudsY-1
			if onRim {
				solid = b.k.Union(solid, b.stud(i, j, height))
			}
		}
	}
	if s.FloorStuds {
		for i := 0; i < s.StudsX-2; i++ {
			for j := 0; j < s.StudsY-2; j++ {
				solid = b.k.Union(solid, b.stud(i+1, j+1, floorH))
			}
		}
	}
	return solid
}

// buildSlope assembles a full regular brick, cuts away the slope wedge
// above the low front edge, then fuses a roof plate onto the cut face.
func (b *Builder) buildSlope(s Slope) kernel.Solid {
	sys := b.sys
	base := b.buildRegular(Regular{StudsX: s.StudsX, StudsY: s.StudsY, Plates: s.Plates})

	wb := sys.StudsToMM(s.StudsX)   // full bottom width
	wt := sys.StudsToMM(s.TopStuds) // studded width at the top
	length := sys.StudsToMM(s.StudsY)
	height := float64(s.Plates) * sys.PlateHeight
	top := height + sys.StudHeight

	cut := kernel.Profile{
		{wb, sys.SlopeStartHeight},
		{wb, top},
		{wt, top},
		{wt, height},
	}
	solid := b.k.Difference(base, b.prismAlongY(cut, length))

	roof := kernel.Profile{
		{wb, sys.SlopeStartHeight},
		{wt, height},
		{wt, height - sys.RoofThickness},
		{wb, sys.SlopeStartHeight - sys.RoofThickness},
	}
	return b.k.Union(solid, b.prismAlongY(roof, length))
}

// prismAlongY extrudes an (x, z) profile along the Y axis from y=0 to
// y=depth. The kernel extrudes XY profiles along +Z, so the prism is
// rotated 90 degrees around X and shifted back into place.
func (b *Builder) prismAlongY(profile kernel.Profile, depth float64) kernel.Solid {
	p := b.k.Prism(profile, depth)
	p = b.k.Rotate(p, 90, 0, 0)
	return b.k.Translate(p, 0, depth, 0)
}
