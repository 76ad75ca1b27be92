// Package kernel defines the abstract geometry kernel interface.
// Implementations provide solid modeling, boolean operations and mesh
// file export behind this interface. The kernel abstraction keeps the
// brick generator independent of the underlying CAD library.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Profile is a closed 2D polygon in the XY plane, listed counter-clockwise.
// Each entry is an (x, y) vertex in mm.
type Profile [][2]float64

// Kernel is the abstract geometry kernel interface.
//
// Placement conventions: boxes have their minimum corner at the origin,
// cylinders stand on the XY plane with their axis along +Z, and prisms
// extrude their profile from z=0 to z=depth. These match the placement
// math used throughout the brick builder.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	// Cylinder creates a cylinder of the given height and radius.
	// A non-zero round radius rounds the top and bottom edges.
	Cylinder(height, radius, round float64) Solid
	// Prism extrudes a polygon profile along +Z.
	Prism(profile Profile, depth float64) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
	SaveSTL(s Solid, path string) error
	Save3MF(s Solid, path string) error
}
