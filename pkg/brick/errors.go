package brick

import "errors"

// Sentinel errors for brick validation and building.
// Use errors.Is() to check for specific error conditions.
var (
	// ErrDimensions indicates a non-positive stud count or plate height.
	ErrDimensions = errors.New("brick: dimensions must be positive")

	// ErrStudOrder indicates studs_y < studs_x. A 4x2 brick does not
	// exist; always put the smallest dimension first.
	ErrStudOrder = errors.New("brick: studs_y cannot be smaller than studs_x")

	// ErrPocketTooSmall indicates a pocket below the 3x3 minimum
	// (a 1x1 cavity with one-stud walls on all sides).
	ErrPocketTooSmall = errors.New("brick: pocket must be at least 3x3 studs")

	// ErrSlopeTop indicates a slope whose studded top width is not
	// strictly between zero and the full brick width.
	ErrSlopeTop = errors.New("brick: slope top studs must be at least 1 and less than studs_x")

	// ErrUnknownSpec indicates a spec type the builder cannot handle.
	ErrUnknownSpec = errors.New("brick: unknown spec type")
)
