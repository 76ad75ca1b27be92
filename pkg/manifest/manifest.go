// Package manifest loads HCL batch descriptions. A manifest sets the run
// defaults (export directory, format, system, resolution) and declares one
// block per brick family:
//
//	export_dir = "./out"
//	system     = lego
//
//	brick "common" { studs_x = 2  studs_y = 4  plates = 3 }
//	series "plates" { studs_x = 4  max_studs_y = 8  plates = 1 }
//	slope "roof"   { studs_x = 2  studs_y = 2  plates = 3  top_studs = 1 }
//
// Block labels are only used in error messages; export file names are
// derived from the brick parameters.
package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"

	"github.com/dvriend/brickforge/pkg/brick"
)

// File is the top-level HCL schema.
type File struct {
	ExportDir  string `hcl:"export_dir,optional"`
	Format     string `hcl:"format,optional"`
	System     string `hcl:"system,optional"`
	Resolution int    `hcl:"resolution,optional"`

	Bricks  []BrickBlock  `hcl:"brick,block"`
	Corners []CornerBlock `hcl:"corner,block"`
	Holed   []HoledBlock  `hcl:"holed,block"`
	Pockets []PocketBlock `hcl:"pocket,block"`
	Slopes  []SlopeBlock  `hcl:"slope,block"`
	Series  []SeriesBlock `hcl:"series,block"`
}

// BrickBlock declares a regular brick or plate.
type BrickBlock struct {
	Label  string `hcl:"name,label"`
	StudsX int    `hcl:"studs_x"`
	StudsY int    `hcl:"studs_y"`
	Plates int    `hcl:"plates"`
}

// CornerBlock declares an L-shaped corner brick.
type CornerBlock struct {
	Label        string `hcl:"name,label"`
	LeftLength   int    `hcl:"left_length"`
	LeftWidth    int    `hcl:"left_width"`
	BottomLength int    `hcl:"bottom_length"`
	BottomHeight int    `hcl:"bottom_height"`
	Plates       int    `hcl:"plates"`
}

// HoledBlock declares a brick with a walled hole.
type HoledBlock struct {
	Label  string `hcl:"name,label"`
	HoleX  int    `hcl:"hole_x"`
	HoleY  int    `hcl:"hole_y"`
	SideX  int    `hcl:"side_x"`
	SideY  int    `hcl:"side_y"`
	Plates int    `hcl:"plates"`
}

// PocketBlock declares an open box.
type PocketBlock struct {
	Label       string `hcl:"name,label"`
	StudsX      int    `hcl:"studs_x"`
	StudsY      int    `hcl:"studs_y"`
	InnerHeight int    `hcl:"inner_height"`
	FloorHeight int    `hcl:"floor_height"`
	FloorStuds  bool   `hcl:"floor_studs,optional"`
}

// SlopeBlock declares a slope brick.
type SlopeBlock struct {
	Label    string `hcl:"name,label"`
	StudsX   int    `hcl:"studs_x"`
	StudsY   int    `hcl:"studs_y"`
	Plates   int    `hcl:"plates"`
	TopStuds int    `hcl:"top_studs"`
}

// SeriesBlock declares a sweep of regular bricks.
type SeriesBlock struct {
	Label     string `hcl:"name,label"`
	StudsX    int    `hcl:"studs_x"`
	MaxStudsY int    `hcl:"max_studs_y"`
	Plates    int    `hcl:"plates"`
}

// evalContext provides bare identifiers for the enum-ish attributes, so a
// manifest can say `system = duplo` or `format = stl` without quotes.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"lego":  cty.StringVal("lego"),
			"duplo": cty.StringVal("duplo"),
			"stl":   cty.StringVal("stl"),
		},
	}
}

// Load reads and decodes a manifest file into a batch.
func Load(path string) (*brick.Batch, error) {
	var f File
	if err := hclsimple.DecodeFile(path, evalContext(), &f); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return f.batch()
}

// Parse decodes manifest source. The filename determines the syntax and
// shows up in diagnostics; it must end in .hcl or .json.
func Parse(filename string, src []byte) (*brick.Batch, error) {
	var f File
	if err := hclsimple.Decode(filename, src, evalContext(), &f); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return f.batch()
}

// batch converts the decoded blocks into validated specs, in family order.
func (f *File) batch() (*brick.Batch, error) {
	b := &brick.Batch{
		ExportDir:  f.ExportDir,
		Format:     f.Format,
		System:     f.System,
		Resolution: f.Resolution,
	}
	for _, blk := range f.Bricks {
		spec := brick.Regular{StudsX: blk.StudsX, StudsY: blk.StudsY, Plates: blk.Plates}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("manifest: brick %q: %w", blk.Label, err)
		}
		b.Add(spec)
	}
	for _, blk := range f.Corners {
		spec := brick.Corner{
			LeftLength: blk.LeftLength, LeftWidth: blk.LeftWidth,
			BottomLength: blk.BottomLength, BottomHeight: blk.BottomHeight,
			Plates: blk.Plates,
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("manifest: corner %q: %w", blk.Label, err)
		}
		b.Add(spec)
	}
	for _, blk := range f.Holed {
		spec := brick.Holed{
			HoleX: blk.HoleX, HoleY: blk.HoleY,
			SideX: blk.SideX, SideY: blk.SideY,
			Plates: blk.Plates,
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("manifest: holed %q: %w", blk.Label, err)
		}
		b.Add(spec)
	}
	for _, blk := range f.Pockets {
		spec := brick.Pocket{
			StudsX: blk.StudsX, StudsY: blk.StudsY,
			InnerHeight: blk.InnerHeight, FloorHeight: blk.FloorHeight,
			FloorStuds: blk.FloorStuds,
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("manifest: pocket %q: %w", blk.Label, err)
		}
		b.Add(spec)
	}
	for _, blk := range f.Slopes {
		spec := brick.Slope{
			StudsX: blk.StudsX, StudsY: blk.StudsY,
			Plates: blk.Plates, TopStuds: blk.TopStuds,
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("manifest: slope %q: %w", blk.Label, err)
		}
		b.Add(spec)
	}
	for _, blk := range f.Series {
		s := brick.Series{StudsX: blk.StudsX, MaxStudsY: blk.MaxStudsY, Plates: blk.Plates}
		if err := b.AddSeries(s); err != nil {
			return nil, fmt.Errorf("manifest: series %q: %w", blk.Label, err)
		}
	}
	return b, nil
}
