package manifest

import (
	"errors"
	"testing"

	"github.com/dvriend/brickforge/pkg/brick"
)

func TestParseFullManifest(t *testing.T) {
	src := `
export_dir = "./out"
format     = stl
system     = duplo
resolution = 150

brick "classic" {
  studs_x = 2
  studs_y = 4
  plates  = 3
}

corner "angle" {
  left_length   = 4
  left_width    = 2
  bottom_length = 2
  bottom_height = 2
  plates        = 3
}

holed "window" {
  hole_x = 2
  hole_y = 2
  side_x = 1
  side_y = 1
  plates = 3
}

pocket "crate" {
  studs_x      = 6
  studs_y      = 6
  inner_height = 3
  floor_height = 1
  floor_studs  = true
}

slope "roof" {
  studs_x   = 3
  studs_y   = 2
  plates    = 3
  top_studs = 1
}
`
	b, err := Parse("test.hcl", []byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.ExportDir != "./out" || b.Format != "stl" || b.System != "duplo" || b.Resolution != 150 {
		t.Errorf("settings = %+v", b)
	}
	if len(b.Specs) != 5 {
		t.Fatalf("specs = %d, want 5", len(b.Specs))
	}

	if r, ok := b.Specs[0].(brick.Regular); !ok || r.StudsX != 2 || r.StudsY != 4 || r.Plates != 3 {
		t.Errorf("spec 0 = %+v", b.Specs[0])
	}
	if c, ok := b.Specs[1].(brick.Corner); !ok || c.LeftLength != 4 || c.BottomHeight != 2 {
		t.Errorf("spec 1 = %+v", b.Specs[1])
	}
	if h, ok := b.Specs[2].(brick.Holed); !ok || h.HoleX != 2 || h.SideY != 1 {
		t.Errorf("spec 2 = %+v", b.Specs[2])
	}
	if p, ok := b.Specs[3].(brick.Pocket); !ok || !p.FloorStuds || p.InnerHeight != 3 {
		t.Errorf("spec 3 = %+v", b.Specs[3])
	}
	if s, ok := b.Specs[4].(brick.Slope); !ok || s.TopStuds != 1 {
		t.Errorf("spec 4 = %+v", b.Specs[4])
	}
}

func TestParseSeriesExpands(t *testing.T) {
	src := `
series "plates" {
  studs_x     = 4
  max_studs_y = 8
  plates      = 1
}
`
	b, err := Parse("test.hcl", []byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.Specs) != 5 {
		t.Fatalf("specs = %d, want 5 (lengths 4..8)", len(b.Specs))
	}
	last := b.Specs[4].(brick.Regular)
	if last.StudsY != 8 {
		t.Errorf("last length = %d, want 8", last.StudsY)
	}
}

func TestParseEmptyManifest(t *testing.T) {
	b, err := Parse("test.hcl", []byte(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.Specs) != 0 {
		t.Errorf("specs = %d, want 0", len(b.Specs))
	}
	if b.ExportDir != "" || b.Format != "" {
		t.Errorf("settings should be empty, got %+v", b)
	}
}

func TestParseRejectsInvalidSpec(t *testing.T) {
	src := `
brick "backwards" {
  studs_x = 4
  studs_y = 2
  plates  = 3
}
`
	_, err := Parse("test.hcl", []byte(src))
	if !errors.Is(err, brick.ErrStudOrder) {
		t.Fatalf("error = %v, want ErrStudOrder", err)
	}
}

func TestParseRejectsSyntaxError(t *testing.T) {
	if _, err := Parse("test.hcl", []byte(`brick "x" {`)); err == nil {
		t.Fatal("expected syntax error")
	}
}

func TestParseRejectsMissingAttribute(t *testing.T) {
	src := `
brick "incomplete" {
  studs_x = 2
}
`
	if _, err := Parse("test.hcl", []byte(src)); err == nil {
		t.Fatal("expected error for missing required attributes")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.hcl"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
