package brick

import (
	"math"
	"testing"
)

func TestHeightClass(t *testing.T) {
	tests := []struct {
		plates int
		want   string
	}{
		{1, "plate"},
		{2, "plick"},
		{3, "brick"},
		{4, "xplate"},
		{5, "xplate"},
		{6, "doublebrick"},
		{9, "triplebrick"},
		{12, "quadruplebrick"},
		{15, "xbrick"},
	}

	for _, tt := range tests {
		if got := heightClass(tt.plates); got != tt.want {
			t.Errorf("heightClass(%d) = %q, want %q", tt.plates, got, tt.want)
		}
	}
}

func TestSpecNames(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want string
	}{
		{"classic brick", Regular{StudsX: 2, StudsY: 4, Plates: 3}, "brick_2x4x3"},
		{"plate", Regular{StudsX: 4, StudsY: 8, Plates: 1}, "plate_4x8x1"},
		{"plick", Regular{StudsX: 1, StudsY: 2, Plates: 2}, "plick_1x2x2"},
		{"corner", Corner{LeftLength: 4, LeftWidth: 2, BottomLength: 2, BottomHeight: 2, Plates: 3},
			"cornerbrick_left_4x2_bottom_2x2_height_3"},
		{"holed", Holed{HoleX: 2, HoleY: 2, SideX: 1, SideY: 1, Plates: 3},
			"holedbrick_1x1__hole_2x2__height_3"},
		{"pocket", Pocket{StudsX: 6, StudsY: 6, InnerHeight: 3, FloorHeight: 1},
			"pocket__size_6x6_inner_3_floor_1"},
		{"pocket with floor studs", Pocket{StudsX: 6, StudsY: 6, InnerHeight: 3, FloorHeight: 1, FloorStuds: true},
			"pocket__size_6x6_inner_3_inner_studs__floor_1"},
		{"slope", Slope{StudsX: 3, StudsY: 2, Plates: 3, TopStuds: 1}, "slope_3x2x3_top_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpecVariants(t *testing.T) {
	tests := []struct {
		spec Spec
		want string
	}{
		{Regular{}, "regular"},
		{Corner{}, "corner"},
		{Holed{}, "holed"},
		{Pocket{}, "pocket"},
		{Slope{}, "slope"},
	}
	for _, tt := range tests {
		if got := tt.spec.Variant(); got != tt.want {
			t.Errorf("%T.Variant() = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestOverallMM(t *testing.T) {
	almost := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

	// 2x4 brick: footprint 15.8 x 31.8, body 9.6 plus 1.7 of stud.
	w, l, h := Regular{StudsX: 2, StudsY: 4, Plates: 3}.OverallMM(Lego)
	if !almost(w, 15.8) || !almost(l, 31.8) || !almost(h, 11.3) {
		t.Errorf("regular OverallMM = %v x %v x %v", w, l, h)
	}

	// Corner spans left width plus bottom length across, left length deep.
	w, l, _ = Corner{LeftLength: 4, LeftWidth: 2, BottomLength: 2, BottomHeight: 2, Plates: 3}.OverallMM(Lego)
	if !almost(w, Lego.StudsToMM(4)) || !almost(l, Lego.StudsToMM(4)) {
		t.Errorf("corner OverallMM = %v x %v", w, l)
	}

	// Holed footprint is hole plus both sides.
	w, l, _ = Holed{HoleX: 2, HoleY: 2, SideX: 1, SideY: 1, Plates: 3}.OverallMM(Lego)
	if !almost(w, Lego.StudsToMM(4)) || !almost(l, Lego.StudsToMM(4)) {
		t.Errorf("holed OverallMM = %v x %v", w, l)
	}

	// Pocket height is floor plus cavity.
	_, _, h = Pocket{StudsX: 4, StudsY: 4, InnerHeight: 2, FloorHeight: 1}.OverallMM(Lego)
	if !almost(h, 3*3.2+1.7) {
		t.Errorf("pocket OverallMM height = %v", h)
	}
}

func TestSeriesExpand(t *testing.T) {
	s := Series{StudsX: 4, MaxStudsY: 8, Plates: 1}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	specs := s.Expand()
	if len(specs) != 5 {
		t.Fatalf("expected 5 bricks (lengths 4..8), got %d", len(specs))
	}
	for i, r := range specs {
		if r.StudsX != 4 || r.Plates != 1 {
			t.Errorf("spec %d: width/height changed: %+v", i, r)
		}
		if r.StudsY != 4+i {
			t.Errorf("spec %d: length = %d, want %d", i, r.StudsY, 4+i)
		}
	}
}

func TestBatchAddSeries(t *testing.T) {
	var b Batch
	if err := b.AddSeries(Series{StudsX: 2, MaxStudsY: 4, Plates: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.Specs) != 3 {
		t.Fatalf("expected 3 specs, got %d", len(b.Specs))
	}

	if err := b.AddSeries(Series{StudsX: 4, MaxStudsY: 2, Plates: 3}); err == nil {
		t.Fatal("expected error for max length below width")
	}
	if len(b.Specs) != 3 {
		t.Errorf("failed series must not add specs, got %d", len(b.Specs))
	}
}
