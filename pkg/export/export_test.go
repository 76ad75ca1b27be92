package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dvriend/brickforge/pkg/kernel"
)

// stubSolid is a do-nothing solid for exercising the exporter.
type stubSolid struct{}

func (stubSolid) BoundingBox() (min, max [3]float64) { return }

// stubKernel writes marker files instead of rendering meshes, recording
// which format was asked for.
type stubKernel struct {
	stlCalls int
	mfCalls  int
	failSTL  bool
}

var _ kernel.Kernel = (*stubKernel)(nil)

func (k *stubKernel) Box(x, y, z float64) kernel.Solid                  { return stubSolid{} }
func (k *stubKernel) Cylinder(h, r, round float64) kernel.Solid         { return stubSolid{} }
func (k *stubKernel) Prism(p kernel.Profile, d float64) kernel.Solid    { return stubSolid{} }
func (k *stubKernel) Union(a, b kernel.Solid) kernel.Solid              { return stubSolid{} }
func (k *stubKernel) Difference(a, b kernel.Solid) kernel.Solid         { return stubSolid{} }
func (k *stubKernel) Intersection(a, b kernel.Solid) kernel.Solid       { return stubSolid{} }
func (k *stubKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid { return s }
func (k *stubKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid    { return s }
func (k *stubKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error)       { return &kernel.Mesh{}, nil }

func (k *stubKernel) SaveSTL(s kernel.Solid, path string) error {
	k.stlCalls++
	if k.failSTL {
		return errors.New("render failed")
	}
	return os.WriteFile(path, []byte("stl"), 0o644)
}

func (k *stubKernel) Save3MF(s kernel.Solid, path string) error {
	k.mfCalls++
	return os.WriteFile(path, []byte("3mf"), 0o644)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"stl", FormatSTL, false},
		{"STL", FormatSTL, false},
		{"3mf", Format3MF, false},
		{"3MF", Format3MF, false},
		{"obj", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestNewRequiresExistingDir(t *testing.T) {
	_, err := New(&stubKernel{}, filepath.Join(t.TempDir(), "missing"), FormatSTL, nil)
	if !errors.Is(err, ErrExportDir) {
		t.Fatalf("New() error = %v, want ErrExportDir", err)
	}
}

func TestNewRejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New(&stubKernel{}, file, FormatSTL, nil)
	if !errors.Is(err, ErrExportDir) {
		t.Fatalf("New() error = %v, want ErrExportDir", err)
	}
}

func TestExportSTL(t *testing.T) {
	dir := t.TempDir()
	k := &stubKernel{}
	e, err := New(k, dir, FormatSTL, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := e.Export("brick_2x4x3", stubSolid{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "brick_2x4x3.stl") {
		t.Errorf("path = %q", path)
	}
	if k.stlCalls != 1 || k.mfCalls != 0 {
		t.Errorf("stl calls = %d, 3mf calls = %d", k.stlCalls, k.mfCalls)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file missing: %v", err)
	}
}

func TestExport3MF(t *testing.T) {
	dir := t.TempDir()
	k := &stubKernel{}
	e, err := New(k, dir, Format3MF, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := e.Export("plate_4x8x1", stubSolid{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Ext(path) != ".3mf" {
		t.Errorf("path = %q, want .3mf extension", path)
	}
	if k.mfCalls != 1 {
		t.Errorf("3mf calls = %d, want 1", k.mfCalls)
	}
}

func TestExportPropagatesKernelError(t *testing.T) {
	e, err := New(&stubKernel{failSTL: true}, t.TempDir(), FormatSTL, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.Export("brick_2x4x3", stubSolid{}); err == nil {
		t.Fatal("expected render error to propagate")
	}
}
