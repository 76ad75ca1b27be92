package kernel

import "testing"

func TestMeshCounts(t *testing.T) {
	m := &Mesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:  []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices:  []uint32{0, 1, 2},
	}

	if got := m.VertexCount(); got != 3 {
		t.Errorf("VertexCount() = %d, want 3", got)
	}
	if got := m.TriangleCount(); got != 1 {
		t.Errorf("TriangleCount() = %d, want 1", got)
	}
	if m.IsEmpty() {
		t.Error("mesh with vertices should not be empty")
	}
}

func TestMeshEmpty(t *testing.T) {
	m := &Mesh{}
	if !m.IsEmpty() {
		t.Error("zero mesh should be empty")
	}
	if m.VertexCount() != 0 || m.TriangleCount() != 0 {
		t.Error("zero mesh should have no vertices or triangles")
	}
}
