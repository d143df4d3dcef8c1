// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2gridmesh

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/2dChan/s2gridmesh/icosphere"
)

const testEps = 1e-12

// Hierarchy

func TestNewHierarchy_Splits(t *testing.T) {
	tests := []struct {
		name    string
		splits  int
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 3, false},
		{"negative", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHierarchy(tt.splits)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewHierarchy(%d) error = %v, wantErr %v", tt.splits, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("NewHierarchy(%d) error = %v, want ErrInvalidConfig", tt.splits, err)
				}
				return
			}
			if got, want := h.NumLevels(), tt.splits+1; got != want {
				t.Errorf("h.NumLevels() = %v, want %v", got, want)
			}
		})
	}
}

func TestHierarchy_Invariants(t *testing.T) {
	h := mustNewHierarchy(t, 5)

	wantVertices := 12
	wantFaces := 20
	for i := range h.NumLevels() {
		l := mustLevel(t, h, i)
		if got := l.NumVertices(); got != wantVertices {
			t.Errorf("level %d NumVertices() = %v, want %v", i, got, wantVertices)
		}
		if got := l.NumFaces(); got != wantFaces {
			t.Errorf("level %d NumFaces() = %v, want %v", i, got, wantFaces)
		}

		// One new vertex per edge of the level.
		numEdges := l.Edges().Len() / 2
		wantVertices += numEdges
		wantFaces *= 4
	}
}

func TestHierarchy_ConcreteCounts(t *testing.T) {
	h := mustNewHierarchy(t, 2)
	want := []struct{ vertices, faces int }{{12, 20}, {42, 80}, {162, 320}}
	for i, w := range want {
		l := mustLevel(t, h, i)
		if l.NumVertices() != w.vertices || l.NumFaces() != w.faces {
			t.Errorf("level %d = (%d vertices, %d faces), want (%d, %d)", i,
				l.NumVertices(), l.NumFaces(), w.vertices, w.faces)
		}
	}
}

func TestHierarchy_OnSphere(t *testing.T) {
	h := mustNewHierarchy(t, 4)
	for i, v := range h.Vertices {
		n := v.Norm()
		if math.Abs(n-1.0) > testEps {
			t.Errorf("h.Vertices[%d] norm = %v, want ~1.0", i, n)
		}
	}
}

func TestHierarchy_VerifyFacesCCW(t *testing.T) {
	h := mustNewHierarchy(t, 3)
	for i, f := range h.Faces {
		a, b, c := h.Vertices[f[0]], h.Vertices[f[1]], h.Vertices[f[2]]
		cross := b.Sub(a.Vector).Cross(c.Sub(a.Vector))
		if cross.Dot(a.Vector) <= 0 {
			t.Errorf("h.Faces[%d] = %v vertices are not sorted in CCW", i, f)
		}
	}
}

func TestHierarchy_MatchesSubdivide(t *testing.T) {
	h := mustNewHierarchy(t, 3)
	m := icosphere.Icosahedron()
	for i, got := range h.Meshes() {
		if diff := cmp.Diff(m, got); diff != "" {
			t.Errorf("h.Meshes()[%d] mismatch (-want +got):\n%s", i, diff)
		}
		m = icosphere.Subdivide(m)
	}
}

func TestHierarchy_Level(t *testing.T) {
	h := mustNewHierarchy(t, 2)
	for _, i := range []int{-1, 3} {
		if _, err := h.Level(i); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("h.Level(%d) error = %v, want ErrInvalidConfig", i, err)
		}
	}
	if got := h.Finest().Index(); got != 2 {
		t.Errorf("h.Finest().Index() = %v, want 2", got)
	}
}

// SelectLevels

func TestHierarchy_SelectLevels_Single(t *testing.T) {
	h := mustNewHierarchy(t, 3)
	for i := range h.NumLevels() {
		got, err := h.SelectLevels([]int{i})
		if err != nil {
			t.Fatalf("h.SelectLevels([%d]) error = %v, want nil", i, err)
		}
		want := mustLevel(t, h, i).Mesh()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("h.SelectLevels([%d]) mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestHierarchy_SelectLevels_Multi(t *testing.T) {
	h := mustNewHierarchy(t, 4)
	tests := []struct {
		name   string
		levels []int
	}{
		{"two levels", []int{0, 4}},
		{"unsorted", []int{3, 1, 2}},
		{"all", []int{0, 1, 2, 3, 4}},
		{"repeated", []int{2, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.SelectLevels(tt.levels)
			if err != nil {
				t.Fatalf("h.SelectLevels(%v) error = %v, want nil", tt.levels, err)
			}

			top := 0
			seen := make(map[int]bool)
			wantFaces := 0
			for _, l := range tt.levels {
				top = max(top, l)
				if !seen[l] {
					seen[l] = true
					wantFaces += mustLevel(t, h, l).NumFaces()
				}
			}
			if got, want := got.NumVertices(), mustLevel(t, h, top).NumVertices(); got != want {
				t.Errorf("NumVertices() = %v, want %v", got, want)
			}
			if got.NumFaces() != wantFaces {
				t.Errorf("NumFaces() = %v, want %v", got.NumFaces(), wantFaces)
			}
			if err := got.Validate(testEps); err != nil {
				t.Errorf("Validate(%v) error = %v, want nil", testEps, err)
			}
		})
	}
}

func TestHierarchy_SelectLevels_Order(t *testing.T) {
	h := mustNewHierarchy(t, 2)
	got, err := h.SelectLevels([]int{0, 2})
	if err != nil {
		t.Fatalf("h.SelectLevels([0 2]) error = %v, want nil", err)
	}
	l2 := mustLevel(t, h, 2).Faces()
	l0 := mustLevel(t, h, 0).Faces()
	want := append(append([][3]int{}, l2...), l0...)
	if diff := cmp.Diff(want, got.Faces); diff != "" {
		t.Errorf("h.SelectLevels([0 2]).Faces mismatch (-want +got):\n%s", diff)
	}
}

func TestHierarchy_SelectLevels_Invalid(t *testing.T) {
	h := mustNewHierarchy(t, 2)
	tests := []struct {
		name   string
		levels []int
	}{
		{"empty", nil},
		{"negative", []int{-1}},
		{"too large", []int{0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := h.SelectLevels(tt.levels); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("h.SelectLevels(%v) error = %v, want ErrInvalidConfig", tt.levels, err)
			}
		})
	}
}

// Benchmarks

func BenchmarkNewHierarchy(b *testing.B) {
	for _, splits := range []int{2, 4, 6} {
		b.Run(fmt.Sprintf("S%d", splits), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := NewHierarchy(splits); err != nil {
					b.Fatalf("NewHierarchy(%d) error = %v, want nil", splits, err)
				}
			}
		})
	}
}

// Helpers

func mustNewHierarchy(t *testing.T, splits int) *Hierarchy {
	t.Helper()
	h, err := NewHierarchy(splits)
	if err != nil {
		t.Fatalf("NewHierarchy(%d) error = %v, want nil", splits, err)
	}
	return h
}

func mustLevel(t *testing.T, h *Hierarchy, i int) Level {
	t.Helper()
	l, err := h.Level(i)
	if err != nil {
		t.Fatalf("h.Level(%d) error = %v, want nil", i, err)
	}
	return l
}
