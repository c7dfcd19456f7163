package mathcraft

import (
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestSquare(t *testing.T) {
	a := NewPoint("A", 0, 0)
	b := NewPoint("B", 0, 4)
	c := NewPoint("C", 4, 4)
	d := NewPoint("D", 4, 0)
	s, err := NewSquare(a, b, c, d)
	if err != nil {
		t.Fatal(err)
	}
	if s.Side() != 4 {
		t.Errorf("side got %v. want 4", s.Side())
	}
	if s.Perimeter() != 16 {
		t.Errorf("perimeter got %v. want 16", s.Perimeter())
	}
	if s.Area() != 16 {
		t.Errorf("area got %v. want 16", s.Area())
	}
	lengths := s.Lengths()
	if sum := floats.Sum(lengths[:]); sum != s.Perimeter() {
		t.Errorf("perimeter %v does not match sides %v", s.Perimeter(), lengths)
	}
	if got := s.Corners(); got[0] != a || got[3] != d {
		t.Error("corners are not the shared points")
	}
	want := "square with corners A(0; 0), B(0; 4), C(4; 4), D(4; 0)"
	if got := s.String(); got != want {
		t.Errorf("got %q. want %q", got, want)
	}
	wantBB := r2.Box{Max: r2.Vec{X: 4, Y: 4}}
	if got := s.Bounds(); got != wantBB {
		t.Errorf("got bounds %v. want %v", got, wantBB)
	}
}

func TestSquareInvalid(t *testing.T) {
	a := NewPoint("A", 0, 0)
	b := NewPoint("B", 0, 4)
	c := NewPoint("C", 4, 4)
	d := NewPoint("D", 5, 0)
	_, err := NewSquare(a, b, c, d)
	if !errors.Is(err, ErrNotSquare) {
		t.Fatalf("got error %v. want %v", err, ErrNotSquare)
	}
	for _, p := range []*Point{a, b, c, d} {
		if !strings.Contains(err.Error(), p.String()) {
			t.Errorf("error %q does not name %v", err, p)
		}
	}
}

func TestSquareTolerance(t *testing.T) {
	// Rotated square, side lengths differ by rounding only.
	a := NewPoint("A", 0, 0)
	b := NewPoint("B", 0.1, 0.7)
	c := NewPoint("C", 0.8, 0.6)
	d := NewPoint("D", 0.7, -0.1)
	s, err := NewSquare(a, b, c, d)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Area(); got < 0.5-1e-12 || got > 0.5+1e-12 {
		t.Errorf("area got %v. want 0.5", got)
	}
}

func TestSquareAcceptsRhombus(t *testing.T) {
	// Sides are all 5 but the angles are not right.
	a := NewPoint("A", 0, 0)
	b := NewPoint("B", 3, 4)
	c := NewPoint("C", 8, 4)
	d := NewPoint("D", 5, 0)
	s, err := NewSquare(a, b, c, d)
	if err != nil {
		t.Fatalf("rhombus rejected: %s", err)
	}
	if s.Area() != 25 {
		t.Errorf("area got %v. want 25 (side squared)", s.Area())
	}
}

func TestSquareSnapshot(t *testing.T) {
	a := NewPoint("A", 0, 0)
	s, err := NewSquare(a, NewPoint("B", 0, 4), NewPoint("C", 4, 4), NewPoint("D", 4, 0))
	if err != nil {
		t.Fatal(err)
	}
	a.X = -10
	if s.Area() != 16 || s.Perimeter() != 16 {
		t.Errorf("derived values changed after corner mutation: area %v perimeter %v", s.Area(), s.Perimeter())
	}
	if s.Corners()[0].X != -10 {
		t.Error("square does not reference the shared corner")
	}
}
