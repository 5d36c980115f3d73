package coord

import "testing"

func TestLineKeyCollinearity(t *testing.T) {
	d := Normalize(1, 1)
	p1 := New(2, 2)
	p2 := New(5, 5)
	p3 := New(2, 3)
	if LineKey(d, p1) != LineKey(d, p2) {
		t.Errorf("expected %v and %v to share a line key under %v", p1, p2, d)
	}
	if LineKey(d, p1) == LineKey(d, p3) {
		t.Errorf("expected %v and %v to NOT share a line key under %v", p1, p3, d)
	}
}

func TestNormalizeOrientation(t *testing.T) {
	a := Normalize(2, -2)
	b := Normalize(-1, 1)
	if a != b {
		t.Errorf("opposite-pointing directions should normalize identically, got %v vs %v", a, b)
	}
}

func TestAddAndSub(t *testing.T) {
	p := New(3, 4)
	q := p.Add(Offset{DX: 2, DY: -1})
	if q.X != 5 || q.Y != 3 {
		t.Fatalf("Add: got (%d,%d)", q.X, q.Y)
	}
	off := q.Sub(p)
	if off.DX != 2 || off.DY != -1 {
		t.Fatalf("Sub: got %v", off)
	}
}

func TestSaturatingAdd(t *testing.T) {
	if got := SaturatingAdd(Infinite, 5); got != Infinite {
		t.Errorf("expected saturation at Infinite, got %d", got)
	}
	if got := SaturatingAdd(-Infinite, -5); got != -Infinite {
		t.Errorf("expected saturation at -Infinite, got %d", got)
	}
}

func TestKeyDistinguishesCoordinates(t *testing.T) {
	if New(1, 2).Key() == New(2, 1).Key() {
		t.Error("distinct coordinates must not share a key")
	}
}
