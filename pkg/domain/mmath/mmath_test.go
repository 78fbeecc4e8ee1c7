// 指示: miu200521358
package mmath

import (
	"math"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#33FF33FF")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if math.Abs(c.R-0.2) > 1e-9 || c.G != 1 || math.Abs(c.B-0.2) > 1e-9 || c.A != 1 {
		t.Fatalf("color mismatch: got=%+v", c)
	}
	if c.Hex() != "33FF33FF" {
		t.Fatalf("hex mismatch: got=%s", c.Hex())
	}

	opaque, err := ParseHexColor("FF9900")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opaque.A != 1 || opaque.Hex() != "FF9900FF" {
		t.Fatalf("rgb color should be opaque: got=%s", opaque.Hex())
	}

	for _, text := range []string{"", "FFF", "GG0000", "123456789"} {
		if _, err := ParseHexColor(text); err == nil {
			t.Fatalf("invalid color should fail: %q", text)
		}
	}
}

func TestQuaternionMirroredX(t *testing.T) {
	q := NewQuaternion(0.1, 0.2, 0.3, 0.9)
	m := q.MirroredX()
	if m.X() != 0.1 || m.Y() != -0.2 || m.Z() != -0.3 || m.W() != 0.9 {
		t.Fatalf("mirror mismatch: got=%v", m)
	}
	if !m.MirroredX().Equals(q) {
		t.Fatalf("mirror should be involutive")
	}
}

func TestQuaternionRotateAndInvert(t *testing.T) {
	q := NewQuaternionFromAxisAngle(NewVec3(0, 0, 1), math.Pi/2)
	got := q.Rotate(NewVec3(1, 0, 0))
	if !got.NearEquals(NewVec3(0, 1, 0), 1e-9) {
		t.Fatalf("rotate mismatch: got=%v", got)
	}
	back := q.Inverted().Rotate(got)
	if !back.NearEquals(NewVec3(1, 0, 0), 1e-9) {
		t.Fatalf("inverse rotate mismatch: got=%v", back)
	}
	if !q.Muled(q.Inverted()).NearEquals(QuaternionIdentity(), 1e-9) {
		t.Fatalf("q * q^-1 should be identity")
	}
}

func TestVec3Helpers(t *testing.T) {
	v := NewVec3(2, 4, 6)
	if !v.Dived(NewVec3(2, 0, 3)).Equals(NewVec3(1, 0, 2)) {
		t.Fatalf("div mismatch: got=%v", v.Dived(NewVec3(2, 0, 3)))
	}
	if !v.MirroredX().Equals(NewVec3(-2, 4, 6)) {
		t.Fatalf("mirror mismatch")
	}
	if !Vec3One().IsOne() || v.IsUniform() || !Vec3Uniform(3).IsUniform() {
		t.Fatalf("predicate mismatch")
	}
	if !Approximately(1.0, 1.0+1e-9) || Approximately(1.0, 1.001) {
		t.Fatalf("approximately mismatch")
	}
}
