package model

import (
	"math"
	"testing"
)

func TestVec3_Distance(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 6, Z: 3}

	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
	if got := a.FlatDistance(b); got != 3 {
		t.Errorf("FlatDistance() = %v, want 3", got)
	}
}

func TestVec3_NormZero(t *testing.T) {
	if got := (Vec3{}).Norm(); got != (Vec3{}) {
		t.Errorf("Norm() of zero = %v, want zero", got)
	}
}

func TestYawTo_Forward(t *testing.T) {
	tests := []struct {
		name string
		to   Vec3
		want float64
	}{
		{"north", Vec3{Z: 1}, 0},
		{"east", Vec3{X: 1}, 90},
		{"west", Vec3{X: -1}, -90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaw := YawTo(Vec3{}, tt.to)
			if math.Abs(yaw-tt.want) > 1e-9 {
				t.Errorf("YawTo() = %v, want %v", yaw, tt.want)
			}
			f := Forward(yaw)
			if f.Distance(tt.to) > 1e-9 {
				t.Errorf("Forward(%v) = %v, want %v", yaw, f, tt.to)
			}
		})
	}
}

func TestSmoothYaw_ShortestArc(t *testing.T) {
	// 350 -> 10 should pass through 0, not 180.
	got := SmoothYaw(350, 10, 0.5)
	if math.Abs(got-0) > 1e-9 && math.Abs(got-360) > 1e-9 {
		t.Errorf("SmoothYaw(350, 10, 0.5) = %v, want 0", got)
	}

	if got := SmoothYaw(0, 90, 2); math.Abs(got-90) > 1e-9 {
		t.Errorf("SmoothYaw clamps t: got %v, want 90", got)
	}
}
