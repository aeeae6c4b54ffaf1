package model

import "testing"

func TestHealth_SingleDeath(t *testing.T) {
	h := NewHealth(10)

	var fatalCount int
	for _, dmg := range []int{6, 6, 6} {
		if _, fatal := h.Apply(dmg); fatal {
			fatalCount++
		}
	}

	if fatalCount != 1 {
		t.Errorf("fatal count = %d, want 1", fatalCount)
	}
	if h.Current() != 0 {
		t.Errorf("Current() = %d, want 0", h.Current())
	}
	if !h.IsDead() {
		t.Error("IsDead() = false after lethal damage")
	}
}

func TestHealth_NonIncreasing(t *testing.T) {
	h := NewHealth(20)
	prev := h.Current()

	for _, dmg := range []int{3, -5, 0, 4, 100, 7} {
		h.Apply(dmg)
		if h.Current() > prev {
			t.Fatalf("health increased from %d to %d after Apply(%d)", prev, h.Current(), dmg)
		}
		if h.Current() < 0 {
			t.Fatalf("health dropped below zero: %d", h.Current())
		}
		prev = h.Current()
	}
}

func TestHealth_ApplyAfterDeath(t *testing.T) {
	h := NewHealth(5)
	h.Apply(5)

	applied, fatal := h.Apply(1)
	if applied || fatal {
		t.Errorf("Apply after death = (%v, %v), want (false, false)", applied, fatal)
	}
}

func TestNewHealth_NonPositiveStartsDead(t *testing.T) {
	h := NewHealth(0)
	if !h.IsDead() {
		t.Error("NewHealth(0) should start dead")
	}
}
