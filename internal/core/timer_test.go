package core

import (
	"testing"
	"time"
)

func TestFixedIntervalPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedInterval(100 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock = clock.Add(40 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not step before the interval elapsed")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should step once the interval elapsed")
	}
	if fs.ShouldStep() {
		t.Fatal("no time passed, should not step again")
	}
}

func TestSetInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedInterval(-time.Second)
	fs.now = func() time.Time { return clock }
	if fs.Interval() != 0 {
		t.Fatalf("negative interval should clamp to zero, got %v", fs.Interval())
	}
	for i := 0; i < 3; i++ {
		if !fs.ShouldStep() {
			t.Fatalf("zero interval should step on every call (call %d)", i)
		}
	}
	fs.SetInterval(250 * time.Millisecond)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", fs.Interval())
	}
}
