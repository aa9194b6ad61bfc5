package utils

import (
	"math"
	"testing"
	"time"
)

func TestNewStatsSetsStartTime(t *testing.T) {
	if NewStats().StartTime.IsZero() {
		t.Error("NewStats().StartTime is zero")
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 100*time.Millisecond)
	if s.TotalGenerations != 1 {
		t.Errorf("TotalGenerations = %d, want 1", s.TotalGenerations)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Errorf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 100 {
		t.Errorf("AveragePopulation = %v, want 100 after first update", s.AveragePopulation)
	}

	s.Update(2, 50, 200*time.Millisecond)
	if s.TotalGenerations != 2 {
		t.Errorf("TotalGenerations = %d, want 2", s.TotalGenerations)
	}
	if math.Abs(s.GenerationsPerSecond-5) > 1e-9 {
		t.Errorf("GenerationsPerSecond = %v, want 5", s.GenerationsPerSecond)
	}
	if want := 100*0.9 + 50*0.1; math.Abs(s.AveragePopulation-want) > 1e-9 {
		t.Errorf("AveragePopulation = %v, want %v", s.AveragePopulation, want)
	}
}

func TestStatsUpdateIgnoresZeroDuration(t *testing.T) {
	s := NewStats()
	s.Update(1, 10, 0)
	if s.GenerationsPerSecond != 0 {
		t.Errorf("GenerationsPerSecond = %v after zero duration, want 0", s.GenerationsPerSecond)
	}
}
