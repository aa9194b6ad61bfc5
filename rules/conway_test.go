package rules

import "testing"

func TestStandardSurvival(t *testing.T) {
	want := map[int]bool{
		0: false,
		1: false,
		2: true,
		3: true,
		4: false,
		5: false,
		6: false,
		7: false,
		8: false,
	}
	for neighbors := 0; neighbors <= 8; neighbors++ {
		if got := Standard.NextState(neighbors); got != want[neighbors] {
			t.Errorf("Standard.NextState(%d) = %v, want %v", neighbors, got, want[neighbors])
		}
	}
}

func TestPolicyFuncAdapter(t *testing.T) {
	var sawNeighbors int
	p := PolicyFunc(func(aliveNeighbors int) bool {
		sawNeighbors = aliveNeighbors
		return aliveNeighbors == 5
	})

	if !p.NextState(5) {
		t.Error("PolicyFunc did not forward to the wrapped function")
	}
	if sawNeighbors != 5 {
		t.Errorf("wrapped function saw %d neighbors, want 5", sawNeighbors)
	}
	if p.NextState(2) {
		t.Error("PolicyFunc(2) = true, want false for a rule that only accepts 5")
	}
}
