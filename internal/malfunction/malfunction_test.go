package malfunction

import (
	"path/filepath"
	"testing"

	"github.com/hagrid67/flatland-2019/internal/core"
	"github.com/hagrid67/flatland-2019/internal/snapshot"
)

func TestProbMonotonicInRate(t *testing.T) {
	if Prob(0) != 0 {
		t.Fatal("zero rate must yield zero probability")
	}
	if Prob(-3) != 0 {
		t.Fatal("negative rate must yield zero probability")
	}
	rates := []float64{1, 2, 5, 10, 100, 1000}
	for i := 1; i < len(rates); i++ {
		lo, hi := Prob(rates[i]), Prob(rates[i-1])
		if !(lo < hi) {
			t.Fatalf("Prob(%g)=%g must be below Prob(%g)=%g", rates[i], lo, rates[i-1], hi)
		}
	}
}

func TestZeroRateNeverBreaks(t *testing.T) {
	gen, _ := FromParams(ProcessData{Rate: 0, MinDuration: 3, MaxDuration: 10})
	rng := core.NewRNG(7)
	for step := 0; step < 10000; step++ {
		if d := gen.Generate(0, rng); d != 0 {
			t.Fatalf("step %d: zero-rate process produced a %d-step malfunction", step, d)
		}
	}
}

func TestDurationIsSampledFloorPlusOne(t *testing.T) {
	// With min == max == 5 the uniform draw is always 5, so every triggered
	// malfunction lasts exactly 6 steps.
	gen, _ := FromParams(ProcessData{Rate: 2, MinDuration: 5, MaxDuration: 5})
	rng := core.NewRNG(99)
	triggered := 0
	for step := 0; step < 1000; step++ {
		d := gen.Generate(0, rng)
		if d == 0 {
			continue
		}
		triggered++
		if d != 6 {
			t.Fatalf("triggered duration %d, want exactly 6", d)
		}
	}
	if triggered == 0 {
		t.Fatal("rate 2 over 1000 steps must trigger at least once")
	}
}

func TestDurationRange(t *testing.T) {
	gen, _ := FromParams(ProcessData{Rate: 1, MinDuration: 2, MaxDuration: 6})
	rng := core.NewRNG(3)
	for step := 0; step < 2000; step++ {
		d := gen.Generate(0, rng)
		if d == 0 {
			continue
		}
		if d < 3 || d > 7 {
			t.Fatalf("duration %d outside [min+1, max+1] = [3,7]", d)
		}
	}
}

func TestBrokenAgentNotEligible(t *testing.T) {
	gen, _ := FromParams(ProcessData{Rate: 1, MinDuration: 1, MaxDuration: 1})
	rng := core.NewRNG(11)
	for step := 0; step < 100; step++ {
		if d := gen.Generate(4, rng); d != 0 {
			t.Fatal("an already broken agent must not start a new malfunction")
		}
	}
}

func TestFromParamsRecordsData(t *testing.T) {
	want := ProcessData{Rate: 30, MinDuration: 2, MaxDuration: 8}
	_, data := FromParams(want)
	if data != want {
		t.Fatalf("process data %+v, want %+v", data, want)
	}
}

func TestNoneNeverDraws(t *testing.T) {
	gen, data := None()
	if data != (ProcessData{}) {
		t.Fatalf("disabled process data %+v, want zero values", data)
	}
	// The disabled generator must not consume randomness at all; a nil
	// source proves it.
	for step := 0; step < 10; step++ {
		if d := gen.Generate(0, nil); d != 0 {
			t.Fatal("disabled generator produced a malfunction")
		}
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	withParams := filepath.Join(dir, "with.mpk")
	err := snapshot.Save(withParams, &snapshot.Snapshot{
		AgentsStatic: []snapshot.Agent{},
		Malfunction:  &snapshot.Process{Rate: 25, MinDuration: 1, MaxDuration: 4},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	_, data, err := FromFile(withParams)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if data.Rate != 25 || data.MinDuration != 1 || data.MaxDuration != 4 {
		t.Fatalf("decoded process data %+v", data)
	}

	// A snapshot without the malfunction record disables the process.
	without := filepath.Join(dir, "without.mpk")
	if err := snapshot.Save(without, &snapshot.Snapshot{AgentsStatic: []snapshot.Agent{}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	gen, data, err := FromFile(without)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if data != (ProcessData{}) {
		t.Fatalf("missing malfunction record must disable the process, got %+v", data)
	}
	rng := core.NewRNG(5)
	for step := 0; step < 100; step++ {
		if gen.Generate(0, rng) != 0 {
			t.Fatal("disabled process produced a malfunction")
		}
	}
}
