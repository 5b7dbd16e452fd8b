package sim

import (
	"context"
	"testing"

	"github.com/san-kum/coulomb/internal/preset"
)

func TestRunFixedSteps(t *testing.T) {
	s, err := New(testCatalog(), 0)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if err := s.Run(context.Background(), 20, nil); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if s.Steps != 20 {
		t.Errorf("expected 20 steps, got %d", s.Steps)
	}
	if s.Running {
		t.Error("running flag should clear when the run ends")
	}
}

func TestRunCallbackStopsEarly(t *testing.T) {
	s, err := New(testCatalog(), 0)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	calls := 0
	err = s.Run(context.Background(), 100, func(step int) bool {
		calls++
		return step < 4
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if calls != 5 {
		t.Errorf("expected 5 callback calls, got %d", calls)
	}
	if s.Steps != 5 {
		t.Errorf("expected 5 steps, got %d", s.Steps)
	}
}

func TestRunHonorsContext(t *testing.T) {
	s, err := New(testCatalog(), 0)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Run(ctx, 100, nil); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if s.Steps != 0 {
		t.Errorf("expected no steps after pre-canceled run, got %d", s.Steps)
	}
}

func TestRunRejectsBadSteps(t *testing.T) {
	s, err := New(testCatalog(), 0)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if err := s.Run(context.Background(), 0, nil); err == nil {
		t.Error("expected error for zero steps")
	}
	if err := s.Run(context.Background(), -5, nil); err == nil {
		t.Error("expected error for negative steps")
	}
}

func TestSweepRunsAllCombinations(t *testing.T) {
	catalog := testCatalog()
	dts := []float64{0.001, 0.005}

	results, err := Sweep(context.Background(), catalog, dts, 50)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(results) != len(catalog)*len(dts) {
		t.Fatalf("expected %d results, got %d", len(catalog)*len(dts), len(results))
	}

	for i, r := range results {
		wantPreset := catalog[i/len(dts)].Name
		wantDt := dts[i%len(dts)]
		if r.Preset != wantPreset || r.Dt != wantDt {
			t.Errorf("result %d: expected %s/%g, got %s/%g", i, wantPreset, wantDt, r.Preset, r.Dt)
		}
		if r.Steps != 50 {
			t.Errorf("result %d: expected 50 steps, got %d", i, r.Steps)
		}
		if r.EnergyDrift < 0 {
			t.Errorf("result %d: drift should be non-negative", i)
		}
	}
}

func TestSweepIsolation(t *testing.T) {
	catalog := []preset.Preset{testCatalog()[0]}

	if _, err := Sweep(context.Background(), catalog, []float64{0.005}, 10); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	// Concurrent runs must not share or mutate the catalog.
	if catalog[0].Charges[0].Pos.X != 4 {
		t.Error("sweep mutated the preset catalog")
	}
}
