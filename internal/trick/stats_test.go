package trick

import (
	"math"
	"testing"
)

func TestCalcStats(t *testing.T) {
	s := calcStats([]int{1, 2, 3, 4})
	if s.Mean != 2.5 {
		t.Fatalf("mean = %f, want 2.5", s.Mean)
	}
	if s.Var != 1.25 {
		t.Fatalf("var = %f, want 1.25", s.Var)
	}
	if math.Abs(s.StdDev-math.Sqrt(1.25)) > 1e-12 {
		t.Fatalf("stddev = %f", s.StdDev)
	}
	if s.P50 != 2.5 {
		t.Fatalf("p50 = %f, want 2.5", s.P50)
	}
	// pos = 0.9*3 = 2.7 -> 3*(0.3) + 4*(0.7)
	if math.Abs(s.P90-3.7) > 1e-12 {
		t.Fatalf("p90 = %f, want 3.7", s.P90)
	}
}

func TestCalcStatsDegenerate(t *testing.T) {
	if s := calcStats(nil); s.Mean != 0 || s.Samples != nil {
		t.Fatalf("empty input should produce a zero Stats, got %+v", s)
	}
	s := calcStats([]int{7})
	if s.Mean != 7 || s.P50 != 7 || s.P99 != 7 || s.Var != 0 {
		t.Fatalf("single sample stats wrong: %+v", s)
	}
}

func TestSampleCountsEarlyStops(t *testing.T) {
	// every combo dead-ends after the opening
	cat := mustCatalog(t, Rules{}, chainMove("into-toe", 1, DirectionFront, PointHeel, SpecSame, PointToe))
	g := NewGenerator(cat, Rules{}, NewSeededRNG(1))

	rep := Sample(g, Params{Length: intPtr(3), MaxStage: StageMax}, 100)
	if rep.Trials != 100 || len(rep.Lengths.Samples) != 100 {
		t.Fatalf("trial bookkeeping wrong: %+v", rep)
	}
	if rep.EarlyStops != 100 || rep.EarlyStopRate != 1.0 {
		t.Fatalf("every trial dead-ends, got stops=%d rate=%f", rep.EarlyStops, rep.EarlyStopRate)
	}
	if rep.Lengths.Mean != 1.0 {
		t.Fatalf("all combos have one trick, mean=%f", rep.Lengths.Mean)
	}
	if rep.MoveCounts["into-toe"] != 100 {
		t.Fatalf("move counts wrong: %v", rep.MoveCounts)
	}
}

func TestSampleWithoutTargetNeverCountsStops(t *testing.T) {
	cat := mustCatalog(t, Rules{}, chainMove("into-toe", 1, DirectionFront, PointHeel, SpecSame, PointToe))
	g := NewGenerator(cat, Rules{}, NewSeededRNG(2))
	rep := Sample(g, Params{MaxStage: StageMax}, 50)
	if rep.EarlyStops != 0 {
		t.Fatalf("no pinned target, so no early stops; got %d", rep.EarlyStops)
	}
}

func TestSampleFullLengthRuns(t *testing.T) {
	g := NewGenerator(loopCatalog(t), Rules{}, NewSeededRNG(3))
	rep := Sample(g, Params{Length: intPtr(4), MaxStage: StageMax}, 200)
	if rep.EarlyStops != 0 || rep.Lengths.Mean != 4.0 {
		t.Fatalf("loop catalog never stops early: %+v", rep.Lengths)
	}
}

func TestSampleZeroTrials(t *testing.T) {
	g := NewGenerator(loopCatalog(t), Rules{}, NewSeededRNG(4))
	if rep := Sample(g, Params{MaxStage: StageMax}, 0); rep.Trials != 0 || rep.MoveCounts != nil {
		t.Fatalf("zero trials should produce a zero report, got %+v", rep)
	}
}
