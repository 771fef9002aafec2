package trick

import (
	"math"
	"sort"
)

// Stats summarizes integer samples.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"std_dev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
	// Raw samples if the caller needs histograms/exports
	Samples []int `json:"-"`
}

// Report summarizes a sampling run of repeated generation calls.
type Report struct {
	Trials        int            `json:"trials"`
	Lengths       Stats          `json:"lengths"`
	EarlyStops    int            `json:"early_stops"`
	EarlyStopRate float64        `json:"early_stop_rate"`
	MoveCounts    map[string]int `json:"move_counts"`
}

// Sample runs trials generation calls with identical params and reports
// the length distribution, how often the walk dead-ended short of a
// requested target, and how often each move appeared. Early stops are only
// counted when p.Length pins a target; with a rolled length there is no
// shortfall to measure.
func Sample(g *Generator, p Params, trials int) Report {
	if trials <= 0 {
		return Report{}
	}
	rep := Report{Trials: trials, MoveCounts: make(map[string]int)}
	samples := make([]int, trials)
	for i := 0; i < trials; i++ {
		combo := g.Generate(p)
		samples[i] = len(combo)
		if p.Length != nil && *p.Length > 0 && len(combo) < *p.Length {
			rep.EarlyStops++
		}
		for _, t := range combo {
			rep.MoveCounts[t.MoveID]++
		}
	}
	rep.Lengths = calcStats(samples)
	rep.EarlyStopRate = float64(rep.EarlyStops) / float64(trials)
	return rep
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// population variance
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(cp, 0.50),
		P90:     percentile(cp, 0.90),
		P99:     percentile(cp, 0.99),
		Samples: xs,
	}
}

// percentile interpolates linearly between the two nearest ranks.
func percentile(sorted []int, p float64) float64 {
	n := len(sorted)
	if n == 1 || p <= 0 {
		return float64(sorted[0])
	}
	if p >= 1 {
		return float64(sorted[n-1])
	}
	pos := p * float64(n-1)
	i := int(math.Floor(pos))
	f := pos - float64(i)
	if i+1 >= n {
		return float64(sorted[i])
	}
	return float64(sorted[i])*(1-f) + float64(sorted[i+1])*f
}
