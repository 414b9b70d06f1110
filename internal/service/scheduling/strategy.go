package scheduling

import (
	"sort"
	"sync"
)

// Strategy picks one groomer among available candidates
type Strategy interface {
	Name() string
	Pick(candidates []Candidate) Candidate
}

// NewStrategy returns the strategy registered under name, LeastLoaded by default
func NewStrategy(name string) Strategy {
	if name == StrategyRoundRobin {
		return &RoundRobin{}
	}
	return LeastLoaded{}
}

const (
	StrategyLeastLoaded = "least_loaded"
	StrategyRoundRobin  = "round_robin"
)

// LeastLoaded chooses the groomer with the fewest bookings that day,
// ties broken by definition order.
type LeastLoaded struct{}

func (LeastLoaded) Name() string { return StrategyLeastLoaded }

func (LeastLoaded) Pick(candidates []Candidate) Candidate {
	sorted := append([]Candidate(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DailyCount != sorted[j].DailyCount {
			return sorted[i].DailyCount < sorted[j].DailyCount
		}
		return sorted[i].index < sorted[j].index
	})
	return sorted[0]
}

// RoundRobin rotates through available groomers in definition order,
// continuing after the last groomer it picked.
type RoundRobin struct {
	mu        sync.Mutex
	lastIndex int
	started   bool
}

func (r *RoundRobin) Name() string { return StrategyRoundRobin }

func (r *RoundRobin) Pick(candidates []Candidate) Candidate {
	r.mu.Lock()
	defer r.mu.Unlock()

	sorted := append([]Candidate(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].index < sorted[j].index })

	chosen := sorted[0]
	if r.started {
		for _, c := range sorted {
			if c.index > r.lastIndex {
				chosen = c
				break
			}
		}
	}
	r.lastIndex = chosen.index
	r.started = true
	return chosen
}
