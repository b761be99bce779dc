package bnb

import "context"

// search holds the state of one depth-first branch-and-bound run. All
// objective coefficients are treated generically (a coefficient may be
// negative — e.g. under a Maximize model negated to Minimize), so the
// bound for each unfixed variable optimistically picks whichever of
// {0,1} is cheaper rather than assuming non-negativity.
type search struct {
	ctx context.Context

	n           int
	obj         []float64
	constraints []constraint

	assigned []int8 // -1 unknown, 0 or 1 once fixed

	best      []int8
	bestObj   float64
	truncated bool // true if the search was cut short by ctx before proving optimality

	nodes int
}

const nodeCheckInterval = 2048

func (s *search) run() {
	s.branch(0, 0)
}

// branch explores the subtree rooted at fixing variables depth..n-1,
// given depth (the current fixed prefix length) and partialObj (the
// objective contribution of variables already fixed).
func (s *search) branch(depth int, partialObj float64) {
	s.nodes++
	if s.nodes%nodeCheckInterval == 0 && s.ctx.Err() != nil {
		s.truncated = true
		return
	}

	if partialObj+s.remainingLowerBound(depth) >= s.bestObj {
		return
	}

	if !s.feasiblePartial(depth) {
		return
	}

	if depth == s.n {
		s.recordIncumbent(partialObj)
		return
	}

	// Try 0 first, then 1: for a coverage-heavy assignment model this
	// explores the sparser (cheaper) branch first, tightening bestObj
	// sooner and pruning more of the 1-branch.
	for _, val := range [2]int8{0, 1} {
		s.assigned[depth] = val
		s.branch(depth+1, partialObj+float64(val)*s.obj[depth])
		if s.truncated {
			s.assigned[depth] = -1
			return
		}
	}
	s.assigned[depth] = -1
}

// remainingLowerBound is the best possible additional objective
// contribution from variables depth..n-1, ignoring constraints: each
// unfixed variable independently picks whichever of {0,1} is cheaper.
func (s *search) remainingLowerBound(depth int) float64 {
	var bound float64
	for i := depth; i < s.n; i++ {
		if s.obj[i] < 0 {
			bound += s.obj[i]
		}
	}
	return bound
}

// feasiblePartial checks every constraint's achievable range against
// its bounds, given that variables 0..depth-1 are fixed and the rest
// range freely over {0,1}. Any constraint whose achievable range
// cannot reach [lower, upper] prunes this branch.
func (s *search) feasiblePartial(depth int) bool {
	for _, c := range s.constraints {
		var min, max float64
		for i, idx := range c.idx {
			coef := c.coefs[i]
			if idx < depth {
				v := float64(s.assigned[idx])
				min += coef * v
				max += coef * v
				continue
			}
			if coef >= 0 {
				max += coef
			} else {
				min += coef
			}
		}
		if max < c.lower-1e-9 || min > c.upper+1e-9 {
			return false
		}
	}
	return true
}

func (s *search) recordIncumbent(objective float64) {
	if objective >= s.bestObj {
		return
	}
	s.bestObj = objective
	s.best = append([]int8(nil), s.assigned...)
}
