package params

import (
	"yuisekin.net/fisca/def"
)

var _ def.Scale = &Scale{}

// A marginal bracket scale pinned to one instant.
type Scale struct {
	Brackets []ScaleBracket // sorted ascending by threshold
}

type ScaleBracket struct {
	Threshold float64
	Rate      float64
}

/*
	Marginal calculation: each bracket's rate applies to the slice of
	`base` between its threshold and the next one.  A base below the
	first threshold owes nothing.
*/
func (s *Scale) Calc(base float64) float64 {
	total := 0.0
	for i, b := range s.Brackets {
		if base <= b.Threshold {
			break
		}
		upper := base
		if i+1 < len(s.Brackets) && s.Brackets[i+1].Threshold < base {
			upper = s.Brackets[i+1].Threshold
		}
		total += (upper - b.Threshold) * b.Rate
	}
	return total
}
