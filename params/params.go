/*
	The `params` package holds the legislation parameter tree: every
	number the formulas in `rules` reach for, loaded from a directory of
	yaml files and addressed by dotted path (the file's path relative to
	the bundle root, separators turned to dots, extension dropped).

	Every parameter is *dated*: a leaf carries a series of
	`(start instant, value)` pairs, and resolution picks the latest value
	whose start is at-or-before the instant asked about.  This is how the
	same tree answers for 2016 and 2017 calculations with different
	rates and nobody has to version whole files.
*/
package params

import (
	"sort"

	"yuisekin.net/fisca/def"
)

type Tree struct {
	leaves map[string]*Leaf
}

// A leaf is either a dated scalar (Values set) or a dated bracket scale
// (Brackets set); never both.
type Leaf struct {
	Path        string
	Description string
	Reference   string
	Values      DatedValues
	Brackets    []Bracket
}

func (l *Leaf) IsScale() bool {
	return l.Brackets != nil
}

type DatedValues []DatedValue

type DatedValue struct {
	At    def.Instant
	Value float64
}

// Latest value dated at-or-before the instant.  Second return is false
// if the parameter hadn't come into force yet.
func (vs DatedValues) At(at def.Instant) (float64, bool) {
	for i := len(vs) - 1; i >= 0; i-- {
		if at.AtOrAfter(vs[i].At) {
			return vs[i].Value, true
		}
	}
	return 0, false
}

func (vs DatedValues) sort() {
	sort.Slice(vs, func(i, j int) bool {
		a, b := vs[i].At, vs[j].At
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Month < b.Month
	})
}

// One bracket of a marginal scale: both the threshold and the rate are
// themselves dated series.
type Bracket struct {
	Threshold DatedValues
	Rate      DatedValues
}

func (t *Tree) Len() int {
	return len(t.leaves)
}

// All parameter paths, sorted.  Used by the introspection API.
func (t *Tree) Paths() []string {
	paths := make([]string, 0, len(t.leaves))
	for p := range t.leaves {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Panics NotFoundError for unknown paths.
func (t *Tree) Leaf(path string) *Leaf {
	l, ok := t.leaves[path]
	if !ok {
		panic(NotFoundError.New("no parameter at path %q", path))
	}
	return l
}

// Scalar parameter resolved at an instant.  Panics NotFoundError if the
// path is unknown, names a scale, or has no value in force yet.
func (t *Tree) At(path string, at def.Instant) float64 {
	l := t.Leaf(path)
	if l.IsScale() {
		panic(NotFoundError.New("parameter %q is a bracket scale, not a scalar", path))
	}
	v, ok := l.Values.At(at)
	if !ok {
		panic(NotFoundError.New("parameter %q has no value in force at %s", path, at))
	}
	return v
}

/*
	Bracket-scale parameter resolved at an instant: every threshold and
	rate pinned to its value in force, ready to `Calc` against.  Brackets
	whose threshold or rate hasn't come into force yet are omitted.
*/
func (t *Tree) ScaleAt(path string, at def.Instant) *Scale {
	l := t.Leaf(path)
	if !l.IsScale() {
		panic(NotFoundError.New("parameter %q is a scalar, not a bracket scale", path))
	}
	s := &Scale{}
	for _, b := range l.Brackets {
		threshold, ok1 := b.Threshold.At(at)
		rate, ok2 := b.Rate.At(at)
		if !ok1 || !ok2 {
			continue
		}
		s.Brackets = append(s.Brackets, ScaleBracket{Threshold: threshold, Rate: rate})
	}
	if len(s.Brackets) == 0 {
		panic(NotFoundError.New("scale %q has no brackets in force at %s", path, at))
	}
	sort.Slice(s.Brackets, func(i, j int) bool {
		return s.Brackets[i].Threshold < s.Brackets[j].Threshold
	})
	return s
}
