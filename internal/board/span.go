package board

// Span is an inclusive integer progression from From to To.
// When From > To the span counts down. Step is the absolute stride;
// zero is treated as 1.
//
// Unlike Kotlin's a..b, a span with From > To is never empty: Range(4, 1)
// yields 4 3 2 1, the same as 4 downTo 1.
type Span struct {
	From int
	To   int
	Step int
}

// Range returns the span from..to with stride 1.
// Range(1, 4) yields 1 2 3 4, Range(4, 1) yields 4 3 2 1.
func Range(from, to int) Span {
	return Span{From: from, To: to, Step: 1}
}

// Full returns the ascending span 1..width.
func Full(width int) Span {
	return Range(1, width)
}

// FullReversed returns the descending span width..1.
func FullReversed(width int) Span {
	return Range(width, 1)
}

// By returns a copy of the span with the given stride.
func (s Span) By(step int) Span {
	if step < 0 {
		step = -step
	}
	s.Step = step
	return s
}

// Descending reports whether the span counts down.
func (s Span) Descending() bool {
	return s.From > s.To
}

// Reversed returns the span walked in the opposite direction.
// For strides greater than one the new start is the last value actually
// reached, so Range(1, 6).By(2).Reversed() yields 5 3 1.
func (s Span) Reversed() Span {
	return Span{From: s.last(), To: s.From, Step: s.stride()}
}

// Clamp restricts the span to values in [lo, hi], keeping its direction and
// stride phase. Returns false when no value of the span falls in range.
// Range(-3, 10).By(2).Clamp(1, 4) yields 1 3.
func (s Span) Clamp(lo, hi int) (Span, bool) {
	if lo > hi {
		return Span{}, false
	}
	step := uint(s.stride())

	if s.Descending() {
		if s.From < lo || s.To > hi {
			return Span{}, false
		}
		first, end := s.From, max(s.To, lo)
		if first > hi {
			// Differences are computed in uint so extreme endpoints cannot overflow.
			off := roundUp(uint(s.From-hi), step)
			if off > uint(s.From-end) {
				return Span{}, false
			}
			first = s.From - int(off)
		}
		return Span{From: first, To: end, Step: int(step)}, true
	}

	if s.From > hi || s.To < lo {
		return Span{}, false
	}
	first, end := s.From, min(s.To, hi)
	if first < lo {
		off := roundUp(uint(lo-s.From), step)
		if off > uint(end-s.From) {
			return Span{}, false
		}
		first = s.From + int(off)
	}
	return Span{From: first, To: end, Step: int(step)}, true
}

// Values enumerates the span in order.
// Enumerating a span with huge bounds allocates accordingly; Row and Column
// clamp to the board first.
func (s Span) Values() []int {
	var vals []int
	s.each(func(v int) {
		vals = append(vals, v)
	})
	if vals == nil {
		vals = []int{}
	}
	return vals
}

// each calls fn for every value without wrapping past the int range.
func (s Span) each(fn func(int)) {
	step := uint(s.stride())
	v := s.From
	for {
		fn(v)
		if s.Descending() {
			if uint(v-s.To) < step {
				return
			}
			v -= int(step)
		} else {
			if uint(s.To-v) < step {
				return
			}
			v += int(step)
		}
	}
}

// last returns the final value the span reaches.
func (s Span) last() int {
	step := uint(s.stride())
	if s.Descending() {
		return s.From - int(uint(s.From-s.To)/step*step)
	}
	return s.From + int(uint(s.To-s.From)/step*step)
}

// roundUp returns the smallest multiple of step that is >= d, saturating at
// the uint maximum.
func roundUp(d, step uint) uint {
	n := d / step * step
	if n == d {
		return n
	}
	if n+step < n {
		return ^uint(0)
	}
	return n + step
}

func (s Span) stride() int {
	if s.Step <= 0 {
		return 1
	}
	return s.Step
}
