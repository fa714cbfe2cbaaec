package term

// saturating is a cursor coordinate which never leaves [0, max].
type saturating struct {
	val int
	max int
}

func newSaturating(bound int) saturating {
	return saturating{max: bound}
}

// set assigns v, clamped to the bounds.
func (s *saturating) set(v int) {
	s.val = min(max(v, 0), s.max)
}

// peek reports the result of adding d, and whether it would exceed the
// upper bound. s is not modified.
func (s saturating) peek(d int) (int, bool) {
	r := s.val + d
	return r, r > s.max
}

// sub subtracts d, stopping at 0.
func (s *saturating) sub(d int) {
	s.val = max(s.val-d, 0)
}
