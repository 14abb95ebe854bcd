package eve

// epoch is the per-query generation counter.
//
// Each query owns the stamp range [cur, cur+span-1]. A slot written with a
// stamp below cur belongs to an earlier query and reads as empty.
type epoch struct {
	cur     int32
	span    int32
	ceiling int32
}

func newEpoch(maxLen int, ceiling int32) epoch {
	return epoch{span: int32(maxLen) + 1, ceiling: ceiling}
}

// advance moves to the next query's stamp range. It reports true when the
// counter wrapped, in which case the caller must clear every stamped slot
// before using it.
func (e *epoch) advance() bool {
	wrapped := false
	if e.cur > e.ceiling-2*e.span {
		e.cur = 0
		wrapped = true
	}
	e.cur += e.span
	return wrapped
}

// rewind restarts counting; the caller clears stamped slots.
func (e *epoch) rewind() { e.cur = 0 }

// hop returns the stamp for hop h.
func (e *epoch) hop(h int) int32 { return e.cur + int32(h) }
