package parallel

// Range is a half-open index range [Start, End) of a shading batch.
type Range struct {
	Start, End int
}

// SplitRange divides [0, n) into at most parts contiguous ranges of
// near-equal size. Returns nil if n <= 0. Trailing ranges absorb the
// remainder one element at a time so sizes differ by at most one.
func SplitRange(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	size := n / parts
	rem := n % parts

	ranges := make([]Range, 0, parts)
	start := 0
	for i := range parts {
		end := start + size
		if i < rem {
			end++
		}
		ranges = append(ranges, Range{Start: start, End: end})
		start = end
	}
	return ranges
}

// ForEachRange splits [0, n) across the pool's workers and runs fn on
// each range, blocking until all ranges complete. fn must be safe to
// call concurrently for disjoint ranges.
func (p *WorkerPool) ForEachRange(n int, fn func(r Range)) {
	ranges := SplitRange(n, p.workers)
	if len(ranges) == 0 {
		return
	}
	if len(ranges) == 1 {
		fn(ranges[0])
		return
	}

	work := make([]func(), len(ranges))
	for i, r := range ranges {
		work[i] = func() { fn(r) }
	}
	p.ExecuteAll(work)
}
