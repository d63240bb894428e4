package metric

// degenerateRange is the span below which a range cannot be normalized
// against; such keys yield 0 rather than dividing by (near) zero.
const degenerateRange = 1e-9

// Normalize maps value into [0,1] using the key's effective range. A
// degenerate range yields 0 until the range widens or is re-locked.
func (r *Ranges) Normalize(key Key, value float64) float64 {
	min, max := r.Effective(key)

	if max-min < degenerateRange {
		return 0.0
	}

	return clamp((value-min)/(max-min), 0.0, 1.0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
