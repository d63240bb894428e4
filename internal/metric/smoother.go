package metric

// DefaultWindow is the number of recent samples averaged per key.
const DefaultWindow = 5

// Smoother emits the moving average of the last window values per key.
// Each key gets a fixed-capacity ring buffer, created on first use, so
// memory is bounded at 14 x window floats. This is a hard-window moving
// average, not an exponential decay.
type Smoother struct {
	window int
	rings  map[Key]*ring
}

// ring is a fixed-capacity circular buffer of float64 samples.
type ring struct {
	vals []float64
	next int
	full bool
}

func newRing(capacity int) *ring {
	return &ring{vals: make([]float64, 0, capacity)}
}

// push appends v, evicting the oldest sample once at capacity, and returns
// the mean of the current contents.
func (b *ring) push(v float64) float64 {
	if !b.full {
		b.vals = append(b.vals, v)
		if len(b.vals) == cap(b.vals) {
			b.full = true
		}
	} else {
		b.vals[b.next] = v
		b.next = (b.next + 1) % len(b.vals)
	}

	var sum float64
	for _, s := range b.vals {
		sum += s
	}
	return sum / float64(len(b.vals))
}

// NewSmoother creates a Smoother with the given window size. Window sizes
// below 1 fall back to DefaultWindow.
func NewSmoother(window int) *Smoother {
	if window < 1 {
		window = DefaultWindow
	}
	return &Smoother{
		window: window,
		rings:  make(map[Key]*ring),
	}
}

// Window returns the configured window size.
func (s *Smoother) Window() int {
	return s.window
}

// Smooth appends value to the key's buffer and returns the arithmetic mean
// of the buffer's current contents.
func (s *Smoother) Smooth(key Key, value float64) float64 {
	b, ok := s.rings[key]
	if !ok {
		b = newRing(s.window)
		s.rings[key] = b
	}
	return b.push(value)
}
