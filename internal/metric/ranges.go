package metric

// Default bounds used for keys that have never been observed.
const (
	defaultMin = 0.0
	defaultMax = 1.0
)

// Ranges tracks the running minimum and maximum observed for every key,
// plus the per-hand locked boundaries captured by calibration. The running
// range only ever widens; locks override it for normalization without
// touching the tracked values.
//
// The pipeline is single-threaded (one frame at a time, commands applied
// between frames), so Ranges performs no locking of its own.
type Ranges struct {
	globalMin map[Key]float64
	globalMax map[Key]float64
	lockedMin map[Hand]map[Key]float64
	lockedMax map[Hand]map[Key]float64
}

// NewRanges creates an empty tracker: no observations, no locks.
func NewRanges() *Ranges {
	return &Ranges{
		globalMin: make(map[Key]float64),
		globalMax: make(map[Key]float64),
		lockedMin: map[Hand]map[Key]float64{Left: {}, Right: {}},
		lockedMax: map[Hand]map[Key]float64{Left: {}, Right: {}},
	}
}

// Observe widens the running range for key to include value.
//
// A max lock on the key freezes tracking of both boundaries until cleared;
// a min lock alone gates nothing. This asymmetry matches the tracker's
// established calibration feel and is deliberate (see DESIGN.md).
func (r *Ranges) Observe(key Key, value float64) {
	if _, locked := r.lockedMax[key.Hand][key]; locked {
		return
	}

	if current, ok := r.globalMin[key]; !ok || value < current {
		r.globalMin[key] = value
	}
	if current, ok := r.globalMax[key]; !ok || value > current {
		r.globalMax[key] = value
	}
}

// Effective returns the (min, max) pair used for normalization: the locked
// boundary when present, the running boundary otherwise, and the defaults
// 0 and 1 for a key never observed.
func (r *Ranges) Effective(key Key) (min, max float64) {
	min = defaultMin
	if v, ok := r.globalMin[key]; ok {
		min = v
	}
	if v, ok := r.lockedMin[key.Hand][key]; ok {
		min = v
	}

	max = defaultMax
	if v, ok := r.globalMax[key]; ok {
		max = v
	}
	if v, ok := r.lockedMax[key.Hand][key]; ok {
		max = v
	}

	return min, max
}

// LockMin snapshots the current running minimums of hand's keys as that
// hand's locked minimums, replacing any previous min lock. Returns the
// number of metrics captured.
func (r *Ranges) LockMin(hand Hand) int {
	locked := make(map[Key]float64)
	for key, v := range r.globalMin {
		if key.Hand == hand {
			locked[key] = v
		}
	}
	r.lockedMin[hand] = locked
	return len(locked)
}

// LockMax snapshots the current running maximums of hand's keys as that
// hand's locked maximums, replacing any previous max lock. While a max lock
// is in place, Observe stops widening that hand's ranges. Returns the
// number of metrics captured.
func (r *Ranges) LockMax(hand Hand) int {
	locked := make(map[Key]float64)
	for key, v := range r.globalMax {
		if key.Hand == hand {
			locked[key] = v
		}
	}
	r.lockedMax[hand] = locked
	return len(locked)
}

// Clear removes both locks for hand, returning it to pure running-range
// tracking. The running min/max themselves are not reset.
func (r *Ranges) Clear(hand Hand) {
	r.lockedMin[hand] = make(map[Key]float64)
	r.lockedMax[hand] = make(map[Key]float64)
}
