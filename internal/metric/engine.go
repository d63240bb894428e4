package metric

import (
	"fmt"

	"github.com/ayusman/mudra/internal/detector"
)

// Vector is one hand's output for one frame: the seven smoothed values in
// canonical metric order, each in [0,1].
type Vector [NumMetrics]float64

// Sink receives the per-hand output vector once per processed frame.
type Sink interface {
	Send(hand Hand, v Vector) error
}

// Engine owns all pipeline state — the range tracker, its calibration
// locks, and the smoothing buffers — and processes one detected hand per
// call. Construct one Engine at startup and keep it for the process's life;
// there is no persistence and no reset beyond process exit.
type Engine struct {
	extractor *Extractor
	ranges    *Ranges
	smoother  *Smoother
	sink      Sink
}

// NewEngine creates an Engine with empty tracking state. A window size
// below 1 selects the default smoothing window.
func NewEngine(sink Sink, window int) *Engine {
	return &Engine{
		extractor: NewExtractor(),
		ranges:    NewRanges(),
		smoother:  NewSmoother(window),
		sink:      sink,
	}
}

// Ranges exposes the engine's range tracker, which is also the calibration
// surface: LockMin, LockMax and Clear act on it per hand.
func (e *Engine) Ranges() *Ranges {
	return e.ranges
}

// Process runs one hand's skeleton through extraction, range tracking,
// normalization and smoothing, then forwards the assembled vector to the
// sink. It returns the vector and a display map keyed by the full metric
// key. A sink failure skips the hand's output for this frame; tracking
// state has already advanced and is not rolled back.
func (e *Engine) Process(hand Hand, lm *detector.HandLandmarks, width, height int) (Vector, map[Key]float64, error) {
	raw := e.extractor.Extract(lm, width, height)

	var vec Vector
	display := make(map[Key]float64, NumMetrics)

	for i, name := range names {
		key := Key{Hand: hand, Name: name}
		e.ranges.Observe(key, raw[i])
		normalized := e.ranges.Normalize(key, raw[i])
		vec[i] = e.smoother.Smooth(key, normalized)
		display[key] = vec[i]
	}

	if err := e.sink.Send(hand, vec); err != nil {
		return vec, display, fmt.Errorf("send %s vector: %w", hand, err)
	}

	return vec, display, nil
}
