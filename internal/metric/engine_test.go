package metric

import (
	"errors"
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

// captureSink records every vector handed to it.
type captureSink struct {
	hands   []Hand
	vectors []Vector
	err     error
}

func (s *captureSink) Send(hand Hand, v Vector) error {
	if s.err != nil {
		return s.err
	}
	s.hands = append(s.hands, hand)
	s.vectors = append(s.vectors, v)
	return nil
}

func TestEngine_FirstFrameIsDegenerate(t *testing.T) {
	sink := &captureSink{}
	e := NewEngine(sink, 5)

	open := detector.OpenHandLandmarks("Right")
	vec, display, err := e.Process(Right, &open, 640, 480)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// Every key has min == max after a single observation, so the whole
	// vector normalizes to zero.
	for i, v := range vec {
		if v != 0 {
			t.Errorf("vector[%d] = %f, want 0 on first frame", i, v)
		}
	}

	if len(display) != NumMetrics {
		t.Errorf("display map has %d entries, want %d", len(display), NumMetrics)
	}
	for key := range display {
		if key.Hand != Right {
			t.Errorf("display key %v belongs to %s, want Right", key, key.Hand)
		}
	}

	if len(sink.vectors) != 1 || sink.hands[0] != Right {
		t.Fatalf("sink received %d vectors for %v, want 1 for Right", len(sink.vectors), sink.hands)
	}
}

func TestEngine_RangeEstablishedOverFrames(t *testing.T) {
	sink := &captureSink{}
	e := NewEngine(sink, 5)

	open := detector.OpenHandLandmarks("Right")
	squeezed := detector.SqueezedHandLandmarks("Right")

	// Frame 1 (open): degenerate, all zeros, smoothing buffer [0].
	// Frame 2 (squeezed): new minimum, normalizes to 0, buffer [0,0].
	// Frame 3 (open): normalizes to 1, buffer [0,0,1], mean 1/3.
	e.Process(Right, &open, 640, 480)
	e.Process(Right, &squeezed, 640, 480)
	vec, _, err := e.Process(Right, &open, 640, 480)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// The knuckle spread is identical in both presets, so mcp_to_mcp stays
	// degenerate; every other metric separates open from squeezed.
	for i := 0; i < NumMetrics; i++ {
		if names[i] == MCPToMCP {
			if vec[i] != 0 {
				t.Errorf("mcp_to_mcp = %f, want 0 for degenerate range", vec[i])
			}
			continue
		}
		if math.Abs(vec[i]-1.0/3) > 1e-9 {
			t.Errorf("%s = %f, want %f", names[i], vec[i], 1.0/3)
		}
	}
}

func TestEngine_OutputAlwaysBounded(t *testing.T) {
	sink := &captureSink{}
	e := NewEngine(sink, 3)

	frames := []detector.HandLandmarks{
		detector.OpenHandLandmarks("Left"),
		detector.SqueezedHandLandmarks("Left"),
		detector.OpenHandLandmarks("Left"),
		detector.SqueezedHandLandmarks("Left"),
	}

	for i := range frames {
		vec, _, err := e.Process(Left, &frames[i], 1280, 720)
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		for j, v := range vec {
			if v < 0 || v > 1 {
				t.Errorf("frame %d vector[%d] = %f, out of [0,1]", i, j, v)
			}
		}
	}
}

func TestEngine_HandsIsolated(t *testing.T) {
	sink := &captureSink{}
	e := NewEngine(sink, 5)

	open := detector.OpenHandLandmarks("Right")
	squeezed := detector.SqueezedHandLandmarks("Right")
	e.Process(Right, &open, 640, 480)
	e.Process(Right, &squeezed, 640, 480)

	// Nothing was ever observed for the left hand.
	min, max := e.Ranges().Effective(Key{Hand: Left, Name: TipToMCP0})
	if min != 0.0 || max != 1.0 {
		t.Errorf("left effective range = (%f, %f), want untouched defaults (0, 1)", min, max)
	}
}

func TestEngine_LockMaxThroughCalibrationSurface(t *testing.T) {
	sink := &captureSink{}
	e := NewEngine(sink, 5)

	open := detector.OpenHandLandmarks("Right")
	squeezed := detector.SqueezedHandLandmarks("Right")
	e.Process(Right, &open, 640, 480)
	e.Process(Right, &squeezed, 640, 480)

	key := Key{Hand: Right, Name: TipToMCP0}
	_, maxBefore := e.Ranges().Effective(key)

	if n := e.Ranges().LockMax(Right); n != NumMetrics {
		t.Fatalf("LockMax captured %d metrics, want %d", n, NumMetrics)
	}

	// A wider hand no longer moves the effective maximum.
	wide := detector.OpenHandLandmarks("Right")
	e.Process(Right, &wide, 1920, 1080)
	if _, max := e.Ranges().Effective(key); max != maxBefore {
		t.Errorf("effective max after lock = %f, want %f", max, maxBefore)
	}

	e.Ranges().Clear(Right)
	e.Process(Right, &wide, 1920, 1080)
	if _, max := e.Ranges().Effective(key); max <= maxBefore {
		t.Errorf("effective max after clear = %f, want wider than %f", max, maxBefore)
	}
}

func TestEngine_SinkFailureSkipsOutput(t *testing.T) {
	wantErr := errors.New("receiver gone")
	sink := &captureSink{err: wantErr}
	e := NewEngine(sink, 5)

	open := detector.OpenHandLandmarks("Right")
	_, _, err := e.Process(Right, &open, 640, 480)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Process() error = %v, want %v", err, wantErr)
	}

	// Tracking state still advanced: the key has been observed.
	min, max := e.Ranges().Effective(Key{Hand: Right, Name: TipToMCP0})
	if min == 0.0 && max == 1.0 {
		t.Error("range tracker did not advance on sink failure")
	}
}
