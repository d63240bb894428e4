package metric

import (
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

// syntheticHand builds a skeleton with hand-picked positions so every
// expected distance can be computed by hand. Only the landmarks the
// extractor reads are set; the rest stay at the origin.
func syntheticHand() *detector.HandLandmarks {
	var h detector.HandLandmarks

	h.Points[detector.Wrist] = detector.Point3D{X: 0.1, Y: 0.1}

	h.Points[detector.IndexMCP] = detector.Point3D{X: 0.1, Y: 0.1}
	h.Points[detector.MiddleMCP] = detector.Point3D{X: 0.2, Y: 0.1}
	h.Points[detector.RingMCP] = detector.Point3D{X: 0.3, Y: 0.1}
	h.Points[detector.PinkyMCP] = detector.Point3D{X: 0.4, Y: 0.1}

	h.Points[detector.IndexTip] = detector.Point3D{X: 0.1, Y: 0.4}
	h.Points[detector.MiddleTip] = detector.Point3D{X: 0.2, Y: 0.5}
	h.Points[detector.RingTip] = detector.Point3D{X: 0.3, Y: 0.2}
	h.Points[detector.PinkyTip] = detector.Point3D{X: 0.4, Y: 0.3}

	h.Points[detector.ThumbTip] = detector.Point3D{X: 0.4, Y: 0.5}

	return &h
}

func TestExtractor_Extract(t *testing.T) {
	e := NewExtractor()
	raw := e.Extract(syntheticHand(), 100, 100)

	// Tips sit directly above their knuckles, so each tip_to_mcp is a pure
	// y distance in a 100x100 frame.
	wantTips := [4]float64{30, 40, 10, 20}
	for i, want := range wantTips {
		if math.Abs(raw[i]-want) > 1e-9 {
			t.Errorf("tip_to_mcp_%d = %f, want %f", i, raw[i], want)
		}
	}

	// Thumb tip (0.4, 0.5) to index knuckle (0.1, 0.1): a 30-40-50 triangle.
	if math.Abs(raw[4]-50) > 1e-9 {
		t.Errorf("thumb_to_index_mcp = %f, want 50", raw[4])
	}

	// Mean fingertip-to-wrist distance, wrist at (0.1, 0.1).
	wantAvg := (30 + math.Sqrt(1700) + math.Sqrt(500) + math.Sqrt(1300)) / 4
	if math.Abs(raw[5]-wantAvg) > 1e-9 {
		t.Errorf("avg_tip_to_wrist = %f, want %f", raw[5], wantAvg)
	}

	// Knuckles are evenly spaced 10px apart on one line: pairwise distances
	// 10,20,30,10,20,10.
	wantMCP := (10.0 + 20 + 30 + 10 + 20 + 10) / 6
	if math.Abs(raw[6]-wantMCP) > 1e-9 {
		t.Errorf("mcp_to_mcp = %f, want %f", raw[6], wantMCP)
	}
}

func TestExtractor_AnisotropicScaling(t *testing.T) {
	e := NewExtractor()

	var h detector.HandLandmarks
	h.Points[detector.IndexMCP] = detector.Point3D{X: 0.0, Y: 0.0}
	h.Points[detector.IndexTip] = detector.Point3D{X: 0.1, Y: 0.2}

	// The x delta scales by width, the y delta by height: this is a
	// pixel-space distance, so resolution changes the value.
	raw := e.Extract(&h, 200, 100)
	want := math.Sqrt(20*20 + 20*20)
	if math.Abs(raw[0]-want) > 1e-9 {
		t.Errorf("tip_to_mcp_0 at 200x100 = %f, want %f", raw[0], want)
	}

	raw = e.Extract(&h, 400, 200)
	if math.Abs(raw[0]-2*want) > 1e-9 {
		t.Errorf("tip_to_mcp_0 at 400x200 = %f, want %f", raw[0], 2*want)
	}
}

func TestExtractor_AlwaysFinite(t *testing.T) {
	e := NewExtractor()

	// A degenerate all-origin skeleton still yields seven finite values.
	var h detector.HandLandmarks
	raw := e.Extract(&h, 640, 480)

	for i, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("metric %d = %f, want finite", i, v)
		}
		if v != 0 {
			t.Errorf("metric %d = %f, want 0 for coincident points", i, v)
		}
	}
}
