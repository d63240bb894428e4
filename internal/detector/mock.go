package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// fillFinger writes a four-joint finger chain, interpolating the two middle
// joints between base and tip.
func fillFinger(h *HandLandmarks, base, tip Point3D, indices [4]int) {
	h.Points[indices[0]] = base
	h.Points[indices[3]] = tip
	h.Points[indices[1]] = Point3D{
		X: base.X + (tip.X-base.X)/3,
		Y: base.Y + (tip.Y-base.Y)/3,
		Z: base.Z + (tip.Z-base.Z)/3,
	}
	h.Points[indices[2]] = Point3D{
		X: base.X + 2*(tip.X-base.X)/3,
		Y: base.Y + 2*(tip.Y-base.Y)/3,
		Z: base.Z + 2*(tip.Z-base.Z)/3,
	}
}

// OpenHandLandmarks returns a preset skeleton with all fingers extended:
// fingertips far from their knuckles and from the wrist. Y decreases upward.
func OpenHandLandmarks(side string) HandLandmarks {
	h := HandLandmarks{
		Handedness: side,
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.50, Y: 0.85}

	fillFinger(&h, Point3D{X: 0.56, Y: 0.78}, Point3D{X: 0.72, Y: 0.56},
		[4]int{ThumbCMC, ThumbMCP, ThumbIP, ThumbTip})
	fillFinger(&h, Point3D{X: 0.43, Y: 0.60}, Point3D{X: 0.41, Y: 0.30},
		[4]int{IndexMCP, IndexPIP, IndexDIP, IndexTip})
	fillFinger(&h, Point3D{X: 0.50, Y: 0.58}, Point3D{X: 0.50, Y: 0.26},
		[4]int{MiddleMCP, MiddlePIP, MiddleDIP, MiddleTip})
	fillFinger(&h, Point3D{X: 0.57, Y: 0.60}, Point3D{X: 0.59, Y: 0.30},
		[4]int{RingMCP, RingPIP, RingDIP, RingTip})
	fillFinger(&h, Point3D{X: 0.63, Y: 0.64}, Point3D{X: 0.67, Y: 0.40},
		[4]int{PinkyMCP, PinkyPIP, PinkyDIP, PinkyTip})

	return h
}

// SqueezedHandLandmarks returns a preset skeleton of a closed fist:
// fingertips curled back to within a few percent of their knuckles.
func SqueezedHandLandmarks(side string) HandLandmarks {
	h := HandLandmarks{
		Handedness: side,
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.50, Y: 0.85}

	fillFinger(&h, Point3D{X: 0.56, Y: 0.78}, Point3D{X: 0.47, Y: 0.62, Z: -0.03},
		[4]int{ThumbCMC, ThumbMCP, ThumbIP, ThumbTip})
	fillFinger(&h, Point3D{X: 0.43, Y: 0.60}, Point3D{X: 0.44, Y: 0.64, Z: -0.04},
		[4]int{IndexMCP, IndexPIP, IndexDIP, IndexTip})
	fillFinger(&h, Point3D{X: 0.50, Y: 0.58}, Point3D{X: 0.50, Y: 0.62, Z: -0.04},
		[4]int{MiddleMCP, MiddlePIP, MiddleDIP, MiddleTip})
	fillFinger(&h, Point3D{X: 0.57, Y: 0.60}, Point3D{X: 0.56, Y: 0.64, Z: -0.04},
		[4]int{RingMCP, RingPIP, RingDIP, RingTip})
	fillFinger(&h, Point3D{X: 0.63, Y: 0.64}, Point3D{X: 0.61, Y: 0.68, Z: -0.03},
		[4]int{PinkyMCP, PinkyPIP, PinkyDIP, PinkyTip})

	return h
}

// UnlabeledHandLandmarks returns an open hand with no handedness label, for
// exercising the geometric fallback.
func UnlabeledHandLandmarks() HandLandmarks {
	h := OpenHandLandmarks("")
	h.Handedness = ""
	return h
}
