// Package detector provides hand landmark detection for the squeeze tracker.
package detector

// Hand landmark indices following the MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is one tracked point in image-normalized coordinates: x and y in
// [0,1] relative to the frame, z a relative depth estimate.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks is the 21-point skeleton of one detected hand.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left", "Right", or "" when unclassified
	Score      float64               `json:"score"`
}

// Side returns the hand's handedness label. When the detector supplied no
// classification it falls back to geometry: after the horizontal mirror a
// wrist left of the middle knuckle reads as a right hand.
func (h *HandLandmarks) Side() string {
	if h.Handedness == "Left" || h.Handedness == "Right" {
		return h.Handedness
	}
	if h.Points[Wrist].X < h.Points[MiddleMCP].X {
		return "Right"
	}
	return "Left"
}
