package metric

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// fingertip and knuckle indices for the four non-thumb fingers, in metric
// order: index, middle, ring, pinky.
var (
	tipIndices = [4]int{detector.IndexTip, detector.MiddleTip, detector.RingTip, detector.PinkyTip}
	mcpIndices = [4]int{detector.IndexMCP, detector.MiddleMCP, detector.RingMCP, detector.PinkyMCP}
)

// Extractor derives the seven scalar measurements from one hand's skeleton.
//
// Distances are pixel-space: the x delta is scaled by the frame width and
// the y delta by the frame height before taking the Euclidean norm, so
// values depend on the capture resolution.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the seven metrics in canonical order for a skeleton
// detected in a frame of the given pixel dimensions.
func (e *Extractor) Extract(lm *detector.HandLandmarks, width, height int) [NumMetrics]float64 {
	var out [NumMetrics]float64

	w := float64(width)
	h := float64(height)
	wrist := lm.Points[detector.Wrist]

	// Four fingertip-to-knuckle distances.
	for i := 0; i < 4; i++ {
		out[i] = pixelDistance(lm.Points[tipIndices[i]], lm.Points[mcpIndices[i]], w, h)
	}

	// Thumb tip to index knuckle.
	out[4] = pixelDistance(lm.Points[detector.ThumbTip], lm.Points[detector.IndexMCP], w, h)

	// Mean fingertip-to-wrist distance.
	var tipSum float64
	for _, idx := range tipIndices {
		tipSum += pixelDistance(lm.Points[idx], wrist, w, h)
	}
	out[5] = tipSum / 4

	// Mean of the six pairwise knuckle-to-knuckle distances.
	var mcpSum float64
	var pairs float64
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			mcpSum += pixelDistance(lm.Points[mcpIndices[i]], lm.Points[mcpIndices[j]], w, h)
			pairs++
		}
	}
	out[6] = mcpSum / pairs

	return out
}

// pixelDistance is the Euclidean distance between two normalized points
// after anisotropic scaling into pixel coordinates.
func pixelDistance(a, b detector.Point3D, width, height float64) float64 {
	dx := (a.X - b.X) * width
	dy := (a.Y - b.Y) * height
	return math.Sqrt(dx*dx + dy*dy)
}
