// Package render draws the tracking overlay onto captured frames.
package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/metric"
)

// Overlay layout: the left hand's column starts at the frame's left edge,
// the right hand's column is inset from the right edge.
const (
	leftColumnX      = 10
	rightColumnInset = 250
	columnTopY       = 30
	lineHeight       = 20
)

var (
	textColor     = color.RGBA{R: 255, G: 255, B: 255, A: 0}
	boneColor     = color.RGBA{R: 0, G: 200, B: 0, A: 0}
	landmarkColor = color.RGBA{R: 0, G: 0, B: 255, A: 0}
)

// bones lists the landmark index pairs connected in the hand skeleton,
// following the MediaPipe hand connection set.
var bones = [][2]int{
	// Thumb
	{detector.Wrist, detector.ThumbCMC}, {detector.ThumbCMC, detector.ThumbMCP},
	{detector.ThumbMCP, detector.ThumbIP}, {detector.ThumbIP, detector.ThumbTip},
	// Index
	{detector.Wrist, detector.IndexMCP}, {detector.IndexMCP, detector.IndexPIP},
	{detector.IndexPIP, detector.IndexDIP}, {detector.IndexDIP, detector.IndexTip},
	// Middle
	{detector.IndexMCP, detector.MiddleMCP}, {detector.MiddleMCP, detector.MiddlePIP},
	{detector.MiddlePIP, detector.MiddleDIP}, {detector.MiddleDIP, detector.MiddleTip},
	// Ring
	{detector.MiddleMCP, detector.RingMCP}, {detector.RingMCP, detector.RingPIP},
	{detector.RingPIP, detector.RingDIP}, {detector.RingDIP, detector.RingTip},
	// Pinky
	{detector.RingMCP, detector.PinkyMCP}, {detector.Wrist, detector.PinkyMCP},
	{detector.PinkyMCP, detector.PinkyPIP}, {detector.PinkyPIP, detector.PinkyDIP},
	{detector.PinkyDIP, detector.PinkyTip},
}

// DrawMetrics writes one hand's smoothed metric values as a text column,
// one line per metric in canonical order.
func DrawMetrics(frame *gocv.Mat, hand metric.Hand, values map[metric.Key]float64) {
	x := leftColumnX
	if hand == metric.Right {
		x = frame.Cols() - rightColumnInset
	}

	y := columnTopY
	for _, name := range metric.Names() {
		val := values[metric.Key{Hand: hand, Name: name}]
		text := fmt.Sprintf("%s %s: %.2f", hand, name, val)
		gocv.PutText(frame, text, image.Pt(x, y), gocv.FontHersheySimplex, 0.5, textColor, 1)
		y += lineHeight
	}
}

// DrawSkeleton draws the hand's bones and landmark points, denormalizing
// the [0,1] coordinates to the frame's pixel dimensions.
func DrawSkeleton(frame *gocv.Mat, lm *detector.HandLandmarks) {
	width := float64(frame.Cols())
	height := float64(frame.Rows())

	at := func(i int) image.Point {
		return image.Pt(int(lm.Points[i].X*width), int(lm.Points[i].Y*height))
	}

	for _, bone := range bones {
		gocv.Line(frame, at(bone[0]), at(bone[1]), boneColor, 2)
	}
	for i := 0; i < detector.NumLandmarks; i++ {
		gocv.Circle(frame, at(i), 3, landmarkColor, -1)
	}
}
