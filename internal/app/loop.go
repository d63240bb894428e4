package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/metric"
	"github.com/ayusman/mudra/internal/render"
)

// handResult pairs one processed hand with what the overlay needs.
type handResult struct {
	hand      metric.Hand
	landmarks *detector.HandLandmarks
	display   map[metric.Key]float64
}

// Run executes the frame loop until quit is pressed or the capture source
// ends. A camera that cannot be opened is a fatal error; an unreadable
// frame mid-run ends the loop gracefully. All resources are released on
// every exit path.
func (a *App) Run() error {
	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	defer a.camera.Close()

	defer func() {
		if err := a.det.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}()

	if a.st != nil {
		a.sessionID = uuid.NewString()
		if err := a.st.Sessions().Begin(a.sessionID); err != nil {
			return fmt.Errorf("begin session: %w", err)
		}
		defer func() {
			if err := a.st.Sessions().End(a.sessionID); err != nil {
				log.Printf("End session: %v", err)
			}
		}()
	}

	window := gocv.NewWindow(a.cfg.Window.Title)
	defer window.Close()

	mirrored := gocv.NewMat()
	defer mirrored.Close()

	log.Println("Press 'q' to quit")

	for {
		frame, err := a.camera.ReadFrame()
		if err != nil {
			if errors.Is(err, capture.ErrFrameUnreadable) {
				log.Println("Capture source ended")
				return nil
			}
			return fmt.Errorf("read frame: %w", err)
		}

		// Mirror so on-screen movement matches the user's own.
		gocv.Flip(*frame, &mirrored, 1)
		frame.Close()

		for _, res := range a.processFrame(&mirrored) {
			render.DrawSkeleton(&mirrored, res.landmarks)
			render.DrawMetrics(&mirrored, res.hand, res.display)
		}

		window.IMShow(mirrored)
		if a.handleKey(window.WaitKey(1)) {
			return nil
		}
	}
}

// processFrame detects hands in one frame and runs each through the metric
// engine. A hand whose output could not be delivered is skipped for this
// frame; the loop carries on.
func (a *App) processFrame(frame *gocv.Mat) []handResult {
	hands, err := a.det.Detect(frame)
	if err != nil {
		log.Printf("Error detecting hands: %v", err)
		return nil
	}

	a.frameN++

	var results []handResult
	for i := range hands {
		h := &hands[i]
		hand := metric.Hand(h.Side())

		vec, display, err := a.engine.Process(hand, h, frame.Cols(), frame.Rows())
		if err != nil {
			log.Printf("Skipping %s output: %v", hand, err)
			continue
		}

		a.record(hand, vec)

		results = append(results, handResult{
			hand:      hand,
			landmarks: h,
			display:   display,
		})
	}

	return results
}
