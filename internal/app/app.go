// Package app wires the camera, detector, metric engine and transport into
// the tracker's frame loop.
package app

import (
	"log"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/metric"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/transport"
)

// Keyboard commands polled once per frame.
const (
	keyQuit             = 'q'
	keyLockMinLeft      = '3'
	keyLockMaxLeft      = '4'
	keyLockMinRight     = '5'
	keyLockMaxRight     = '6'
	keyClearCalibration = 'c'
)

// App owns the tracker's collaborators and drives the frame loop.
// Everything runs on one goroutine: frames are processed strictly one at a
// time and calibration commands apply between frames.
type App struct {
	cfg    config.Config
	camera capture.Camera
	det    detector.Detector
	engine *metric.Engine
	st     *store.Store

	sessionID string
	frameN    int64
}

// New creates an App from the configuration. The store may be nil, which
// disables session recording.
func New(cfg config.Config, st *store.Store) *App {
	a := &App{
		cfg:    cfg,
		camera: capture.NewCamera(cfg.Camera.DeviceID, cfg.Camera.Width, cfg.Camera.Height),
		engine: metric.NewEngine(transport.NewOSCSink(cfg.OSC.Host, cfg.OSC.Port), cfg.Smoothing.Window),
		st:     st,
	}

	detCfg := detector.Config{
		MaxHands:        cfg.Detector.MaxHands,
		MinConfidence:   cfg.Detector.MinConfidence,
		MinTrackingConf: cfg.Detector.MinTrackingConf,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detCfg); err == nil {
		a.det = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.det = detector.NewMockDetector()
	}

	return a
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.det = d
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.camera = c
}

// Engine returns the metric engine, whose Ranges method is the calibration
// surface.
func (a *App) Engine() *metric.Engine {
	return a.engine
}

// handleKey applies one polled keyboard command. It returns true when the
// loop should terminate.
func (a *App) handleKey(key int) bool {
	switch key {
	case keyQuit:
		log.Println("Quit requested")
		return true
	case keyLockMinLeft:
		n := a.engine.Ranges().LockMin(metric.Left)
		log.Printf("Locked MIN for Left: %d metrics", n)
	case keyLockMaxLeft:
		n := a.engine.Ranges().LockMax(metric.Left)
		log.Printf("Locked MAX for Left: %d metrics", n)
	case keyLockMinRight:
		n := a.engine.Ranges().LockMin(metric.Right)
		log.Printf("Locked MIN for Right: %d metrics", n)
	case keyLockMaxRight:
		n := a.engine.Ranges().LockMax(metric.Right)
		log.Printf("Locked MAX for Right: %d metrics", n)
	case keyClearCalibration:
		a.engine.Ranges().Clear(metric.Left)
		a.engine.Ranges().Clear(metric.Right)
		log.Println("Calibration cleared for both hands")
	}
	return false
}

// record appends one emitted vector to the session store, when recording.
func (a *App) record(hand metric.Hand, vec metric.Vector) {
	if a.st == nil {
		return
	}
	if err := a.st.Vectors().Append(a.sessionID, a.frameN, string(hand), [7]float64(vec)); err != nil {
		log.Printf("Record %s vector: %v", hand, err)
	}
}
