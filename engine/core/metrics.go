package core

import (
	"sync"

	"github.com/cadmium-engine/cadmium/engine/containers"
)

const frameWindow = 30

// MetricsState tracks per-frame timings over a sliding window plus a
// frames-per-second counter accumulated over wall-clock seconds.
type MetricsState struct {
	frameTimes         *containers.RingQueue[float64]
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

var onceMetrics sync.Once
var metricsState *MetricsState = nil

func MetricsInitialize() error {
	onceMetrics.Do(func() {
		metricsState = &MetricsState{
			frameTimes: containers.NewRingQueue[float64](frameWindow),
		}
	})
	return nil
}

// MetricsUpdate records one frame. The elapsed time is in seconds.
func MetricsUpdate(frameElapsedTime float64) {
	frameMS := frameElapsedTime * 1000.0
	metricsState.frameTimes.EnqueueEvict(frameMS)

	// Frames per second over the last full second.
	metricsState.accumulatedFrameMS += frameMS
	if metricsState.accumulatedFrameMS > 1000 {
		metricsState.fps = float64(metricsState.frames)
		metricsState.accumulatedFrameMS -= 1000
		metricsState.frames = 0
	}
	metricsState.frames++
}

func MetricsFPS() float64 {
	return metricsState.fps
}

// MetricsFrameTime returns the average frame time in milliseconds over
// the sliding window.
func MetricsFrameTime() float64 {
	if metricsState.frameTimes.IsEmpty() {
		return 0
	}
	sum := 0.0
	metricsState.frameTimes.Each(func(ms float64) { sum += ms })
	return sum / float64(metricsState.frameTimes.Len())
}

func MetricsFrame() (float64, float64) {
	return MetricsFPS(), MetricsFrameTime()
}
