package control

import (
	"log/slog"
	"time"

	"mad-life/internal/core"
)

// Throughput summarises one throughput window.
type Throughput struct {
	WindowEnd      time.Time
	Frames         int
	Elapsed        time.Duration
	LoopsPerSecond float64
	AvgTick        time.Duration
	AvgDraw        time.Duration
}

// LogValue implements slog.LogValuer.
func (t Throughput) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frames", t.Frames),
		slog.Int("loops_per_sec", int(t.LoopsPerSecond)),
		slog.Float64("avg_tick_ms", durationMillis(t.AvgTick)),
		slog.Float64("avg_draw_ms", durationMillis(t.AvgDraw)),
	)
}

func durationMillis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

// Reporter receives every emitted throughput window.
type Reporter interface {
	ReportThroughput(Throughput) error
}

// Collector accumulates per-frame timings and counts. Two independent windows
// read and reset them: the throughput window for diagnostics and the display
// window for the on-screen rate indicator.
type Collector struct {
	throughput *core.Interval
	display    *core.Interval

	frameCount    int
	fpsFrameCount int
	tickTotal     time.Duration
	drawTotal     time.Duration
	start         time.Time
	fpsStart      time.Time

	rate      float64
	last      Throughput
	reporters []Reporter
	log       *slog.Logger
}

// NewCollector creates a collector whose windows open at now.
func NewCollector(now time.Time, throughputPeriod, displayPeriod time.Duration, log *slog.Logger, reporters ...Reporter) *Collector {
	if log == nil {
		log = slog.Default()
	}
	m := &Collector{
		throughput: core.NewInterval(throughputPeriod),
		display:    core.NewInterval(displayPeriod),
		start:      now,
		fpsStart:   now,
		reporters:  reporters,
		log:        log,
	}
	m.throughput.Reset(now)
	m.display.Reset(now)
	return m
}

// BeginFrame opens a fresh throughput window on the first frame after a flush.
func (m *Collector) BeginFrame(now time.Time) {
	if m.frameCount == 0 {
		m.start = now
	}
}

// AddTick accumulates step time.
func (m *Collector) AddTick(d time.Duration) { m.tickTotal += d }

// AddDraw accumulates draw time.
func (m *Collector) AddDraw(d time.Duration) { m.drawTotal += d }

// EndFrame counts a completed frame in both windows.
func (m *Collector) EndFrame() {
	m.frameCount++
	m.fpsFrameCount++
}

// Frames returns the number of frames in the open throughput window.
func (m *Collector) Frames() int { return m.frameCount }

// DisplayRate returns the last published frames-per-second figure.
func (m *Collector) DisplayRate() float64 { return m.rate }

// Last returns the most recently emitted throughput window.
func (m *Collector) Last() Throughput { return m.last }

// FlushThroughput closes the throughput window. It reports false and leaves
// state untouched when no frame ran in the window.
func (m *Collector) FlushThroughput(now time.Time) (Throughput, bool) {
	if m.frameCount == 0 {
		return Throughput{}, false
	}
	elapsed := now.Sub(m.start)
	t := Throughput{
		WindowEnd: now,
		Frames:    m.frameCount,
		Elapsed:   elapsed,
		AvgTick:   m.tickTotal / time.Duration(m.frameCount),
		AvgDraw:   m.drawTotal / time.Duration(m.frameCount),
	}
	if elapsed > 0 {
		t.LoopsPerSecond = float64(m.frameCount) / elapsed.Seconds()
	}
	m.frameCount = 0
	m.tickTotal = 0
	m.drawTotal = 0
	m.last = t
	return t, true
}

// FlushDisplayRate publishes the frame rate since the previous flush and
// restarts the display window.
func (m *Collector) FlushDisplayRate(now time.Time) float64 {
	elapsed := now.Sub(m.fpsStart)
	m.rate = 0
	if elapsed > 0 {
		m.rate = float64(m.fpsFrameCount) / elapsed.Seconds()
	}
	m.fpsStart = now
	m.fpsFrameCount = 0
	return m.rate
}

// Poll fires whichever window timers are due at now. Reporter failures are
// logged and otherwise ignored.
func (m *Collector) Poll(now time.Time) {
	if m.throughput.Due(now) {
		if t, ok := m.FlushThroughput(now); ok {
			m.emit(t)
		}
	}
	if m.display.Due(now) {
		m.FlushDisplayRate(now)
	}
}

// Finish closes the open throughput window and reports it like a timed
// flush. Headless runs call it once at the end.
func (m *Collector) Finish(now time.Time) (Throughput, bool) {
	t, ok := m.FlushThroughput(now)
	if ok {
		m.emit(t)
	}
	return t, ok
}

func (m *Collector) emit(t Throughput) {
	m.log.Info("loop throughput",
		"frames", t.Frames,
		"loops_per_sec", int(t.LoopsPerSecond),
		"avg_tick_ms", durationMillis(t.AvgTick),
		"avg_draw_ms", durationMillis(t.AvgDraw),
	)
	for _, r := range m.reporters {
		if err := r.ReportThroughput(t); err != nil {
			m.log.Warn("throughput report failed", "error", err)
		}
	}
}
