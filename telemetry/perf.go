package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one simulated minute.
const (
	PhaseShuffle   = "shuffle"
	PhaseForagers  = "foragers"
	PhaseMidnight  = "midnight"
	PhaseTelemetry = "telemetry"
)

var phases = []string{PhaseShuffle, PhaseForagers, PhaseMidnight, PhaseTelemetry}

type minuteSample struct {
	total  time.Duration
	phases map[string]time.Duration
}

// PerfCollector tracks wall-clock cost per simulated minute over a rolling
// window of minutes.
type PerfCollector struct {
	samples []minuteSample
	next    int
	count   int

	current    map[string]time.Duration
	minuteAt   time.Time
	phaseAt    time.Time
	phase      string
	lastFrame  time.Time
	frameDelta time.Duration
}

// NewPerfCollector creates a collector averaging over window minutes.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 720
	}
	return &PerfCollector{samples: make([]minuteSample, window)}
}

// StartMinute begins timing a simulated minute.
func (p *PerfCollector) StartMinute() {
	p.minuteAt = time.Now()
	p.current = make(map[string]time.Duration, len(phases))
	p.phase = ""
}

// StartPhase ends the running phase, if any, and starts another.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.phase != "" {
		p.current[p.phase] += now.Sub(p.phaseAt)
	}
	p.phaseAt = now
	p.phase = phase
}

// EndMinute records the minute's sample.
func (p *PerfCollector) EndMinute() {
	now := time.Now()
	if p.phase != "" {
		p.current[p.phase] += now.Sub(p.phaseAt)
	}
	p.samples[p.next] = minuteSample{total: now.Sub(p.minuteAt), phases: p.current}
	p.next = (p.next + 1) % len(p.samples)
	if p.count < len(p.samples) {
		p.count++
	}
	p.phase = ""
}

// RecordFrame records frame timing for the viewer.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frameDelta = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgMinute time.Duration
	MaxMinute time.Duration

	// Share of the average minute spent in each phase, in percent
	PhasePct map[string]float64

	MinutesPerSecond float64
	FPS              float64
}

// Stats aggregates the current window.
func (p *PerfCollector) Stats() PerfStats {
	st := PerfStats{PhasePct: make(map[string]float64)}
	if p.frameDelta > 0 {
		st.FPS = float64(time.Second) / float64(p.frameDelta)
	}
	if p.count == 0 {
		return st
	}

	var total time.Duration
	sums := make(map[string]time.Duration)
	for i := 0; i < p.count; i++ {
		s := p.samples[i]
		total += s.total
		st.MaxMinute = max(st.MaxMinute, s.total)
		for name, d := range s.phases {
			sums[name] += d
		}
	}
	st.AvgMinute = total / time.Duration(p.count)
	if total > 0 {
		for name, d := range sums {
			st.PhasePct[name] = float64(d) / float64(total) * 100
		}
		st.MinutesPerSecond = float64(time.Second) / float64(st.AvgMinute)
	}
	return st
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_minute_us", s.AvgMinute.Microseconds()),
		slog.Int64("max_minute_us", s.MaxMinute.Microseconds()),
		slog.Float64("minutes_per_sec", s.MinutesPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, name := range phases {
		if pct, ok := s.PhasePct[name]; ok {
			attrs = append(attrs, slog.Float64(name+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}
