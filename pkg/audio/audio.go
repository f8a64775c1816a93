package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// System owns the audio context, the looping engine-tone synthesizer and
// the collision cue. All methods are safe on a nil receiver so a failed or
// disabled audio init degrades to silence instead of branching callers.
type System struct {
	ctx   *oto.Context
	ready chan struct{}
	synth *engineSynth

	playOnce  sync.Once
	crashOnce sync.Once
	crashBuf  []byte
}

// NewSystem opens the audio device and starts the engine loop as soon as
// the device reports ready.
func NewSystem() (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	s := &System{ctx: ctx, ready: ready, synth: &engineSynth{}}
	return s, nil
}

func (s *System) start() {
	s.playOnce.Do(func() {
		go func() {
			<-s.ready
			p := s.ctx.NewPlayer(s.synth)
			p.Play()
		}()
	})
}

// SetLoad feeds the normalized 0..1 engine load for the current frame.
func (s *System) SetLoad(load float64) {
	if s == nil {
		return
	}
	s.start()
	if load < 0 {
		load = 0
	} else if load > 1 {
		load = 1
	}
	s.synth.setLoad(load)
}

// Idle drops the engine to its idle rumble (countdown, finished screen).
func (s *System) Idle() {
	s.SetLoad(0)
}

// Crash plays the collision cue, fire and forget.
func (s *System) Crash() {
	if s == nil {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	s.crashOnce.Do(s.buildCrash)
	p := s.ctx.NewPlayer(bytes.NewReader(s.crashBuf))
	p.Play()
}

// buildCrash renders a short decaying noise burst with a low thump.
func (s *System) buildCrash() {
	const dur = 0.45
	n := int(dur * SampleRate)
	buf := make([]byte, n*4*ChannelCount)

	seed := uint64(0x2545F4914F6CDD1D)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-6 * t)

		// xorshift noise, deterministic so the cue always sounds the same
		seed ^= seed << 13
		seed ^= seed >> 7
		seed ^= seed << 17
		noise := float64(int64(seed)) / math.MaxInt64

		thump := math.Sin(2*math.Pi*70*t) * math.Exp(-10*t)
		sample := float32((noise*0.5 + thump*0.8) * env * 0.8)

		bits := math.Float32bits(sample)
		off := i * 4 * ChannelCount
		binary.LittleEndian.PutUint32(buf[off:], bits)
		binary.LittleEndian.PutUint32(buf[off+4:], bits)
	}
	s.crashBuf = buf
}

// engineSynth streams an endless engine tone whose pitch and volume track
// the load. Load is stored atomically: the frame loop writes, the audio
// goroutine reads.
type engineSynth struct {
	loadBits atomic.Uint64
	phase    float64
	freq     float64
}

func (e *engineSynth) setLoad(l float64) {
	e.loadBits.Store(math.Float64bits(l))
}

func (e *engineSynth) load() float64 {
	return math.Float64frombits(e.loadBits.Load())
}

func (e *engineSynth) Read(buf []byte) (int, error) {
	const frameBytes = 4 * ChannelCount
	frames := len(buf) / frameBytes

	load := e.load()
	target := 55 + 380*load
	amp := 0.06 + 0.2*load

	for i := 0; i < frames; i++ {
		// Slew the frequency toward the target to avoid clicks when the
		// load jumps between frames.
		e.freq += (target - e.freq) * 0.0004
		e.phase += e.freq / SampleRate
		if e.phase >= 1 {
			e.phase -= 1
		}

		// A saw blended with a half-rate sine reads as a rough engine.
		v := (2*e.phase - 1) * 0.45
		v += math.Sin(math.Pi*e.phase) * 0.55
		sample := float32(v * amp)

		bits := math.Float32bits(sample)
		off := i * frameBytes
		binary.LittleEndian.PutUint32(buf[off:], bits)
		binary.LittleEndian.PutUint32(buf[off+4:], bits)
	}
	return frames * frameBytes, nil
}
