package audio

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// Cue is a one-shot sound requested by the game.
type Cue int

const (
	CueWin Cue = iota
	CueLose
)

type Config struct {
	SampleRate  int
	MusicPath   string  // optional WAV file looped as background music
	MusicVolume float64 // linear gain of the background loop
	DuckVolume  float64 // background gain while a cue plays
}

// Service owns the speaker. Other goroutines only talk to it through Play.
type Service struct {
	cfg     Config
	cues    chan Cue
	restore chan struct{}
	quit    chan struct{}
	done    chan struct{}

	started   atomic.Bool
	closeOnce sync.Once

	// touched only by the Run goroutine, under speaker.Lock when playing
	music  *effects.Volume
	active int
}

func NewService(cfg Config) *Service {
	return &Service{
		cfg:     cfg,
		cues:    make(chan Cue, 8),
		restore: make(chan struct{}),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Play queues a cue without blocking. It returns false if the queue is full.
func (s *Service) Play(c Cue) bool {
	select {
	case s.cues <- c:
		return true
	default:
		return false
	}
}

// Run opens the audio device, starts the background loop and serves cues until ctx ends.
func (s *Service) Run(ctx context.Context) error {
	s.started.Store(true)
	defer close(s.done)

	sr := beep.SampleRate(s.cfg.SampleRate)
	background, file, err := OpenMusic(s.cfg.MusicPath, sr)
	if err != nil {
		log.Printf("[audio] %v, falling back to generated loop", err)
		background, file = NewHum(sr), io.NopCloser(nil)
	}
	// closed after the speaker stops reading it
	defer file.Close()

	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	defer speaker.Close()

	s.music = Volume(background, s.cfg.MusicVolume)
	speaker.Play(s.music)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.quit:
			return nil
		case c := <-s.cues:
			s.startCue(c, sr)
		case <-s.restore:
			s.active--
			if s.active == 0 {
				s.setMusicVolume(s.cfg.MusicVolume)
			}
		}
	}
}

// Close stops Run and waits for the speaker to be released.
func (s *Service) Close() {
	s.closeOnce.Do(func() { close(s.quit) })
	if s.started.Load() {
		<-s.done
	}
}

// OpenMusic loops the WAV file at path, resampled to sr. An empty path
// yields the generated hum. The closer releases the file.
func OpenMusic(path string, sr beep.SampleRate) (beep.Streamer, io.Closer, error) {
	if path == "" {
		return NewHum(sr), io.NopCloser(nil), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open music: %w", err)
	}
	// Decode closes f itself on error
	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("decode music: %w", err)
	}
	var loop beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != sr {
		loop = beep.Resample(4, format.SampleRate, sr, loop)
	}
	return loop, streamer, nil
}

func (s *Service) startCue(c Cue, sr beep.SampleRate) {
	cue, err := CueStreamer(c, sr)
	if err != nil {
		log.Printf("[audio] cue %d: %v", c, err)
		return
	}
	log.Printf("[audio] cue %d, music ducked for %v", c, CueDuration(c))
	s.active++
	s.setMusicVolume(s.cfg.DuckVolume)

	// the callback runs inside the speaker lock, so the restore is handed off
	speaker.Play(beep.Seq(cue, beep.Callback(func() {
		go func() {
			select {
			case s.restore <- struct{}{}:
			case <-s.done:
			}
		}()
	})))
}

func (s *Service) setMusicVolume(linear float64) {
	speaker.Lock()
	applyGain(s.music, linear)
	speaker.Unlock()
}

// Volume wraps s with a linear gain; zero or less is silent.
func Volume(s beep.Streamer, linear float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	applyGain(v, linear)
	return v
}

func applyGain(v *effects.Volume, linear float64) {
	if linear <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(linear)
}

type tone struct {
	freq float64
	dur  time.Duration
}

var cueTones = map[Cue][]tone{
	CueWin:  {{523.25, 120 * time.Millisecond}, {659.25, 120 * time.Millisecond}, {783.99, 120 * time.Millisecond}, {1046.5, 300 * time.Millisecond}},
	CueLose: {{392, 250 * time.Millisecond}, {311.13, 250 * time.Millisecond}, {246.94, 250 * time.Millisecond}, {98, 700 * time.Millisecond}},
}

// CueStreamer builds the finite tone sequence for a cue.
func CueStreamer(c Cue, sr beep.SampleRate) (beep.Streamer, error) {
	tones, ok := cueTones[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sr, t.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2fHz: %w", t.freq, err)
		}
		parts = append(parts, Volume(beep.Take(sr.N(t.dur), sine), 0.4))
	}
	return beep.Seq(parts...), nil
}

// CueDuration is the total play time of a cue.
func CueDuration(c Cue) time.Duration {
	var total time.Duration
	for _, t := range cueTones[c] {
		total += t.dur
	}
	return total
}
