package sound

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

const speakerRate = beep.SampleRate(44100)

// BeepPlayer decodes mp3 clips and mixes them on the system speaker.
type BeepPlayer struct {
	once    sync.Once
	initErr error
}

func NewBeepPlayer() *BeepPlayer {
	return &BeepPlayer{}
}

func (p *BeepPlayer) init() error {
	p.once.Do(func() {
		p.initErr = speaker.Init(speakerRate, speakerRate.N(time.Second/10))
	})
	return p.initErr
}

// Open starts playing path. Looping clips run until stopped; one-shot
// clips release their file when drained.
func (p *BeepPlayer) Open(path string, loop bool, volume float64) (Playback, error) {
	if err := p.init(); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	var s beep.Streamer = streamer
	if loop {
		s = beep.Loop(-1, streamer)
	}
	if format.SampleRate != speakerRate {
		s = beep.Resample(4, format.SampleRate, speakerRate, s)
	}
	level, silent := gain(volume)
	ctrl := &beep.Ctrl{Streamer: &effects.Volume{Streamer: s, Base: 2, Volume: level, Silent: silent}}

	pb := &beepPlayback{ctrl: ctrl, closer: streamer}
	if loop {
		speaker.Play(ctrl)
	} else {
		speaker.Play(beep.Seq(ctrl, beep.Callback(pb.release)))
	}
	return pb, nil
}

type beepPlayback struct {
	ctrl   *beep.Ctrl
	closer io.Closer
	once   sync.Once
}

func (b *beepPlayback) Stop() {
	speaker.Lock()
	b.ctrl.Streamer = nil
	speaker.Unlock()
	b.release()
}

func (b *beepPlayback) release() {
	b.once.Do(func() { _ = b.closer.Close() })
}

// gain maps a linear volume in (0, 1] to a base-2 exponent.
func gain(volume float64) (float64, bool) {
	if volume <= 0 || math.IsNaN(volume) {
		return 0, true
	}
	if volume > 1 {
		volume = 1
	}
	return math.Log2(volume), false
}
