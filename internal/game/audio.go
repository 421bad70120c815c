package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/iburimskiy/perspective-grid/internal/config"
	"github.com/ncruces/zenity"
)

var ErrUnsupportedAudio = errors.New("game: unsupported audio file")

// Replaced in tests, where no audio device is available.
var (
	speakerInit  = speaker.Init
	speakerClear = speaker.Clear
	speakerPlay  = speaker.Play
)

type track struct {
	name     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *levelTap
	duration time.Duration
	finished atomic.Bool
}

func (t *track) close() {
	_ = t.streamer.Close()
	_ = t.file.Close()
}

// soundtrack plays at most one track and turns its loudness into a pulse
// for the circle.
type soundtrack struct {
	cfg      config.Audio
	initDone bool
	rate     beep.SampleRate
	current  *track
	level    float64
	paused   bool
}

func newSoundtrack(cfg config.Audio) *soundtrack {
	return &soundtrack{cfg: cfg}
}

func decode(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedAudio, ext)
	}
}

// Load stops the current track, if any, and starts playing path.
func (s *soundtrack) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("game: open soundtrack: %w", err)
	}
	streamer, format, err := decode(path, f)
	if err != nil {
		_ = f.Close()
		return err
	}

	t := &track{
		name:     filepath.Base(path),
		file:     f,
		streamer: streamer,
		format:   format,
		tap:      newLevelTap(streamer, s.cfg.RingSize),
		duration: format.SampleRate.D(streamer.Len()),
	}
	t.ctrl = &beep.Ctrl{Streamer: t.tap, Paused: s.paused}
	return s.start(t)
}

// start replaces the current track with t. The speaker is (re)initialized
// when t needs a different sample rate; if that fails nothing is playing any
// more, so both tracks are closed.
func (s *soundtrack) start(t *track) error {
	if s.initDone {
		speakerClear()
	}
	if !s.initDone || s.rate != t.format.SampleRate {
		bufferSize := t.format.SampleRate.N(time.Second / 20)
		if err := speakerInit(t.format.SampleRate, bufferSize); err != nil {
			t.close()
			s.stop()
			s.initDone = false
			return fmt.Errorf("game: init speaker: %w", err)
		}
		s.initDone = true
		s.rate = t.format.SampleRate
	}
	s.stop()
	s.current = t

	speakerPlay(beep.Seq(t.ctrl, beep.Callback(func() {
		t.finished.Store(true)
	})))
	log.Printf("soundtrack: playing %s (%s, %d Hz)", t.name, formatDuration(t.duration), t.format.SampleRate)
	return nil
}

// stop closes the current track without touching the speaker.
func (s *soundtrack) stop() {
	if s.current != nil {
		s.current.close()
		s.current = nil
	}
	s.level = 0
}

// Open asks for a file with the native dialog. Cancelling is not an error.
func (s *soundtrack) Open() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("game: select soundtrack: %w", err)
	}
	return s.Load(filename)
}

func (s *soundtrack) SetPaused(paused bool) {
	s.paused = paused
	if s.current == nil {
		return
	}
	speaker.Lock()
	s.current.ctrl.Paused = paused
	speaker.Unlock()
}

// Pulse refreshes the smoothed level and returns the radius pulse for this
// tick. It is 0 without a playing track.
func (s *soundtrack) Pulse() float64 {
	t := s.current
	if t == nil {
		return 0
	}
	if t.finished.Load() {
		log.Printf("soundtrack: finished %s", t.name)
		s.stop()
		return 0
	}
	if !s.paused {
		level := clamp01(t.tap.rms(s.cfg.Window))
		s.level = s.cfg.Smoothing*s.level + (1-s.cfg.Smoothing)*level
	}
	return s.cfg.Pulse * s.level
}

// Status describes the playing track for the HUD.
func (s *soundtrack) Status() string {
	t := s.current
	if t == nil {
		return "no soundtrack"
	}
	speaker.Lock()
	pos := t.format.SampleRate.D(t.streamer.Position())
	speaker.Unlock()
	return fmt.Sprintf("%s %s/%s", t.name, formatDuration(pos), formatDuration(t.duration))
}

func (s *soundtrack) Close() {
	if s.current == nil {
		return
	}
	if s.initDone {
		speakerClear()
	}
	s.stop()
}
