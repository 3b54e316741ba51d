package notify

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/studytimer/internal/pathutil"
)

const (
	toneSampleRate = beep.SampleRate(44100)
	toneFrequency  = 1000
	toneDuration   = 500 * time.Millisecond
	bufferSize     = 10
)

// Speaker plays a sound through the audio device. The sound is decoded once
// and kept in memory.
type Speaker struct {
	buffer  *beep.Buffer
	err     error
	initErr error
	path    string
	load    sync.Once
	device  sync.Once
}

// NewSpeaker returns a Speaker for the sound file at path. An empty path
// selects a generated tone.
func NewSpeaker(path string) *Speaker {
	return &Speaker{path: path}
}

// Name implements Notifier.
func (s *Speaker) Name() string {
	if s.path == "" {
		return "speaker:tone"
	}

	return "speaker:" + pathutil.StripExtension(filepath.Base(s.path))
}

func (s *Speaker) decode() (*beep.Buffer, error) {
	s.load.Do(func() {
		if s.path == "" {
			s.buffer, s.err = toneBuffer()
			return
		}

		s.buffer, s.err = decodeFile(s.path)
		if s.err != nil {
			s.err = errSoundUnavailable.Fmt(s.path).Wrap(s.err)
		}
	})

	return s.buffer, s.err
}

// Notify implements Notifier. It blocks until the sound finishes or ctx is
// done.
func (s *Speaker) Notify(ctx context.Context, _ Event) error {
	buf, err := s.decode()
	if err != nil {
		return err
	}

	s.device.Do(func() {
		sr := buf.Format().SampleRate
		s.initErr = speaker.Init(sr, sr.N(time.Second/bufferSize))
	})

	if s.initErr != nil {
		return s.initErr
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(
		buf.Streamer(0, buf.Len()),
		beep.Callback(func() {
			close(done)
		}),
	))

	select {
	case <-done:
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}

	return nil
}

// decodeFile reads an audio file into memory.
func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()
		return nil, err
	}

	defer stream.Close()

	buf := beep.NewBuffer(format)
	buf.Append(stream)

	return buf, nil
}

// toneBuffer generates a short sine wave beep.
func toneBuffer() (*beep.Buffer, error) {
	tone, err := generators.SineTone(toneSampleRate, toneFrequency)
	if err != nil {
		return nil, err
	}

	format := beep.Format{
		SampleRate:  toneSampleRate,
		NumChannels: 2,
		Precision:   2,
	}

	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(toneSampleRate.N(toneDuration), tone))

	return buf, nil
}
