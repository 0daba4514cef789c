// Package audio sonifies animation steps through PortAudio.
package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
	"github.com/san-kum/sortviz/internal/audio/tone"
	"go.uber.org/zap"
)

const BufferSize = 1024

// Sonifier plays a tone for each step of an animation: the value that
// changed, mapped onto the audible range relative to the array maximum.
// It implements player.Observer.
type Sonifier struct {
	stream *portaudio.Stream
	synth  *tone.Synth
	logger *zap.Logger
	prev   []int
	active bool
}

func NewSonifier(logger *zap.Logger) *Sonifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sonifier{synth: tone.NewSynth(), logger: logger}
}

// Start opens the default output device (stereo, no input).
func (a *Sonifier) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio: initialize: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, tone.SampleRate, BufferSize, a.synth.Fill)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("audio: open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("audio: start stream: %w", err)
	}
	a.stream = stream
	a.active = true
	a.logger.Info("audio started", zap.Int("sample_rate", tone.SampleRate))
	return nil
}

func (a *Sonifier) Stop() {
	if !a.active {
		return
	}
	if err := a.stream.Stop(); err != nil {
		a.logger.Warn("audio stop", zap.Error(err))
	}
	a.stream.Close()
	portaudio.Terminate()
	a.active = false
}

func (a *Sonifier) Active() bool { return a.active }

// OnStep sounds the first changed value. Steps that change nothing
// (search inspections) sound the value at the step's position instead.
func (a *Sonifier) OnStep(snapshot []int, step int) {
	if len(snapshot) == 0 {
		return
	}
	if step <= 1 || len(a.prev) != len(snapshot) {
		a.prev = nil
	}
	i := tone.Changed(a.prev, snapshot)
	if i < 0 {
		i = (step - 1) % len(snapshot)
	}
	a.prev = append(a.prev[:0], snapshot...)

	top := 0
	for _, v := range snapshot {
		top = max(top, v)
	}
	a.synth.Note(tone.Frequency(snapshot[i], top))
}
