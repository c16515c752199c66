package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

// SampleRate is the rate every effect is rendered at.
const SampleRate = 44100

// pcmFormat is what Ebitengine's audio context consumes: 16-bit signed
// little-endian stereo.
var pcmFormat = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

func errUnknownSound(s Sound) error {
	return fmt.Errorf("audio: unknown sound %d", s)
}

// Output plays rendered PCM.
type Output interface {
	PlayPCM(pcm []byte)
}

// Config controls playback.
type Config struct {
	Volume float64 `yaml:"volume" env:"VOLUME"`
	Mute   bool    `yaml:"mute" env:"MUTE"`
}

// Bank holds every effect pre-rendered to PCM. It implements Sink.
type Bank struct {
	out    Output
	mute   bool
	pcm    [soundCount][]byte
	played [soundCount]int
	log    *zap.Logger
}

// NewBank renders all effects at cfg.Volume. A nil out or cfg.Mute yields a
// bank that only counts cues.
func NewBank(out Output, cfg Config, log *zap.Logger) (*Bank, error) {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Bank{out: out, mute: cfg.Mute || out == nil, log: log}
	for s := Sound(0); s < soundCount; s++ {
		st, err := Effect(s, pcmFormat.SampleRate, cfg.Volume)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", s, err)
		}
		b.pcm[s], err = Render(st, pcmFormat)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", s, err)
		}
	}
	log.Debug("audio bank ready", zap.Bool("mute", b.mute), zap.Float64("volume", cfg.Volume))
	return b, nil
}

// Play sends the effect to the output unless muted.
func (b *Bank) Play(s Sound) {
	if s >= soundCount {
		b.log.Warn("unknown sound", zap.Uint8("sound", uint8(s)))
		return
	}
	b.played[s]++
	if b.mute {
		return
	}
	b.out.PlayPCM(b.pcm[s])
}

// PCM returns the rendered bytes of a sound.
func (b *Bank) PCM(s Sound) []byte {
	return b.pcm[s]
}

// Played returns how many times a sound was cued.
func (b *Bank) Played(s Sound) int {
	return b.played[s]
}

// maxEffect bounds how much of a stream Render consumes.
const maxEffect = 2 * time.Second

// Render drains s into interleaved PCM bytes, stopping after maxEffect.
func Render(s beep.Streamer, f beep.Format) ([]byte, error) {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, f.Width())
	for left := f.SampleRate.N(maxEffect); left > 0; {
		if len(buf) > left {
			buf = buf[:left]
		}
		n, ok := s.Stream(buf)
		left -= n
		for _, sample := range buf[:n] {
			w := f.EncodeSigned(frame, sample)
			out = append(out, frame[:w]...)
		}
		if !ok || n == 0 {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// EbitenOutput plays PCM through an Ebitengine audio context.
type EbitenOutput struct {
	ctx *ebaudio.Context
}

// NewEbitenOutput returns an output on the process-wide audio context,
// creating it at SampleRate when none exists yet.
func NewEbitenOutput() (*EbitenOutput, error) {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(SampleRate)
	}
	if ctx.SampleRate() != SampleRate {
		return nil, fmt.Errorf("audio: context runs at %d Hz, want %d", ctx.SampleRate(), SampleRate)
	}
	return &EbitenOutput{ctx: ctx}, nil
}

func (o *EbitenOutput) PlayPCM(pcm []byte) {
	o.ctx.NewPlayerFromBytes(pcm).Play()
}
