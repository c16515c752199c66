package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave is an oscillator shape.
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator returns a mono wave (copied to both channels) of the given
// frequency lasting d.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		noise:  rand.New(rand.NewPCG(uint64(freq), uint64(d))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.length {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.length {
			return i, true
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.noise.Float64()*2 - 1
		}
		samples[i] = [2]float64{v, v}

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release over d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if rest := e.total - e.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.s.Stream(samples)
	releaseAt := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseAt {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales s linearly. Zero or less silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a sine generator cut to d with a short attack and release.
func tone(freq float64, d time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, 4*time.Millisecond, d/2, rate), nil
}

// Effect builds the streamer for a sound at the given volume.
func Effect(s Sound, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	var out beep.Streamer
	switch s {
	case SoundDash:
		const d = 140 * time.Millisecond
		body := NewEnvelope(NewOscillator(110, d, WaveSaw, rate), d, 10*time.Millisecond, 100*time.Millisecond, rate)
		air := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 20*time.Millisecond, 110*time.Millisecond, rate)
		out = beep.Mix(withVolume(body, 0.6), withVolume(air, 0.25))
	case SoundShot:
		const d = 70 * time.Millisecond
		out = NewEnvelope(NewOscillator(880, d, WaveSquare, rate), d, 2*time.Millisecond, 50*time.Millisecond, rate)
		out = withVolume(out, 0.35)
	case SoundHit:
		const d1, d2 = 40 * time.Millisecond, 90 * time.Millisecond
		hi := NewEnvelope(NewOscillator(330, d1, WaveSquare, rate), d1, 2*time.Millisecond, 10*time.Millisecond, rate)
		lo := NewEnvelope(NewOscillator(165, d2, WaveSquare, rate), d2, 2*time.Millisecond, 70*time.Millisecond, rate)
		out = withVolume(beep.Seq(hi, lo), 0.5)
	case SoundLevelUp:
		var notes []beep.Streamer
		for _, f := range []float64{523.25, 659.25, 783.99, 1046.5} {
			n, err := tone(f, 80*time.Millisecond, rate)
			if err != nil {
				return nil, err
			}
			notes = append(notes, n)
		}
		out = withVolume(beep.Seq(notes...), 0.5)
	default:
		return nil, errUnknownSound(s)
	}
	return withVolume(out, volume), nil
}
