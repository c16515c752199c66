// Package audio synthesizes the game's sound effects with beep and plays
// them through an Ebitengine audio context.
//
// Gameplay code only sees [Sink]; frontends without sound pass [Nop].
package audio

// Sound identifies a synthesized effect.
type Sound uint8

const (
	SoundDash    Sound = iota // enemy starts a dash
	SoundShot                 // projectile launched
	SoundHit                  // projectile hit the enemy
	SoundLevelUp              // level counter reached its maximum
	soundCount
)

var soundNames = [soundCount]string{"dash", "shot", "hit", "levelup"}

func (s Sound) String() string {
	if s < soundCount {
		return soundNames[s]
	}
	return "unknown"
}

// Sink receives sound cues from gameplay code.
type Sink interface {
	Play(Sound)
}

// Nop is a Sink that discards every cue.
type Nop struct{}

func (Nop) Play(Sound) {}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Sound)

func (f SinkFunc) Play(s Sound) { f(s) }
