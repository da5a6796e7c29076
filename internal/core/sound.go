package core

// SoundID names a sound effect known to the platform's audio player.
type SoundID string

// Sound effects raised by the vehicle games.
const (
	SoundPew    SoundID = "pew"    // Tank shell fired
	SoundTreads SoundID = "treads" // Tank hull turning or moving
	SoundThrust SoundID = "thrust" // Flyer engine burning
)

// Sound is a cue emitted by a game during a tick.
// The platform decides how (and whether) to play it.
type Sound struct {
	ID     SoundID
	Volume float64 // 0.0 - 1.0, zero is muted
	// Ensure asks the player to start the sound only if it is not already playing.
	// One-shot cues leave it false and always restart.
	Ensure bool
}
