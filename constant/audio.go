package constant

import "time"

// Audio hardware settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 50 * time.Millisecond
)

// Pickup chime
const (
	PickupSoundDuration = 120 * time.Millisecond
	PickupSoundAttack   = 5 * time.Millisecond
	PickupSoundRelease  = 80 * time.Millisecond
	PickupFrequency     = 880.0
)

// Speed sweep rises, slow buzz falls
const (
	SweepSoundDuration = 220 * time.Millisecond
	SweepSoundAttack   = 10 * time.Millisecond
	SweepSoundRelease  = 60 * time.Millisecond
	SpeedSweepFrom     = 440.0
	SpeedSweepTo       = 1320.0
	SlowSweepFrom      = 300.0
	SlowSweepTo        = 90.0
)

// Game over jingle
const (
	GameOverNoteDuration = 220 * time.Millisecond
	GameOverNoteAttack   = 10 * time.Millisecond
	GameOverNoteRelease  = 120 * time.Millisecond
)

// GameOverNotes is the descending C5-G4-C4 sequence
var GameOverNotes = [3]float64{523.25, 392.0, 261.63}
