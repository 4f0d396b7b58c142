package config

import "time"

// Timer durations.
const (
	DefaultDuration = 25 * time.Minute
	MinDuration     = time.Minute
	MaxDuration     = 120 * time.Minute
	TickInterval    = time.Second
)

// Duration adjustment limits, in minutes.
const (
	MinDurationMinutes = int(MinDuration / time.Minute)
	MaxDurationMinutes = int(MaxDuration / time.Minute)
)

// Ambient tracks and the completion cue.
const (
	TrackRain = "rain"
	TrackLofi = "lofi"
	CueName   = "success"

	SoundExt      = ".mp3"
	AmbientVolume = 0.5
	CueVolume     = 0.4
)

// Persistence.
const (
	AppName         = "zenith"
	DBFileName      = "zenith.db"
	LogFileName     = "zenith.log"
	HistoryKey      = "zenith_history"
	SoundsDirName   = "sounds"
	DefaultGoalName = "Deep Work"

	// SessionRetention is how many completed sessions the log keeps.
	SessionRetention = 500
)
