package sound

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/util"
)

var ErrUnknownTrack = errors.New("unknown ambient track")

// TrackID names an ambient track.
type TrackID string

const (
	Rain TrackID = config.TrackRain
	Lofi TrackID = config.TrackLofi
)

// Tracks lists the selectable ambient tracks in display order.
var Tracks = []TrackID{Rain, Lofi}

// Label is the button text for a track.
func (id TrackID) Label() string {
	switch id {
	case Rain:
		return "RAIN"
	case Lofi:
		return "LO-FI"
	}
	return string(id)
}

func (id TrackID) valid() bool {
	for _, t := range Tracks {
		if t == id {
			return true
		}
	}
	return false
}

// Playback is one acquired playback resource.
type Playback interface {
	Stop()
}

// Player opens clips for playback.
type Player interface {
	Open(path string, loop bool, volume float64) (Playback, error)
}

// Controller plays at most one looping ambient track at a time.
type Controller struct {
	player  Player
	dir     string
	active  TrackID
	current Playback
}

// NewController plays clips found in dir through player.
func NewController(player Player, dir string) *Controller {
	return &Controller{player: player, dir: dir}
}

// Toggle stops id if it is playing, otherwise switches to it.
// Playback failures leave the controller silent and are returned for display.
func (c *Controller) Toggle(id TrackID) error {
	if !id.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTrack, id)
	}
	if c.current != nil && c.active == id {
		c.release()
		return nil
	}
	c.release()
	pb, err := c.player.Open(c.path(string(id)), true, config.AmbientVolume)
	if err != nil {
		util.LogError("play ambient track "+string(id), err)
		return err
	}
	c.active, c.current = id, pb
	return nil
}

// Active returns the playing track, if any.
func (c *Controller) Active() (TrackID, bool) {
	if c.current == nil {
		return "", false
	}
	return c.active, true
}

// PlayCue plays the completion cue once on its own playback instance.
func (c *Controller) PlayCue() error {
	if _, err := c.player.Open(c.path(config.CueName), false, config.CueVolume); err != nil {
		util.LogError("play completion cue", err)
		return err
	}
	return nil
}

// Close stops any ambient playback.
func (c *Controller) Close() {
	c.release()
}

func (c *Controller) release() {
	if c.current != nil {
		c.current.Stop()
	}
	c.current, c.active = nil, ""
}

func (c *Controller) path(name string) string {
	return filepath.Join(c.dir, name+config.SoundExt)
}

// Silent is a Player that never produces sound.
type Silent struct{}

func (Silent) Open(string, bool, float64) (Playback, error) { return silentPlayback{}, nil }

type silentPlayback struct{}

func (silentPlayback) Stop() {}
