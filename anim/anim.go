/*
Package anim sequences sprite frames over time.

An Animation never reads a clock of its own: every time-sensitive operation
takes the current time from the caller, who is expected to drive Update from
the render loop. This keeps the sequencer deterministic and testable and
matches the single-threaded cooperative model of the rest of the pipeline.
*/
package anim

import (
	"time"

	"github.com/csboard/retropix/sprite"
)

// Frame is one step of an animation: the sprite to show, how long to hold
// it, and where to draw it relative to the animation origin.
type Frame struct {
	Image    *sprite.Image
	Duration time.Duration
	OffsetX  int
	OffsetY  int
}

// Animation advances through an ordered frame list based on elapsed time.
// It is single-owner: no internal locking, one goroutine at a time.
type Animation struct {
	frames  []Frame
	current int
	last    time.Time // time of the most recent frame advance
	loop    bool
	playing bool
}

// New creates a stopped animation over the given frames. The frame slice is
// retained, not copied.
func New(frames []Frame, loop bool) *Animation {
	return &Animation{
		frames: frames,
		loop:   loop,
	}
}

// Start begins playback from the current position and records now as the
// last advance time. It does not reset the position; use Reset for that.
func (a *Animation) Start(now time.Time) {
	a.playing = true
	a.last = now
}

// Stop halts playback. The position is kept; Start resumes from it.
func (a *Animation) Stop() {
	a.playing = false
}

// Pause halts playback without touching the position or timestamp.
func (a *Animation) Pause() {
	a.playing = false
}

// Resume continues playback, refreshing the timestamp so the paused
// interval does not count as elapsed frame time.
func (a *Animation) Resume(now time.Time) {
	a.playing = true
	a.last = now
}

// TogglePause pauses a playing animation and resumes a paused one. Resuming
// refreshes the timestamp like Resume.
func (a *Animation) TogglePause(now time.Time) {
	a.playing = !a.playing
	if a.playing {
		a.last = now
	}
}

// Reset rewinds to the first frame and refreshes the timestamp. The play
// state is left as it is: resetting a playing animation keeps it playing
// from frame zero.
func (a *Animation) Reset(now time.Time) {
	a.current = 0
	a.last = now
}

// IsPlaying reports whether the animation is advancing.
func (a *Animation) IsPlaying() bool {
	return a.playing
}

// Update advances the animation when the current frame's duration has
// elapsed since the last advance. It returns true when the visible frame
// changed. When the last frame expires and looping is off, the animation
// stops holding that frame and Update returns false from then on.
func (a *Animation) Update(now time.Time) bool {
	if !a.playing || len(a.frames) == 0 {
		return false
	}

	if now.Sub(a.last) < a.frames[a.current].Duration {
		return false
	}

	a.current++
	if a.current >= len(a.frames) {
		if !a.loop {
			a.current = len(a.frames) - 1
			a.playing = false
			return false
		}
		a.current = 0
	}

	a.last = now
	return true
}

// Current returns the image of the active frame, or nil when the animation
// has no frames.
func (a *Animation) Current() *sprite.Image {
	if a.current >= len(a.frames) {
		return nil
	}
	return a.frames[a.current].Image
}

// Offset returns the draw offset of the active frame, or (0, 0) when the
// animation has no frames. It tracks Current: a last frame held after
// playback ends keeps its position.
func (a *Animation) Offset() (x, y int) {
	if a.current >= len(a.frames) {
		return 0, 0
	}
	return a.frames[a.current].OffsetX, a.frames[a.current].OffsetY
}
