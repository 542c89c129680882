// SPDX-License-Identifier: MIT

// Package widgets models the interactive behavior of the site's UI widgets
// as plain values: marquee tracks, scroll-aware navbars, the mobile menu
// overlay, hover tooltips and the contact form. Renderers consume these
// values; nothing here touches HTTP or HTML.
package widgets

import (
	"fmt"
	"strings"
	"time"
)

// Motion selects between the animated and the reduced-motion rendering.
type Motion int

const (
	// MotionFull animates the marquee.
	MotionFull Motion = iota
	// MotionReduced renders a static grid with no duplication.
	MotionReduced
)

func (m Motion) String() string {
	if m == MotionReduced {
		return "reduce"
	}
	return "no-preference"
}

// ParseMotion maps a prefers-reduced-motion value ("reduce",
// "no-preference") to a Motion. Anything unrecognised animates.
func ParseMotion(value string) Motion {
	if strings.EqualFold(strings.TrimSpace(value), "reduce") {
		return MotionReduced
	}
	return MotionFull
}

// Speed is a named marquee speed.
type Speed string

const (
	SpeedFast   Speed = "fast"
	SpeedNormal Speed = "normal"
	SpeedSlow   Speed = "slow"
)

// Duration returns the loop duration for the speed. Unknown speeds use slow.
func (s Speed) Duration() time.Duration {
	switch s {
	case SpeedFast:
		return 20 * time.Second
	case SpeedNormal:
		return 40 * time.Second
	default:
		return 60 * time.Second
	}
}

// Direction is the scroll direction of the track.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// AnimationDirection returns the CSS animation-direction for the track.
func (d Direction) AnimationDirection() string {
	if d == DirectionRight {
		return "reverse"
	}
	return "forwards"
}

// Layout is how a track is laid out.
type Layout string

const (
	LayoutStrip Layout = "strip"
	LayoutGrid  Layout = "grid"
)

// MarqueeOptions configures BuildTrack.
type MarqueeOptions struct {
	Motion       Motion
	Speed        Speed
	Direction    Direction
	PauseOnHover bool
}

// DefaultMarqueeOptions mirrors the brand marquee: slow, leftwards, pausing on hover.
func DefaultMarqueeOptions() MarqueeOptions {
	return MarqueeOptions{
		Motion:       MotionFull,
		Speed:        SpeedSlow,
		Direction:    DirectionLeft,
		PauseOnHover: true,
	}
}

// TrackItem is one rendered slot of a track.
type TrackItem[T any] struct {
	Value T
	// Source is the index of the item in the original list.
	Source int
	// Duplicate marks the mirrored second half. Renderers hide these from
	// the accessibility tree so assistive tech reads each item once.
	Duplicate bool
}

// Track is the render plan for a marquee.
type Track[T any] struct {
	Items        []TrackItem[T]
	Layout       Layout
	Animated     bool
	Duration     time.Duration
	Direction    Direction
	PauseOnHover bool
}

// Len returns the number of rendered slots.
func (t Track[T]) Len() int {
	return len(t.Items)
}

// AnimationStyle returns the inline CSS animation declaration, or "" when
// the track is static.
func (t Track[T]) AnimationStyle() string {
	if !t.Animated {
		return ""
	}
	return fmt.Sprintf("animation: marquee-scroll %ds linear infinite %s;",
		int(t.Duration/time.Second), t.Direction.AnimationDirection())
}

// BuildTrack lays out items for a seamless loop. With full motion the list
// is concatenated with itself (2N slots) so that translating the track from
// 0 to -50% ends on a frame identical to the start. With reduced motion the
// N originals are returned as a static grid.
func BuildTrack[T any](items []T, opts MarqueeOptions) Track[T] {
	if opts.Direction == "" {
		opts.Direction = DirectionLeft
	}

	if opts.Motion == MotionReduced || len(items) == 0 {
		out := make([]TrackItem[T], len(items))
		for i, v := range items {
			out[i] = TrackItem[T]{Value: v, Source: i}
		}
		return Track[T]{
			Items:     out,
			Layout:    LayoutGrid,
			Direction: opts.Direction,
		}
	}

	n := len(items)
	out := make([]TrackItem[T], 2*n)
	for i, v := range items {
		out[i] = TrackItem[T]{Value: v, Source: i}
		out[n+i] = TrackItem[T]{Value: v, Source: i, Duplicate: true}
	}

	return Track[T]{
		Items:        out,
		Layout:       LayoutStrip,
		Animated:     true,
		Duration:     opts.Speed.Duration(),
		Direction:    opts.Direction,
		PauseOnHover: opts.PauseOnHover,
	}
}
