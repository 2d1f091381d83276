// SPDX-License-Identifier: MIT

package tiling

import (
	"fmt"
	"strings"
)

// SideStrategy chooses the side of the square anchored at a discovered cell.
type SideStrategy int

const (
	// RunLengthSide uses MaxSquareSide: the minimum raw occupancy run.
	RunLengthSide SideStrategy = iota
	// ForwardRunSide uses ForwardSquareSide: the minimum of the right and
	// down runs only.
	ForwardRunSide
	// FreeSquareSide uses the largest square of unlabeled floor cells.
	FreeSquareSide
)

// String implements fmt.Stringer.
func (s SideStrategy) String() string {
	switch s {
	case RunLengthSide:
		return "runlength"
	case ForwardRunSide:
		return "forward"
	case FreeSquareSide:
		return "free"
	}

	return fmt.Sprintf("SideStrategy(%d)", int(s))
}

// ParseSideStrategy maps "runlength", "forward" or "free" (case-insensitive) to a
// SideStrategy. Returns ErrUnknownStrategy otherwise.
func ParseSideStrategy(name string) (SideStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "runlength", "run-length", "":
		return RunLengthSide, nil
	case "forward":
		return ForwardRunSide, nil
	case "free", "freesquare", "free-square":
		return FreeSquareSide, nil
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

// BoundsPolicy decides what happens when a candidate square runs past the
// grid edge during the fill phase.
type BoundsPolicy int

const (
	// Clamp clips the square to the grid before filling.
	Clamp BoundsPolicy = iota
	// Strict aborts the whole call with ErrOutOfBounds.
	Strict
)

// Options configures Tile.
type Options struct {
	Side   SideStrategy
	Bounds BoundsPolicy
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Side=RunLengthSide, Bounds=Clamp.
func DefaultOptions() Options {
	return Options{
		Side:   RunLengthSide,
		Bounds: Clamp,
	}
}

// WithSideStrategy selects how tile sides are chosen.
func WithSideStrategy(s SideStrategy) Option {
	return func(o *Options) { o.Side = s }
}

// WithBoundsPolicy selects the fill-phase bounds behavior.
func WithBoundsPolicy(p BoundsPolicy) Option {
	return func(o *Options) { o.Bounds = p }
}
