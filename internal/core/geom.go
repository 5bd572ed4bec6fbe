// Package core provides the frontend-neutral types shared by screens,
// gameplay and platforms: the render canvas, input actions and geometry.
// It has no external dependencies so screens stay testable without a
// terminal or a window.
package core

import "cmp"

// Rect is an axis-aligned rectangle in canvas cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w×h rectangle centered inside a canvas of the
// given size. Dimensions larger than the canvas are shrunk to fit.
func CenteredRect(canvasW, canvasH, w, h int) Rect {
	w = Clamp(w, 0, canvasW)
	h = Clamp(h, 0, canvasH)
	return Rect{X: (canvasW - w) / 2, Y: (canvasH - h) / 2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
