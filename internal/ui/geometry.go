package ui

import (
	"image"
	"math"
)

// inside reports whether (x,y) lies within r. Max edges are exclusive.
func inside(x, y int, r image.Rectangle) bool {
	return image.Pt(x, y).In(r)
}

// band is the strip [x0,x1) of height h centred on midY.
func band(x0, x1, midY, h int) image.Rectangle {
	top := midY - h/2
	return image.Rect(x0, top, x1, top+h)
}

// midY is the vertical centre of r, rounded down.
func midY(r image.Rectangle) int { return r.Min.Y + r.Dy()/2 }

func roundPx(v float64) int { return int(math.Round(v)) }
