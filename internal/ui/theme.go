package ui

import "image/color"

var (
	colBG = color.RGBA{20, 20, 30, 255}

	colTrack       = color.RGBA{60, 60, 60, 255}
	colTrackFill   = color.RGBA{0, 200, 255, 255}
	colHandle      = color.RGBA{200, 200, 200, 255}
	colHandleDrag  = color.RGBA{255, 255, 0, 255}
	colHandleEdge  = color.RGBA{240, 240, 240, 255}
	colBoundLabel  = color.RGBA{140, 140, 140, 255}
	colValueLabel  = color.RGBA{240, 240, 240, 255}
	colSliderTitle = color.RGBA{180, 180, 200, 255}
)
