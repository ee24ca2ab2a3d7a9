package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// clamp converts a [0,1] channel to a byte
func clamp(v float32) int32 {
	if v >= 1 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return int32(v * 255)
}

// RGB converts a [0,1] color vector to a terminal color
func RGB(c mgl32.Vec3) tcell.Color {
	return tcell.NewRGBColor(clamp(c[0]), clamp(c[1]), clamp(c[2]))
}
