package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Single white pixel used as the source for flat-colored triangles. The
// 3x3 image with a 1x1 sub-image avoids bleeding at the texel edges.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func vertex(x, y float64, clr color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 255,
		ColorG: float32(clr.G) / 255,
		ColorB: float32(clr.B) / 255,
		ColorA: float32(clr.A) / 255,
	}
}

// fillQuad paints a flat-colored quad given its four corners in order.
func fillQuad(dst *ebiten.Image, x1, y1, x2, y2, x3, y3, x4, y4 float64, clr color.RGBA) {
	vs := []ebiten.Vertex{
		vertex(x1, y1, clr),
		vertex(x2, y2, clr),
		vertex(x3, y3, clr),
		vertex(x4, y4, clr),
	}
	is := []uint16{0, 1, 2, 0, 2, 3}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// fillRect paints an axis-aligned flat-colored rectangle.
func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.RGBA) {
	fillQuad(dst, x, y, x+w, y, x+w, y+h, x, y+h, clr)
}

// trapezoid paints a road-style band: two horizontal edges, each centered
// on its own x with its own half-width.
func trapezoid(dst *ebiten.Image, nearX, nearY, nearHalfW, farX, farY, farHalfW float64, clr color.RGBA) {
	fillQuad(dst,
		nearX-nearHalfW, nearY,
		nearX+nearHalfW, nearY,
		farX+farHalfW, farY,
		farX-farHalfW, farY,
		clr)
}
