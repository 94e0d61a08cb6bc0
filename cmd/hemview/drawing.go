package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteSub is a single white pixel used as the source of solid fills.
var whiteSub *ebiten.Image

func solidSource() *ebiten.Image {
	if whiteSub == nil {
		white := ebiten.NewImage(3, 3)
		white.Fill(color.White)
		whiteSub = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSub
}

// triangleBatch collects shaded screen triangles so a frame's faces go
// out in as few DrawTriangles calls as the uint16 indices allow.
type triangleBatch struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

func (b *triangleBatch) reset() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// full reports whether another triangle would overflow the indices.
func (b *triangleBatch) full() bool {
	return len(b.vertices)+3 > math.MaxUint16
}

func (b *triangleBatch) add(xp, yp [3]float32, c vertexColor) {
	base := uint16(len(b.vertices))
	for i := range xp {
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX: xp[i], DstY: yp[i],
			SrcX: 1, SrcY: 1,
			ColorR: c.r, ColorG: c.g, ColorB: c.b, ColorA: c.a,
		})
	}
	b.indices = append(b.indices, base, base+1, base+2)
}

// flush draws the collected triangles onto screen and empties the batch.
func (b *triangleBatch) flush(screen *ebiten.Image) {
	if len(b.indices) > 0 {
		screen.DrawTriangles(b.vertices, b.indices, solidSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
	b.reset()
}

func drawLine(screen *ebiten.Image, x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
}
