//go:build ebiten

// Package render turns board state into pixels for the GUI build.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/V1adau/GameOfLife/internal/board"
)

// BoardPainter updates a single RGBA image from board cell data. The image
// is reallocated whenever the board has grown since the previous frame.
type BoardPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewBoardPainter allocates a painter sized to the board.
func NewBoardPainter(b board.Board) *BoardPainter {
	bp := &BoardPainter{}
	bp.resize(b.Width(), b.Height())
	return bp
}

func (bp *BoardPainter) resize(w, h int) {
	bp.w, bp.h = w, h
	bp.buf = make([]byte, 4*w*h)
	bp.img = ebiten.NewImage(w, h)
}

// Blit uploads the board's cells into the painter image and draws it at the
// given cell offset. The offset keeps the view anchored while the board
// grows toward the left or upper edge.
func (bp *BoardPainter) Blit(dst *ebiten.Image, b board.Board, on, off color.Color, scale, offX, offY int) {
	if b.Width() != bp.w || b.Height() != bp.h {
		bp.resize(b.Width(), b.Height())
	}
	fillBinaryRGBA(bp.buf, b.Cells(), on, off)
	bp.img.WritePixels(bp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(offX*scale), float64(offY*scale))
	dst.DrawImage(bp.img, op)
}
