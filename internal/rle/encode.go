package rle

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/V1adau/GameOfLife/internal/board"
	"github.com/V1adau/GameOfLife/internal/rule"
)

// Longest data line the encoder emits before wrapping.
const maxLineLen = 70

// Stubbed in tests; the original wrote dd/MM/yy HH:mm:ss stamps.
var now = time.Now

// EncodeOptions adjusts serialization behavior.
type EncodeOptions struct {
	// DateStamp appends a creation timestamp to the author line. With no
	// author set, the timestamp becomes the whole #O line.
	DateStamp bool
}

// Encode writes a board in the interchange format. Metadata lines appear
// only for non-empty fields. The header carries the bounding-box dimensions
// of the live pattern, not the full board size, and the rule's canonical
// string. Runs are coalesced and trailing dead cells on a row are dropped.
func Encode(w io.Writer, b board.Board, ru rule.Rule, meta Meta, opts EncodeOptions) error {
	ew := &errWriter{w: w}

	if meta.Title != "" {
		ew.line("#N " + meta.Title)
	}
	switch {
	case meta.Author != "" && opts.DateStamp:
		ew.line("#O " + meta.Author + ". Created " + now().Format("02/01/06 15:04:05"))
	case meta.Author != "":
		ew.line("#O " + meta.Author)
	case opts.DateStamp:
		ew.line("#O Created " + now().Format("02/01/06 15:04:05"))
	}
	for _, c := range meta.Comments {
		ew.line("#C " + c)
	}

	minX, maxX, minY, maxY := b.BoundingBox()
	ew.line(fmt.Sprintf("x = %d, y = %d, rule = %s", maxX-minX+1, maxY-minY+1, ru.String()))

	encodeBody(ew, b, minX, maxX, minY, maxY)
	return ew.err
}

// EncodeString renders a board to pattern text.
func EncodeString(b board.Board, ru rule.Rule, meta Meta, opts EncodeOptions) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, b, ru, meta, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func encodeBody(ew *errWriter, b board.Board, minX, maxX, minY, maxY int) {
	var cur strings.Builder
	emit := func(tok string) {
		if cur.Len()+len(tok) > maxLineLen {
			ew.line(cur.String())
			cur.Reset()
		}
		cur.WriteString(tok)
	}
	run := func(n int, tag byte) {
		if n <= 0 {
			return
		}
		if n == 1 {
			emit(string(tag))
			return
		}
		emit(strconv.Itoa(n) + string(tag))
	}

	rowGap := 0
	for y := minY; y <= maxY; y++ {
		// Last live column of the row; trailing dead cells are dropped.
		rowEnd := -1
		for x := maxX; x >= minX; x-- {
			if b.Get(x, y) == board.Alive {
				rowEnd = x
				break
			}
		}
		if rowEnd < 0 {
			rowGap++
			continue
		}
		run(rowGap, '$')
		rowGap = 1

		runLen := 0
		var runState uint8
		for x := minX; x <= rowEnd; x++ {
			state := b.Get(x, y)
			if runLen > 0 && state != runState {
				run(runLen, tagFor(runState))
				runLen = 0
			}
			runState = state
			runLen++
		}
		run(runLen, tagFor(runState))
	}
	emit("!")
	ew.line(cur.String())
}

func tagFor(state uint8) byte {
	if state == board.Alive {
		return 'o'
	}
	return 'b'
}

// errWriter sticks on the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) line(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s+"\n")
}
