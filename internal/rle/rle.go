// Package rle reads and writes the run-length-encoded pattern interchange
// format: optional #-tagged metadata lines, an "x = W, y = H, rule = R"
// header, and counted runs of dead (b) and live (o) cells with $ row
// terminators, ended by !.
package rle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/V1adau/GameOfLife/internal/board"
	"github.com/V1adau/GameOfLife/internal/rule"
)

// ErrInvalidPattern reports malformed pattern text. No partial board is ever
// returned alongside it.
var ErrInvalidPattern = errors.New("invalid pattern format")

// Meta holds the optional metadata carried by a pattern file.
type Meta struct {
	Title    string
	Author   string
	Comments []string
}

// Pattern is a decoded pattern: its board, the rule named by the header (the
// standard Life rule when absent), and any metadata.
type Pattern struct {
	Board *board.DynamicBoard
	Rule  rule.Rule
	Meta  Meta
}

var headerRe = regexp.MustCompile(`^x\s*=\s*(\d+)\s*,\s*y\s*=\s*(\d+)\s*(?:,\s*rule\s*=\s*(\S+)\s*)?$`)

// ParseString decodes pattern text held in a string.
func ParseString(s string) (*Pattern, error) {
	return Parse(strings.NewReader(s))
}

// Parse decodes a pattern from r. The board is sized exactly to the header's
// declared dimensions, which may exceed the dynamic board's growth limits.
func Parse(r io.Reader) (*Pattern, error) {
	p := &Pattern{Rule: rule.Default()}

	scanner := bufio.NewScanner(r)
	var width, height int
	var body strings.Builder
	sawHeader := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#"):
			if sawHeader {
				continue
			}
			p.Meta.apply(line)
		case !sawHeader:
			m := headerRe.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("%w: bad header %q", ErrInvalidPattern, line)
			}
			width, _ = strconv.Atoi(m[1])
			height, _ = strconv.Atoi(m[2])
			if m[3] != "" {
				ru, err := rule.Parse(m[3])
				if err != nil {
					return nil, fmt.Errorf("%w: header rule %q", ErrInvalidPattern, m[3])
				}
				p.Rule = ru
			}
			sawHeader = true
		default:
			body.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, fmt.Errorf("%w: missing header", ErrInvalidPattern)
	}

	b, err := decodeBody(body.String(), width, height)
	if err != nil {
		return nil, err
	}
	p.Board = b
	return p, nil
}

// apply folds one #-tagged metadata line into the metadata. Unknown tags are
// ignored for compatibility with files written by other tools.
func (m *Meta) apply(line string) {
	if len(line) < 2 {
		return
	}
	rest := strings.TrimSpace(line[2:])
	switch line[1] {
	case 'N':
		m.Title = rest
	case 'O':
		m.Author = rest
	case 'C', 'c':
		m.Comments = append(m.Comments, rest)
	}
}

// decodeBody consumes <count><tag> tokens left to right, writing live runs
// into a fresh board of the declared dimensions.
func decodeBody(body string, width, height int) (*board.DynamicBoard, error) {
	b := board.NewDynamic(width, height)
	x, y := 0, 0
	count := 0
	hasCount := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c >= '0' && c <= '9':
			count = count*10 + int(c-'0')
			hasCount = true
			continue
		case c == 'b' || c == 'B' || c == 'o' || c == 'O':
			n := runLength(count, hasCount)
			if n <= 0 {
				return nil, fmt.Errorf("%w: zero-count run at offset %d", ErrInvalidPattern, i)
			}
			if y >= height || x+n > width {
				return nil, fmt.Errorf("%w: run exceeds declared %dx%d bounds", ErrInvalidPattern, width, height)
			}
			if c == 'o' || c == 'O' {
				for j := 0; j < n; j++ {
					b.Set(x+j, y, board.Alive)
				}
			}
			x += n
		case c == '$':
			n := runLength(count, hasCount)
			if n <= 0 {
				return nil, fmt.Errorf("%w: zero-count row advance", ErrInvalidPattern)
			}
			y += n
			x = 0
		case c == '!':
			// Trailing content is ignored.
			return b, nil
		default:
			return nil, fmt.Errorf("%w: unrecognized tag %q", ErrInvalidPattern, c)
		}
		count = 0
		hasCount = false
	}
	return nil, fmt.Errorf("%w: missing ! terminator", ErrInvalidPattern)
}

func runLength(count int, hasCount bool) int {
	if !hasCount {
		return 1
	}
	return count
}
