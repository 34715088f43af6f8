package maze

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strings"
)

var (
	// ErrMalformedRow indicates rows of inconsistent length in the text form.
	ErrMalformedRow = errors.New("maze: inconsistent row length")

	// ErrEmptyGrid indicates a text form with no rows at all.
	ErrEmptyGrid = errors.New("maze: empty grid")
)

// Character-to-tile mapping of the persisted grid format: one line per row,
// one character per column.
const (
	runeWall     = '#'
	runePath     = ' '
	runeStart    = 'S'
	runeEnd      = 'E'
	runeTeleport = 'T'
	runePenalty  = 'P'
)

// Rune returns the persisted-format character for the tile kind.
func (k TileKind) Rune() byte {
	switch k {
	case Wall:
		return runeWall
	case Start:
		return runeStart
	case End:
		return runeEnd
	case Teleport:
		return runeTeleport
	case Penalty:
		return runePenalty
	default:
		return runePath
	}
}

// kindForRune maps a persisted-format character back to its tile kind.
// The second return value is false for unrecognized characters, which the
// parser treats as Path.
func kindForRune(c byte) (TileKind, bool) {
	switch c {
	case runeWall:
		return Wall, true
	case runePath:
		return Path, true
	case runeStart:
		return Start, true
	case runeEnd:
		return End, true
	case runeTeleport:
		return Teleport, true
	case runePenalty:
		return Penalty, true
	default:
		return Path, false
	}
}

// Parse reads the plain-text grid format: one line per row, one character
// per column. An unrecognized character is treated as Path and reported on
// logger (which may be nil) rather than rejected. Rows of differing lengths
// yield ErrMalformedRow.
func Parse(r io.Reader, logger *log.Logger) (*Grid, error) {
	scanner := bufio.NewScanner(r)

	var rows []string
	for scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(rows[0])
	grid := NewGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, ErrMalformedRow
		}
		for x := 0; x < width; x++ {
			kind, ok := kindForRune(row[x])
			if !ok && logger != nil {
				logger.Printf("invalid character %q at row %d, column %d - treating as path", row[x], y, x)
			}
			grid.SetTile(Position{X: x, Y: y}, kind)
		}
	}

	return grid, nil
}

// String renders the grid in the persisted text format, each row terminated
// by a newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteByte(g.tiles[y][x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
