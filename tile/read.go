package tile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mosaic/grid"
)

const headerPrefix = "Tile "

// Read parses tiles from r. Each block starts with a "Tile <id>:" header
// followed by the content rows; blocks are separated by blank lines.
// Grid shape errors are reported wrapped in ErrMalformedTileSet, format
// errors as ErrSyntax.
func Read(r io.Reader) ([]Tile, error) {
	sc := bufio.NewScanner(r)
	var (
		tiles  []Tile
		rows   []string
		id     int
		inTile bool
		lineNo int
	)
	flush := func() error {
		if !inTile {
			return nil
		}
		g, err := grid.New(rows)
		if err != nil {
			return fmt.Errorf("tile %d: %v: %w", id, err, ErrMalformedTileSet)
		}
		tiles = append(tiles, Tile{ID: id, Grid: g})
		rows = nil
		inTile = false

		return nil
	}

	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case strings.HasPrefix(line, headerPrefix):
			if err := flush(); err != nil {
				return nil, err
			}
			v, ok := strings.CutSuffix(strings.TrimPrefix(line, headerPrefix), ":")
			if !ok {
				return nil, fmt.Errorf("line %d: header %q lacks ':': %w", lineNo, line, ErrSyntax)
			}
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("line %d: bad tile id %q: %w", lineNo, v, ErrSyntax)
			}
			id, inTile = n, true
		case line == "":
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			if !inTile {
				return nil, fmt.Errorf("line %d: content outside a tile block: %w", lineNo, ErrSyntax)
			}
			rows = append(rows, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return tiles, nil
}

// Parse is Read over a string.
func Parse(text string) ([]Tile, error) {
	return Read(strings.NewReader(text))
}

// ReadSet reads tiles from r and validates them as a Set.
func ReadSet(r io.Reader) (*Set, error) {
	tiles, err := Read(r)
	if err != nil {
		return nil, err
	}

	return NewSet(tiles)
}
