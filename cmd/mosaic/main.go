// Command mosaic reassembles a tile set, counts pattern instances in the
// assembled image and prints the corner checksum and roughness.
//
// Usage:
//
//	mosaic [-in tiles.txt] [-pattern monster.txt] [-parallel] [-print] [-view]
//	       [-log-level info] [-json-log]
//
// Tiles are read from standard input when -in is omitted.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/mosaic"
	"github.com/katalvlaran/mosaic/pattern"
	"github.com/katalvlaran/mosaic/tile"
	"github.com/katalvlaran/mosaic/view"
)

type config struct {
	in       string
	pattern  string
	parallel bool
	print    bool
	view     bool
	level    string
	jsonLog  bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "mosaic:", err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("mosaic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "", "tile file (default stdin)")
	fs.StringVar(&cfg.pattern, "pattern", "", "pattern file with '#' for required cells (default sea monster)")
	fs.BoolVar(&cfg.parallel, "parallel", false, "scan image orientations concurrently")
	fs.BoolVar(&cfg.print, "print", false, "print the layout and the highlighted image")
	fs.BoolVar(&cfg.view, "view", false, "open the highlighted image in a terminal viewer")
	fs.StringVar(&cfg.level, "log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.BoolVar(&cfg.jsonLog, "json-log", false, "write logs as JSON instead of console text")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	return cfg, nil
}

func newLogger(cfg config, stderr io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(cfg.level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	var w io.Writer = stderr
	if !cfg.jsonLog {
		w = zerolog.ConsoleWriter{Out: stderr, NoColor: true}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	src := stdin
	if cfg.in != "" {
		f, err := os.Open(cfg.in)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}
	set, err := tile.ReadSet(src)
	if err != nil {
		return err
	}
	log.Info().Int("tiles", set.Len()).Int("side", set.Side()).Int("tile_size", set.TileSize()).Msg("read tiles")

	pat := pattern.SeaMonster()
	if cfg.pattern != "" {
		b, err := os.ReadFile(cfg.pattern)
		if err != nil {
			return err
		}
		if pat, err = pattern.Parse(string(b)); err != nil {
			return err
		}
	}

	res, err := mosaic.Reconstruct(set, mosaic.Options{Logger: log})
	if err != nil {
		return err
	}
	m, err := pattern.Find(res.Image, pat, pattern.Options{Parallel: cfg.parallel})
	if err != nil {
		return err
	}
	log.Info().Int("orientation", m.Orientation).Int("matches", m.Count()).Msg("pattern search done")

	fmt.Fprintf(stdout, "checksum: %d\n", res.Checksum)
	fmt.Fprintf(stdout, "matches: %d\n", m.Count())
	fmt.Fprintf(stdout, "roughness: %d\n", m.Roughness())

	if !cfg.print && !cfg.view {
		return nil
	}
	marked, err := m.Highlight(pattern.DefaultMark)
	if err != nil {
		return err
	}
	if cfg.print {
		fmt.Fprintf(stdout, "\n%s\n\n%s\n", res.Placement, marked)
	}
	if cfg.view {
		return show(marked)
	}

	return nil
}

func show(img *grid.Grid) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	view.New(screen, img, view.DefaultPalette()).Run()

	return nil
}
