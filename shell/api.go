package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/goldenword/golden/automatic"
	"github.com/goldenword/golden/config"
	"github.com/goldenword/golden/game"
	"github.com/goldenword/golden/grid"
	"github.com/goldenword/golden/tilemapping"
)

var errCoordinates = errors.New("coordinates come in pairs of x y")

func parseCoordinate(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("bad coordinate %q: %w", s, err)
	}
	return uint8(v), nil
}

func parsePositions(args []string) ([]grid.Position, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, errCoordinates
	}
	positions := make([]grid.Position, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := parseCoordinate(args[i])
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(args[i+1])
		if err != nil {
			return nil, err
		}
		positions = append(positions, grid.NewPosition(x, y))
	}
	return positions, nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	seed := sc.config.GetUint32(config.ConfigSeed)
	if s := cmd.options.String("seed"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad seed %q: %w", s, err)
		}
		seed = uint32(v)
	}
	width, err := cmd.options.IntDefault("width", sc.config.GetInt(config.ConfigGridWidth))
	if err != nil {
		return nil, err
	}
	height, err := cmd.options.IntDefault("height", sc.config.GetInt(config.ConfigGridHeight))
	if err != nil {
		return nil, err
	}
	clockMs, err := cmd.options.IntDefault("clock", sc.config.GetInt(config.ConfigClockMs))
	if err != nil {
		return nil, err
	}
	if width < 1 || width > 255 || height < 1 || height > 255 {
		return nil, fmt.Errorf("grid size %dx%d out of range", width, height)
	}
	if clockMs < 1 {
		return nil, fmt.Errorf("clock must be positive, got %d", clockMs)
	}
	if seed == 0 {
		seed = uint32(frand.Uint64n(1<<32-1)) + 1
	}

	g, err := game.NewGame(sc.rules, uint32(clockMs), grid.GridSize(width),
		grid.GridSize(height), seed)
	if err != nil {
		return nil, err
	}
	sc.game = g
	sc.lastSnap = nil
	sc.hovered = nil
	log.Debug().Uint32("seed", g.Seed()).Msg("shell-new-game")
	return msg(fmt.Sprintf("New game with seed %d\n\n%s", g.Seed(), g.ToDisplayText())), nil
}

// advance runs one tick and describes what it changed.
func (sc *ShellController) advance(deltaMs uint32, clicks []grid.Position) *Response {
	before := len(sc.game.FoundWords())
	snap := sc.game.Tick(deltaMs, clicks, sc.hovered)
	sc.lastSnap = &snap

	var lines []string
	for _, fw := range snap.FoundWords[before:] {
		lines = append(lines, fmt.Sprintf("Found %s for %d points", fw.Word, fw.Score))
	}
	if from, ok := sc.game.PathFrom(); ok {
		lines = append(lines, fmt.Sprintf("Holding the letter at %v", from))
	}
	if sc.game.State() == game.Finished {
		lines = append(lines, fmt.Sprintf("Game is over. Final score: %d", sc.game.Score()))
	} else {
		lines = append(lines, fmt.Sprintf("Clock: %d ms, score: %d",
			snap.ClockRemainingMs, sc.game.Score()))
	}
	return msg(strings.Join(lines, "\n"))
}

func (sc *ShellController) tick(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: tick <ms>")
	}
	ms, err := strconv.ParseUint(cmd.args[0], 10, 32)
	if err != nil {
		return nil, err
	}
	return sc.advance(uint32(ms), nil), nil
}

func (sc *ShellController) click(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	clicks, err := parsePositions(cmd.args)
	if err != nil {
		return nil, err
	}
	return sc.advance(0, clicks), nil
}

func (sc *ShellController) hover(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	positions, err := parsePositions(cmd.args)
	if err != nil {
		return nil, err
	}
	if len(positions) != 1 {
		return nil, errors.New("usage: hover <x> <y>")
	}
	sc.hovered = &positions[0]
	return sc.advance(0, nil), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	out := sc.game.ToDisplayText()
	if sc.lastSnap != nil && lo.SomeBy(sc.lastSnap.Grid, func(c game.Cell) bool {
		return c.PathingStatus != game.PathingNone
	}) {
		out += "\n\n" + sc.pathingPreview(*sc.lastSnap)
	}
	return msg(out), nil
}

// pathingPreview draws a snapshot the way a renderer would: every letter at
// its rendered position, followed by * on the path, + on a walkable cell,
// and # on a blocked one.
func (sc *ShellController) pathingPreview(snap game.Snapshot) string {
	w, h := int(sc.game.GridWidth()), int(sc.game.GridHeight())
	rows := make([][]string, h)
	for y := range rows {
		rows[y] = make([]string, w)
	}
	for _, c := range snap.Grid {
		letter := "."
		if !game.IsEmptyCell(c.Letter) {
			letter = string(sc.game.Letter(c.Letter))
		}
		marker := " "
		switch c.PathingStatus {
		case game.PathingPath:
			marker = "*"
		case game.PathingWalkable:
			marker = "+"
		case game.PathingBlocked:
			marker = "#"
		}
		rows[c.Position.Y][c.Position.X] = letter + marker
	}
	lines := lo.Map(rows, func(row []string, _ int) string {
		return strings.TrimRight(strings.Join(row, " "), " ")
	})
	return strings.Join(lines, "\n")
}

func (sc *ShellController) golden(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	word := string(lo.Map(sc.game.GoldenWord(), func(ml tilemapping.MachineLetter, _ int) rune {
		return sc.game.Letter(ml)
	}))
	return msg(fmt.Sprintf("%s (%d points)", word, sc.game.GoldenWordScore())), nil
}

func (sc *ShellController) triplets(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	letters := sc.game.Triplets()
	idx := sc.game.TripletsCurrentIndex()
	chunks := lo.Chunk(letters, 3)
	if idx >= len(chunks) {
		return msg("No triplet left"), nil
	}
	remaining := lo.Map(chunks[idx:], func(t []tilemapping.MachineLetter, _ int) string {
		return string(lo.Map(t, func(ml tilemapping.MachineLetter, _ int) rune {
			return sc.game.Letter(ml)
		}))
	})
	return msg(fmt.Sprintf("%d left: %s", len(remaining), strings.Join(remaining, " "))), nil
}

func (sc *ShellController) words(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	found := sc.game.FoundWords()
	if len(found) == 0 {
		return msg("No words found yet"), nil
	}
	var ss strings.Builder
	for i, fw := range found {
		fmt.Fprintf(&ss, "%3d. %-12s %4d\n", i+1, fw.Word, fw.Score)
	}
	fmt.Fprintf(&ss, "Total: %d", sc.game.Score())
	return msg(ss.String()), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	numGames, err := cmd.options.IntDefault("games", sc.config.GetInt(config.ConfigAutoplayGames))
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigAutoplayThreads))
	if err != nil {
		return nil, err
	}
	logfile := cmd.options.String("logfile")
	if logfile == "" {
		logfile = sc.config.GetString(config.ConfigAutoplayLogfile)
	}

	var w io.Writer
	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		w = f
	}

	var summary *automatic.Summary
	seedfile := cmd.options.String("seedfile")
	if seedfile == "" {
		seedfile = sc.config.GetString(config.ConfigAutoplaySeedfile)
	}
	if seedfile != "" {
		seeds, err := automatic.LoadSeeds(seedfile)
		if err != nil {
			return nil, err
		}
		summary, err = automatic.PlaySeeds(context.Background(), sc.config, sc.rules, seeds, threads, w)
		if err != nil {
			return nil, err
		}
	} else {
		summary, err = automatic.PlayGames(context.Background(), sc.config, sc.rules, numGames, threads, w)
		if err != nil {
			return nil, err
		}
	}
	return msg(summary.String()), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		usage(sc.out)
		return nil, nil
	}
	usageTopic(sc.out, cmd.args[0])
	return nil, nil
}
