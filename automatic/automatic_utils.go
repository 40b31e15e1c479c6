package automatic

// Data collection for automatic games.

import (
	"context"
	"errors"
	"expvar"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"

	"github.com/goldenword/golden/config"
	"github.com/goldenword/golden/game"
)

var (
	GamesCounter *expvar.Int
	IsPlaying    *expvar.Int
)

func init() {
	GamesCounter = expvar.NewInt("autoplayGames")
	IsPlaying = expvar.NewInt("autoplayIsPlaying")
}

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

// PlayGames plays numGames games, with consecutive seeds starting at the
// configured seed (a random one if it is zero).
func PlayGames(ctx context.Context, cfg *config.Config, rules game.RuleDefiner,
	numGames int, threads int, w io.Writer) (*Summary, error) {

	base := cfg.GetUint32(config.ConfigSeed)
	if base == 0 {
		base = uint32(frand.Uint64n(1 << 32))
	}
	seeds := make([]uint32, numGames)
	for i := range seeds {
		seeds[i] = base + uint32(i)
	}
	return PlaySeeds(ctx, cfg, rules, seeds, threads, w)
}

// PlaySeeds plays one game per seed on at most threads goroutines. Each
// game is written to w as a YAML list item, so the whole log reads as a
// single YAML list. The summary does not depend on the number of threads.
func PlaySeeds(ctx context.Context, cfg *config.Config, rules game.RuleDefiner,
	seeds []uint32, threads int, w io.Writer) (*Summary, error) {

	if IsPlaying.Value() > 0 {
		return nil, ErrAlreadyPlaying
	}
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	if threads < 1 {
		threads = 1
	}
	log.Debug().Int("games", len(seeds)).Int("threads", threads).Msg("starting-autoplay")

	runner := NewGameRunner(cfg, rules)
	records := make([]*GameRecord, len(seeds))
	logChan := make(chan []byte, threads)

	writer := errgroup.Group{}
	writer.Go(func() error {
		var werr error
		for out := range logChan {
			if w == nil || werr != nil {
				continue
			}
			_, werr = w.Write(out)
		}
		return werr
	})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, seed := range seeds {
		if gctx.Err() != nil {
			log.Info().Int("queued", i).Msg("got stop signal, not queueing more games")
			break
		}
		i, seed := i, seed
		g.Go(func() error {
			rec, err := runner.PlayGame(seed)
			if err != nil {
				return err
			}
			records[i] = rec
			GamesCounter.Add(1)
			out, err := yaml.Marshal([]*GameRecord{rec})
			if err != nil {
				return err
			}
			logChan <- out
			return nil
		})
	}

	err := g.Wait()
	close(logChan)
	if werr := writer.Wait(); err == nil {
		err = werr
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	log.Info().Int("games", len(seeds)).Msg("all-games-finished")
	return Summarize(records), nil
}
