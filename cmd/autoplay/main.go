// Command autoplay plays many games with the built-in bot and reports score
// statistics. It can also summarize an existing game log, or write a seed
// file to replay later.
//
//	autoplay [flags]                 play games
//	autoplay analyze <logfile>       summarize a game log
//	autoplay seeds <n> <seedfile>    write n random seeds
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/goldenword/golden/automatic"
	"github.com/goldenword/golden/config"
	"github.com/goldenword/golden/game"
)

func play(ctx context.Context, cfg *config.Config) (*automatic.Summary, error) {
	rules, err := game.NewBasicGameRules(cfg, "", "")
	if err != nil {
		return nil, err
	}

	var w io.Writer
	if logfile := cfg.GetString(config.ConfigAutoplayLogfile); logfile != "" {
		f, err := os.Create(logfile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		w = f
	}

	threads := cfg.GetInt(config.ConfigAutoplayThreads)
	if seedfile := cfg.GetString(config.ConfigAutoplaySeedfile); seedfile != "" {
		seeds, err := automatic.LoadSeeds(seedfile)
		if err != nil {
			return nil, err
		}
		return automatic.PlaySeeds(ctx, cfg, rules, seeds, threads, w)
	}
	return automatic.PlayGames(ctx, cfg, rules, cfg.GetInt(config.ConfigAutoplayGames), threads, w)
}

func run(ctx context.Context, cfg *config.Config) error {
	args := cfg.Args()
	if len(args) == 0 {
		summary, err := play(ctx, cfg)
		if err != nil {
			return err
		}
		fmt.Print(summary.String())
		return nil
	}

	switch args[0] {
	case "analyze":
		if len(args) != 2 {
			return fmt.Errorf("usage: analyze <logfile>")
		}
		summary, err := automatic.AnalyzeLogFile(args[1])
		if err != nil {
			return err
		}
		fmt.Print(summary.String())
	case "seeds":
		if len(args) != 3 {
			return fmt.Errorf("usage: seeds <n> <seedfile>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("bad number of seeds %q", args[1])
		}
		if err := automatic.SaveSeeds(automatic.GenerateSeeds(n), args[2]); err != nil {
			return err
		}
		log.Info().Int("seeds", n).Str("file", args[2]).Msg("wrote-seeds")
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func main() {
	// GOLDEN_* settings may also come from a .env file.
	_ = godotenv.Load()
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(cfg.GetString(config.ConfigLogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if addr := cfg.GetString(config.ConfigAutoplayStatusAddr); addr != "" {
		srv := &http.Server{Addr: addr, Handler: automatic.NewStatusRouter()}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("status-server-failed")
			}
		}()
		defer srv.Close()
	}

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("autoplay-failed")
		stop()
		os.Exit(1)
	}
}
