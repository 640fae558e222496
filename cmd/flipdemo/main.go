// Command flipdemo shuffles a wrapping grid of colored cards and animates
// every move, removal and reinsertion.
//
// Usage:
//
//	flipdemo [-n cards] [-every interval] [-seed n]
//
// Animation defaults come from FLIP_DURATION, FLIP_EASING and
// FLIP_FRAME_RATE. Set FLIP_DEBUG to a file path to write a debug log.
// Press Ctrl+C to exit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	flip "github.com/grindlemire/go-flip"
	"github.com/grindlemire/go-flip/internal/debug"
	"github.com/grindlemire/go-flip/internal/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("flipdemo", flag.ExitOnError)
	count := fs.Int("n", 12, "number of cards")
	every := fs.Duration("every", 1500*time.Millisecond, "time between shuffles")
	seed := fs.Uint64("seed", uint64(time.Now().UnixNano()), "shuffle seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *count < 1 {
		return fmt.Errorf("-n must be at least 1, got %d", *count)
	}
	defer debug.Close()

	cfg, err := flip.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	width, height := terminalSize()
	scr := newScreen(os.Stdout, width, height)
	app, err := flip.NewApp(flip.WithConfig(cfg), flip.WithOnCommit(scr.draw))
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	g := newGrid(app, *count, *seed)
	app.SetRoot(g.root, width, height)
	debug.Log("flipdemo: %d cards on %dx%d, %s %s", *count, width, height, cfg.Duration, cfg.Easing)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Stdout.Write(term.Enter())
	defer os.Stdout.Write(term.Leave())

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := app.Run(ctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		ticker := time.NewTicker(*every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if w, h := terminalSize(); w != width || h != height {
					width, height = w, h
					app.QueueUpdate(func() {
						scr.resize(w, h)
						app.Resize(w, h)
					})
				}
				app.QueueUpdate(g.step)
			}
		}
	})
	return eg.Wait()
}

// terminalSize falls back to 80x24 when stdout is not a terminal.
func terminalSize() (width, height int) {
	w, h, err := term.Size(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
