package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/mcoot/guavagrams/internal/services/session"
	"github.com/mcoot/guavagrams/internal/services/tiles"
	"github.com/mcoot/guavagrams/internal/tui"
)

func newPlayCmd() *cobra.Command {
	opts := session.Options{Config: session.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return errors.New("play runs in process, drop --server")
			}

			opts.Dictionary = cfg.Dictionary
			game, err := app.SessionService.Start(opts)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer screen.Fini()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := tui.New(screen, game, logger).Run(ctx); err != nil {
				return err
			}

			state := game.State()
			logger.Info("game closed",
				slog.Int("score", state.Score),
				slog.Bool("finished", state.Finished()),
				slog.String("elapsed", session.FormatDuration(state.Elapsed)),
			)

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Score: %d (%s)", state.Score, session.FormatDuration(state.Elapsed)))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Distribution, "distribution", tiles.NameBananagrams, "Distribution: bananagrams, dictionary")
	cmd.Flags().IntVar(&opts.PileSize, "pile-size", opts.PileSize, "Tiles in the pile")
	cmd.Flags().IntVar(&opts.HandSize, "hand-size", opts.HandSize, "Tiles dealt at the start")
	cmd.Flags().BoolVar(&opts.Endless, "endless", false, "Keep drawing once the pile is empty")

	return cmd
}
