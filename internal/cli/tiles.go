package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/guavagrams/internal/api/request"
	"github.com/mcoot/guavagrams/internal/services/session"
	"github.com/mcoot/guavagrams/internal/services/tiles"
)

func newPileCmd() *cobra.Command {
	var (
		distribution string
		amount       int
		shuffle      bool
	)

	cmd := &cobra.Command{
		Use:   "pile",
		Short: "Generate a pile from a letter distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.CreatePile(cmd.Context(), request.CreatePileRequest{
				Distribution: distribution,
				Dictionary:   cfg.Dictionary,
				Amount:       amount,
				Shuffle:      shuffle,
			})
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&distribution, "distribution", tiles.NameBananagrams, "Distribution: bananagrams, dictionary")
	cmd.Flags().IntVarP(&amount, "amount", "n", session.DefaultPileSize, "Number of tiles")
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "Shuffle the pile")

	return cmd
}

func newDrawCmd() *cobra.Command {
	var (
		distribution string
		count        int
	)

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw letters at random from a distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Draw(cmd.Context(), request.DrawRequest{
				Distribution: distribution,
				Dictionary:   cfg.Dictionary,
				Count:        count,
			})
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&distribution, "distribution", tiles.NameBananagrams, "Distribution: bananagrams, dictionary")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of letters")

	return cmd
}

func newDistributionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distribution <name>",
		Short: "Show the letter weights of a distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Distribution(cmd.Context(), args[0], cfg.Dictionary)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
