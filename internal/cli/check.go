package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/guavagrams/internal/api/request"
)

func newCheckCmd() *cobra.Command {
	var originX, originY int

	cmd := &cobra.Command{
		Use:   "check <file|->",
		Short: "Check and score a board layout",
		Long: `Check reads a board drawn as text, one row per line, with '.' or
space for empty cells. The top-left character sits at the origin and rows
run downward. A valid board prints its words and score.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := readLayout(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := client.Validate(cmd.Context(), request.ValidateBoardRequest{
				Dictionary: cfg.Dictionary,
				Layout:     layout,
				Origin:     request.Point{X: originX, Y: originY},
			})
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&originX, "x", 0, "X coordinate of the top-left character")
	cmd.Flags().IntVar(&originY, "y", 0, "Y coordinate of the top-left character")

	return cmd
}

func readLayout(cmd *cobra.Command, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read layout: %w", err)
	}
	return string(data), nil
}
