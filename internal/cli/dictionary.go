package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/guavagrams/internal/services/dictionary"
)

func newDictionaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dictionary",
		Aliases: []string{"dictionaries"},
		Short:   "Dictionary commands",
	}

	cmd.AddCommand(newDictionaryListCmd())
	cmd.AddCommand(newDictionaryUploadCmd())
	cmd.AddCommand(newDictionaryDeleteCmd())

	return cmd
}

func newDictionaryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List loaded dictionaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Dictionaries(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newDictionaryUploadCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			words, err := dictionary.ReadWords(f)
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			if name == "" {
				name = dictionary.NameFromPath(args[0])
			}

			result, err := client.SaveDictionary(cmd.Context(), name, words)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Dictionary name, defaults to the file name")

	return cmd
}

func newDictionaryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteDictionary(cmd.Context(), args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Deleted dictionary %s", args[0]))
			return nil
		},
	}
}

func newScoreTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score-table",
		Short: "Show the letter values used for scoring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.ScoreTable(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
