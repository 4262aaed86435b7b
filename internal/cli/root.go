package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/guavagrams/internal/api"
	"github.com/mcoot/guavagrams/internal/factory"
)

var (
	cfg    *Config
	client *Client
	app    *factory.App
	logger *slog.Logger
	closer io.Closer
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()
	client, app, logger, closer = nil, nil, nil, nil

	rootCmd := &cobra.Command{
		Use:   "guavagrams",
		Short: "Single player word grid game",
		Long: `guavagrams is a solo take on the tile grid word game.

Run "guavagrams play" for the terminal game. The other commands check
boards, generate piles and inspect dictionaries, either in process or
against a server given with --server.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			var err error
			logger, closer, err = cfg.NewLogger()
			if err != nil {
				return err
			}

			if cfg.Remote() {
				client = NewClient(cfg.ServerURL)
				return nil
			}

			app, err = factory.New(factory.Config{
				DictionaryPath: cfg.Words,
				Logger:         logger,
			})
			if err != nil {
				return err
			}
			client = NewLocalClient(api.NewRouter(api.RouterConfig{
				Logger:            logger,
				DictionaryService: app.DictionaryService,
				ScoringService:    app.ScoringService,
				RefereeService:    app.RefereeService,
				TilesService:      app.TilesService,
			}))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closer == nil {
				return nil
			}
			return closer.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL, empty to run in process (env: GUAVAGRAMS_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Words, "words", cfg.Words, "Word list file or directory for in process runs (env: GUAVAGRAMS_WORDS)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Dictionary, "dictionary", "d", cfg.Dictionary, "Dictionary name (env: GUAVAGRAMS_DICTIONARY)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: GUAVAGRAMS_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Append JSON logs to this file (env: GUAVAGRAMS_LOG_FILE)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newPileCmd())
	rootCmd.AddCommand(newDrawCmd())
	rootCmd.AddCommand(newDistributionCmd())
	rootCmd.AddCommand(newDictionaryCmd())
	rootCmd.AddCommand(newScoreTableCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
