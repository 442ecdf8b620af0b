package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gobeaver/fileclass"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type contextKey string

const appKey contextKey = "app"

// errRejected makes the process exit with status 1 once every name has been reported.
var errRejected = errors.New("one or more names were rejected")

// app carries what every subcommand needs.
type app struct {
	svc    *fileclass.Service
	logger zerolog.Logger
	json   bool
}

// NewRootCmd builds the fileclass command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fileclass",
		Short: "Fileclass validates and classifies file names",
		Long: `Fileclass checks file names for invalid characters, extracts their
extensions and sorts them into images, executables and proprietary design
files. File contents are never read.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			prefix, err := cmd.Flags().GetString("prefix")
			if err != nil {
				return err
			}
			asJSON, err := cmd.Flags().GetBool("json")
			if err != nil {
				return err
			}
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), verbose)

			svc, err := fileclass.WithPrefix(prefix).New()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger.Debug().
				Str("prefix", prefix).
				Str("ruleset", fmt.Sprintf("%016x", svc.Classifier().Fingerprint())).
				Msg("configuration loaded")

			a := &app{svc: svc, logger: logger, json: asJSON}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, a))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("prefix", "BEAVER_", "environment variable prefix for configuration")
	rootCmd.PersistentFlags().Bool("json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newCheckCmd(), newTypeCmd(), newScanCmd(), newWatchCmd())
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func getApp(cmd *cobra.Command) *app {
	if a, ok := cmd.Context().Value(appKey).(*app); ok {
		return a
	}
	return nil
}
