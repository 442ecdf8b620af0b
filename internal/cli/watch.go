package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/gobeaver/fileclass"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch DIR",
		Short: "Log rejected names as files appear in a directory",
		Long:  `Watch DIR and log every created or renamed file whose name the upload rules reject. Runs until interrupted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp(cmd)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.Add(args[0]); err != nil {
				return fmt.Errorf("watching %s: %w", args[0], err)
			}
			a.logger.Info().Str("dir", args[0]).Msg("watching for new files")

			err = watchNames(ctx, w, a.svc, func(r fileclass.Report) {
				logRejected(a.logger, r)
			})
			if errors.Is(err, context.Canceled) {
				a.logger.Info().Msg("watch stopped")
				return nil
			}
			return err
		},
	}
}

// watchNames feeds every created file name seen by w through svc and calls
// onReject for the rejected ones. A rename shows up as a create of the new name.
func watchNames(ctx context.Context, w *fsnotify.Watcher, svc *fileclass.Service, onReject func(fileclass.Report)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			r := svc.Inspect(filepath.Base(event.Name))
			if !r.Accepted {
				onReject(r)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

func logRejected(logger zerolog.Logger, r fileclass.Report) {
	logger.Warn().
		Str("name", r.Filename).
		Str("type", r.FileType).
		Strs("checks", r.FailedChecks).
		Strs("problems", r.Problems).
		Msg("rejected name")
}
