package cli

import (
	"fmt"
	"os"

	"github.com/gobeaver/fileclass"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan DIR",
		Short: "Report rejected names in a directory",
		Long:  `List the files directly inside DIR and report the names the upload rules reject. Contents are not read.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp(cmd)
			all, err := cmd.Flags().GetBool("all")
			if err != nil {
				return err
			}

			reports, err := scanDir(a.svc, args[0])
			if err != nil {
				return err
			}

			rejected := 0
			shown := reports[:0:0]
			for _, r := range reports {
				if !r.Accepted {
					rejected++
				}
				if all || !r.Accepted {
					shown = append(shown, r)
				}
			}

			if a.json {
				if err := writeJSON(cmd.OutOrStdout(), shown); err != nil {
					return err
				}
			} else {
				writeVerdicts(cmd.OutOrStdout(), shown)
			}

			a.logger.Info().
				Str("dir", args[0]).
				Int("files", len(reports)).
				Int("rejected", rejected).
				Msg("scan finished")

			if rejected > 0 {
				return errRejected
			}
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "also list accepted names")
	return cmd
}

// scanDir inspects the names of the regular entries in dir.
func scanDir(svc *fileclass.Service, dir string) ([]fileclass.Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	reports := make([]fileclass.Report, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		reports = append(reports, svc.Inspect(e.Name()))
	}
	return reports, nil
}
