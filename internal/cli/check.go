package cli

import (
	"github.com/gobeaver/fileclass"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check NAME...",
		Short: "Check names against the upload rules",
		Long:  `Validate each name and print ok or the reasons it was rejected. Exits with status 1 if any name is rejected.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp(cmd)

			reports := make([]fileclass.Report, 0, len(args))
			for _, name := range args {
				r := a.svc.Inspect(name)
				for _, w := range r.Warnings {
					a.logger.Warn().Str("name", name).Msg(w)
				}
				reports = append(reports, r)
			}

			if a.json {
				if err := writeJSON(cmd.OutOrStdout(), reports); err != nil {
					return err
				}
			} else {
				writeVerdicts(cmd.OutOrStdout(), reports)
			}

			if anyRejected(reports) {
				return errRejected
			}
			return nil
		},
	}
}
