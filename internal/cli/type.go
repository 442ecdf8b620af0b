package cli

import (
	"fmt"

	"github.com/gobeaver/fileclass"
	"github.com/spf13/cobra"
)

func newTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type NAME...",
		Short: "Print the file type of each name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp(cmd)

			if a.json {
				reports := make([]fileclass.Report, 0, len(args))
				for _, name := range args {
					reports = append(reports, a.svc.Inspect(name))
				}
				return writeJSON(cmd.OutOrStdout(), reports)
			}

			for _, name := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, a.svc.Classify(name))
			}
			return nil
		},
	}
}
