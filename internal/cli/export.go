package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export tasks to a CSV file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	dest := a.cfg.ExportFile
	if len(args) == 1 && args[0] != "" {
		dest = args[0]
	}

	if err := a.svc.ExportCSV(dest); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to '%s' successfully.\n", dest)
	return nil
}
