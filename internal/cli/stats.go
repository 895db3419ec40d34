package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	st := a.svc.Stats()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total tasks: %d\n", st.Total)
	fmt.Fprintf(out, "Completed: %d\n", st.Completed)
	fmt.Fprintf(out, "Pending: %d\n", st.Pending)
	fmt.Fprintln(out, "\nBy category:")
	if len(st.Categories) == 0 {
		fmt.Fprintln(out, "- None")
		return nil
	}
	for _, c := range st.Categories {
		cc := st.PerCategory[c]
		fmt.Fprintf(out, "- %s: %d/%d done\n", c, cc.Completed, cc.Total)
	}
	return nil
}
