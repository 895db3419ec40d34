package cli

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringP("category", "c", "", "Only show tasks in this category")
}

func runList(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")

	a, err := openApp()
	if err != nil {
		return err
	}

	tasks := a.svc.Tasks()
	if category != "" {
		tasks = a.svc.ByCategory(category)
	}
	writeTaskTable(cmd.OutOrStdout(), tasks)
	return nil
}
