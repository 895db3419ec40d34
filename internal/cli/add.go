package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringP("title", "t", "", "Task title")
	addCmd.Flags().StringP("description", "d", "", "Task description")
	addCmd.Flags().StringP("category", "c", "", "Task category (defaults to Uncategorized)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	category, _ := cmd.Flags().GetString("category")

	a, err := openApp()
	if err != nil {
		return err
	}

	t, err := a.svc.Add(title, description, category)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Task #%d added.\n", t.ID)
	return nil
}
