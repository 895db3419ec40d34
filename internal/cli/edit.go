package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agarwalharshit2050-bit/To-Do-List/internal/task"
)

var editCmd = &cobra.Command{
	Use:   "edit [number]",
	Short: "Edit a task selected by its list position",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringP("title", "t", "", "New title")
	editCmd.Flags().StringP("description", "d", "", "New description")
	editCmd.Flags().StringP("category", "c", "", "New category")
}

func runEdit(cmd *cobra.Command, args []string) error {
	pos, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	p := task.Patch{}
	if cmd.Flags().Changed("title") {
		v, _ := cmd.Flags().GetString("title")
		p.Title = &v
	}
	if cmd.Flags().Changed("description") {
		v, _ := cmd.Flags().GetString("description")
		p.Description = &v
	}
	if cmd.Flags().Changed("category") {
		v, _ := cmd.Flags().GetString("category")
		p.Category = &v
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	t, err := a.svc.Edit(pos, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Task #%d updated.\n", t.ID)
	return nil
}
