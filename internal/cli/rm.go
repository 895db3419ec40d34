package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm [number]",
	Short: "Delete a task selected by its list position",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rmCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func runRm(cmd *cobra.Command, args []string) error {
	pos, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	skipConfirm, _ := cmd.Flags().GetBool("yes")

	a, err := openApp()
	if err != nil {
		return err
	}

	t, err := a.svc.ByIndex(pos)
	if err != nil {
		return err
	}

	if !skipConfirm {
		fmt.Fprintf(cmd.OutOrStdout(), "You are about to delete: '%s' (Category: %s)\n", t.Title, t.Category)
		fmt.Fprint(cmd.OutOrStdout(), "Are you sure? (y/n): ")
		line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		ans := strings.ToLower(strings.TrimSpace(line))
		if ans != "y" && ans != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
			return nil
		}
	}

	if err := a.svc.Delete(t); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Task deleted.")
	return nil
}
