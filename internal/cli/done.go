package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [number]",
	Short: "Toggle completion of a task selected by its list position",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	pos, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	t, err := a.svc.Toggle(pos)
	if err != nil {
		return err
	}
	if t.Completed {
		fmt.Fprintf(cmd.OutOrStdout(), "Marked as completed: %s\n", t.Title)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Marked as NOT completed: %s\n", t.Title)
	}
	return nil
}

func parsePosition(arg string) (int, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil || pos < 1 {
		return 0, fmt.Errorf("task number must be a positive integer, got %q", arg)
	}
	return pos, nil
}
