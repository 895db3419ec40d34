package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/agarwalharshit2050-bit/To-Do-List/internal/model"
)

// writeTaskTable renders tasks with 1-based display positions; selection
// commands take these positions.
func writeTaskTable(w io.Writer, tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks to display.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTitle\tCategory\tDone\tUpdated")
	for i, t := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, t.Title, t.Category, doneMark(t.Completed), t.UpdatedAt)
	}
	tw.Flush()
}

func doneMark(completed bool) string {
	if completed {
		return "✔"
	}
	return "✗"
}
