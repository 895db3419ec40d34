package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/agarwalharshit2050-bit/To-Do-List/internal/config"
	"github.com/agarwalharshit2050-bit/To-Do-List/internal/task"
)

var (
	cfgFile  string
	dataFile string
	rootCmd  *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "todo",
		Short: "Personal to-do list manager",
		Long: `todo keeps a single-user task list in a JSON file.

Run it without arguments for the interactive menu, or use the subcommands
for scripting.`,
		RunE:          runMenu, // default action is the interactive menu
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "todo.yml", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "Path to the tasks file (overrides config)")
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

type app struct {
	cfg config.Config
	svc *task.Service
}

func openApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}

	store, err := task.Open(cfg.DataFile, log.Default())
	if err != nil {
		return nil, err
	}
	if store.Recovered() {
		fmt.Fprintf(os.Stderr, "warning: %s could not be read as a task list, starting with an empty one\n", store.Path())
	}
	return &app{cfg: cfg, svc: task.NewService(store)}, nil
}
