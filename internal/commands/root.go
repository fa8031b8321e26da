package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kk-code-lab/pick/internal/app"
	"github.com/kk-code-lab/pick/internal/source"
	"github.com/kk-code-lab/pick/internal/ui/term"
)

// Version is set at build time.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "pick",
	Short:   "Interactive menus for project scripts, tasks and tmux sessions",
	Long:    "Pick renders a bordered, keyboard-driven menu over package.json scripts,\nTaskfile tasks or tmux sessions and hands the terminal to whatever you select.",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "Browse and run package.json scripts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runMenu(cmd, source.Scripts{Dir: "."})
	},
}

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Browse and run Taskfile tasks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runMenu(cmd, source.Tasks{Dir: "."})
	},
}

var tmuxCmd = &cobra.Command{
	Use:   "tmux",
	Short: "Browse and attach to tmux sessions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runMenu(cmd, source.Tmux{})
	},
}

func init() {
	rootCmd.AddCommand(scriptsCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(tmuxCmd)
}

// runMenu drives one full menu session on the process terminal and
// exits the process when the session reports a non-zero code.
func runMenu(cmd *cobra.Command, src source.Source) {
	trm := term.New(os.Stdin, os.Stdout)
	if code := app.New(src, trm).Run(cmd.Context()); code != 0 {
		os.Exit(code)
	}
}
