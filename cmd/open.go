package cmd

import (
	"strconv"

	"blogzone-cli/term"
	"blogzone-cli/ui"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:     "open [post-id]",
	Aliases: []string{"o"},
	Short:   "Open a post in your browser",
	Args:    cobra.ExactArgs(1),
	Run:     open,
}

func init() {
	RootCmd.AddCommand(openCmd)
}

func open(cmd *cobra.Command, args []string) {
	postId, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	ui.OpenPostURL("Opening post in your browser", postId)
}
