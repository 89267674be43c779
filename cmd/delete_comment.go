package cmd

import (
	"fmt"
	"strconv"

	"blogzone-cli/api"
	"blogzone-cli/auth"
	"blogzone-cli/term"

	"github.com/spf13/cobra"
)

var deleteCommentCmd = &cobra.Command{
	Use:     "delete-comment [comment-id]",
	Aliases: []string{"dc"},
	Short:   "Delete a comment",
	Args:    cobra.ExactArgs(1),
	Run:     deleteComment,
}

func init() {
	RootCmd.AddCommand(deleteCommentCmd)
}

func deleteComment(cmd *cobra.Command, args []string) {
	commentId, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid comment id: %s", args[0])
	}

	auth.MustResolveAuth()

	confirmed, err := term.ConfirmYesNo("Delete comment %d?", commentId)
	if err != nil {
		term.OutputErrorAndExit("Error getting confirmation: %v", err)
	}
	if !confirmed {
		fmt.Println("🙅‍♂️ Canceled")
		return
	}

	term.StartSpinner("")
	apiErr := api.Client.DeleteComment(commentId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Println("🗑️ Comment deleted")
}
