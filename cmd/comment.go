package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"blogzone-cli/api"
	"blogzone-cli/auth"
	shared "blogzone-cli/shared"
	"blogzone-cli/term"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:     "comment [post-id] [content]",
	Aliases: []string{"cm"},
	Short:   "Comment on a post",
	Args:    cobra.RangeArgs(1, 2),
	Run:     comment,
}

func init() {
	RootCmd.AddCommand(commentCmd)
}

func comment(cmd *cobra.Command, args []string) {
	postId, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	auth.MustResolveAuth()

	var content string
	if len(args) > 1 {
		content = args[1]
	} else {
		content, err = term.GetUserStringInput("Comment:")
		if err != nil {
			term.OutputErrorAndExit("Error prompting comment: %v", err)
		}
	}

	if apiErr := submitComment(postId, content); apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Println("✅ Comment posted!")

	// re-fetch so the updated comment thread is what gets shown
	term.StartSpinner("")
	post, apiErr := api.Client.GetPost(postId)
	term.StopSpinner()

	if apiErr != nil {
		return
	}

	fmt.Println()
	renderPost(post, auth.CurrentUser)
}

// submitComment rejects whitespace-only content before any request goes out.
func submitComment(postId int, content string) *shared.ApiError {
	if strings.TrimSpace(content) == "" {
		return &shared.ApiError{Type: shared.ApiErrorTypeValidation, Msg: "Comment cannot be empty."}
	}

	term.StartSpinner("")
	defer term.StopSpinner()

	_, apiErr := api.Client.CreateComment(postId, shared.CreateCommentRequest{
		Content: content,
	})
	return apiErr
}
