package cmd

import (
	"fmt"
	"strconv"

	"blogzone-cli/api"
	"blogzone-cli/auth"
	"blogzone-cli/lib"
	"blogzone-cli/term"

	"github.com/spf13/cobra"
)

var deletePostCmd = &cobra.Command{
	Use:     "delete-post [post-id]",
	Aliases: []string{"dp"},
	Short:   "Delete one of your posts",
	Args:    cobra.ExactArgs(1),
	Run:     deletePost,
}

func init() {
	RootCmd.AddCommand(deletePostCmd)
}

func deletePost(cmd *cobra.Command, args []string) {
	postId, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	auth.MustResolveAuth()

	confirmed, err := term.ConfirmYesNo("Are you sure you want to delete post %d?", postId)
	if err != nil {
		term.OutputErrorAndExit("Error getting confirmation: %v", err)
	}
	if !confirmed {
		return
	}

	term.StartSpinner("")
	apiErr := api.Client.DeletePost(postId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("🗑️  Deleted post %d\n", postId)
	fmt.Println()

	// show the listing as it stands now; the deleted id is dropped locally in
	// case the backend serves a stale collection right after the delete
	term.StartSpinner("")
	allPosts, apiErr := api.Client.ListPosts()
	term.StopSpinner()

	if apiErr != nil {
		return
	}

	remaining := lib.RemovePost(lib.DedupePosts(allPosts), postId)
	if len(remaining) == 0 {
		fmt.Println("No posts yet.")
		return
	}

	renderPostsTable(remaining, auth.CurrentUser)
}
