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

var editTitle string
var editContent string
var editPrivate bool

var editCmd = &cobra.Command{
	Use:     "edit [post-id]",
	Aliases: []string{"e"},
	Short:   "Edit one of your posts",
	Args:    cobra.ExactArgs(1),
	Run:     edit,
}

func init() {
	RootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new post title")
	editCmd.Flags().StringVar(&editContent, "content", "", "new post content")
	editCmd.Flags().BoolVarP(&editPrivate, "private", "p", false, "make the post visible only to you")
}

func edit(cmd *cobra.Command, args []string) {
	postId, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	// the edit page surfaces a message rather than redirecting
	if err := auth.RequireAuth("edit a post"); err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	term.StartSpinner("")
	post, apiErr := api.Client.GetPost(postId)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Failed to fetch post details: %v", apiErr.Msg)
	}

	title := editTitle
	if title == "" {
		title, err = term.GetUserStringInputWithDefault("Title:", post.Title)
		if err != nil {
			term.OutputErrorAndExit("Error prompting title: %v", err)
		}
	}

	content := editContent
	if content == "" {
		content, err = term.GetUserStringInputWithDefault("Content:", post.Content)
		if err != nil {
			term.OutputErrorAndExit("Error prompting content: %v", err)
		}
	}

	private := post.Private
	if cmd.Flags().Changed("private") {
		private = editPrivate
	}

	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		term.OutputErrorAndExit("Title and content cannot be empty")
	}

	term.StartSpinner("📝 Updating post...")
	apiErr = api.Client.UpdatePost(postId, shared.UpdatePostRequest{
		Title:   title,
		Content: content,
		Private: private,
	})
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("✅ Updated post %d\n", postId)
	fmt.Println()
	term.PrintCmds("", "show", "posts")
}
