package cmd

import (
	"fmt"
	"strconv"

	"blogzone-cli/api"
	"blogzone-cli/auth"
	"blogzone-cli/format"
	shared "blogzone-cli/shared"
	"blogzone-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// showCmd is the post detail page
var showCmd = &cobra.Command{
	Use:     "show [post-id]",
	Aliases: []string{"sh"},
	Short:   "Show a post with its comments",
	Args:    cobra.ExactArgs(1),
	Run:     show,
}

func init() {
	RootCmd.AddCommand(showCmd)
}

func show(cmd *cobra.Command, args []string) {
	postId, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	// the post fetch needs the bearer header for private posts, so the
	// stored session has to be loaded before the parallel fetches start
	if err := auth.MaybeLoadAuth(); err != nil {
		term.OutputErrorAndExit("error loading auth: %v", err)
	}

	var currentUser *shared.User
	var post *shared.Post
	var postErr *shared.ApiError

	errCh := make(chan error, 2)

	go func() {
		currentUser = auth.ResolveCurrentUser()
		errCh <- nil
	}()

	go func() {
		post, postErr = api.Client.GetPost(postId)
		errCh <- nil
	}()

	term.StartSpinner("")
	for i := 0; i < 2; i++ {
		<-errCh
	}
	term.StopSpinner()

	if postErr != nil {
		term.OutputErrorAndExit("Failed to fetch the blog post: %v", postErr.Msg)
	}

	renderPost(post, currentUser)
}

func renderPost(post *shared.Post, currentUser *shared.User) {
	color.New(color.Bold, term.ColorHiCyan).Println(post.Title)
	if post.Private {
		color.New(term.ColorHiYellow).Println("🔒 private")
	}
	fmt.Printf("By %s (@%s) · %s\n", post.Blogger.Name, post.Blogger.Username, format.DateTime(post.CreatedAt))
	fmt.Println(term.GetDivisionLine())

	md, err := term.GetMarkdown(post.Content)
	if err != nil {
		fmt.Println(term.GetPlain(post.Content))
	} else {
		fmt.Println(md)
	}

	fmt.Println(term.GetDivisionLine())

	if len(post.Comments) == 0 {
		fmt.Println("No comments yet.")
	} else {
		plural := "s"
		if len(post.Comments) == 1 {
			plural = ""
		}
		color.New(color.Bold).Printf("%d comment%s\n\n", len(post.Comments), plural)

		for _, comment := range post.Comments {
			author := fmt.Sprintf("%s (@%s)", comment.Blogger.Name, comment.Blogger.Username)
			if currentUser != nil && currentUser.Username == comment.Blogger.Username {
				author = color.New(color.Bold, term.ColorHiGreen).Sprint(author)
			}
			fmt.Printf("💬 [%d] %s · %s\n", comment.Id, author, format.Time(comment.CreatedAt))
			fmt.Println(term.GetPlain(comment.Content))
			fmt.Println()
		}
	}

	fmt.Println()
	if currentUser != nil && currentUser.Username == post.Blogger.Username {
		term.PrintCmds("", "comment", "edit", "delete-post")
	} else if currentUser != nil {
		term.PrintCmds("", "comment")
	} else {
		term.PrintCmds("", "sign-in")
	}
}
