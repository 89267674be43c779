package cmd

import (
	"fmt"

	"blogzone-cli/api"
	"blogzone-cli/auth"
	"blogzone-cli/lib"
	shared "blogzone-cli/shared"
	"blogzone-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var privateSearchQuery string
var privateField string

var privateCmd = &cobra.Command{
	Use:     "private",
	Aliases: []string{"pv"},
	Short:   "List your private posts",
	Args:    cobra.NoArgs,
	Run:     private,
}

func init() {
	RootCmd.AddCommand(privateCmd)

	privateCmd.Flags().StringVarP(&privateSearchQuery, "search", "s", "", "filter posts by a search query")
	privateCmd.Flags().StringVarP(&privateField, "field", "f", "title", "field to search: title or content")
}

func private(cmd *cobra.Command, args []string) {
	if err := auth.RequireAuth("see your private posts"); err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	var currentUser *shared.User
	var privatePosts []*shared.Post
	var postsErr *shared.ApiError

	errCh := make(chan error, 2)

	go func() {
		currentUser = auth.ResolveCurrentUser()
		errCh <- nil
	}()

	go func() {
		privatePosts, postsErr = api.Client.ListPrivatePosts()
		errCh <- nil
	}()

	term.StartSpinner("")
	for i := 0; i < 2; i++ {
		<-errCh
	}
	term.StopSpinner()

	if postsErr != nil {
		term.OutputErrorAndExit("Failed to fetch private posts: %v", postsErr.Msg)
	}

	privatePosts = lib.DedupePosts(privatePosts)
	filtered := lib.FilterPosts(privatePosts, privateSearchQuery, privateSearchField())

	if privateSearchQuery != "" {
		plural := "s"
		if len(filtered) == 1 {
			plural = ""
		}
		color.New(term.ColorHiCyan).Printf("Found %d post%s\n\n", len(filtered), plural)
	}

	if len(filtered) == 0 {
		fmt.Println("🤷‍♂️ No private posts found.")
		fmt.Println()
		term.PrintCmds("", "create", "posts")
		return
	}

	color.New(color.Bold, term.ColorHiMagenta).Println("🔒 Your private posts")
	fmt.Println()
	renderPostsTable(filtered, currentUser)

	fmt.Println()
	term.PrintCmds("", "show", "edit", "delete-post")
}

// privateSearchField restricts private search to title/content; any other
// field falls through to no filtering, as on the private page of the web
// client (which has no author column to search).
func privateSearchField() lib.SearchField {
	switch lib.SearchField(privateField) {
	case lib.SearchFieldTitle:
		return lib.SearchFieldTitle
	case lib.SearchFieldContent:
		return lib.SearchFieldContent
	default:
		return lib.SearchField("")
	}
}
