package cmd

import (
	"fmt"
	"os"
	"strconv"

	"blogzone-cli/api"
	"blogzone-cli/auth"
	"blogzone-cli/format"
	"blogzone-cli/lib"
	shared "blogzone-cli/shared"
	"blogzone-cli/term"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var searchQuery string
var searchField string

// postsCmd is the dashboard listing
var postsCmd = &cobra.Command{
	Use:     "posts",
	Aliases: []string{"ps"},
	Short:   "List all public posts",
	Args:    cobra.NoArgs,
	Run:     posts,
}

func init() {
	RootCmd.AddCommand(postsCmd)

	postsCmd.Flags().StringVarP(&searchQuery, "search", "s", "", "filter posts by a search query")
	postsCmd.Flags().StringVarP(&searchField, "field", "f", "title", "field to search: title, content, or author")
}

func posts(cmd *cobra.Command, args []string) {
	// load any stored session up front so the parallel fetches below only
	// ever read it
	if err := auth.MaybeLoadAuth(); err != nil {
		term.OutputErrorAndExit("error loading auth: %v", err)
	}

	var currentUser *shared.User
	var allPosts []*shared.Post
	var postsErr *shared.ApiError

	// the user fetch and the post fetch are independent; run both and join
	errCh := make(chan error, 2)

	go func() {
		currentUser = auth.ResolveCurrentUser()
		errCh <- nil
	}()

	go func() {
		allPosts, postsErr = api.Client.ListPosts()
		errCh <- nil
	}()

	term.StartSpinner("")
	for i := 0; i < 2; i++ {
		<-errCh
	}
	term.StopSpinner()

	if postsErr != nil {
		term.OutputErrorAndExit("Failed to fetch blog posts: %v", postsErr.Msg)
	}

	allPosts = lib.DedupePosts(allPosts)
	filtered := lib.FilterPosts(allPosts, searchQuery, lib.SearchField(searchField))

	if currentUser != nil {
		fmt.Printf("Welcome, %s!\n\n", color.New(color.Bold, term.ColorHiGreen).Sprint(currentUser.Name))
	}

	if searchQuery != "" {
		plural := "s"
		if len(filtered) == 1 {
			plural = ""
		}
		color.New(term.ColorHiCyan).Printf("Found %d post%s\n\n", len(filtered), plural)
	}

	if len(filtered) == 0 {
		fmt.Println("🤷‍♂️ No posts found matching your search.")
		fmt.Println()
		term.PrintCmds("", "posts", "create")
		return
	}

	renderPostsTable(filtered, currentUser)

	fmt.Println()
	term.PrintCmds("", "show", "create", "private", "profile")
}

func renderPostsTable(posts []*shared.Post, currentUser *shared.User) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Id", "Title", "Author", "Comments", "Created"})

	for _, post := range posts {
		title := post.Title
		author := post.Blogger.Name

		if currentUser != nil && currentUser.Username == post.Blogger.Username {
			author = color.New(color.Bold, term.ColorHiGreen).Sprint(author) + color.New(color.FgWhite).Sprint(" 👈 you")
		}

		table.Append([]string{
			strconv.Itoa(post.Id),
			title,
			author,
			strconv.Itoa(len(post.Comments)),
			format.Time(post.CreatedAt),
		})
	}

	table.Render()
}
