package cmd

import (
	"fmt"
	"os"
	"strconv"

	"blogzone-cli/api"
	"blogzone-cli/auth"
	"blogzone-cli/format"
	"blogzone-cli/lib"
	"blogzone-cli/term"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

var profileCmd = &cobra.Command{
	Use:     "profile [username]",
	Aliases: []string{"pr"},
	Short:   "Show a blogger's profile",
	Long:    "Show a blogger's profile, with their public posts and comments.",
	Args:    cobra.MaximumNArgs(1),
	Run:     profile,
}

func init() {
	RootCmd.AddCommand(profileCmd)
}

func profile(cmd *cobra.Command, args []string) {
	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		if err := auth.MaybeLoadAuth(); err != nil {
			term.OutputErrorAndExit("error loading auth: %v", err)
		}
		if auth.Current == nil {
			term.OutputErrorAndExit("No username given and not signed in")
		}
		username = auth.Current.Username
	}

	term.StartSpinner("")
	posts, apiErr := api.Client.ListPosts()
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Failed to load posts: %v", apiErr.Msg)
	}

	prof := lib.BuildProfile(lib.DedupePosts(posts), username)

	if prof.Unknown {
		color.New(term.ColorHiYellow, color.Bold).Printf("🤷‍♂️ No posts or comments found for @%s\n", username)
		fmt.Println("They may not exist, or they may not have written anything public yet.")
		return
	}

	color.New(color.Bold, term.ColorHiCyan).Printf("👤 %s", prof.Name)
	fmt.Printf(" (@%s)\n", prof.Username)
	fmt.Printf("Joined %s\n", format.Date(prof.CreatedAt))
	fmt.Println()

	color.New(color.Bold).Printf("✏️  %d post(s)\n", len(prof.Posts))
	if len(prof.Posts) > 0 {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"Id", "Title", "Comments", "Created"})
		for _, post := range prof.Posts {
			table.Append([]string{
				strconv.Itoa(post.Id),
				post.Title,
				strconv.Itoa(len(post.Comments)),
				format.Time(post.CreatedAt),
			})
		}
		table.Render()
	}
	fmt.Println()

	color.New(color.Bold).Printf("💬 %d comment(s)\n", len(prof.Comments))
	if len(prof.Comments) > 0 {
		tree := treeprint.New()
		tree.SetValue("comments")

		branches := map[int]treeprint.Tree{}
		for _, comment := range prof.Comments {
			branch, ok := branches[comment.PostId]
			if !ok {
				branch = tree.AddBranch(fmt.Sprintf("%s (post %d)", comment.PostTitle, comment.PostId))
				branches[comment.PostId] = branch
			}
			branch.AddNode(fmt.Sprintf("%s · %s", comment.Content, format.Time(comment.CreatedAt)))
		}

		fmt.Print(tree.String())
	}

	fmt.Println()
	term.PrintCmds("", "posts", "show")
}
