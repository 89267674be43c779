package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"blogzone-cli/api"
	"blogzone-cli/auth"
	shared "blogzone-cli/shared"
	"blogzone-cli/term"

	"github.com/spf13/cobra"
)

var createTitle string
var createContent string
var createPrivate bool

var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "Write and publish a new post",
	Args:    cobra.NoArgs,
	Run:     create,
}

func init() {
	RootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "post title")
	createCmd.Flags().StringVar(&createContent, "content", "", "post content (reads stdin when piped)")
	createCmd.Flags().BoolVarP(&createPrivate, "private", "p", false, "make the post visible only to you")
}

func create(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	title := createTitle
	if title == "" {
		var err error
		title, err = term.GetRequiredUserStringInput("Title:")
		if err != nil {
			term.OutputErrorAndExit("Error prompting title: %v", err)
		}
	}

	content := createContent
	if content == "" {
		content = getContentInput()
	}

	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		term.OutputErrorAndExit("Title and content cannot be empty")
	}

	term.StartSpinner("📝 Publishing post...")
	post, apiErr := api.Client.CreatePost(shared.CreatePostRequest{
		Title:   title,
		Content: content,
		Private: createPrivate,
	})
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if post != nil && post.Id != 0 {
		fmt.Printf("✅ Published post %d · %s\n", post.Id, post.Title)
	} else {
		fmt.Println("✅ Published post")
	}
	fmt.Println()
	term.PrintCmds("", "posts", "show", "open")
}

// getContentInput reads the post body from piped stdin when available,
// otherwise prompts for it.
func getContentInput() string {
	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		bytes, err := io.ReadAll(os.Stdin)
		if err != nil {
			term.OutputErrorAndExit("Error reading stdin: %v", err)
		}
		return string(bytes)
	}

	content, err := term.GetRequiredUserStringInput("Content (markdown):")
	if err != nil {
		term.OutputErrorAndExit("Error prompting content: %v", err)
	}
	return content
}
