package cmd

import (
	"fmt"

	"blogzone-cli/api"
	"blogzone-cli/auth"
	shared "blogzone-cli/shared"
	"blogzone-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   `blogzone [command] [flags]`,
	Short: "The Blog Zone: read and write blog posts from your terminal",
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		term.OutputErrorAndExit("Error executing root command: %v", err)
	}
}

// run is the landing page: check whether the stored token still works and
// point at the next thing to do.
func run(cmd *cobra.Command, args []string) {
	color.New(color.Bold, term.ColorHiCyan).Println("📝 Welcome to The Blog Zone")
	fmt.Println()

	err := auth.MaybeLoadAuth()
	if err != nil {
		term.OutputErrorAndExit("error loading auth: %v", err)
	}

	if auth.HasSession() {
		term.StartSpinner("")
		apiErr := api.Client.VerifyToken()
		term.StopSpinner()

		if apiErr == nil {
			name := auth.Current.Name
			if name == "" {
				name = auth.Current.Username
			}
			fmt.Printf("Signed in as %s\n", color.New(color.Bold, term.ColorHiGreen).Sprintf("<%s> @%s", name, auth.Current.Username))
			fmt.Println()
			term.PrintCmds("", "posts", "show", "create", "private", "profile", "whoami")
			return
		}

		if apiErr.Type == shared.ApiErrorTypeInvalidToken {
			auth.ClearStoredSession()
			term.OutputSimpleError("Your session has expired.")
		} else {
			term.OutputSimpleError("Couldn't verify your session: %v", apiErr.Msg)
		}
		fmt.Println()
	}

	fmt.Println("Explore the world of ideas and share your own.")
	fmt.Println()
	term.PrintCmds("", "posts", "show", "profile", "sign-in", "sign-up")
}
