package cmd

import (
	"blogzone-cli/auth"
	"blogzone-cli/term"

	"github.com/spf13/cobra"
)

var signUpCmd = &cobra.Command{
	Use:   "sign-up",
	Short: "Create a new Blog Zone account",
	Args:  cobra.NoArgs,
	Run:   signUp,
}

func init() {
	RootCmd.AddCommand(signUpCmd)
}

func signUp(cmd *cobra.Command, args []string) {
	err := auth.PromptSignUp()

	if err != nil {
		term.OutputErrorAndExit("Error signing up: %v", err)
	}
}
