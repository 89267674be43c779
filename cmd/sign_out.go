package cmd

import (
	"fmt"

	"blogzone-cli/auth"
	"blogzone-cli/term"

	"github.com/spf13/cobra"
)

var signOutCmd = &cobra.Command{
	Use:   "sign-out",
	Short: "Sign out and clear the stored session",
	Args:  cobra.NoArgs,
	Run:   signOut,
}

func init() {
	RootCmd.AddCommand(signOutCmd)
}

func signOut(cmd *cobra.Command, args []string) {
	err := auth.MaybeLoadAuth()
	if err != nil {
		term.OutputErrorAndExit("Error loading auth: %v", err)
	}

	if !auth.HasSession() {
		fmt.Println("🤷‍♂️ You're not signed in")
		return
	}

	username := auth.Current.Username
	auth.SignOut()

	fmt.Printf("✅ Signed out of @%s\n", username)
}
