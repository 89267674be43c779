package cmd

import (
	"fmt"
	"strings"
	"unicode"

	"blogzone-cli/api"
	"blogzone-cli/auth"
	shared "blogzone-cli/shared"
	"blogzone-cli/term"

	"github.com/spf13/cobra"
)

var setPasswordCmd = &cobra.Command{
	Use:   "set-password",
	Short: "Change your password",
	Run:   setPassword,
}

func init() {
	RootCmd.AddCommand(setPasswordCmd)
}

func setPassword(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()
	auth.MustVerifySession()

	password, err := term.GetRequiredUserPasswordInput("New password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting password: %v", err)
	}
	if strings.IndexFunc(password, unicode.IsSpace) != -1 {
		term.OutputErrorAndExit("Password cannot contain spaces")
	}

	confirm, err := term.GetRequiredUserPasswordInput("Confirm password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting confirmation: %v", err)
	}
	if password != confirm {
		term.OutputErrorAndExit("Passwords do not match")
	}

	term.StartSpinner("")
	apiErr := api.Client.ChangePassword(shared.ChangePasswordRequest{
		NewPassword: password,
	})
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Println("✅ Password changed")
}
