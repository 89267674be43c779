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

var setProfileCmd = &cobra.Command{
	Use:   "set-profile",
	Short: "Update your display name or username",
	Run:   setProfile,
}

func init() {
	RootCmd.AddCommand(setProfileCmd)
}

func setProfile(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()
	user := auth.MustVerifySession()

	name, err := term.GetUserStringInputWithDefault("Display name:", user.Name)
	if err != nil {
		term.OutputErrorAndExit("Error prompting name: %v", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		term.OutputErrorAndExit("Name cannot be empty")
	}

	username, err := term.GetUserStringInputWithDefault("Username:", user.Username)
	if err != nil {
		term.OutputErrorAndExit("Error prompting username: %v", err)
	}
	if username == "" {
		term.OutputErrorAndExit("Username cannot be empty")
	}
	if strings.IndexFunc(username, unicode.IsSpace) != -1 {
		term.OutputErrorAndExit("Username cannot contain spaces")
	}

	req := shared.UpdateProfileRequest{Name: name}

	// the server only re-issues a token when the username actually changes,
	// so an unchanged username is left out of the request entirely
	if username != user.Username {
		req.NewUsername = username
	}

	term.StartSpinner("")
	res, apiErr := api.Client.UpdateProfile(req)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	err = auth.UpdateStoredProfile(name, username, res.Token)
	if err != nil {
		term.OutputErrorAndExit("Error storing updated profile: %v", err)
	}

	if res.Message != "" {
		fmt.Println("✅ " + res.Message)
	} else {
		fmt.Println("✅ Profile updated")
	}
}
