package auth

import (
	"fmt"
	"strings"
	"unicode"

	shared "blogzone-cli/shared"
	"blogzone-cli/term"

	"github.com/fatih/color"
)

const AddAccountOption = "Sign in to another account"

// SelectOrSignIn offers previously used accounts from accounts.json, or a
// fresh sign-in.
func SelectOrSignIn() error {
	accounts, err := loadAccounts()

	if err != nil {
		return fmt.Errorf("error loading accounts: %v", err)
	}

	if len(accounts) == 0 {
		return PromptSignIn()
	}

	var options []string
	for _, account := range accounts {
		options = append(options, fmt.Sprintf("<%s> @%s", account.Name, account.Username))
	}
	options = append(options, AddAccountOption)

	selectedOpt, err := term.SelectFromList("Select an account:", options)

	if err != nil {
		return fmt.Errorf("error selecting account: %v", err)
	}

	if selectedOpt == AddAccountOption {
		return PromptSignIn()
	}

	var selected *shared.ClientAccount
	for i, opt := range options {
		if selectedOpt == opt {
			selected = accounts[i]
			break
		}
	}

	if selected == nil {
		return fmt.Errorf("error selecting account: account not found")
	}

	err = setAuth(&shared.ClientAuth{ClientAccount: *selected})
	if err != nil {
		return fmt.Errorf("error setting auth: %v", err)
	}

	// the stored token may have expired since it was last used
	term.StartSpinner("")
	user, apiErr := apiClient.GetCurrentUser()
	term.StopSpinner()

	if apiErr != nil {
		if apiErr.Type == shared.ApiErrorTypeInvalidToken {
			ClearStoredSession()
			fmt.Println("That session has expired. Please sign in again.")
			return PromptSignIn()
		}
		return fmt.Errorf("error verifying session: %v", apiErr.Msg)
	}

	CurrentUser = user
	printSignedIn()
	return nil
}

// PromptSignIn runs the login page flow: username + password, then token
// storage and a redirect-equivalent pointer at the dashboard listing.
func PromptSignIn() error {
	username, err := term.GetRequiredUserStringInput("Username:")
	if err != nil {
		return fmt.Errorf("error prompting username: %v", err)
	}

	password, err := term.GetRequiredUserPasswordInput("Password:")
	if err != nil {
		return fmt.Errorf("error prompting password: %v", err)
	}

	term.StartSpinner("")
	res, apiErr := apiClient.SignIn(shared.SignInRequest{
		Username: username,
		Password: password,
	})
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("error signing in: %v", apiErr.Msg)
	}

	return finishSession(username, res.Token)
}

// PromptSignUp runs the signup page flow with the same client-side
// validation as the web client: no whitespace in username or password, name
// trimmed but inner spaces allowed.
func PromptSignUp() error {
	name, err := term.GetRequiredUserStringInput("Name (displayed to others):")
	if err != nil {
		return fmt.Errorf("error prompting name: %v", err)
	}
	name = strings.TrimSpace(name)

	username, err := term.GetRequiredUserStringInput("Username (must be unique):")
	if err != nil {
		return fmt.Errorf("error prompting username: %v", err)
	}
	if containsWhitespace(username) {
		return fmt.Errorf("spaces are not allowed in username")
	}

	password, err := term.GetRequiredUserPasswordInput("Password:")
	if err != nil {
		return fmt.Errorf("error prompting password: %v", err)
	}
	if containsWhitespace(password) {
		return fmt.Errorf("spaces are not allowed in password")
	}

	confirm, err := term.GetRequiredUserPasswordInput("Confirm password:")
	if err != nil {
		return fmt.Errorf("error prompting password confirmation: %v", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	term.StartSpinner("🌟 Creating account...")
	res, apiErr := apiClient.SignUp(shared.SignUpRequest{
		Username: username,
		Name:     name,
		Password: password,
	})
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("error signing up: %v", apiErr.Msg)
	}

	return finishSession(username, res.Token)
}

func finishSession(username, token string) error {
	err := setAuth(&shared.ClientAuth{
		ClientAccount: shared.ClientAccount{
			Username: username,
			Token:    token,
		},
	})
	if err != nil {
		return fmt.Errorf("error setting auth: %v", err)
	}

	// fill in the display name from the who-am-I record
	term.StartSpinner("")
	user, apiErr := apiClient.GetCurrentUser()
	term.StopSpinner()

	if apiErr == nil {
		CurrentUser = user
		Current.Name = user.Name
		Current.Username = user.Username
		if err := setAuth(Current); err != nil {
			return fmt.Errorf("error setting auth: %v", err)
		}
	}

	printSignedIn()
	return nil
}

func printSignedIn() {
	name := Current.Name
	if name == "" {
		name = Current.Username
	}
	fmt.Printf("✅ Signed in as %s\n", color.New(color.Bold, term.ColorHiGreen).Sprintf("<%s> @%s", name, Current.Username))
	fmt.Println()
	term.PrintCmds("", "posts", "create", "private")
}

func containsWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
