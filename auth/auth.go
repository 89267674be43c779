package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"blogzone-cli/fs"
	shared "blogzone-cli/shared"
	"blogzone-cli/term"
)

// MaybeLoadAuth reads auth.json into Current if it exists. A missing file is
// the unauthenticated state, not an error.
func MaybeLoadAuth() error {
	bytes, err := os.ReadFile(fs.HomeAuthPath)

	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading auth.json: %v", err)
	}

	var auth shared.ClientAuth
	err = json.Unmarshal(bytes, &auth)
	if err != nil {
		return fmt.Errorf("error unmarshalling auth.json: %v", err)
	}

	mu.Lock()
	Current = &auth
	mu.Unlock()
	return nil
}

func HasSession() bool {
	return Current != nil && Current.Token != ""
}

// MustResolveAuth gates commands that mutate server state. With no stored
// token it exits immediately, pointing at sign-in, without issuing any
// authenticated call.
func MustResolveAuth() {
	err := MaybeLoadAuth()
	if err != nil {
		term.OutputErrorAndExit("error resolving auth: %v", err)
	}

	if !HasSession() {
		term.OutputNotSignedInAndExit()
	}
}

// RequireAuth gates read-mostly commands, which surface an inline message
// rather than bailing out of the command.
func RequireAuth(action string) error {
	err := MaybeLoadAuth()
	if err != nil {
		return err
	}

	if !HasSession() {
		return fmt.Errorf("you must be signed in to %s", action)
	}

	return nil
}

// MustVerifySession resolves auth, then makes one who-am-I call and caches
// the result. A 401 clears the stored token; any other failure leaves the
// token alone.
func MustVerifySession() *shared.User {
	MustResolveAuth()

	if CurrentUser != nil {
		return CurrentUser
	}

	if apiClient == nil {
		term.OutputErrorAndExit("error verifying session: api client not set")
	}

	user, apiErr := apiClient.GetCurrentUser()

	if apiErr != nil {
		if apiErr.Type == shared.ApiErrorTypeInvalidToken {
			ClearStoredSession()
			term.StopSpinner()
			term.OutputSimpleError("Your session has expired. Please sign in again.")
			fmt.Println()
			term.PrintCmds("", "sign-in")
			os.Exit(1)
		}
		term.OutputErrorAndExit("error fetching your user record: %v", apiErr.Msg)
	}

	CurrentUser = user
	return user
}

// ResolveCurrentUser is the best-effort variant used by pages that render
// fine for guests. A dead token is still cleared.
//
// Callers that run this concurrently with another authenticated fetch must
// load auth before spawning; the stored file is only read here when nothing
// is loaded yet, so the disk read never races the sibling request.
func ResolveCurrentUser() *shared.User {
	if Current == nil {
		if err := MaybeLoadAuth(); err != nil {
			return nil
		}
	}

	if !HasSession() || apiClient == nil {
		return nil
	}

	if CurrentUser != nil {
		return CurrentUser
	}

	user, apiErr := apiClient.GetCurrentUser()
	if apiErr != nil {
		if apiErr.Type == shared.ApiErrorTypeInvalidToken {
			ClearStoredSession()
		}
		return nil
	}

	CurrentUser = user
	return user
}

// UpdateStoredProfile rewrites the stored session after a profile change.
// When the username changed the server issues a fresh token bound to it, and
// the account entry under the old username is retired.
func UpdateStoredProfile(name, username, newToken string) error {
	if Current == nil {
		return fmt.Errorf("error updating stored profile: auth not loaded")
	}

	oldUsername := Current.Username

	Current.Name = name
	Current.Username = username
	if newToken != "" {
		Current.Token = newToken
	}

	if oldUsername != username {
		if err := removeAccount(oldUsername); err != nil {
			return err
		}
	}

	if CurrentUser != nil {
		CurrentUser.Name = name
		CurrentUser.Username = username
	}

	return setAuth(Current)
}

func SignOut() {
	ClearStoredSession()
}
