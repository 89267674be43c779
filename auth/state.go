package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"

	"blogzone-cli/fs"
	shared "blogzone-cli/shared"
)

// Current is the active session, loaded from auth.json.
var Current *shared.ClientAuth

// CurrentUser is the who-am-I record, cached for the duration of one command.
var CurrentUser *shared.User

// mu guards Current against the one concurrent access pattern in the app:
// pages that fetch the current user and a post collection in parallel, where
// an expired token can be cleared while the sibling request is attaching it.
var mu sync.RWMutex

func SetAuthHeader(req *http.Request) {
	mu.RLock()
	defer mu.RUnlock()

	if Current == nil || Current.Token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+Current.Token)
}

func loadAccounts() ([]*shared.ClientAccount, error) {
	bytes, err := os.ReadFile(fs.HomeAccountsPath)

	if err != nil {
		if os.IsNotExist(err) {
			// no accounts
			return []*shared.ClientAccount{}, nil
		} else {
			return nil, fmt.Errorf("error reading accounts.json: %v", err)
		}
	}

	var accounts []*shared.ClientAccount
	err = json.Unmarshal(bytes, &accounts)

	if err != nil {
		return nil, fmt.Errorf("error unmarshalling accounts.json: %v", err)
	}

	return accounts, nil
}

func setAuth(auth *shared.ClientAuth) error {
	err := storeAccount(&auth.ClientAccount)

	if err != nil {
		return fmt.Errorf("error storing account: %v", err)
	}

	mu.Lock()
	Current = auth
	mu.Unlock()

	err = writeCurrentAuth()

	if err != nil {
		return fmt.Errorf("error writing auth: %v", err)
	}

	return nil
}

func storeAccount(toStore *shared.ClientAccount) error {
	accounts, err := loadAccounts()

	if err != nil {
		return fmt.Errorf("error loading accounts: %v", err)
	}

	found := false
	for i, account := range accounts {
		if account.Username == toStore.Username {
			accounts[i] = toStore
			found = true
			break
		}
	}

	if !found {
		accounts = append(accounts, toStore)
	}

	return writeAccounts(accounts)
}

func removeAccount(username string) error {
	accounts, err := loadAccounts()

	if err != nil {
		return fmt.Errorf("error loading accounts: %v", err)
	}

	filtered := accounts[:0]
	for _, account := range accounts {
		if account.Username != username {
			filtered = append(filtered, account)
		}
	}

	return writeAccounts(filtered)
}

func writeAccounts(accounts []*shared.ClientAccount) error {
	bytes, err := json.Marshal(accounts)

	if err != nil {
		return fmt.Errorf("error marshalling accounts: %v", err)
	}

	err = os.WriteFile(fs.HomeAccountsPath, bytes, os.ModePerm)

	if err != nil {
		return fmt.Errorf("error writing accounts: %v", err)
	}

	return nil
}

func writeCurrentAuth() error {
	if Current == nil {
		return fmt.Errorf("error writing auth: auth not loaded")
	}

	bytes, err := json.Marshal(Current)

	if err != nil {
		return fmt.Errorf("error marshalling auth: %v", err)
	}

	err = os.WriteFile(fs.HomeAuthPath, bytes, os.ModePerm)

	if err != nil {
		return fmt.Errorf("error writing auth: %v", err)
	}

	return nil
}

// ClearStoredSession drops the active session. The stored account entry goes
// with it since its token is no longer usable.
func ClearStoredSession() {
	mu.Lock()
	if Current != nil {
		_ = removeAccount(Current.Username)
	}
	Current = nil
	CurrentUser = nil
	mu.Unlock()

	err := os.Remove(fs.HomeAuthPath)
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "error removing auth.json: %v\n", err)
	}
}
