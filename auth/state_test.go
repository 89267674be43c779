package auth

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"blogzone-cli/fs"
	shared "blogzone-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempHome redirects the auth and accounts files into a scratch dir so
// tests never touch the real session.
func useTempHome(t *testing.T) {
	t.Helper()

	dir := t.TempDir()

	prevAuth := fs.HomeAuthPath
	prevAccounts := fs.HomeAccountsPath
	fs.HomeAuthPath = filepath.Join(dir, "auth.json")
	fs.HomeAccountsPath = filepath.Join(dir, "accounts.json")

	t.Cleanup(func() {
		fs.HomeAuthPath = prevAuth
		fs.HomeAccountsPath = prevAccounts
		Current = nil
		CurrentUser = nil
	})
}

func TestSetAuthHeader(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://localhost/api/auth/me", nil)
	require.NoError(t, err)

	Current = nil
	SetAuthHeader(req)
	assert.Empty(t, req.Header.Get("Authorization"))

	Current = &shared.ClientAuth{
		ClientAccount: shared.ClientAccount{Username: "alice", Token: "tok-123"},
	}
	defer func() { Current = nil }()

	SetAuthHeader(req)
	assert.Equal(t, "Bearer tok-123", req.Header.Get("Authorization"))
}

func TestSetAuthRoundTrip(t *testing.T) {
	useTempHome(t)

	err := setAuth(&shared.ClientAuth{
		ClientAccount: shared.ClientAccount{Username: "alice", Name: "Alice", Token: "tok-123"},
	})
	require.NoError(t, err)

	// a fresh load should see what was stored
	Current = nil
	require.NoError(t, MaybeLoadAuth())

	require.NotNil(t, Current)
	assert.Equal(t, "alice", Current.Username)
	assert.Equal(t, "tok-123", Current.Token)
	assert.True(t, HasSession())

	accounts, err := loadAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "alice", accounts[0].Username)
}

func TestMaybeLoadAuthMissingFile(t *testing.T) {
	useTempHome(t)

	require.NoError(t, MaybeLoadAuth())
	assert.Nil(t, Current)
	assert.False(t, HasSession())
}

// Clearing an expired session can overlap an in-flight request attaching the
// bearer header; both sides go through the state lock. Meaningful under -race.
func TestSetAuthHeaderDuringSessionClear(t *testing.T) {
	useTempHome(t)

	require.NoError(t, setAuth(&shared.ClientAuth{
		ClientAccount: shared.ClientAccount{Username: "alice", Token: "tok-123"},
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			req, err := http.NewRequest(http.MethodGet, "http://localhost/api/blog", nil)
			if err != nil {
				t.Error(err)
				return
			}
			SetAuthHeader(req)
		}
	}()

	ClearStoredSession()
	<-done

	assert.False(t, HasSession())
}

func TestRequireAuthWithoutSession(t *testing.T) {
	useTempHome(t)

	err := RequireAuth("see your private posts")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "signed in")
	assert.Contains(t, err.Error(), "see your private posts")
}

func TestRequireAuthWithSession(t *testing.T) {
	useTempHome(t)

	require.NoError(t, setAuth(&shared.ClientAuth{
		ClientAccount: shared.ClientAccount{Username: "alice", Token: "tok-123"},
	}))

	require.NoError(t, RequireAuth("edit a post"))
	assert.True(t, HasSession())
}

func TestClearStoredSession(t *testing.T) {
	useTempHome(t)

	require.NoError(t, setAuth(&shared.ClientAuth{
		ClientAccount: shared.ClientAccount{Username: "alice", Token: "tok-123"},
	}))

	ClearStoredSession()

	assert.Nil(t, Current)
	assert.False(t, HasSession())

	_, err := os.Stat(fs.HomeAuthPath)
	assert.True(t, os.IsNotExist(err))

	accounts, err := loadAccounts()
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestUpdateStoredProfile(t *testing.T) {
	useTempHome(t)

	require.NoError(t, setAuth(&shared.ClientAuth{
		ClientAccount: shared.ClientAccount{Username: "alice", Name: "Alice", Token: "tok-123"},
	}))

	err := UpdateStoredProfile("Alice B", "aliceb", "tok-456")
	require.NoError(t, err)

	assert.Equal(t, "Alice B", Current.Name)
	assert.Equal(t, "aliceb", Current.Username)
	assert.Equal(t, "tok-456", Current.Token)

	// the entry under the old username is retired
	accounts, err := loadAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "aliceb", accounts[0].Username)
}

func TestUpdateStoredProfileKeepsTokenWhenUnchanged(t *testing.T) {
	useTempHome(t)

	require.NoError(t, setAuth(&shared.ClientAuth{
		ClientAccount: shared.ClientAccount{Username: "alice", Name: "Alice", Token: "tok-123"},
	}))

	err := UpdateStoredProfile("Alice B", "alice", "")
	require.NoError(t, err)

	assert.Equal(t, "Alice B", Current.Name)
	assert.Equal(t, "tok-123", Current.Token)
}
