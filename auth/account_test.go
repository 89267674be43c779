package auth

import (
	"os"
	"testing"

	"blogzone-cli/fs"
	shared "blogzone-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubApiClient satisfies types.ApiClient with canned responses for the
// handful of calls the auth flows make.
type stubApiClient struct {
	user    *shared.User
	userErr *shared.ApiError
}

func (s *stubApiClient) SignUp(req shared.SignUpRequest) (*shared.SessionResponse, *shared.ApiError) {
	return nil, nil
}
func (s *stubApiClient) SignIn(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
	return nil, nil
}
func (s *stubApiClient) GetCurrentUser() (*shared.User, *shared.ApiError) {
	return s.user, s.userErr
}
func (s *stubApiClient) VerifyToken() *shared.ApiError { return nil }
func (s *stubApiClient) UpdateProfile(req shared.UpdateProfileRequest) (*shared.UpdateProfileResponse, *shared.ApiError) {
	return nil, nil
}
func (s *stubApiClient) ChangePassword(req shared.ChangePasswordRequest) *shared.ApiError {
	return nil
}
func (s *stubApiClient) ListPosts() ([]*shared.Post, *shared.ApiError)        { return nil, nil }
func (s *stubApiClient) ListPrivatePosts() ([]*shared.Post, *shared.ApiError) { return nil, nil }
func (s *stubApiClient) GetPost(postId int) (*shared.Post, *shared.ApiError)  { return nil, nil }
func (s *stubApiClient) CreatePost(req shared.CreatePostRequest) (*shared.Post, *shared.ApiError) {
	return nil, nil
}
func (s *stubApiClient) UpdatePost(postId int, req shared.UpdatePostRequest) *shared.ApiError {
	return nil
}
func (s *stubApiClient) DeletePost(postId int) *shared.ApiError { return nil }
func (s *stubApiClient) CreateComment(postId int, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError) {
	return nil, nil
}
func (s *stubApiClient) DeleteComment(commentId int) *shared.ApiError { return nil }

func useStubApi(t *testing.T, stub *stubApiClient) {
	t.Helper()

	prev := apiClient
	apiClient = stub
	t.Cleanup(func() { apiClient = prev })
}

func TestFinishSessionStoresToken(t *testing.T) {
	useTempHome(t)
	useStubApi(t, &stubApiClient{
		user: &shared.User{Username: "alice", Name: "Alice"},
	})

	require.NoError(t, finishSession("alice", "abc"))

	// a fresh load should see the stored token and display name
	Current = nil
	require.NoError(t, MaybeLoadAuth())

	require.NotNil(t, Current)
	assert.Equal(t, "abc", Current.Token)
	assert.Equal(t, "alice", Current.Username)
	assert.Equal(t, "Alice", Current.Name)
}

func TestResolveCurrentUserSkipsReloadWhenLoaded(t *testing.T) {
	useTempHome(t)
	useStubApi(t, &stubApiClient{
		user: &shared.User{Username: "alice", Name: "Alice"},
	})

	// a different token on disk than in memory: a re-read would swap them
	require.NoError(t, os.WriteFile(fs.HomeAuthPath,
		[]byte(`{"username":"alice","token":"disk"}`), 0600))
	Current = &shared.ClientAuth{
		ClientAccount: shared.ClientAccount{Username: "alice", Token: "memory"},
	}

	user := ResolveCurrentUser()

	require.NotNil(t, user)
	assert.Equal(t, "memory", Current.Token)
}

func TestResolveCurrentUserClearsExpiredToken(t *testing.T) {
	useTempHome(t)
	useStubApi(t, &stubApiClient{
		userErr: &shared.ApiError{Type: shared.ApiErrorTypeInvalidToken, Status: 401, Msg: "Invalid token"},
	})

	require.NoError(t, setAuth(&shared.ClientAuth{
		ClientAccount: shared.ClientAccount{Username: "alice", Token: "stale"},
	}))

	user := ResolveCurrentUser()

	assert.Nil(t, user)
	assert.False(t, HasSession())
}

func TestResolveCurrentUserKeepsTokenOnOtherErrors(t *testing.T) {
	useTempHome(t)
	useStubApi(t, &stubApiClient{
		userErr: &shared.ApiError{Type: shared.ApiErrorTypeOther, Status: 500, Msg: "server exploded"},
	})

	require.NoError(t, setAuth(&shared.ClientAuth{
		ClientAccount: shared.ClientAccount{Username: "alice", Token: "tok-123"},
	}))

	user := ResolveCurrentUser()

	assert.Nil(t, user)
	assert.True(t, HasSession())
	assert.Equal(t, "tok-123", Current.Token)
}

func TestContainsWhitespace(t *testing.T) {
	assert.False(t, containsWhitespace("alice"))
	assert.True(t, containsWhitespace("al ice"))
	assert.True(t, containsWhitespace("alice\t"))
	assert.True(t, containsWhitespace(" alice"))
}
