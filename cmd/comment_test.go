package cmd

import (
	"testing"

	"blogzone-cli/api"
	shared "blogzone-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingApiClient records comment submissions so tests can assert whether a
// request was issued at all.
type countingApiClient struct {
	createCommentCalls int
	lastPostId         int
	lastContent        string
}

func (c *countingApiClient) SignUp(req shared.SignUpRequest) (*shared.SessionResponse, *shared.ApiError) {
	return nil, nil
}
func (c *countingApiClient) SignIn(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
	return nil, nil
}
func (c *countingApiClient) GetCurrentUser() (*shared.User, *shared.ApiError) { return nil, nil }
func (c *countingApiClient) VerifyToken() *shared.ApiError                    { return nil }
func (c *countingApiClient) UpdateProfile(req shared.UpdateProfileRequest) (*shared.UpdateProfileResponse, *shared.ApiError) {
	return nil, nil
}
func (c *countingApiClient) ChangePassword(req shared.ChangePasswordRequest) *shared.ApiError {
	return nil
}
func (c *countingApiClient) ListPosts() ([]*shared.Post, *shared.ApiError)        { return nil, nil }
func (c *countingApiClient) ListPrivatePosts() ([]*shared.Post, *shared.ApiError) { return nil, nil }
func (c *countingApiClient) GetPost(postId int) (*shared.Post, *shared.ApiError)  { return nil, nil }
func (c *countingApiClient) CreatePost(req shared.CreatePostRequest) (*shared.Post, *shared.ApiError) {
	return nil, nil
}
func (c *countingApiClient) UpdatePost(postId int, req shared.UpdatePostRequest) *shared.ApiError {
	return nil
}
func (c *countingApiClient) DeletePost(postId int) *shared.ApiError { return nil }
func (c *countingApiClient) CreateComment(postId int, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError) {
	c.createCommentCalls++
	c.lastPostId = postId
	c.lastContent = req.Content
	return &shared.Comment{Id: 1, Content: req.Content}, nil
}
func (c *countingApiClient) DeleteComment(commentId int) *shared.ApiError { return nil }

func useCountingApi(t *testing.T) *countingApiClient {
	t.Helper()

	stub := &countingApiClient{}
	prev := api.Client
	api.Client = stub
	t.Cleanup(func() { api.Client = prev })

	return stub
}

func TestSubmitCommentRejectsBlankContent(t *testing.T) {
	stub := useCountingApi(t)

	for _, content := range []string{"", "   ", "\n\t "} {
		apiErr := submitComment(42, content)

		require.NotNil(t, apiErr)
		assert.Equal(t, shared.ApiErrorTypeValidation, apiErr.Type)
		assert.Equal(t, "Comment cannot be empty.", apiErr.Msg)
	}

	// rejected client-side: nothing went over the wire
	assert.Zero(t, stub.createCommentCalls)
}

func TestSubmitCommentSendsContent(t *testing.T) {
	stub := useCountingApi(t)

	apiErr := submitComment(42, "a real comment")

	require.Nil(t, apiErr)
	assert.Equal(t, 1, stub.createCommentCalls)
	assert.Equal(t, 42, stub.lastPostId)
	assert.Equal(t, "a real comment", stub.lastContent)
}
