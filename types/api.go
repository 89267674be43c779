package types

import (
	shared "blogzone-cli/shared"
)

type ApiClient interface {
	SignUp(req shared.SignUpRequest) (*shared.SessionResponse, *shared.ApiError)
	SignIn(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError)
	GetCurrentUser() (*shared.User, *shared.ApiError)
	VerifyToken() *shared.ApiError
	UpdateProfile(req shared.UpdateProfileRequest) (*shared.UpdateProfileResponse, *shared.ApiError)
	ChangePassword(req shared.ChangePasswordRequest) *shared.ApiError

	ListPosts() ([]*shared.Post, *shared.ApiError)
	ListPrivatePosts() ([]*shared.Post, *shared.ApiError)
	GetPost(postId int) (*shared.Post, *shared.ApiError)
	CreatePost(req shared.CreatePostRequest) (*shared.Post, *shared.ApiError)
	UpdatePost(postId int, req shared.UpdatePostRequest) *shared.ApiError
	DeletePost(postId int) *shared.ApiError

	CreateComment(postId int, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError)
	DeleteComment(commentId int) *shared.ApiError
}
